package main

import (
	"fmt"
	"log"
	"os"

	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: quick-start FILE.gpkg...")
	}

	specs := mtk.TopographicLayers()
	ds, err := mtk.Load(os.Args[1:], specs)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Features: %d\n", ds.FeatureCount())

	// Query one map sheet around the center of Helsinki.
	window := mtk.FromCenter(385884, 6671746, 7425, 5250)
	for _, spec := range specs {
		features := ds.FeaturesInBounds(spec, window)
		if len(features) == 0 {
			continue
		}
		fmt.Printf("%-24s %d features\n", spec.Alias, len(features))
	}
}
