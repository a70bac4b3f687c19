package main

import (
	"fmt"
	"log"
	"os"

	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

// Inspects the geometries one A4 1:25000 sheet around Helsinki would
// draw: per layer, how many features survive the render-window filter and
// how many vertices clipping removes.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: render-sheet FILE.gpkg...")
	}

	specs := mtk.TopographicLayers()
	ds, err := mtk.Load(os.Args[1:], specs)
	if err != nil {
		log.Fatal(err)
	}

	// 297x210 mm at 1:25000 covers 7425 x 5250 metres.
	window := mtk.FromCenter(385884, 6671746, 7425, 5250)

	for _, spec := range specs {
		features := ds.FeaturesInBounds(spec, window)
		if len(features) == 0 {
			continue
		}

		var before, after int
		for _, f := range features {
			switch f.Geometry.Type {
			case mtk.GeometryTypeLineString:
				clipped := mtk.Simplify(mtk.ClipPolyline(f.Geometry.Coordinates, window), 0.1)
				before += len(f.Geometry.Coordinates)
				after += len(clipped)
			case mtk.GeometryTypePolygon:
				for _, ring := range f.Geometry.Rings {
					clipped := mtk.Simplify(mtk.ClipRing(ring, window), 0.1)
					before += len(ring)
					after += len(clipped)
				}
			}
		}
		fmt.Printf("%-24s %5d features, %7d -> %7d vertices\n",
			spec.Alias, len(features), before, after)
	}
}
