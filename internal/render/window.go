// Package render projects topographic features onto an output page and
// emits them as SVG.
//
// The output coordinate space is millimetres on the printed page, origin at
// the top-left corner, y growing downward. Map coordinates (ETRS-TM35FIN
// metres, northing growing upward) are mapped by a fixed affine projection
// determined once per run from the render window and the scale.
package render

import (
	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

// Window describes the output page: physical size in millimetres and the
// map scale denominator (1:Scale).
type Window struct {
	WidthMM  float64
	HeightMM float64
	Scale    int
}

// Bounds returns the render window centered on (east, north). A page of
// width w mm at scale 1:s covers w*s/1000 metres of terrain.
func (w Window) Bounds(east, north float64) mtk.Bounds {
	return mtk.FromCenter(east, north,
		w.WidthMM*float64(w.Scale)/1000,
		w.HeightMM*float64(w.Scale)/1000)
}

// Projection is the affine map from ETRS-TM35FIN metres to page
// millimetres for one render window.
type Projection struct {
	bounds mtk.Bounds
	mmPerM float64
}

// NewProjection builds the projection for a window at scale 1:scale.
func NewProjection(bounds mtk.Bounds, scale int) Projection {
	return Projection{bounds: bounds, mmPerM: 1000 / float64(scale)}
}

// Project maps a map coordinate to page millimetres. The window's
// north-west corner maps to the page origin; northing is flipped.
func (p Projection) Project(east, north float64) (x, y float64) {
	return (east - p.bounds.West) * p.mmPerM, (p.bounds.North - north) * p.mmPerM
}

// WidthMM returns the page width in millimetres.
func (p Projection) WidthMM() float64 {
	return p.bounds.Width() * p.mmPerM
}

// HeightMM returns the page height in millimetres.
func (p Projection) HeightMM() float64 {
	return p.bounds.Height() * p.mmPerM
}
