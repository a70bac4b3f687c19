package render

import (
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/charmbracelet/log"

	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

// simplifyEpsilon is the maximum allowed simplification deviation in map
// metres. At 1:25000 this is 4 micrometres on the page.
const simplifyEpsilon = 0.1

// defaultRadius is the point symbol radius in page millimetres when the
// style leaves it unset.
const defaultRadius = 1

// Renderer draws the features of a dataset into an SVG document.
type Renderer struct {
	Window     mtk.Bounds
	Projection Projection
	Styles     StyleTable
	Logger     *log.Logger
}

// Render draws the catalogue layers onto w in catalogue order. Within a
// layer, features are drawn in load order, so equal inputs produce
// byte-identical output.
func (r *Renderer) Render(w io.Writer, ds *mtk.Dataset, specs []mtk.LayerSpec) error {
	canvas := svg.New(w)
	width := r.Projection.WidthMM()
	height := r.Projection.HeightMM()
	canvas.Startview(width, height, 0, 0, width, height)

	for _, spec := range specs {
		features := ds.FeaturesInBounds(spec, r.Window)
		r.Logger.Debug("layer selected", "alias", spec.Alias, "features", len(features))

		for pass := 0; pass < spec.Passes; pass++ {
			style, ok := r.Styles.Resolve(spec.Alias, pass)
			if !ok {
				r.Logger.Debug("no style mapped, skipping",
					"alias", spec.Alias, "pass", pass)
				continue
			}
			for _, feature := range features {
				r.renderFeature(canvas, feature, style)
			}
		}
	}

	canvas.End()
	return nil
}

func (r *Renderer) renderFeature(canvas *svg.SVG, f mtk.Feature, style Style) {
	switch f.Geometry.Type {
	case mtk.GeometryTypePoint:
		r.renderPoint(canvas, f.Geometry.Coordinates, style)
	case mtk.GeometryTypeLineString:
		r.renderPolyline(canvas, f.Geometry.Coordinates, style)
	case mtk.GeometryTypePolygon:
		r.renderPolygon(canvas, f.Geometry.Rings, style)
	}
}

func (r *Renderer) renderPoint(canvas *svg.SVG, coords [][2]float64, style Style) {
	if len(coords) == 0 {
		return
	}
	p := coords[0]
	if !r.Window.Contains(p[0], p[1]) {
		return
	}
	x, y := r.Projection.Project(p[0], p[1])
	radius := style.Radius
	if radius == 0 {
		radius = defaultRadius
	}
	canvas.Circle(round3(x), round3(y), radius, style.attr())
}

func (r *Renderer) renderPolyline(canvas *svg.SVG, coords [][2]float64, style Style) {
	clipped := mtk.Simplify(mtk.ClipPolyline(coords, r.Window), simplifyEpsilon)
	if len(clipped) < 2 {
		return
	}
	xs := make([]float64, len(clipped))
	ys := make([]float64, len(clipped))
	for i, p := range clipped {
		x, y := r.Projection.Project(p[0], p[1])
		xs[i] = round3(x)
		ys[i] = round3(y)
	}
	canvas.Polyline(xs, ys, style.attr())
}

func (r *Renderer) renderPolygon(canvas *svg.SVG, rings [][][2]float64, style Style) {
	var d strings.Builder
	for _, ring := range rings {
		clipped := mtk.Simplify(mtk.ClipRing(ring, r.Window), simplifyEpsilon)
		if len(clipped) < 3 {
			continue
		}
		for i, p := range clipped {
			x, y := r.Projection.Project(p[0], p[1])
			if i == 0 {
				d.WriteString("M ")
			} else {
				d.WriteString(" L ")
			}
			d.WriteString(formatCoord(x))
			d.WriteByte(' ')
			d.WriteString(formatCoord(y))
		}
		d.WriteString(" Z ")
	}
	if d.Len() == 0 {
		return
	}
	canvas.Path(strings.TrimSuffix(d.String(), " "), style.attr())
}

// round3 rounds to the nearest thousandth of a millimetre. Full float64
// precision only bloats the output.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(round3(v), 'f', -1, 64)
}
