// Package mtk models vector features of the Topographic Database of the
// National Land Survey of Finland and answers render-window queries over
// them.
//
// Features are read from GeoPackage containers, held in memory for the
// duration of one conversion run, and queried by bounding box through an
// R-tree index. Coordinates are ETRS-TM35FIN metres throughout.
package mtk

// Feature is one geometry record read from a GeoPackage layer.
type Feature struct {
	// ID is the feature id within its source layer table.
	ID int64

	// Table is the layer table the feature came from.
	Table string

	// Class is the kohdeluokka classification code; valid when HasClass
	// is true.
	Class int64

	// HasClass reports whether the source layer carries a classification
	// column.
	HasClass bool

	// Geometry is the feature's spatial representation.
	Geometry Geometry
}

// Geometry is the planar spatial representation of a feature.
type Geometry struct {
	// Type indicates the geometry type.
	Type GeometryType

	// Coordinates holds the vertices for Point (single entry) and
	// LineString geometries, as [easting, northing] pairs.
	Coordinates [][2]float64

	// Rings holds the linear rings for Polygon geometries, exterior ring
	// first.
	Rings [][][2]float64
}

// GeometryType represents the type of geometry.
type GeometryType int

const (
	// GeometryTypePoint represents a single point location.
	GeometryTypePoint GeometryType = iota

	// GeometryTypeLineString represents a line composed of connected points.
	GeometryTypeLineString

	// GeometryTypePolygon represents a closed polygon area.
	GeometryTypePolygon
)

// String returns the string representation of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Bounds returns the envelope of the geometry. An empty geometry yields a
// zero envelope.
func (g Geometry) Bounds() Bounds {
	var b Bounds
	first := true
	expand := func(p [2]float64) {
		if first {
			b = Bounds{West: p[0], East: p[0], South: p[1], North: p[1]}
			first = false
			return
		}
		if p[0] < b.West {
			b.West = p[0]
		}
		if p[0] > b.East {
			b.East = p[0]
		}
		if p[1] < b.South {
			b.South = p[1]
		}
		if p[1] > b.North {
			b.North = p[1]
		}
	}
	for _, p := range g.Coordinates {
		expand(p)
	}
	for _, ring := range g.Rings {
		for _, p := range ring {
			expand(p)
		}
	}
	return b
}

// Bounds is an axis-aligned rectangle in ETRS-TM35FIN coordinates.
//
// The render window is a Bounds fixed for the whole run.
type Bounds struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Width returns the east-west extent in metres.
func (b Bounds) Width() float64 {
	return b.East - b.West
}

// Height returns the north-south extent in metres.
func (b Bounds) Height() float64 {
	return b.North - b.South
}

// Intersects reports whether two rectangles overlap. Touching edges count
// as overlap; the render-window edge test is inclusive.
func (b Bounds) Intersects(o Bounds) bool {
	return b.West <= o.East && o.West <= b.East &&
		b.South <= o.North && o.South <= b.North
}

// Contains reports whether the point lies strictly inside the rectangle.
func (b Bounds) Contains(x, y float64) bool {
	return b.West < x && x < b.East && b.South < y && y < b.North
}

// FromCenter returns the bounds of a width×height metre rectangle centered
// on (east, north).
func FromCenter(east, north, width, height float64) Bounds {
	return Bounds{
		West:  east - width/2,
		East:  east + width/2,
		South: north - height/2,
		North: north + height/2,
	}
}
