package gpkg

// GeometryType represents the type of a decoded geometry.
type GeometryType int

const (
	// GeometryTypePoint represents a single point location.
	GeometryTypePoint GeometryType = iota

	// GeometryTypeLineString represents a line composed of connected points.
	GeometryTypeLineString

	// GeometryTypePolygon represents a closed area built from linear rings.
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

// Geometry is planar geometry decoded from a GeoPackage binary blob.
//
// Coordinates are [easting, northing] pairs in the dataset's projected
// coordinate reference system (ETRS-TM35FIN for the NLS topographic
// database). Z values present in the source are dropped during decoding;
// the output of this tool is planar.
type Geometry struct {
	// Type indicates the geometry type.
	Type GeometryType

	// Coordinates holds the vertices for Point (single entry) and
	// LineString geometries. Unused for polygons.
	Coordinates [][2]float64

	// Rings holds the linear rings for Polygon geometries, exterior ring
	// first. Unused for points and lines.
	Rings [][][2]float64
}

// Bounds returns the envelope of the geometry as west, south, east, north.
// An empty geometry yields a zero envelope.
func (g Geometry) Bounds() (west, south, east, north float64) {
	first := true
	expand := func(p [2]float64) {
		if first {
			west, east = p[0], p[0]
			south, north = p[1], p[1]
			first = false
			return
		}
		if p[0] < west {
			west = p[0]
		}
		if p[0] > east {
			east = p[0]
		}
		if p[1] < south {
			south = p[1]
		}
		if p[1] > north {
			north = p[1]
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
	return west, south, east, north
}
