package gpkg

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WKB geometry type codes used by the NLS topographic database.
// Z variants are the 2D code + 1000 per the ISO SQL/MM convention.
const (
	wkbPoint       = 1
	wkbLineString  = 2
	wkbPolygon     = 3
	wkbPointZ      = 1001
	wkbLineStringZ = 1002
	wkbPolygonZ    = 1003
)

// envelopeSizes maps the envelope contents indicator code from the blob
// header flags to the envelope length in bytes.
// GeoPackage spec §2.1.3: 0=none, 1=XY, 2/3=XYZ or XYM, 4=XYZM.
var envelopeSizes = [...]int{0, 32, 48, 48, 64}

// blobHeaderSize is the fixed part of the GeoPackage binary header:
// magic (2) + version (1) + flags (1) + SRS id (4).
const blobHeaderSize = 8

// ParseBlob decodes a GeoPackage binary geometry blob: the "GP" header
// followed by a standard WKB geometry.
//
// GeoPackage spec §2.1.3 defines the header layout. The envelope, when
// present, is skipped; the geometry envelope is computed from the decoded
// coordinates instead so that blobs without an envelope behave identically.
func ParseBlob(blob []byte) (Geometry, error) {
	if len(blob) < blobHeaderSize {
		return Geometry{}, &ErrInvalidBlob{Reason: "truncated header"}
	}
	if blob[0] != 'G' || blob[1] != 'P' {
		return Geometry{}, &ErrInvalidBlob{Reason: "bad magic"}
	}
	if blob[2] != 0 {
		return Geometry{}, &ErrInvalidBlob{Reason: fmt.Sprintf("unsupported version %d", blob[2])}
	}

	// Flags byte: bit 0 is the header byte order, bits 1-3 select the
	// envelope contents. The header integers are not needed here, so only
	// the envelope bits matter.
	envelopeCode := int(blob[3]>>1) & 0x07
	if envelopeCode >= len(envelopeSizes) {
		return Geometry{}, &ErrInvalidBlob{Reason: fmt.Sprintf("invalid envelope indicator %d", envelopeCode)}
	}

	offset := blobHeaderSize + envelopeSizes[envelopeCode]
	if len(blob) < offset {
		return Geometry{}, &ErrInvalidBlob{Reason: "truncated envelope"}
	}

	return parseWKB(blob[offset:])
}

// parseWKB decodes a well-known-binary geometry.
func parseWKB(wkb []byte) (Geometry, error) {
	if len(wkb) < 5 {
		return Geometry{}, &ErrInvalidBlob{Reason: "truncated WKB"}
	}

	var order binary.ByteOrder = binary.BigEndian
	if wkb[0] == 1 {
		order = binary.LittleEndian
	}
	geomType := order.Uint32(wkb[1:5])
	body := wkb[5:]

	switch geomType {
	case wkbPoint, wkbPointZ:
		coord, _, err := parseCoordinate(body, order, dimensions(geomType))
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Type: GeometryTypePoint, Coordinates: [][2]float64{coord}}, nil

	case wkbLineString, wkbLineStringZ:
		coords, _, err := parseCoordinateList(body, order, dimensions(geomType))
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Type: GeometryTypeLineString, Coordinates: coords}, nil

	case wkbPolygon, wkbPolygonZ:
		rings, err := parseRings(body, order, dimensions(geomType))
		if err != nil {
			return Geometry{}, err
		}
		return Geometry{Type: GeometryTypePolygon, Rings: rings}, nil

	default:
		return Geometry{}, &ErrUnknownGeometry{Code: geomType}
	}
}

// dimensions returns the coordinate dimension count for a supported WKB
// geometry type code.
func dimensions(geomType uint32) int {
	if geomType >= 1000 {
		return 3
	}
	return 2
}

// parseCoordinate reads one coordinate of dim values, returning the
// [easting, northing] pair and the remaining bytes. Z values are dropped.
func parseCoordinate(data []byte, order binary.ByteOrder, dim int) ([2]float64, []byte, error) {
	need := dim * 8
	if len(data) < need {
		return [2]float64{}, nil, &ErrInvalidBlob{Reason: "truncated coordinate"}
	}
	x := math.Float64frombits(order.Uint64(data[0:8]))
	y := math.Float64frombits(order.Uint64(data[8:16]))
	return [2]float64{x, y}, data[need:], nil
}

// parseCoordinateList reads a uint32 count followed by that many
// coordinates.
func parseCoordinateList(data []byte, order binary.ByteOrder, dim int) ([][2]float64, []byte, error) {
	if len(data) < 4 {
		return nil, nil, &ErrInvalidBlob{Reason: "truncated coordinate count"}
	}
	count := int(order.Uint32(data[:4]))
	data = data[4:]

	if len(data) < count*dim*8 {
		return nil, nil, &ErrInvalidBlob{Reason: "truncated coordinate list"}
	}

	coords := make([][2]float64, count)
	var err error
	for i := 0; i < count; i++ {
		coords[i], data, err = parseCoordinate(data, order, dim)
		if err != nil {
			return nil, nil, err
		}
	}
	return coords, data, nil
}

// parseRings reads a uint32 ring count followed by that many coordinate
// lists.
func parseRings(data []byte, order binary.ByteOrder, dim int) ([][][2]float64, error) {
	if len(data) < 4 {
		return nil, &ErrInvalidBlob{Reason: "truncated ring count"}
	}
	count := int(order.Uint32(data[:4]))
	data = data[4:]

	rings := make([][][2]float64, 0, count)
	for i := 0; i < count; i++ {
		ring, rest, err := parseCoordinateList(data, order, dim)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
		data = rest
	}
	return rings, nil
}
