package gpkg

import (
	"fmt"
)

// ErrNotGeoPackage indicates the file is a readable SQLite database but not
// a GeoPackage container (no gpkg_contents table).
type ErrNotGeoPackage struct {
	Path string
}

func (e *ErrNotGeoPackage) Error() string {
	return fmt.Sprintf("%s is not a GeoPackage: missing gpkg_contents table", e.Path)
}

// ErrUnknownLayer indicates a requested layer table does not exist in the
// container.
type ErrUnknownLayer struct {
	Table string
}

func (e *ErrUnknownLayer) Error() string {
	return fmt.Sprintf("unknown layer table %q", e.Table)
}

// ErrInvalidBlob indicates a malformed GeoPackage binary geometry blob.
type ErrInvalidBlob struct {
	Reason string
}

func (e *ErrInvalidBlob) Error() string {
	return fmt.Sprintf("invalid geometry blob: %s", e.Reason)
}

// ErrUnknownGeometry indicates a WKB geometry type this reader does not
// support.
type ErrUnknownGeometry struct {
	Code uint32
}

func (e *ErrUnknownGeometry) Error() string {
	return fmt.Sprintf("unknown WKB geometry type %d", e.Code)
}
