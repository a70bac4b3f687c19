// Package gpkg reads vector layers from GeoPackage (SQLite) containers.
package gpkg

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// Dataset is an open GeoPackage file.
//
// Open a dataset with Open and release it with Close. A dataset is
// read-only; all queries run against the container as it was on disk when
// opened.
type Dataset struct {
	db     *sql.DB
	path   string
	tables map[string]bool
}

// FeatureRow is one row read from a vector layer table: the feature id,
// the optional classification code, and the decoded geometry.
type FeatureRow struct {
	// FID is the feature id (primary key of the layer table).
	FID int64

	// Class is the kohdeluokka classification code. Valid only when
	// HasClass is true; layers without a classification column leave it
	// zero.
	Class int64

	// HasClass reports whether the layer table carries a kohdeluokka
	// column and this row had a non-NULL value in it.
	HasClass bool

	// Geometry is the decoded geometry of the row.
	Geometry Geometry
}

// Open opens a GeoPackage file for reading.
//
// Returns an I/O error if the file is missing or unreadable, and
// ErrNotGeoPackage if the file is a SQLite database without the mandatory
// gpkg_contents table.
func Open(path string) (*Dataset, error) {
	// database/sql defers connecting until first use; stat first so a
	// missing input surfaces as a plain I/O error rather than a driver
	// error at query time.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open geopackage: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open geopackage %s: %w", path, err)
	}

	d := &Dataset{db: db, path: path, tables: make(map[string]bool)}
	if err := d.loadTableNames(); err != nil {
		db.Close()
		return nil, err
	}
	if !d.tables["gpkg_contents"] {
		db.Close()
		return nil, &ErrNotGeoPackage{Path: path}
	}
	return d, nil
}

// loadTableNames reads the set of user tables from the SQLite schema.
func (d *Dataset) loadTableNames() error {
	rows, err := d.db.Query(
		`SELECT name FROM sqlite_schema WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return fmt.Errorf("read schema of %s: %w", d.path, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return fmt.Errorf("read schema of %s: %w", d.path, err)
		}
		d.tables[name] = true
	}
	return rows.Err()
}

// Close releases the underlying database handle.
func (d *Dataset) Close() error {
	return d.db.Close()
}

// Path returns the file path the dataset was opened from.
func (d *Dataset) Path() string {
	return d.path
}

// HasTable reports whether the container has the named user table.
func (d *Dataset) HasTable(name string) bool {
	return d.tables[name]
}

// Features reads every row of the named layer table in fid order.
//
// The layer's columns are discovered from the result set, so tables with
// and without a kohdeluokka column are both handled. Returns
// ErrUnknownLayer if the table does not exist, and a decode error wrapped
// with the offending fid if a geometry blob is malformed.
func (d *Dataset) Features(table string) ([]FeatureRow, error) {
	if !d.tables[table] {
		return nil, &ErrUnknownLayer{Table: table}
	}

	// Table names come from the layer catalogue, not user input; %q quotes
	// them as SQL identifiers.
	rows, err := d.db.Query(fmt.Sprintf(`SELECT * FROM %q ORDER BY fid`, table))
	if err != nil {
		return nil, fmt.Errorf("read layer %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read layer %s: %w", table, err)
	}
	fidIdx, classIdx, geomIdx := -1, -1, -1
	for i, col := range cols {
		switch col {
		case "fid":
			fidIdx = i
		case "kohdeluokka":
			classIdx = i
		case "geom":
			geomIdx = i
		}
	}
	if fidIdx < 0 || geomIdx < 0 {
		return nil, fmt.Errorf("layer %s: missing fid or geom column", table)
	}

	var out []FeatureRow
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("read layer %s: %w", table, err)
		}

		fid, _ := values[fidIdx].(int64)
		blob, ok := values[geomIdx].([]byte)
		if !ok {
			return nil, fmt.Errorf("layer %s fid %d: geometry is not a blob", table, fid)
		}
		geom, err := ParseBlob(blob)
		if err != nil {
			return nil, fmt.Errorf("layer %s fid %d: %w", table, fid, err)
		}

		row := FeatureRow{FID: fid, Geometry: geom}
		if classIdx >= 0 {
			if class, ok := values[classIdx].(int64); ok {
				row.Class = class
				row.HasClass = true
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
