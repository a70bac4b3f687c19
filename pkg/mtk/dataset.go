package mtk

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/teelisyys/mtkgpkg2svg/internal/gpkg"
)

// Dataset holds features loaded from one or more GeoPackage files, indexed
// per layer table for render-window queries.
type Dataset struct {
	layers map[string]*layerIndex
}

// layerIndex is the per-table feature store with its R-tree.
type layerIndex struct {
	features []Feature
	rtree    *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage. The ordinal restores
// load order after a query, since R-tree traversal order is not stable.
type indexedFeature struct {
	ordinal int
	feature Feature
	bounds  Bounds
}

// rectEpsilon pads zero-area envelopes; the R-tree requires non-zero
// dimensions.
const rectEpsilon = 0.001

// Bounds implements rtreego.Spatial.
func (f *indexedFeature) Bounds() rtreego.Rect {
	return boundsToRect(f.bounds)
}

func boundsToRect(b Bounds) rtreego.Rect {
	point := rtreego.Point{b.West, b.South}
	width := b.Width()
	height := b.Height()
	if width < rectEpsilon {
		width = rectEpsilon
	}
	if height < rectEpsilon {
		height = rectEpsilon
	}
	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

// Load opens each GeoPackage path and reads every layer table named by the
// catalogue.
//
// A path that is missing, unreadable, or not a GeoPackage aborts the load.
// A catalogue table absent from a particular file is skipped: the
// topographic database is distributed as regional files that do not all
// carry every layer.
func Load(paths []string, specs []LayerSpec) (*Dataset, error) {
	tables := Tables(specs)
	ds := &Dataset{layers: make(map[string]*layerIndex, len(tables))}
	for _, table := range tables {
		ds.layers[table] = &layerIndex{}
	}

	for _, path := range paths {
		src, err := gpkg.Open(path)
		if err != nil {
			return nil, err
		}
		if err := loadFrom(src, tables, ds); err != nil {
			src.Close()
			return nil, err
		}
		if err := src.Close(); err != nil {
			return nil, fmt.Errorf("close %s: %w", path, err)
		}
	}

	for _, table := range tables {
		ds.layers[table].buildIndex()
	}
	return ds, nil
}

func loadFrom(src *gpkg.Dataset, tables []string, ds *Dataset) error {
	for _, table := range tables {
		if !src.HasTable(table) {
			continue
		}
		rows, err := src.Features(table)
		if err != nil {
			return err
		}
		li := ds.layers[table]
		for _, row := range rows {
			li.features = append(li.features, Feature{
				ID:       row.FID,
				Table:    table,
				Class:    row.Class,
				HasClass: row.HasClass,
				Geometry: convertGeometry(row.Geometry),
			})
		}
	}
	return nil
}

// NewDataset assembles a dataset from already-decoded features, indexing
// them by table. Mainly useful for programmatic construction and tests;
// file-based loading goes through Load.
func NewDataset(features ...Feature) *Dataset {
	ds := &Dataset{layers: make(map[string]*layerIndex)}
	for _, f := range features {
		li := ds.layers[f.Table]
		if li == nil {
			li = &layerIndex{}
			ds.layers[f.Table] = li
		}
		li.features = append(li.features, f)
	}
	for _, li := range ds.layers {
		li.buildIndex()
	}
	return ds
}

// convertGeometry converts the internal container geometry to the public
// feature model.
func convertGeometry(g gpkg.Geometry) Geometry {
	return Geometry{
		Type:        GeometryType(g.Type),
		Coordinates: g.Coordinates,
		Rings:       g.Rings,
	}
}

// buildIndex creates the R-tree over the layer's features.
func (li *layerIndex) buildIndex() {
	if len(li.features) == 0 {
		return
	}
	rtree := rtreego.NewTree(2, 25, 50)
	for i := range li.features {
		rtree.Insert(&indexedFeature{
			ordinal: i,
			feature: li.features[i],
			bounds:  li.features[i].Geometry.Bounds(),
		})
	}
	li.rtree = rtree
}

// FeatureCount returns the total number of loaded features.
func (d *Dataset) FeatureCount() int {
	n := 0
	for _, li := range d.layers {
		n += len(li.features)
	}
	return n
}

// FeaturesInBounds returns the features of the spec's table whose envelope
// intersects the window, honoring the spec's classification filter.
//
// The result is in load order (per-file fid order), so repeated runs over
// the same inputs draw features in the same order.
func (d *Dataset) FeaturesInBounds(spec LayerSpec, window Bounds) []Feature {
	li := d.layers[spec.Table]
	if li == nil || li.rtree == nil {
		return nil
	}

	spatials := li.rtree.SearchIntersect(boundsToRect(window))
	hits := make([]*indexedFeature, 0, len(spatials))
	for _, spatial := range spatials {
		hits = append(hits, spatial.(*indexedFeature))
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ordinal < hits[j].ordinal })

	result := make([]Feature, 0, len(hits))
	for _, hit := range hits {
		if spec.Class != 0 && (!hit.feature.HasClass || hit.feature.Class != spec.Class) {
			continue
		}
		result = append(result, hit.feature)
	}
	return result
}
