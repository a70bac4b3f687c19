package mtk

import (
	"fmt"
)

// Variant selects which layer catalogue drives a render.
type Variant string

const (
	// VariantTopographic is the full topographic map presentation.
	VariantTopographic Variant = "topo"

	// VariantOverview is the sparse overview presentation (administrative
	// boundaries, sea, railways).
	VariantOverview Variant = "overview"
)

// LayerSpec names one drawing source: a layer table, an optional
// classification filter, the style alias used for styling lookups, and the
// number of drawing passes.
//
// Passes above one draw the same features repeatedly with per-pass styles;
// road layers use this for casing below a lighter fill line.
type LayerSpec struct {
	// Table is the GeoPackage layer table name.
	Table string

	// Class restricts the spec to rows with this kohdeluokka code.
	// Zero selects every row of the table.
	Class int64

	// Alias is the style lookup key prefix. Usually the table name, but
	// class-filtered specs carry their own alias (e.g. "polku").
	Alias string

	// Passes is the number of drawing passes, at least one.
	Passes int
}

// TopographicLayers returns the layer catalogue for the topographic map
// variant, in draw order: water and terrain below contours, contours below
// buildings and roads, point symbols on top.
//
// The catalogue covers the layer tables this tool knows how to style; a
// topographic database GeoPackage contains more tables than are listed
// here, and those are not rendered.
func TopographicLayers() []LayerSpec {
	return []LayerSpec{
		{Table: "meri", Alias: "meri", Passes: 1},
		{Table: "jarvi", Alias: "jarvi", Passes: 1},
		{Table: "virtavesialue", Alias: "virtavesialue", Passes: 1},
		{Table: "virtavesikapea", Alias: "virtavesikapea", Passes: 1},
		{Table: "kallioalue", Alias: "kallioalue", Passes: 1},
		{Table: "korkeuskayra", Alias: "korkeuskayra", Passes: 1},
		{Table: "rakennus", Alias: "rakennus", Passes: 1},
		{Table: "suo", Class: 35411, Alias: "suo_helppo_avoin", Passes: 1},
		{Table: "suo", Class: 35412, Alias: "suo_helppo_metsa", Passes: 1},
		{Table: "suo", Class: 35421, Alias: "suo_vaikea_avoin", Passes: 1},
		{Table: "suo", Class: 35422, Alias: "suo_vaikea_metsa", Passes: 1},
		{Table: "soistuma", Alias: "soistuma", Passes: 1},
		{Table: "jyrkanne", Alias: "jyrkanne", Passes: 1},
		{Table: "kalliohalkeama", Alias: "kalliohalkeama", Passes: 1},
		{Table: "tieviiva", Class: 12316, Alias: "ajopolku", Passes: 1},
		{Table: "tieviiva", Class: 12314, Alias: "kavelyjapyoratie", Passes: 1},
		{Table: "tieviiva", Class: 12313, Alias: "polku", Passes: 1},
		{Table: "tieviiva", Class: 12312, Alias: "talvitie", Passes: 1},
		{Table: "tieviiva", Class: 12141, Alias: "ajotie", Passes: 1},
		{Table: "tieviiva", Class: 12132, Alias: "autotie_IIIb", Passes: 2},
		{Table: "tieviiva", Class: 12131, Alias: "autotie_IIIa", Passes: 2},
		{Table: "tieviiva", Class: 12122, Alias: "autotie_IIb", Passes: 2},
		{Table: "tieviiva", Class: 12121, Alias: "autotie_IIa", Passes: 2},
		{Table: "tieviiva", Class: 12112, Alias: "autotie_Ib", Passes: 2},
		{Table: "tieviiva", Class: 12111, Alias: "autotie_Ia", Passes: 2},
		{Table: "rautatie", Alias: "rautatie", Passes: 2},
		{Table: "aita", Alias: "aita", Passes: 2},
		{Table: "kivi", Alias: "kivi", Passes: 1},
		{Table: "lahde", Alias: "lahde", Passes: 1},
		{Table: "metsamaankasvillisuus", Class: 32710, Alias: "havupuu", Passes: 1},
		{Table: "metsamaankasvillisuus", Class: 32714, Alias: "sekapuu", Passes: 1},
		{Table: "metsamaankasvillisuus", Class: 32713, Alias: "lehtipuu", Passes: 1},
		{Table: "metsamaankasvillisuus", Class: 32719, Alias: "pensaikko", Passes: 1},
		{Table: "sahkolinja", Alias: "sahkolinja", Passes: 1},
		{Table: "luonnonsuojelualue", Alias: "luonnonsuojelualue", Passes: 1},
		{Table: "kansallispuisto", Alias: "kansallispuisto", Passes: 1},
		{Table: "puisto", Alias: "puisto", Passes: 1},
		{Table: "maatalousmaa", Alias: "maatalousmaa", Passes: 1},
	}
}

// OverviewLayers returns the layer catalogue for the overview variant.
func OverviewLayers() []LayerSpec {
	return []LayerSpec{
		{Table: "kunnanhallintoraja", Alias: "kunnanhallintoraja", Passes: 1},
		{Table: "meri", Alias: "meri", Passes: 1},
		{Table: "rautatie", Alias: "rautatie", Passes: 1},
	}
}

// Layers returns the catalogue for the named variant.
func Layers(v Variant) ([]LayerSpec, error) {
	switch v {
	case VariantTopographic:
		return TopographicLayers(), nil
	case VariantOverview:
		return OverviewLayers(), nil
	default:
		return nil, fmt.Errorf("unknown presentation variant %q", v)
	}
}

// Tables returns the distinct layer tables of a catalogue, in first-use
// order.
func Tables(specs []LayerSpec) []string {
	seen := make(map[string]bool, len(specs))
	tables := make([]string, 0, len(specs))
	for _, spec := range specs {
		if !seen[spec.Table] {
			seen[spec.Table] = true
			tables = append(tables, spec.Table)
		}
	}
	return tables
}
