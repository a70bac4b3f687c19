package render

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

//go:embed styles/topo.toml
var topoStyles string

//go:embed styles/overview.toml
var overviewStyles string

// Style holds the presentation attributes for one layer pass.
type Style struct {
	// Stroke is the stroke color; empty means no stroke attribute.
	Stroke string `toml:"stroke"`

	// Fill is the fill color; empty renders as fill:none.
	Fill string `toml:"fill"`

	// Width is the stroke width in page millimetres.
	Width float64 `toml:"width"`

	// Radius is the point symbol radius in page millimetres.
	Radius float64 `toml:"radius"`

	// Dash is the stroke-dasharray value; empty means a solid stroke.
	Dash string `toml:"dash"`

	// Opacity is the fill opacity; zero means fully opaque.
	Opacity float64 `toml:"opacity"`
}

// StyleTable maps "alias_pass" keys (e.g. "autotie_Ia_0") to styles.
// A catalogue entry whose key is absent is not drawn.
type StyleTable map[string]Style

// StylesForVariant returns the built-in style table of a presentation
// variant.
func StylesForVariant(v mtk.Variant) (StyleTable, error) {
	switch v {
	case mtk.VariantTopographic:
		return decodeStyles(topoStyles)
	case mtk.VariantOverview:
		return decodeStyles(overviewStyles)
	default:
		return nil, fmt.Errorf("unknown presentation variant %q", v)
	}
}

// LoadStyles reads a style table from a TOML file, replacing the built-in
// table of the variant.
func LoadStyles(path string) (StyleTable, error) {
	var table StyleTable
	if _, err := toml.DecodeFile(path, &table); err != nil {
		return nil, fmt.Errorf("load styles %s: %w", path, err)
	}
	return table, nil
}

func decodeStyles(src string) (StyleTable, error) {
	var table StyleTable
	if _, err := toml.Decode(src, &table); err != nil {
		return nil, fmt.Errorf("decode built-in styles: %w", err)
	}
	return table, nil
}

// Resolve looks up the style for a layer alias and drawing pass.
func (t StyleTable) Resolve(alias string, pass int) (Style, bool) {
	s, ok := t[alias+"_"+strconv.Itoa(pass)]
	return s, ok
}

// attr renders the style as an SVG style attribute value. Attribute order
// is fixed so that equal inputs give byte-identical output.
func (s Style) attr() string {
	var b strings.Builder

	fill := s.Fill
	if fill == "" {
		fill = "none"
	}
	b.WriteString("fill:")
	b.WriteString(fill)

	if s.Opacity > 0 {
		b.WriteString(";fill-opacity:")
		b.WriteString(strconv.FormatFloat(s.Opacity, 'f', -1, 64))
	}
	if s.Stroke != "" {
		b.WriteString(";stroke:")
		b.WriteString(s.Stroke)
	}
	if s.Width > 0 {
		b.WriteString(";stroke-width:")
		b.WriteString(strconv.FormatFloat(s.Width, 'f', -1, 64))
	}
	if s.Dash != "" {
		b.WriteString(";stroke-dasharray:")
		b.WriteString(s.Dash)
	}
	return b.String()
}
