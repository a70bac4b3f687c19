package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

func TestStylesForVariant(t *testing.T) {
	topo, err := StylesForVariant(mtk.VariantTopographic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, ok := topo.Resolve("autotie_Ia", 0)
	if !ok {
		t.Fatal("expected a style for the autotie_Ia casing pass")
	}
	if s.Stroke == "" || s.Width == 0 {
		t.Errorf("casing pass needs stroke and width, got %+v", s)
	}

	if _, ok := topo.Resolve("aita", 1); ok {
		t.Error("expected the second fence pass to be unmapped")
	}

	// Every catalogue entry's first pass should be drawable in the
	// built-in topographic table.
	for _, spec := range mtk.TopographicLayers() {
		if _, ok := topo.Resolve(spec.Alias, 0); !ok {
			t.Errorf("no style for catalogue alias %q", spec.Alias)
		}
	}

	overview, err := StylesForVariant(mtk.VariantOverview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, spec := range mtk.OverviewLayers() {
		if _, ok := overview.Resolve(spec.Alias, 0); !ok {
			t.Errorf("no overview style for catalogue alias %q", spec.Alias)
		}
	}

	if _, err := StylesForVariant(mtk.Variant("bogus")); err == nil {
		t.Error("expected an error for an unknown variant")
	}
}

func TestLoadStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	src := `
[meri_0]
fill = "#000080"

[korkeuskayra_0]
stroke = "#ff0000"
width = 0.3
dash = "1 1"
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadStyles(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sea, ok := table.Resolve("meri", 0)
	if !ok || sea.Fill != "#000080" {
		t.Errorf("expected the custom sea fill, got %+v ok=%v", sea, ok)
	}
	contour, ok := table.Resolve("korkeuskayra", 0)
	if !ok || contour.Dash != "1 1" {
		t.Errorf("expected the custom contour dash, got %+v ok=%v", contour, ok)
	}

	if _, err := LoadStyles(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing style file")
	}
}

func TestStyleAttr(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{
			name:  "fill only",
			style: Style{Fill: "#aadaff"},
			want:  "fill:#aadaff",
		},
		{
			name:  "stroke defaults to no fill",
			style: Style{Stroke: "#1a1a1a", Width: 0.5},
			want:  "fill:none;stroke:#1a1a1a;stroke-width:0.5",
		},
		{
			name:  "dashed",
			style: Style{Stroke: "#1a1a1a", Width: 0.25, Dash: "1.2 0.6"},
			want:  "fill:none;stroke:#1a1a1a;stroke-width:0.25;stroke-dasharray:1.2 0.6",
		},
		{
			name:  "translucent fill",
			style: Style{Fill: "#ccf0cc", Opacity: 0.5},
			want:  "fill:#ccf0cc;fill-opacity:0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.attr(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
