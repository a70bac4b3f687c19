package render

import (
	"math"
	"testing"

	"github.com/teelisyys/mtkgpkg2svg/pkg/mtk"
)

func TestWindowBounds(t *testing.T) {
	// A4 landscape at 1:25000 covers 7425 m x 5250 m.
	w := Window{WidthMM: 297, HeightMM: 210, Scale: 25000}
	b := w.Bounds(500000, 7000000)

	want := mtk.Bounds{
		West: 496287.5, East: 503712.5,
		South: 6997375, North: 7002625,
	}
	if b != want {
		t.Errorf("expected %+v, got %+v", want, b)
	}
}

func TestProjectionCorners(t *testing.T) {
	w := Window{WidthMM: 297, HeightMM: 210, Scale: 25000}
	bounds := w.Bounds(500000, 7000000)
	proj := NewProjection(bounds, w.Scale)

	tests := []struct {
		name         string
		east, north  float64
		wantX, wantY float64
	}{
		{"north-west corner to origin", bounds.West, bounds.North, 0, 0},
		{"south-east corner to page extent", bounds.East, bounds.South, 297, 210},
		{"center to page center", 500000, 7000000, 148.5, 105},
		{"north edge midpoint", 500000, bounds.North, 148.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := proj.Project(tt.east, tt.north)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, x, y)
			}
		})
	}

	if proj.WidthMM() != 297 || proj.HeightMM() != 210 {
		t.Errorf("expected 297x210 mm, got %vx%v", proj.WidthMM(), proj.HeightMM())
	}
}

func TestProjectionLinearity(t *testing.T) {
	bounds := mtk.Bounds{West: 400000, South: 6900000, East: 410000, North: 6910000}
	proj := NewProjection(bounds, 50000)

	// Moving 1000 m east and 1000 m south shifts the page position by the
	// same vector wherever the starting point is.
	x1, y1 := proj.Project(402000, 6905000)
	x2, y2 := proj.Project(403000, 6904000)
	x3, y3 := proj.Project(407500, 6908200)
	x4, y4 := proj.Project(408500, 6907200)

	wantDX := 1000 * (1000.0 / 50000)
	if math.Abs((x2-x1)-wantDX) > 1e-9 || math.Abs((x4-x3)-wantDX) > 1e-9 {
		t.Errorf("east shift not uniform: %v vs %v", x2-x1, x4-x3)
	}
	if math.Abs((y2-y1)-wantDX) > 1e-9 || math.Abs((y4-y3)-wantDX) > 1e-9 {
		t.Errorf("south shift not uniform: %v vs %v", y2-y1, y4-y3)
	}
}
