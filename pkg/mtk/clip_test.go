package mtk

import (
	"math"
	"testing"
)

// gridPoints returns named points laid out as:
//
//	A B C
//	D E F
//	G H I
func gridPoints() map[string][2]float64 {
	return map[string][2]float64{
		"A": {-1, 1}, "B": {0, 1}, "C": {1, 1},
		"D": {-1, 0}, "E": {0, 0}, "F": {1, 0},
		"G": {-1, -1}, "H": {0, -1}, "I": {1, -1},
	}
}

func pointClose(a, b [2]float64, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps && math.Abs(a[1]-b[1]) <= eps
}

func assertPointsClose(t *testing.T, expected, actual [][2]float64, eps float64) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("expected %d points, got %d: %v", len(expected), len(actual), actual)
	}
	for i := range expected {
		if !pointClose(expected[i], actual[i], eps) {
			t.Errorf("point %d: expected %v, got %v", i, expected[i], actual[i])
		}
	}
}

func TestIntersectLines(t *testing.T) {
	pp := gridPoints()
	ip := func(l1, l2 string) ([2]float64, bool) {
		return IntersectLines(pp[l1[:1]], pp[l1[1:]], pp[l2[:1]], pp[l2[1:]])
	}

	tests := []struct {
		l1, l2 string
		want   [2]float64
		wantOK bool
	}{
		{"AI", "CG", [2]float64{0, 0}, true},
		{"BH", "CG", [2]float64{0, 0}, true},
		{"BH", "DF", [2]float64{0, 0}, true},
		{"DE", "EH", [2]float64{0, 0}, true},
		{"AB", "EH", [2]float64{0, 1}, true},
		{"EH", "AB", [2]float64{0, 1}, true},
		{"AB", "DE", [2]float64{}, false}, // parallel horizontals
		{"DE", "AB", [2]float64{}, false},
		{"DG", "DG", [2]float64{}, false}, // line with itself
		{"BF", "EC", [2]float64{0.5, 0.5}, true},
		{"AH", "BH", [2]float64{0, -1}, true},
		{"AG", "CH", [2]float64{-1, -3}, true},
		{"CH", "AG", [2]float64{-1, -3}, true},
		{"CI", "AH", [2]float64{1, -3}, true},
		{"AH", "CI", [2]float64{1, -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.l1+"x"+tt.l2, func(t *testing.T) {
			got, ok := ip(tt.l1, tt.l2)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && !pointClose(got, tt.want, 1e-12) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPerpendicularDistance(t *testing.T) {
	pp := gridPoints()
	pd := func(p, l string) float64 {
		return PerpendicularDistance(pp[p], pp[l[:1]], pp[l[1:]])
	}

	tests := []struct {
		p, l string
		want float64
	}{
		{"E", "CA", 1.0},
		{"E", "AC", 1.0},
		{"E", "IA", 0.0},
		{"E", "HD", 0.7071067811865475},
	}

	for _, tt := range tests {
		if got := pd(tt.p, tt.l); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("distance %s to %s: expected %v, got %v", tt.p, tt.l, tt.want, got)
		}
	}
}

func TestClipRingPolygon(t *testing.T) {
	unit := Bounds{West: -1, South: -1, East: 1, North: 1}
	square128 := Bounds{West: 8, South: 8, East: 12, North: 12}

	tests := []struct {
		name     string
		input    [][2]float64
		window   Bounds
		expected [][2]float64
	}{
		{
			name:     "spike clipped at right edge",
			input:    [][2]float64{{0, 0}, {2, 0}, {0, 0}},
			window:   unit,
			expected: [][2]float64{{0, 0}, {1, 0}, {1, 0}, {0, 0}},
		},
		{
			name:     "degenerate ring fully inside",
			input:    [][2]float64{{-0.9, 0}, {0.9, 0}, {-0.9, 0}},
			window:   unit,
			expected: [][2]float64{{-0.9, 0}, {0.9, 0}, {-0.9, 0}},
		},
		{
			name:     "degenerate ring reversed",
			input:    [][2]float64{{0.9, 0}, {-0.9, 0}, {0.9, 0}},
			window:   unit,
			expected: [][2]float64{{0.9, 0}, {-0.9, 0}, {0.9, 0}},
		},
		{
			name:     "closed ring clipped at left edge",
			input:    [][2]float64{{0.9, 0.1}, {0.5, 0.1}, {-0.9, 0.1}, {0.9, 0.1}},
			window:   Bounds{West: 0, South: 0, East: 1, North: 1},
			expected: [][2]float64{{0.9, 0.1}, {0.5, 0.1}, {0, 0.1}, {0, 0.1}, {0.9, 0.1}},
		},
		{
			name:     "triangle across corner",
			input:    [][2]float64{{7, 7}, {14, 7}, {14, 14}, {7, 7}},
			window:   square128,
			expected: [][2]float64{{8, 8}, {12, 8}, {12, 12}, {8, 8}},
		},
		{
			name:     "triangle across corner reversed",
			input:    [][2]float64{{7, 7}, {14, 14}, {14, 7}, {7, 7}},
			window:   square128,
			expected: [][2]float64{{8, 8}, {8, 8}, {12, 12}, {12, 8}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPointsClose(t, tt.expected, ClipRing(tt.input, tt.window), 1e-9)
		})
	}
}

func TestClipRingPolyline(t *testing.T) {
	window := Bounds{West: 8, South: 8, East: 12, North: 12}

	tests := []struct {
		name     string
		input    [][2]float64
		expected [][2]float64
	}{
		{
			name:     "both ends outside",
			input:    [][2]float64{{7, 7}, {14, 7}, {14, 14}},
			expected: [][2]float64{{8, 8}, {12, 8}, {12, 12}},
		},
		{
			name:     "diagonal first",
			input:    [][2]float64{{7, 7}, {14, 14}, {14, 7}},
			expected: [][2]float64{{8, 8}, {12, 12}, {12, 8}},
		},
		{
			name:     "start inside",
			input:    [][2]float64{{9, 9}, {14, 14}, {14, 10}},
			expected: [][2]float64{{9, 9}, {12, 12}, {12, 9.6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertPointsClose(t, tt.expected, ClipRing(tt.input, window), 1e-9)
		})
	}
}

func TestClipPolyline(t *testing.T) {
	window := Bounds{West: 8, South: 8, East: 12, North: 12}

	actual := ClipPolyline([][2]float64{{7, 9.5}, {8.5, 9.5}, {9.5, 8.5}, {9.5, 7}}, window)
	expected := [][2]float64{{8, 9.5}, {8.5, 9.5}, {9.5, 8.5}, {9.5, 8}}
	assertPointsClose(t, expected, actual, 1e-9)
}

func TestClipPolylineFullyOutside(t *testing.T) {
	window := Bounds{West: -2, South: -2, East: 2, North: 2}
	input := [][2]float64{{-3, 3}, {-2, 3}, {-1, 3}, {0, 3}, {1, 3}, {2, 3}, {3, 3}}

	if got := ClipPolyline(input, window); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestClipPolylineLongDiagonal(t *testing.T) {
	window := Bounds{West: 427898.845, South: 7118890.633, East: 576398.845, North: 7223890.633}
	input := [][2]float64{
		{460317.509, 7096721.518},
		{467055.727, 7118564.929},
		{467072.306, 7119547.363},
	}
	expected := [][2]float64{
		{467061.22339631367, 7118890.633},
		{467072.306, 7119547.363},
	}
	assertPointsClose(t, expected, ClipPolyline(input, window), 0.001)
}

func TestClipPolylineTranslationInvariance(t *testing.T) {
	// Clipping a polyline expressed in absolute coordinates and in
	// window-relative coordinates must give the same result up to the
	// translation.
	run := func(dx, dy float64) [][2]float64 {
		input := [][2]float64{
			{432216.750 + dx, 7118891.604 + dy},
			{432215.650 + dx, 7118883.684 + dy},
			{432290.439 + dx, 7118770.425 + dy},
		}
		window := Bounds{
			West: 427898.845 + dx, South: 7118890.633 + dy,
			East: 576398.845 + dx, North: 7223890.633 + dy,
		}
		return ClipPolyline(input, window)
	}

	shifted := run(-432200.0, -7118000.0)
	expectedShifted := [][2]float64{
		{16.75, 891.604},
		{16.615138888941658, 890.63300000038},
	}
	assertPointsClose(t, expectedShifted, shifted, 0.001)

	absolute := run(0, 0)
	expectedAbsolute := [][2]float64{
		{432216.75, 7118891.604},
		{432216.6151388889, 7118890.633},
	}
	assertPointsClose(t, expectedAbsolute, absolute, 0.001)
}
