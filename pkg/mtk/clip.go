package mtk

// IntersectLines returns the intersection of the infinite lines through
// (c, d) and (a, b). ok is false when the lines are parallel.
func IntersectLines(c, d, a, b [2]float64) (p [2]float64, ok bool) {
	abDX := a[0] - b[0]
	cdDY := c[1] - d[1]
	abDY := a[1] - b[1]
	cdDX := c[0] - d[0]
	denominator := abDX*cdDY - abDY*cdDX
	if denominator == 0 {
		return [2]float64{}, false
	}

	abCross := a[0]*b[1] - a[1]*b[0]
	cdCross := c[0]*d[1] - c[1]*d[0]
	return [2]float64{
		(abCross*cdDX - abDX*cdCross) / denominator,
		(abCross*cdDY - abDY*cdCross) / denominator,
	}, true
}

// clipEdge is one window edge with its inside test. The inside tests are
// strict: points exactly on the window boundary are clipped to it.
type clipEdge struct {
	a, b   [2]float64
	inside func([2]float64) bool
}

func windowEdges(window Bounds) [4]clipEdge {
	top, right, bottom, left := window.North, window.East, window.South, window.West
	return [4]clipEdge{
		{[2]float64{left, top}, [2]float64{right, top}, func(p [2]float64) bool { return p[1] < top }},
		{[2]float64{right, top}, [2]float64{right, bottom}, func(p [2]float64) bool { return p[0] < right }},
		{[2]float64{left, bottom}, [2]float64{right, bottom}, func(p [2]float64) bool { return p[1] > bottom }},
		{[2]float64{left, top}, [2]float64{left, bottom}, func(p [2]float64) bool { return p[0] > left }},
	}
}

// ClipRing clips a polygon ring to the window with the Sutherland–Hodgman
// algorithm.
//
// Open input (first vertex != last) is treated as a closed ring for
// clipping and reopened afterwards. Returns nil when nothing of the ring
// lies inside the window.
func ClipRing(points [][2]float64, window Bounds) [][2]float64 {
	if len(points) == 0 {
		return nil
	}

	isPolyline := points[0] != points[len(points)-1]

	current := points
	if isPolyline {
		closed := make([][2]float64, 0, len(points)+1)
		closed = append(closed, points...)
		current = append(closed, points[0])
	}

	for _, edge := range windowEdges(window) {
		next := make([][2]float64, 0, len(current))
		for i, point := range current {
			previous := current[(i-1+len(current))%len(current)]

			// The crossing point is only consulted when the segment
			// straddles this edge, in which case the lines cannot be
			// parallel.
			crossing, _ := IntersectLines(previous, point, edge.a, edge.b)
			inside := edge.inside(point)
			previousInside := edge.inside(previous)

			if inside {
				if !previousInside {
					next = append(next, crossing)
				}
				next = append(next, point)
			} else if previousInside {
				next = append(next, crossing)
			}
		}
		current = next
		if len(current) == 0 {
			return nil
		}
	}

	if isPolyline {
		if current[0] == current[len(current)-1] {
			return current[:len(current)-1]
		}
		return current[1:]
	}
	return current
}

// Cohen–Sutherland region codes.
const (
	codeInside = 0
	codeLeft   = 1
	codeRight  = 2
	codeBottom = 4
	codeTop    = 8
)

func outCode(p [2]float64, w Bounds) int {
	code := codeInside
	if p[0] < w.West {
		code |= codeLeft
	} else if p[0] > w.East {
		code |= codeRight
	}
	if p[1] < w.South {
		code |= codeBottom
	} else if p[1] > w.North {
		code |= codeTop
	}
	return code
}

// ClipPolyline clips an open polyline to the window with Cohen–Sutherland
// segment clipping. Runs of the polyline outside the window are dropped;
// the result is the clipped vertex sequence with consecutive duplicates
// removed. Returns nil (or a short slice) when nothing lies inside.
func ClipPolyline(points [][2]float64, window Bounds) [][2]float64 {
	var out [][2]float64
	for i := 0; i+1 < len(points); i++ {
		a, b, visible := clipSegment(points[i], points[i+1], window)
		if !visible {
			continue
		}
		if len(out) == 0 || out[len(out)-1] != a {
			out = append(out, a)
		}
		if out[len(out)-1] != b {
			out = append(out, b)
		}
	}
	return out
}

// clipSegment clips one segment against the window, returning the clipped
// endpoints and whether any part of the segment is visible.
func clipSegment(a, b [2]float64, w Bounds) ([2]float64, [2]float64, bool) {
	codeA := outCode(a, w)
	codeB := outCode(b, w)

	for {
		if codeA|codeB == 0 {
			return a, b, true
		}
		if codeA&codeB != 0 {
			return a, b, false
		}

		code := codeA
		if code == codeInside {
			code = codeB
		}

		var p [2]float64
		switch {
		case code&codeTop != 0:
			p = [2]float64{a[0] + (b[0]-a[0])*(w.North-a[1])/(b[1]-a[1]), w.North}
		case code&codeBottom != 0:
			p = [2]float64{a[0] + (b[0]-a[0])*(w.South-a[1])/(b[1]-a[1]), w.South}
		case code&codeRight != 0:
			p = [2]float64{w.East, a[1] + (b[1]-a[1])*(w.East-a[0])/(b[0]-a[0])}
		default:
			p = [2]float64{w.West, a[1] + (b[1]-a[1])*(w.West-a[0])/(b[0]-a[0])}
		}

		if code == codeA {
			a = p
			codeA = outCode(a, w)
		} else {
			b = p
			codeB = outCode(b, w)
		}
	}
}
