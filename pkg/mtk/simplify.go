package mtk

import (
	"math"
)

// Simplify reduces a vertex chain with the Ramer–Douglas–Peucker
// algorithm. epsilon is the maximum allowed perpendicular deviation in map
// metres. Chains shorter than three points, or epsilon 0, are returned
// unchanged.
func Simplify(line [][2]float64, epsilon float64) [][2]float64 {
	if epsilon == 0 || len(line) < 3 {
		return line
	}

	maxDistance := 0.0
	maxIndex := 0
	last := len(line) - 1
	for i := 1; i < last; i++ {
		if d := PerpendicularDistance(line[i], line[0], line[last]); d > maxDistance {
			maxDistance = d
			maxIndex = i
		}
	}

	if maxDistance > epsilon {
		head := Simplify(line[:maxIndex+1], epsilon)
		tail := Simplify(line[maxIndex:], epsilon)
		out := make([][2]float64, 0, len(head)+len(tail)-1)
		out = append(out, head...)
		return append(out, tail[1:]...)
	}
	return [][2]float64{line[0], line[last]}
}

// PerpendicularDistance returns the distance from p to the line through
// start and end. Coincident endpoints degrade to the point distance.
func PerpendicularDistance(p, start, end [2]float64) float64 {
	if start == end {
		return math.Hypot(start[0]-p[0], start[1]-p[1])
	}

	dx := end[0] - start[0]
	dy := end[1] - start[1]
	d := math.Hypot(dx, dy)
	if d == 0 {
		return math.Inf(1)
	}

	return math.Abs(p[0]*dy-p[1]*dx+end[0]*start[1]-end[1]*start[0]) / d
}
