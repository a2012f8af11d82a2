package atlasc

import (
	"image"
	"math"
)

// Vec2 is a float64 2D point, used throughout the geometry stages that
// need sub-pixel precision (simplification distances, normal vectors).
type Vec2 struct {
	X, Y float64
}

func vec(p image.Point) Vec2 { return Vec2{float64(p.X), float64(p.Y)} }

func (a Vec2) sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) length() float64 {
	return math.Hypot(a.X, a.Y)
}

// Simplify reduces outline to at most maxVerts points using a
// Douglas-Peucker-style perpendicular-distance simplification, widening
// the epsilon and retrying until the vertex budget is met. Epsilon
// starts at 0.5 and grows by 0.5 each retry; at least one simplification
// pass always runs, even if the outline is already within budget, so the
// result is always a fresh slice with consecutive duplicate points
// removed.
func Simplify(outline Outline, maxVerts int) Outline {
	if maxVerts < 3 {
		maxVerts = 3
	}
	if len(outline) <= 2 {
		return dedupeConsecutive(outline)
	}

	eps := 0.5
	var simplified Outline
	for {
		simplified = dedupeConsecutive(rdp(outline, eps))
		if len(simplified) <= maxVerts || eps > 1<<20 {
			return simplified
		}
		eps += 0.5
	}
}

// rdp runs the Ramer-Douglas-Peucker algorithm over a closed polyline by
// splitting it at its first point and the point farthest from that one,
// and simplifying each open
// half independently, then stitching the results back into one ring.
func rdp(pts Outline, eps float64) Outline {
	if len(pts) < 3 {
		return append(Outline{}, pts...)
	}

	// Pick a pair of anchor points to split the ring into two open
	// chains; the first and an approximate farthest point work well
	// enough for a closed contour that has no designated start/end.
	a, b := 0, farthest(pts, 0)
	if a == b {
		b = (a + 1) % len(pts)
	}

	chain1 := ringSlice(pts, a, b)
	chain2 := ringSlice(pts, b, a)

	s1 := rdpOpen(chain1, eps)
	s2 := rdpOpen(chain2, eps)

	// s1 ends where s2 begins and vice versa; drop the duplicated
	// joints when stitching.
	out := make(Outline, 0, len(s1)+len(s2))
	out = append(out, s1...)
	if len(s2) > 1 {
		out = append(out, s2[1:len(s2)-1]...)
	}
	return out
}

func ringSlice(pts Outline, from, to int) Outline {
	n := len(pts)
	var out Outline
	for i := from; ; i = (i + 1) % n {
		out = append(out, pts[i])
		if i == to {
			break
		}
	}
	return out
}

func farthest(pts Outline, from int) int {
	best := from
	bestDist := -1.0
	p := vec(pts[from])
	for i, q := range pts {
		d := p.sub(vec(q)).length()
		if d > bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// rdpOpen is the classic Douglas-Peucker reduction over an open chain.
func rdpOpen(pts Outline, eps float64) Outline {
	if len(pts) < 3 {
		return append(Outline{}, pts...)
	}
	first, last := vec(pts[0]), vec(pts[len(pts)-1])

	maxDist := -1.0
	maxIdx := 0
	for i := 1; i < len(pts)-1; i++ {
		d := perpDistance(vec(pts[i]), first, last)
		if d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist <= eps {
		return Outline{pts[0], pts[len(pts)-1]}
	}

	left := rdpOpen(pts[:maxIdx+1], eps)
	right := rdpOpen(pts[maxIdx:], eps)
	out := make(Outline, 0, len(left)+len(right)-1)
	out = append(out, left...)
	out = append(out, right[1:]...)
	return out
}

// perpDistance is the distance from p to the infinite line through a-b,
// falling back to the distance to a when a and b coincide.
func perpDistance(p, a, b Vec2) float64 {
	ab := b.sub(a)
	abLen := ab.length()
	if abLen == 0 {
		return p.sub(a).length()
	}
	// |cross(ab, ap)| / |ab|
	ap := p.sub(a)
	cross := ab.X*ap.Y - ab.Y*ap.X
	return math.Abs(cross) / abLen
}

func dedupeConsecutive(pts Outline) Outline {
	if len(pts) == 0 {
		return pts
	}
	out := make(Outline, 0, len(pts))
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	return out
}
