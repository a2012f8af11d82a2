package atlasc

import (
	"image"
	"math"
)

// correctionStep is the fixed per-sweep outward offset distance applied
// to a vertex when the edge it anchors cuts through foreground pixels of
// the mask.
const correctionStep = 2.0

// perpendicular rotates v a quarter turn: perpendicular(x, y) = (-y, x).
func perpendicular(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

func (a Vec2) add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

func (a Vec2) normalize() Vec2 {
	l := a.length()
	if l == 0 {
		return a
	}
	return Vec2{a.X / l, a.Y / l}
}

func (a Vec2) round() image.Point {
	return image.Pt(int(math.Round(a.X)), int(math.Round(a.Y)))
}

// Correct nudges each vertex of a simplified outline outward so that its
// adjoining edges no longer cut through foreground pixels the
// simplification pass trimmed away. For each edge it walks the pixels
// between its two endpoints with a Bresenham line; if any of them is
// foreground in the un-dilated threshold mask, both endpoints are
// offset one step outward along their vertex normal. Each edge gets a
// single sweep: the correction is not retried until the edge is clean,
// matching how the packer and manifest downstream tolerate a mesh that
// still slightly undershoots the silhouette.
func Correct(pts Outline, mask *Mask) Outline {
	n := len(pts)
	if n < 3 {
		return append(Outline{}, pts...)
	}

	out := make([]Vec2, n)
	for i, p := range pts {
		out[i] = vec(p)
	}

	normals := make([]Vec2, n)
	for i := range out {
		prev := out[(i-1+n)%n]
		cur := out[i]
		next := out[(i+1)%n]
		normals[i] = vertexNormal(prev, cur, next)
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if edgeCrossesForeground(out[i], out[j], mask) {
			out[i] = clampToBounds(out[i].add(normals[i].scale(correctionStep)), mask)
			out[j] = clampToBounds(out[j].add(normals[j].scale(correctionStep)), mask)
		}
	}

	result := make(Outline, n)
	for i, v := range out {
		result[i] = v.round()
	}
	return dedupeConsecutive(result)
}

// vertexNormal averages the outward perpendicular of the two edges
// meeting at cur. When the outline doubles back on itself at cur (next
// lies back along the incoming edge) the average degenerates to zero
// length, so it falls back to the incoming edge's perpendicular alone.
func vertexNormal(prev, cur, next Vec2) Vec2 {
	e1 := prev.sub(cur)
	e2 := cur.sub(next)

	n1 := perpendicular(e1).normalize()
	n2 := perpendicular(e2).normalize()

	avg := n1.add(n2)
	if avg.length() < 1e-9 {
		return n1
	}
	return avg.normalize()
}

// edgeCrossesForeground reports whether any pixel on the Bresenham line
// between a and b is set in mask.
func edgeCrossesForeground(a, b Vec2, mask *Mask) bool {
	for _, p := range bresenham(a.round(), b.round()) {
		if mask.At(p.X, p.Y) {
			return true
		}
	}
	return false
}

// bresenham returns every integer pixel on the line from p0 to p1,
// inclusive, using the standard integer Bresenham algorithm.
func bresenham(p0, p1 image.Point) []image.Point {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	var pts []image.Point
	x, y := x0, y0
	for {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return pts
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clampToBounds(v Vec2, mask *Mask) Vec2 {
	return Vec2{
		X: math.Min(math.Max(v.X, 0), float64(mask.W-1)),
		Y: math.Min(math.Max(v.Y, 0), float64(mask.H-1)),
	}
}
