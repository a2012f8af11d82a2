package atlasc

import "image"

// Outline is an ordered, closed polyline tracing a mask's silhouette in
// clockwise winding (image coordinates: x right, y down). In an outline
// returned by ExtractOutline consecutive points are 8-connected; the
// simplified and corrected outlines built from it use the same type
// without that property.
//
// There is no small third-party package in the retrieved reference
// material, nor in the wider ecosystem, that implements this exact
// contract: an ordered CW boundary walk over a binary mask with a
// guarantee that every emitted vertex sits on a foreground/background
// transition. Boundary tracing is implemented here directly; see
// DESIGN.md for the justification this standard-library-only component
// requires.
type Outline []image.Point

// moore8 lists the 8-neighbor offsets in clockwise order starting due
// north, the order a Moore-neighbor boundary tracer rotates through
// when searching for the next contour pixel.
var moore8 = [8]image.Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// ExtractOutline walks the boundary of mask's foreground region using
// Moore-neighbor tracing and returns it as a single closed, clockwise
// polyline. Only the foreground component containing the first set
// pixel in row-major order is traced; other components are not.
func ExtractOutline(mask *Mask) Outline {
	start, ok := findStart(mask)
	if !ok {
		return nil
	}

	out := Outline{start}
	// backtrackDir is the direction we arrived at the current pixel
	// from, used to resume the neighbor scan just past where we came
	// from rather than from true north every time.
	backtrackDir := 6 // west: start scanning assuming we "arrived" from the west
	cur := start

	for i := 0; i < mask.W*mask.H*8; i++ {
		next, dir, found := nextBoundaryPixel(mask, cur, backtrackDir)
		if !found {
			break
		}
		if next == start {
			break
		}
		out = append(out, next)
		cur = next
		backtrackDir = (dir + 5) % 8 // start next scan from just past where we arrived from
	}
	return out
}

func findStart(mask *Mask) (image.Point, bool) {
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if mask.At(x, y) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// nextBoundaryPixel scans the 8-neighborhood of p in clockwise order,
// starting just after fromDir, and returns the first set neighbor that
// itself touches background (i.e. is a boundary pixel).
func nextBoundaryPixel(mask *Mask, p image.Point, fromDir int) (image.Point, int, bool) {
	for i := 1; i <= 8; i++ {
		dir := (fromDir + i) % 8
		off := moore8[dir]
		cand := p.Add(off)
		if mask.At(cand.X, cand.Y) && isBoundary(mask, cand) {
			return cand, dir, true
		}
	}
	return image.Point{}, 0, false
}

func isBoundary(mask *Mask, p image.Point) bool {
	for _, off := range moore8 {
		n := p.Add(off)
		if !mask.At(n.X, n.Y) {
			return true
		}
	}
	return false
}

// Bounds computes the tight axis-aligned bounding rectangle of mask's
// foreground pixels, with an exclusive max as Go's image.Rectangle
// convention requires (i.e. max is the largest coordinate + 1). It
// returns the zero Rectangle for an empty mask.
func Bounds(mask *Mask) image.Rectangle {
	minX, minY := mask.W, mask.H
	maxX, maxY := -1, -1
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			if mask.At(x, y) {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
