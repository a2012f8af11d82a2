package atlasc

// SizeCanvas computes the sheet's final pixel dimensions from the union
// of every sprite's packed footprint (its SheetRect expanded back out
// by border+padding on every side, the same inflation PackSprites used
// to reserve room for it). The result is always a multiple of 4 pixels
// per side; when pot is set it is additionally rounded up to the next
// power of two.
func SizeCanvas(sprites []*Sprite, border, padding int, pot bool) (w, h int) {
	gutter := border + padding
	for _, s := range sprites {
		if s.SheetRect.Max.X+gutter > w {
			w = s.SheetRect.Max.X + gutter
		}
		if s.SheetRect.Max.Y+gutter > h {
			h = s.SheetRect.Max.Y + gutter
		}
	}

	w = align4(w)
	h = align4(h)

	if pot {
		w = nextPowerOfTwo(w)
		h = nextPowerOfTwo(h)
	}
	return w, h
}

// align4 rounds x up to the nearest multiple of 4.
func align4(x int) int {
	return (x + 3) &^ 3
}

// nextPowerOfTwo returns the smallest power of two >= x (1 for x <= 1).
func nextPowerOfTwo(x int) int {
	if x <= 1 {
		return 1
	}
	p := 1
	for p < x {
		p <<= 1
	}
	return p
}
