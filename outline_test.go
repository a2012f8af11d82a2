package atlasc

import (
	"image"
	"testing"
)

func squareMask(size int) *Mask {
	m := &Mask{W: size + 2, H: size + 2, Pix: make([]byte, (size+2)*(size+2))}
	for y := 1; y <= size; y++ {
		for x := 1; x <= size; x++ {
			m.set(x, y)
		}
	}
	return m
}

func TestExtractOutlineSquare(t *testing.T) {
	m := squareMask(4)
	out := ExtractOutline(m)
	if len(out) == 0 {
		t.Fatalf("expected a non-empty outline")
	}
	for _, p := range out {
		if !isBoundary(m, p) {
			t.Fatalf("outline point %v is not a boundary pixel", p)
		}
		if !m.At(p.X, p.Y) {
			t.Fatalf("outline point %v is not foreground", p)
		}
	}
}

func TestExtractOutlineEmptyMask(t *testing.T) {
	m := &Mask{W: 4, H: 4, Pix: make([]byte, 16)}
	if out := ExtractOutline(m); out != nil {
		t.Fatalf("expected nil outline for an empty mask, got %v", out)
	}
}

func TestBounds(t *testing.T) {
	m := &Mask{W: 5, H: 6, Pix: make([]byte, 30)}
	m.set(1, 1)
	m.set(3, 1)
	m.set(3, 4)
	m.set(1, 4)

	r := Bounds(m)
	want := image.Rect(1, 1, 4, 5)
	if r != want {
		t.Fatalf("Bounds() = %v, want %v", r, want)
	}
}

func TestBoundsEmpty(t *testing.T) {
	m := &Mask{W: 4, H: 4, Pix: make([]byte, 16)}
	if r := Bounds(m); r != (image.Rectangle{}) {
		t.Fatalf("Bounds() on an empty mask = %v, want zero rectangle", r)
	}
}
