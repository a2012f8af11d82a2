package atlasc

import (
	"image"
	"image/color"
	"testing"
)

func TestCompositeBlitsOpaquePixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			src.Set(x, y, color.NRGBA{R: 200, G: 0, B: 0, A: 255})
		}
	}

	sprite := &Sprite{
		SpriteRect: image.Rect(1, 1, 3, 3),
		SheetRect:  image.Rect(10, 10, 12, 12),
		Size:       image.Pt(2, 2),
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	Composite(sheet, sprite, src)

	got := sheet.NRGBAAt(10, 10)
	want := color.NRGBA{R: 200, G: 0, B: 0, A: 255}
	if got != want {
		t.Fatalf("sheet pixel at sprite origin = %v, want %v", got, want)
	}

	untouched := sheet.NRGBAAt(0, 0)
	if untouched.A != 0 {
		t.Fatalf("pixel outside the sprite's footprint should remain transparent, got %v", untouched)
	}
}

func TestCompositeSkipsZeroSizedSprite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	sprite := &Sprite{
		SpriteRect: image.Rectangle{},
		SheetRect:  image.Rectangle{},
		Size:       image.Point{},
	}
	sheet := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	Composite(sheet, sprite, src) // must not panic
}
