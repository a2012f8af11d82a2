package atlasc

import (
	"image"

	"github.com/esimov/atlasc/imop"
)

// Composite blits src's SpriteRect region into sheet at sprite's
// SheetRect, using the Porter-Duff source-over operation from imop so
// that a sprite with partially transparent edge pixels blends correctly
// into the zero-initialized (fully transparent) sheet rather than
// simply overwriting it.
func Composite(sheet *image.NRGBA, sprite *Sprite, src *image.NRGBA) {
	dstRect := sprite.SheetRect
	w, h := dstRect.Dx(), dstRect.Dy()
	if w == 0 || h == 0 {
		return
	}

	srcCrop := cropToOrigin(src, sprite.SpriteRect)
	dstCrop := cropToOrigin(sheet, dstRect)

	op := imop.InitOp()
	op.Set(imop.SrcOver)

	bitmap := imop.NewBitmap(image.Rect(0, 0, w, h))
	op.Draw(bitmap, srcCrop, dstCrop, nil)

	blitInto(sheet, bitmap.Img, dstRect.Min)
}

// cropToOrigin copies img's pixels within rect into a new, zero-origin
// NRGBA buffer, since imop.Draw indexes its source/destination images
// starting at (0, 0) rather than at their Bounds().Min.
func cropToOrigin(img *image.NRGBA, rect image.Rectangle) *image.NRGBA {
	w, h := rect.Dx(), rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(rect.Min.X, rect.Min.Y+y)
		dstOff := out.PixOffset(0, y)
		copy(out.Pix[dstOff:dstOff+w*4], img.Pix[srcOff:srcOff+w*4])
	}
	return out
}

// blitInto copies every pixel of src into dst starting at pos,
// overwriting whatever was there (used to land a composited region
// back into the sheet after imop.Draw produced it in a fresh bitmap).
func blitInto(dst *image.NRGBA, src *image.NRGBA, pos image.Point) {
	b := src.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		srcOff := src.PixOffset(0, y)
		dstOff := dst.PixOffset(pos.X, pos.Y+y)
		copy(dst.Pix[dstOff:dstOff+w*4], src.Pix[srcOff:srcOff+w*4])
	}
}
