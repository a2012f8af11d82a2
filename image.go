package atlasc

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/atlasc/utils"
)

// decodeImg decodes an input sprite file into an *image.NRGBA. Unlike
// the teacher's single-format decoder, atlasc never re-encodes a
// sprite in a different format, so it always normalizes straight to
// NRGBA regardless of the source encoding (PNG, JPEG, GIF, ...).
func decodeImg(src string) (*image.NRGBA, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, errNotFound(src, err)
	}
	defer file.Close()

	ctype, err := utils.DetectFileContentType(src)
	if err != nil {
		return nil, errDecodeFailed(src, err)
	}
	if !strings.Contains(ctype, "image") {
		return nil, errDecodeFailed(src, fmt.Errorf("not an image: %s", ctype))
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(false))
	if err != nil {
		return nil, errDecodeFailed(src, err)
	}
	return imgToNRGBA(img), nil
}

// encodePNG writes img to w as a PNG, per the manifest/output contract:
// the atlas build never emits JPEG or BMP, so unlike the teacher's
// format-switch encoder this always writes PNG regardless of the
// destination's extension. WriteAtlas calls this into an in-memory
// buffer so the sheet and manifest are both fully prepared before
// either touches disk.
func encodePNG(w io.Writer, img *image.NRGBA) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}
