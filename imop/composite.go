// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// Within atlasc it backs the sheet compositor (Composite in the root
// package), which blits each sprite into the sheet with SrcOver.
package imop

import (
	"image"
	"image/color"
	"math"

	"github.com/esimov/atlasc/utils"
)

const (
	Clear   = "clear"
	Dst     = "dst"
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds an image type as a placeholder for the Porter-Duff composition
// operations which can be used as a source or destination image.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite defines a struct with the active and all the supported composition operations.
type Composite struct {
	currentOp string
	ops       []string
}

// NewBitmap initializes a new Bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new composition operation.
func InitOp() *Composite {
	return &Composite{
		currentOp: SrcOver,
		ops: []string{
			Clear,
			Dst,
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set changes the current composition operation.
func (op *Composite) Set(cop string) {
	op.currentOp = cop
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.currentOp
}

// Draw applies the currently active Ported-Duff composition operation formula,
// taking as parameter the source and the destination image and draws the result into the bitmap.
// If a blend mode is activated it will plug in the alpha blending formula also into the equation.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA, blend *Blend) {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	if bitmap == nil {
		bitmap = NewBitmap(src.Bounds())
	}

	var (
		r, g, b, a     uint32
		rn, gn, bn, an float64
	)

	if utils.Contains(op.ops, op.currentOp) {
		for x := 0; x < dx; x++ {
			for y := 0; y < dy; y++ {
				r1, g1, b1, a1 := src.At(x, y).RGBA()
				r2, g2, b2, a2 := dst.At(x, y).RGBA()

				rs, gs, bs, as := r1>>8, g1>>8, b1>>8, a1>>8
				rb, gb, bb, ab := r2>>8, g2>>8, b2>>8, a2>>8

				rsn := float64(rs) / 255
				gsn := float64(gs) / 255
				bsn := float64(bs) / 255
				asn := float64(as) / 255

				rbn := float64(rb) / 255
				gbn := float64(gb) / 255
				bbn := float64(bb) / 255
				abn := float64(ab) / 255

				// applying the alpha composition formula
				switch op.currentOp {
				case Clear:
					rn, gn, bn, an = 0, 0, 0, 0
				case Dst:
					rn, gn, bn, an = rbn, gbn, bbn, abn
				case Copy:
					rn = asn * rsn
					gn = asn * gsn
					bn = asn * bsn
					an = asn
				case SrcOver:
					rn = asn*rsn + abn*rbn*(1-asn)
					gn = asn*gsn + abn*gbn*(1-asn)
					bn = asn*bsn + abn*bbn*(1-asn)
					an = asn + abn*(1-asn)
				case DstOver:
					rn = asn*rsn*(1-abn) + abn*rbn
					gn = asn*gsn*(1-abn) + abn*gbn
					bn = asn*bsn*(1-abn) + abn*bbn
					an = asn*(1-abn) + abn
				case SrcIn:
					rn = asn * rsn * abn
					gn = asn * gsn * abn
					bn = asn * bsn * abn
					an = asn * abn
				case DstIn:
					rn = abn * rbn * asn
					gn = abn * gbn * asn
					bn = abn * bbn * asn
					an = abn * asn
				case SrcOut:
					rn = asn * rsn * (1 - abn)
					gn = asn * gsn * (1 - abn)
					bn = asn * bsn * (1 - abn)
					an = asn * (1 - abn)
				case DstOut:
					rn = abn * rbn * (1 - asn)
					gn = abn * gbn * (1 - asn)
					bn = abn * bbn * (1 - asn)
					an = abn * (1 - asn)
				case SrcAtop:
					rn = asn*rsn*abn + (1-asn)*abn*rbn
					gn = asn*gsn*abn + (1-asn)*abn*gbn
					bn = asn*bsn*abn + (1-asn)*abn*bbn
					an = asn*abn + abn*(1-asn)
				case DstAtop:
					rn = asn*rsn*(1-abn) + abn*rbn*asn
					gn = asn*gsn*(1-abn) + abn*gbn*asn
					bn = asn*bsn*(1-abn) + abn*bbn*asn
					an = asn*(1-abn) + abn*asn
				case Xor:
					rn = asn*rsn*(1-abn) + abn*rbn*(1-asn)
					gn = asn*gsn*(1-abn) + abn*gbn*(1-asn)
					bn = asn*bsn*(1-abn) + abn*bbn*(1-asn)
					an = asn*(1-abn) + abn*(1-asn)
				}

				r = uint32(rn * 255)
				g = uint32(gn * 255)
				b = uint32(bn * 255)
				a = uint32(an * 255)

				bitmap.Img.Set(x, y, color.NRGBA{
					R: uint8(r),
					G: uint8(g),
					B: uint8(b),
					A: uint8(a),
				})

				// applying the blending mode
				if blend != nil {
					r1, g1, b1, a1 = bitmap.Img.At(x, y).RGBA()
					r2, g2, b2, a2 = dst.At(x, y).RGBA()

					rs, gs, bs, as = r1>>8, g1>>8, b1>>8, a1>>8
					rb, gb, bb, ab = r2>>8, g2>>8, b2>>8, a2>>8

					rsn = float64(rs) / 255
					gsn = float64(gs) / 255
					bsn = float64(bs) / 255
					asn = float64(as) / 255
					rbn = float64(rb) / 255
					gbn = float64(gb) / 255
					bbn = float64(bb) / 255
					abn = float64(ab) / 255

					switch blend.Current {
					case Darken:
						rn = utils.Min(rsn, rbn)
						gn = utils.Min(gsn, gbn)
						bn = utils.Min(bsn, bbn)
						an = utils.Min(asn, abn)
					case Lighten:
						rn = utils.Max(rsn, rbn)
						gn = utils.Max(gsn, gbn)
						bn = utils.Max(bsn, bbn)
						an = utils.Max(asn, abn)
					case Screen:
						rn = 1 - (1-rsn)*(1-rbn)
						gn = 1 - (1-gsn)*(1-gbn)
						bn = 1 - (1-bsn)*(1-bbn)
						an = 1 - (1-asn)*(1-abn)
					case Multiply:
						rn = rsn * rbn
						gn = gsn * gbn
						bn = bsn * bbn
						an = asn * abn
					case Overlay:
						if rsn <= 0.5 {
							rn = 2 * rsn * rbn
						} else {
							rn = 1 - 2*(1-rsn)*(1-rbn)
						}
						if gsn <= 0.5 {
							gn = 2 * gsn * gbn
						} else {
							gn = 1 - 2*(1-gsn)*(1-gbn)
						}
						if bsn <= 0.5 {
							bn = 2 * bsn * bbn
						} else {
							bn = 1 - 2*(1-bsn)*(1-bbn)
						}
						if asn <= 0.5 {
							an = 2 * asn * abn
						} else {
							an = 1 - 2*(1-asn)*(1-abn)
						}
					case SoftLight:
						rn = softLight(rbn, rsn)
						gn = softLight(gbn, gsn)
						bn = softLight(bbn, bsn)
						an = 1 - (1-asn)*(1-abn)
					case HardLight:
						rn = hardLight(rbn, rsn)
						gn = hardLight(gbn, gsn)
						bn = hardLight(bbn, bsn)
						an = 1 - (1-asn)*(1-abn)
					case ColorDodge:
						rn = colorDodge(rbn, rsn)
						gn = colorDodge(gbn, gsn)
						bn = colorDodge(bbn, bsn)
						an = 1 - (1-asn)*(1-abn)
					case ColorBurn:
						rn = colorBurn(rbn, rsn)
						gn = colorBurn(gbn, gsn)
						bn = colorBurn(bbn, bsn)
						an = 1 - (1-asn)*(1-abn)
					case Difference:
						rn = utils.Abs(rbn - rsn)
						gn = utils.Abs(gbn - gsn)
						bn = utils.Abs(bbn - bsn)
						an = 1 - (1-asn)*(1-abn)
					case Exclusion:
						rn = rbn + rsn - 2*rbn*rsn
						gn = gbn + gsn - 2*gbn*gsn
						bn = bbn + bsn - 2*bbn*bsn
						an = 1 - (1-asn)*(1-abn)
					case Hue:
						out := blend.SetLum(blend.SetSat(Color{rsn, gsn, bsn}, blend.Sat(Color{rbn, gbn, bbn})), blend.Lum(Color{rbn, gbn, bbn}))
						rn, gn, bn = out.R, out.G, out.B
						an = 1 - (1-asn)*(1-abn)
					case Saturation:
						out := blend.SetLum(blend.SetSat(Color{rbn, gbn, bbn}, blend.Sat(Color{rsn, gsn, bsn})), blend.Lum(Color{rbn, gbn, bbn}))
						rn, gn, bn = out.R, out.G, out.B
						an = 1 - (1-asn)*(1-abn)
					case ColorMode:
						out := blend.SetLum(Color{rsn, gsn, bsn}, blend.Lum(Color{rbn, gbn, bbn}))
						rn, gn, bn = out.R, out.G, out.B
						an = 1 - (1-asn)*(1-abn)
					case Luminosity:
						out := blend.SetLum(Color{rbn, gbn, bbn}, blend.Lum(Color{rsn, gsn, bsn}))
						rn, gn, bn = out.R, out.G, out.B
						an = 1 - (1-asn)*(1-abn)
					}
				}

				r = uint32(rn * 255)
				g = uint32(gn * 255)
				b = uint32(bn * 255)
				a = uint32(an * 255)

				bitmap.Img.Set(x, y, color.NRGBA{
					R: uint8(r),
					G: uint8(g),
					B: uint8(b),
					A: uint8(a),
				})
			}
		}
	}
}

// softLight implements the W3C compositing-1 soft-light formula.
// See: https://www.w3.org/TR/compositing-1/#blendingsoftlight
func softLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	return cb + (2*cs-1)*(softLightD(cb)-cb)
}

func softLightD(cb float64) float64 {
	if cb <= 0.25 {
		return ((16*cb-12)*cb + 4) * cb
	}
	return math.Sqrt(cb)
}

// hardLight implements the W3C compositing-1 hard-light formula.
func hardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return 2 * cb * cs
	}
	return 1 - 2*(1-cb)*(1-cs)
}

// colorDodge implements the W3C compositing-1 color-dodge formula.
func colorDodge(cb, cs float64) float64 {
	if cb == 0 {
		return 0
	}
	if cs == 1 {
		return 1
	}
	return utils.Min(1, cb/(1-cs))
}

// colorBurn implements the W3C compositing-1 color-burn formula.
func colorBurn(cb, cs float64) float64 {
	if cb == 1 {
		return 1
	}
	if cs == 0 {
		return 0
	}
	return 1 - utils.Min(1, (1-cb)/cs)
}
