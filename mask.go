package atlasc

import "image"

// Mask is a binary occupancy grid over an image's pixels, row-major,
// one byte per pixel (0 or 1). It backs both the thresholded silhouette
// used for outline correction and the dilated silhouette used for
// contour extraction.
type Mask struct {
	W, H int
	Pix  []byte
}

// At reports whether (x, y) is set. Out-of-bounds coordinates are
// always unset, which lets callers probe neighbors near the border
// without special-casing edges.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Pix[y*m.W+x] != 0
}

func (m *Mask) set(x, y int) {
	m.Pix[y*m.W+x] = 1
}

// Threshold builds the binary mask of img's alpha channel: a pixel is
// set when its alpha is >= threshold. This is the mask used later by
// the outline corrector, which must test against the un-dilated
// silhouette.
func Threshold(img *image.NRGBA, threshold int) *Mask {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	m := &Mask{W: w, H: h, Pix: make([]byte, w*h)}

	t := uint8(threshold)
	for y := 0; y < h; y++ {
		row := img.Pix[(y)*img.Stride : (y)*img.Stride+w*4]
		for x := 0; x < w; x++ {
			a := row[x*4+3]
			if a >= t {
				m.set(x, y)
			}
		}
	}
	return m
}

// Dilate returns a new mask grown by one pass of 3x3 dilation: a pixel
// is set in the result if it or any of its 8 neighbors is set in m.
func (m *Mask) Dilate() *Mask {
	out := &Mask{W: m.W, H: m.H, Pix: make([]byte, m.W*m.H)}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.anySet(x, y) {
				out.set(x, y)
			}
		}
	}
	return out
}

func (m *Mask) anySet(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if m.At(x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}

// Empty reports whether no pixel in the mask is set, i.e. the source
// image was fully transparent under the configured threshold.
func (m *Mask) Empty() bool {
	for _, p := range m.Pix {
		if p != 0 {
			return false
		}
	}
	return true
}
