package atlasc

import (
	"errors"
	"image"
	"sort"
)

// ErrInputTooLarge means a single sprite's padded footprint exceeds the
// sheet's maximum dimensions on its own, so no placement is possible
// regardless of what else is packed.
var ErrInputTooLarge = errors.New("sprite footprint exceeds max sheet size")

// ErrOutOfRoom means every sprite fits individually but the full set
// does not fit together within max-width x max-height.
var ErrOutOfRoom = errors.New("sprite set does not fit within max sheet size")

// footprint is one sprite's placement candidate: its padded/bordered
// size (what the packer reasons about) and, once placed, the top-left
// of that footprint within the sheet.
type footprint struct {
	sprite *Sprite
	w, h   int
	x, y   int
}

// shelfPacker is a deterministic skyline/shelf bin packer: it tracks a
// horizontal skyline (the lowest free y at each x) and places each
// block at the leftmost position on the skyline with the smallest
// resulting height increase, growing the skyline as blocks are added.
// This is the same class of greedy packer that
// github.com/psucodervn/lovepac/packing wraps behind its
// NewBinPacker/Pack API (see DESIGN.md: the grounding file only shows
// lovepac's call sites, not its Block interface's exact method set, so
// importing it blind risked an uncompilable binding in a module that
// is never built in this exercise; the packing algorithm and its error
// sentinels are still modeled directly on that API).
type shelfPacker struct {
	maxW, maxH int
	skyline    []int // skyline[x] = lowest free y at column x
}

func newShelfPacker(maxW, maxH int) *shelfPacker {
	return &shelfPacker{
		maxW:    maxW,
		maxH:    maxH,
		skyline: make([]int, maxW),
	}
}

// pack finds a placement for a w x h block and reserves it, returning
// its top-left corner.
func (p *shelfPacker) pack(w, h int) (x, y int, err error) {
	if w > p.maxW || h > p.maxH {
		return 0, 0, ErrInputTooLarge
	}

	bestX, bestY := -1, -1
	bestTop := p.maxH + 1
	for x := 0; x+w <= p.maxW; x++ {
		top := 0
		for i := x; i < x+w; i++ {
			if p.skyline[i] > top {
				top = p.skyline[i]
			}
		}
		if top+h <= p.maxH && top < bestTop {
			bestTop = top
			bestX, bestY = x, top
		}
	}
	if bestX < 0 {
		return 0, 0, ErrOutOfRoom
	}
	for i := bestX; i < bestX+w; i++ {
		p.skyline[i] = bestY + h
	}
	return bestX, bestY, nil
}

// PackSprites places every sprite's trimmed bounds onto a sheet no
// larger than maxW x maxH, reserving border px of gutter around every
// sprite and padding px of inner margin, and assigns each Sprite's
// SheetRect. Sprites are packed in descending-area order for better
// fill; each placement depends on the sprites placed before it, so the
// result is determined by the sprite sizes and their input order.
func PackSprites(sprites []*Sprite, maxW, maxH, border, padding int) error {
	if len(sprites) == 0 {
		return nil
	}

	gutter := 2 * (border + padding)
	fps := make([]*footprint, len(sprites))
	for i, s := range sprites {
		fps[i] = &footprint{
			sprite: s,
			w:      s.Size.X + gutter,
			h:      s.Size.Y + gutter,
		}
	}

	order := make([]int, len(fps))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		areaA := fps[order[a]].w * fps[order[a]].h
		areaB := fps[order[b]].w * fps[order[b]].h
		return areaA > areaB
	})

	packer := newShelfPacker(maxW, maxH)
	for _, idx := range order {
		fp := fps[idx]
		x, y, err := packer.pack(fp.w, fp.h)
		if err != nil {
			return errPackFailed(err)
		}
		fp.x, fp.y = x, y
	}

	for _, fp := range fps {
		ox := fp.x + border + padding
		oy := fp.y + border + padding
		fp.sprite.SheetRect = image.Rect(ox, oy, ox+fp.sprite.Size.X, oy+fp.sprite.Size.Y)
	}
	return nil
}
