package atlasc

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"time"
)

// maxDecodedPixels guards against absurdly large inputs. Go's allocator
// has no recoverable "out of memory" signal the way a C allocator does,
// so OutOfMemory is only raised synthetically when a decoded sprite
// trips this guard (see DESIGN.md).
const maxDecodedPixels = 64 * 1024 * 1024 // 64 megapixels

// Builder owns a single atlas build end to end: it is the sole place
// that allocates and releases every intermediate buffer, and it never
// leaves a partially built sheet behind on failure.
type Builder struct {
	Inputs         []string
	MaxWidth       int
	MaxHeight      int
	Border         int
	Padding        int
	POT            bool
	Mesh           bool
	MaxVerts       int
	AlphaThreshold int
}

// Build runs the full sprite-mesh and atlas-layout pipeline over
// b.Inputs and returns the finished, in-memory Atlas. It never writes
// anything to disk; see WriteAtlas for that.
func (b *Builder) Build() (*Atlas, error) {
	start := time.Now()

	if len(b.Inputs) == 0 {
		return nil, errNotFound("", nil)
	}
	maxVerts := b.MaxVerts
	if maxVerts < 3 {
		maxVerts = 3
	}

	sprites := make([]*Sprite, len(b.Inputs))
	for i, path := range b.Inputs {
		s, err := b.buildSprite(path, maxVerts)
		if err != nil {
			return nil, err
		}
		sprites[i] = s
	}

	if err := PackSprites(sprites, b.MaxWidth, b.MaxHeight, b.Border, b.Padding); err != nil {
		return nil, err
	}

	w, h := SizeCanvas(sprites, b.Border, b.Padding, b.POT)
	sheet := image.NewNRGBA(image.Rect(0, 0, w, h))

	for _, s := range sprites {
		if s.pix != nil {
			Composite(sheet, s, s.pix)
			s.pix = nil
		}
		if s.Mesh != nil {
			ResolveMesh(s.Mesh, s.SpriteRect, s.SheetRect)
		}
	}

	return &Atlas{
		Width:         w,
		Height:        h,
		Sprites:       sprites,
		Sheet:         sheet,
		BuildDuration: time.Since(start),
	}, nil
}

// buildSprite decodes one input and runs the trim/simplify/correct/
// triangulate stages, leaving SheetRect unset for PackSprites to fill
// in later.
func (b *Builder) buildSprite(path string, maxVerts int) (*Sprite, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, errNotFound(path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, errNotFound(path, nil)
	}

	src, err := decodeImg(path)
	if err != nil {
		return nil, err
	}
	if bnd := src.Bounds(); bnd.Dx()*bnd.Dy() > maxDecodedPixels {
		return nil, errOutOfMemory(path, nil)
	}

	sprite := &Sprite{
		Name:       normalizeName(path),
		SourcePath: path,
		pix:        src,
	}

	thresh := Threshold(src, b.AlphaThreshold)
	if thresh.Empty() {
		sprite.SpriteRect = image.Rect(0, 0, 0, 0)
		sprite.Size = image.Point{}
		return sprite, nil
	}

	sprite.SpriteRect = Bounds(thresh)
	sprite.Size = sprite.SpriteRect.Size()

	if b.Mesh {
		dilated := thresh.Dilate()
		outline := ExtractOutline(dilated)
		simplified := Simplify(outline, maxVerts)
		corrected := Correct(simplified, thresh)

		positions, indices, err := Triangulate(corrected)
		if err == nil && len(indices) > 0 {
			// positions are already in source image space (the same
			// space the threshold mask and SpriteRect are expressed
			// in); ResolveMesh derives the sprite-local offset itself.
			sprite.Mesh = &Mesh{
				Positions: positions,
				Indices:   indices,
			}
		}
	}

	return sprite, nil
}

// normalizeName turns a filesystem path into the manifest's sprite name.
func normalizeName(path string) string {
	return filepath.ToSlash(path)
}

// WriteAtlas writes atlas's manifest and sheet to disk: the manifest at
// outPath exactly, and the PNG alongside it using the same basename
// with a .png extension, per the output contract. Both buffers are
// fully prepared in memory before anything touches disk; if writing
// the manifest fails after the PNG has already landed, the PNG is
// removed so a failed build never leaves a usable-looking atlas behind.
func WriteAtlas(atlas *Atlas, outPath string) error {
	pngPath := outPath[:len(outPath)-len(filepath.Ext(outPath))] + ".png"

	var buf bytes.Buffer
	if err := encodePNG(&buf, atlas.Sheet); err != nil {
		return errWriteFailed(pngPath, err)
	}
	manifestBytes := BuildManifest(atlas, filepath.Base(pngPath))

	if err := os.WriteFile(pngPath, buf.Bytes(), 0o644); err != nil {
		return errWriteFailed(pngPath, err)
	}
	if err := os.WriteFile(outPath, manifestBytes, 0o644); err != nil {
		os.Remove(pngPath)
		return errWriteFailed(outPath, err)
	}
	return nil
}
