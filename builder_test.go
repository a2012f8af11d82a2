package atlasc

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestSprite writes a w x h PNG with an opaque (w-2)x(h-2)
// rectangle centered in an otherwise transparent canvas, so every sprite
// has a real, non-trivial silhouette to trim and mesh.
func writeTestSprite(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create sprite file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode sprite: %v", err)
	}
	return path
}

func TestBuilderBuildTrimsAndPacks(t *testing.T) {
	dir := t.TempDir()
	hero := writeTestSprite(t, dir, "hero.png", 16, 16)
	coin := writeTestSprite(t, dir, "coin.png", 8, 8)

	b := &Builder{
		Inputs:         []string{hero, coin},
		MaxWidth:       256,
		MaxHeight:      256,
		Border:         2,
		Padding:        1,
		AlphaThreshold: 20,
		Mesh:           true,
		MaxVerts:       16,
	}

	atlas, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(atlas.Sprites) != 2 {
		t.Fatalf("expected 2 sprites, got %d", len(atlas.Sprites))
	}
	for _, s := range atlas.Sprites {
		if s.SpriteRect.Empty() {
			t.Fatalf("sprite %q trimmed to an empty rect", s.Name)
		}
		if s.SheetRect.Size() != s.SpriteRect.Size() {
			t.Fatalf("sprite %q: SheetRect size %v != SpriteRect size %v", s.Name, s.SheetRect.Size(), s.SpriteRect.Size())
		}
		if s.Mesh != nil {
			if len(s.Mesh.UVs) != len(s.Mesh.Positions) {
				t.Fatalf("sprite %q: mesh UVs/Positions length mismatch", s.Name)
			}
		}
	}
	if atlas.Width == 0 || atlas.Height == 0 {
		t.Fatalf("expected a non-zero sheet size, got %dx%d", atlas.Width, atlas.Height)
	}
}

func TestBuilderBuildFullyTransparentSprite(t *testing.T) {
	dir := t.TempDir()
	blank := filepath.Join(dir, "blank.png")
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	f, err := os.Create(blank)
	if err != nil {
		t.Fatalf("create blank sprite: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode blank sprite: %v", err)
	}
	f.Close()

	b := &Builder{
		Inputs:         []string{blank},
		MaxWidth:       64,
		MaxHeight:      64,
		AlphaThreshold: 20,
	}
	atlas, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(atlas.Sprites) != 1 {
		t.Fatalf("expected 1 sprite, got %d", len(atlas.Sprites))
	}
	if atlas.Sprites[0].Size != (image.Point{}) {
		t.Fatalf("fully transparent sprite should have a zero Size, got %v", atlas.Sprites[0].Size)
	}
}

func TestBuilderBuildMissingInput(t *testing.T) {
	b := &Builder{Inputs: []string{"/no/such/file.png"}, MaxWidth: 64, MaxHeight: 64}
	_, err := b.Build()
	if err == nil {
		t.Fatalf("expected an error for a missing input file")
	}
	var ae *Error
	if !asError(err, &ae) {
		t.Fatalf("expected an *Error, got %T: %v", err, err)
	}
	if ae.Kind != InputNotFound {
		t.Fatalf("Kind = %v, want InputNotFound", ae.Kind)
	}
}

func TestBuilderNoInputs(t *testing.T) {
	b := &Builder{MaxWidth: 64, MaxHeight: 64}
	if _, err := b.Build(); err == nil {
		t.Fatalf("expected an error when no inputs are given")
	}
}

func TestWriteAtlasWritesPNGAndManifest(t *testing.T) {
	dir := t.TempDir()
	hero := writeTestSprite(t, dir, "hero.png", 16, 16)

	b := &Builder{Inputs: []string{hero}, MaxWidth: 64, MaxHeight: 64, AlphaThreshold: 20}
	atlas, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	manifestPath := filepath.Join(dir, "out.json")
	if err := WriteAtlas(atlas, manifestPath); err != nil {
		t.Fatalf("WriteAtlas() error = %v", err)
	}

	pngPath := filepath.Join(dir, "out.png")
	if _, err := os.Stat(pngPath); err != nil {
		t.Fatalf("expected a sheet PNG at %s: %v", pngPath, err)
	}

	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if decoded["image"] != "out.png" {
		t.Fatalf("manifest image field = %v, want out.png", decoded["image"])
	}
}

func asError(err error, target **Error) bool {
	if ae, ok := err.(*Error); ok {
		*target = ae
		return true
	}
	return false
}
