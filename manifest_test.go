package atlasc

import (
	"encoding/json"
	"image"
	"testing"
)

func TestBuildManifestShape(t *testing.T) {
	atlas := &Atlas{
		Width:  64,
		Height: 64,
		Sprites: []*Sprite{
			{
				Name:       "hero.png",
				Size:       image.Pt(16, 16),
				SpriteRect: image.Rect(0, 0, 16, 16),
				SheetRect:  image.Rect(2, 2, 18, 18),
			},
			{
				Name:       "coin.png",
				Size:       image.Pt(8, 8),
				SpriteRect: image.Rect(0, 0, 8, 8),
				SheetRect:  image.Rect(20, 2, 28, 10),
				Mesh: &Mesh{
					NumTris:     1,
					NumVertices: 3,
					Indices:     []uint16{0, 1, 2},
					Positions:   []image.Point{{0, 0}, {8, 0}, {0, 8}},
					UVs:         []image.Point{{20, 2}, {28, 2}, {20, 10}},
				},
			},
		},
	}

	raw := BuildManifest(atlas, "atlas.png")

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("BuildManifest produced invalid JSON: %v", err)
	}

	if decoded["image"] != "atlas.png" {
		t.Fatalf("image field = %v, want atlas.png", decoded["image"])
	}
	sprites, ok := decoded["sprites"].([]interface{})
	if !ok || len(sprites) != 2 {
		t.Fatalf("sprites field = %v, want a 2-element array", decoded["sprites"])
	}

	first := sprites[0].(map[string]interface{})
	if _, hasMesh := first["mesh"]; hasMesh {
		t.Fatalf("sprite without a mesh should omit the mesh field")
	}

	second := sprites[1].(map[string]interface{})
	mesh, hasMesh := second["mesh"].(map[string]interface{})
	if !hasMesh {
		t.Fatalf("sprite with a mesh should include the mesh field")
	}

	positions, ok := mesh["positions"].([]interface{})
	if !ok || len(positions) != 3 {
		t.Fatalf("positions = %v, want a 3-element array of pairs", mesh["positions"])
	}
	pair, ok := positions[0].([]interface{})
	if !ok || len(pair) != 2 {
		t.Fatalf("positions[0] = %v, want a 2-element [x, y] pair", positions[0])
	}

	indices, ok := mesh["indices"].([]interface{})
	if !ok || len(indices) != 3 {
		t.Fatalf("indices = %v, want a flat 3-element array", mesh["indices"])
	}
	if _, ok := indices[0].(float64); !ok {
		t.Fatalf("indices[0] = %v, want a flat scalar, not a pair", indices[0])
	}
}

func TestBuildManifestOmitsZeroTriMesh(t *testing.T) {
	atlas := &Atlas{
		Sprites: []*Sprite{
			{
				Name:       "flat.png",
				SpriteRect: image.Rect(0, 0, 4, 4),
				SheetRect:  image.Rect(0, 0, 4, 4),
				Mesh:       &Mesh{NumTris: 0},
			},
		},
	}
	raw := BuildManifest(atlas, "atlas.png")

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	sprite := decoded["sprites"].([]interface{})[0].(map[string]interface{})
	if _, hasMesh := sprite["mesh"]; hasMesh {
		t.Fatalf("a mesh with num_tris=0 must not appear in the manifest")
	}
}
