package atlasc

import (
	"encoding/json"
	"image"
)

// manifestMesh mirrors Mesh for JSON emission. Indices is a flat
// triangle-index buffer, three per triangle; Positions and UVs are
// arrays of [x, y] pairs, one per vertex, per the manifest schema.
type manifestMesh struct {
	NumTris     int      `json:"num_tris"`
	NumVertices int      `json:"num_vertices"`
	Indices     []int    `json:"indices"`
	Positions   [][2]int `json:"positions"`
	UVs         [][2]int `json:"uvs"`
}

type manifestSprite struct {
	Name       string        `json:"name"`
	Size       [2]int        `json:"size"`
	SpriteRect [4]int        `json:"sprite_rect"`
	SheetRect  [4]int        `json:"sheet_rect"`
	Mesh       *manifestMesh `json:"mesh,omitempty"`
}

type manifest struct {
	Image       string           `json:"image"`
	ImageWidth  int              `json:"image_width"`
	ImageHeight int              `json:"image_height"`
	Sprites     []manifestSprite `json:"sprites"`
}

func rectToArray(r image.Rectangle) [4]int {
	return [4]int{r.Min.X, r.Min.Y, r.Max.X, r.Max.Y}
}

func pointPairs(pts []image.Point) [][2]int {
	out := make([][2]int, len(pts))
	for i, p := range pts {
		out[i] = [2]int{p.X, p.Y}
	}
	return out
}

func flattenIndices(idx []uint16) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = int(v)
	}
	return out
}

// BuildManifest assembles the JSON manifest for a finished atlas.
// imageName is the PNG's filename as referenced from the manifest's
// "image" field (see §6.2: the manifest sits at the -o path, the PNG
// alongside it with the same basename).
func BuildManifest(atlas *Atlas, imageName string) []byte {
	m := manifest{
		Image:       imageName,
		ImageWidth:  atlas.Width,
		ImageHeight: atlas.Height,
		Sprites:     make([]manifestSprite, len(atlas.Sprites)),
	}

	for i, s := range atlas.Sprites {
		ms := manifestSprite{
			Name:       s.Name,
			Size:       [2]int{s.Size.X, s.Size.Y},
			SpriteRect: rectToArray(s.SpriteRect),
			SheetRect:  rectToArray(s.SheetRect),
		}
		if s.Mesh != nil && s.Mesh.NumTris > 0 {
			ms.Mesh = &manifestMesh{
				NumTris:     s.Mesh.NumTris,
				NumVertices: s.Mesh.NumVertices,
				Indices:     flattenIndices(s.Mesh.Indices),
				Positions:   pointPairs(s.Mesh.Positions),
				UVs:         pointPairs(s.Mesh.UVs),
			}
		}
		m.Sprites[i] = ms
	}

	out, _ := json.MarshalIndent(m, "", "  ")
	return out
}
