package atlasc

import "image"

// ResolveUV maps a mesh position (in source image coordinates, the same
// space spriteRect is expressed in) to its corresponding pixel
// coordinate on the packed sheet: p - spriteRect.min + sheetRect.min.
//
// SheetRect.Min is already the tight blit origin that PackSprites
// computed (the footprint corner after border and padding have both
// been consumed as packing gutter, see DESIGN.md for why sheet_rect is
// treated as congruent to sprite_rect rather than as the larger,
// padding-inclusive slot), so the sprite-local offset subtracted out
// here is exactly what SheetRect.Min replaces it with.
func ResolveUV(sourcePos image.Point, spriteRect, sheetRect image.Rectangle) image.Point {
	return sourcePos.Sub(spriteRect.Min).Add(sheetRect.Min)
}

// ResolveMesh fills in a Mesh's UVs from its source-space Positions and
// the sprite's SpriteRect/SheetRect, and sets NumTris/NumVertices.
func ResolveMesh(m *Mesh, spriteRect, sheetRect image.Rectangle) {
	m.UVs = make([]image.Point, len(m.Positions))
	for i, p := range m.Positions {
		m.UVs[i] = ResolveUV(p, spriteRect, sheetRect)
	}
	m.NumVertices = len(m.Positions)
	m.NumTris = len(m.Indices) / 3
}
