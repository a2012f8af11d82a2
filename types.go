package atlasc

import (
	"image"
	"time"
)

// Mesh is the simplified, corrected triangle mesh covering a sprite's
// opaque silhouette. It is populated only when a build is run with
// meshes enabled and the sprite's outline yields at least one triangle.
type Mesh struct {
	// NumTris and NumVertices mirror len(Indices)/3 and len(Positions);
	// they are carried as explicit fields because they are part of the
	// emitted manifest schema.
	NumTris     int
	NumVertices int

	// Indices are triangle-index triples into Positions/UVs.
	Indices []uint16

	// Positions are mesh vertex coordinates in source image space, the
	// same space SpriteRect is expressed in: every position lies within
	// SpriteRect (inclusive). ResolveMesh derives sheet-space UVs from
	// these by translating through SpriteRect.Min internally.
	Positions []image.Point

	// UVs are the same vertices resolved into sheet space.
	UVs []image.Point
}

// Sprite is one atlas entry: a single input image trimmed to its opaque
// bounds, its resolved position on the sheet, and (optionally) its mesh.
type Sprite struct {
	// Name is the sprite's identifier in the manifest: the input path
	// as given on the command line, normalized to forward slashes.
	Name string

	// SourcePath is the original filesystem path. It is only needed
	// until the source pixel buffer has been decoded and trimmed.
	SourcePath string

	// Size is the sprite's trimmed width/height, i.e. SpriteRect's size.
	Size image.Point

	// SpriteRect is the sprite's bounding box within its own source
	// image, in source pixel coordinates (min inclusive, max exclusive).
	SpriteRect image.Rectangle

	// SheetRect is SpriteRect's image after packing, in sheet pixel
	// coordinates. Its width/height always equal SpriteRect's.
	SheetRect image.Rectangle

	// Mesh is nil unless mesh generation was requested and produced at
	// least one triangle.
	Mesh *Mesh

	// pix holds the decoded, not-yet-trimmed source pixels until the
	// orchestrator releases it once the sprite has been blitted.
	pix *image.NRGBA
}

// Atlas is the result of a completed build.
type Atlas struct {
	// Width and Height are the packed sheet's final pixel dimensions.
	Width, Height int

	// Sprites are in the same order as the inputs were given.
	Sprites []*Sprite

	// Sheet is the composited RGBA sheet image.
	Sheet *image.NRGBA

	// BuildDuration is the wall-clock time spent in Build. It is
	// reported by the CLI but is not part of the manifest JSON.
	BuildDuration time.Duration
}
