package atlasc

import (
	"image"

	"github.com/fogleman/delaunay"
)

// Triangulate runs a 2D Delaunay triangulation over pts (a corrected,
// simplified outline) and returns its convex hull mesh: the triangle's
// vertex positions and a flat index buffer, three indices per triangle.
//
// fogleman/delaunay may deduplicate coincident input points, so the
// returned positions slice can be shorter than pts; callers must not
// assume a 1:1 correspondence between pts and the result. No holes are
// carved: the full convex hull of pts is triangulated, matching the
// external Delaunay primitive's documented contract.
func Triangulate(pts Outline) (positions []image.Point, indices []uint16, err error) {
	if len(pts) < 3 {
		return nil, nil, nil
	}

	input := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		input[i] = delaunay.Point{X: float64(p.X), Y: float64(p.Y)}
	}

	tri, err := delaunay.Triangulate(input)
	if err != nil {
		return nil, nil, err
	}

	positions = make([]image.Point, len(tri.Points))
	for i, p := range tri.Points {
		positions[i] = image.Pt(int(p.X+0.5), int(p.Y+0.5))
	}

	indices = make([]uint16, len(tri.Triangles))
	for i, idx := range tri.Triangles {
		indices[i] = uint16(idx)
	}

	return positions, indices, nil
}
