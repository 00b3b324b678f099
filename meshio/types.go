package meshio

import "github.com/katalvlaran/bvh3d/vec3"

// Triangle is three vertex positions in model space.
type Triangle struct {
	A, B, C vec3.Vec3
}

// AABB returns the tight bounding box of the triangle's three vertices.
func (tr Triangle) AABB() vec3.AABB {
	min := tr.A.Min(tr.B).Min(tr.C)
	max := tr.A.Max(tr.B).Max(tr.C)

	return vec3.AABB{Min: min, Max: max}
}

// TrianglesToAABBs converts each triangle to its bounding box, preserving order
// so that the i-th AABB corresponds to the i-th triangle.
func TrianglesToAABBs(tris []Triangle) []vec3.AABB {
	out := make([]vec3.AABB, len(tris))
	for i, tr := range tris {
		out[i] = tr.AABB()
	}

	return out
}
