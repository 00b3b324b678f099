package meshio

import "github.com/katalvlaran/bvh3d/vec3"

// GeneratedFixtureMesh builds a deterministic grid-terrain mesh with no
// external file dependency, for tests and examples that need a mesh at
// realistic scale without shipping a large OBJ file. The grid undulates
// with a simple sine-free triangle-wave height so triangles are non-planar
// and non-degenerate.
//
// A rows x cols grid of vertices produces (rows-1)*(cols-1)*2 triangles.
func GeneratedFixtureMesh(rows, cols int) []Triangle {
	if rows < 2 || cols < 2 {
		return nil
	}

	verts := make([][]vec3.Vec3, rows)
	for r := 0; r < rows; r++ {
		verts[r] = make([]vec3.Vec3, cols)
		for c := 0; c < cols; c++ {
			height := gridHeight(r, c)
			verts[r][c] = vec3.Vec3{X: float32(c), Y: height, Z: float32(r)}
		}
	}

	tris := make([]Triangle, 0, (rows-1)*(cols-1)*2)
	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols-1; c++ {
			v00 := verts[r][c]
			v01 := verts[r][c+1]
			v10 := verts[r+1][c]
			v11 := verts[r+1][c+1]

			tris = append(tris, Triangle{A: v00, B: v10, C: v11})
			tris = append(tris, Triangle{A: v00, B: v11, C: v01})
		}
	}

	return tris
}

// gridHeight produces a bounded, non-repeating-looking height field
// without trigonometric functions, using a folded triangular wave per
// axis so adjacent cells never share a perfectly flat boundary.
func gridHeight(r, c int) float32 {
	rh := triangleWave(r, 10)
	ch := triangleWave(c, 7)

	return rh + ch
}

// triangleWave folds n into a [0, period] ramp-up/ramp-down wave.
func triangleWave(n, period int) float32 {
	if period <= 0 {
		return 0
	}

	m := n % (2 * period)
	if m < 0 {
		m += 2 * period
	}
	if m > period {
		m = 2*period - m
	}

	return float32(m)
}

// DefaultFixtureMesh returns a generated mesh comfortably above 1000
// triangles, for tests that need "many AABBs" without caring about the
// exact count.
func DefaultFixtureMesh() []Triangle {
	return GeneratedFixtureMesh(24, 24)
}
