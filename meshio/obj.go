package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/bvh3d/vec3"
)

// LoadOBJ reads a Wavefront OBJ file from path and returns its faces as
// triangles, fan-triangulating any face with more than three vertices.
func LoadOBJ(path string) ([]Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("meshio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	return ParseOBJ(f)
}

// ParseOBJ parses Wavefront OBJ geometry from r. Only "v" and "f" lines
// are interpreted; normals, texture coordinates, materials, and groups
// are ignored, since bvh3d only ever needs vertex positions.
func ParseOBJ(r io.Reader) ([]Triangle, error) {
	var vertices []vec3.Vec3
	var tris []Triangle

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			v, err := parseVertex(parts)
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNum, err)
			}
			vertices = append(vertices, v)

		case "f":
			faceTris, err := parseFace(parts, vertices)
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: %w", lineNum, err)
			}
			tris = append(tris, faceTris...)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: reading OBJ: %w", err)
	}

	return tris, nil
}

func parseVertex(parts []string) (vec3.Vec3, error) {
	if len(parts) < 4 {
		return vec3.Vec3{}, ErrMalformedVertex
	}

	x, err1 := strconv.ParseFloat(parts[1], 32)
	y, err2 := strconv.ParseFloat(parts[2], 32)
	z, err3 := strconv.ParseFloat(parts[3], 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return vec3.Vec3{}, ErrMalformedVertex
	}

	return vec3.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// parseFace triangulates one "f" line by fan triangulation: a face with
// vertices v0..vk becomes triangles (v0,v1,v2), (v0,v2,v3), ...
func parseFace(parts []string, vertices []vec3.Vec3) ([]Triangle, error) {
	if len(parts) < 4 {
		return nil, ErrMalformedFace
	}

	faceVerts := make([]vec3.Vec3, 0, len(parts)-1)
	for _, token := range parts[1:] {
		idx, err := parseFaceVertexIndex(token)
		if err != nil {
			return nil, err
		}
		if idx < 1 || idx > len(vertices) {
			return nil, ErrMalformedFace
		}
		faceVerts = append(faceVerts, vertices[idx-1])
	}

	tris := make([]Triangle, 0, len(faceVerts)-2)
	for i := 1; i < len(faceVerts)-1; i++ {
		tris = append(tris, Triangle{A: faceVerts[0], B: faceVerts[i], C: faceVerts[i+1]})
	}

	return tris, nil
}

// parseFaceVertexIndex extracts the 1-based vertex index from a face
// token, which may be "v", "v/vt", "v/vt/vn", or "v//vn".
func parseFaceVertexIndex(token string) (int, error) {
	vPart := token
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		vPart = token[:slash]
	}

	idx, err := strconv.Atoi(vPart)
	if err != nil {
		return 0, ErrMalformedFace
	}

	return idx, nil
}
