package meshio

import "errors"

// Sentinel errors for OBJ parsing failures.
var (
	// ErrMalformedVertex indicates a "v" line with fewer than 3 coordinates
	// or a non-numeric coordinate.
	ErrMalformedVertex = errors.New("meshio: malformed vertex line")

	// ErrMalformedFace indicates an "f" line referencing fewer than 3
	// vertices, or a vertex index outside the vertices seen so far.
	ErrMalformedFace = errors.New("meshio: malformed face line")
)
