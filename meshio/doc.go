// Package meshio loads triangle meshes for bvh3d to index.
//
// This package is an outer collaborator, not part of bvh's core: bvh
// only ever sees AABBs. meshio exists so tests and examples can build a
// tree over something closer to a real scene than a handful of toy
// boxes — a Wavefront OBJ file, or a procedurally generated terrain
// mesh of comparable scale when no file is at hand.
package meshio
