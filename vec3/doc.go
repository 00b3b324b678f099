// Package vec3 provides the 3-component vector and axis-aligned
// bounding box arithmetic used throughout bvh3d.
//
// It is a small, dependency-free collaborator: union, centroid,
// longest-axis selection, surface area and containment on an AABB, all
// expressed in terms of componentwise Vec3 operations. Nothing here
// knows about trees, objects, or indices — that is bvh's job.
//
// Complexity: every operation in this package is O(1).
package vec3
