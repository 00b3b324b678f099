// Package bvh3d is a small library for indexed bounding volume
// hierarchies over axis-aligned bounding boxes in 3-space.
//
// What is bvh3d?
//
//	A pure Go library that brings together:
//
//	  • vec3   — Vec3 and AABB arithmetic (union, centroid, surface area)
//	  • bvh    — the tree itself: top-down, bottom-up and incremental builders,
//	             plus level-order traversal and a structural dump
//	  • meshio — Wavefront OBJ triangle loading, for exercising a build against
//	             a real mesh instead of a handful of toy boxes
//
// Three build strategies share one node representation:
//
//	    [root bv]
//	    /        \
//	[left bv]  [right bv]
//	  /   \        ...
//	[leaf][leaf]
//
// A leaf owns a list of object indices into the caller's original AABB
// slice; an internal node owns two children and no indices. Every
// node's bounding volume is the tight union of everything beneath it.
//
//	go get github.com/katalvlaran/bvh3d
package bvh3d
