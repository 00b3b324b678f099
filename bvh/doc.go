// Package bvh implements an indexed bounding volume hierarchy over
// axis-aligned bounding boxes supplied by the caller.
//
// A BVH owns a binary tree of Nodes. Every node carries a tight AABB
// enclosing everything beneath it; leaves additionally own a list of
// object indices into the caller's original AABB slice, and internal
// nodes own exactly two children and no indices.
//
// Three independent build strategies populate the same node shape:
//
//   - BuildTopDown   — recursive median/centroid partitioning, depth-capped.
//   - BuildBottomUp  — repeated least-cost pairwise agglomeration.
//   - Insert         — online least-enlargement descent, for incremental growth.
//
// The caller picks the strategy; bvh never chooses on its own, never
// persists the tree, and never answers ray or shape intersection
// queries — those are callers' concerns layered on top of Root() and
// TraverseLevelOrder.
//
// Concurrency: a *BVH is not safe for concurrent mutation. Concurrent
// read-only traversals are safe provided no mutator runs at the same
// time; that invariant is the caller's responsibility, not bvh's.
//
// Complexity summary:
//
//	BuildTopDown:  O(N log N) expected.
//	BuildBottomUp: O(N^3) naive pairwise scan, amortized down via a
//	               lazily-revalidated priority queue of nearest partners.
//	Insert:        O(log N) expected per call on balanced trees.
package bvh
