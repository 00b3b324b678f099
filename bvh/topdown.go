package bvh

import (
	"log/slog"
	"sort"

	"github.com/katalvlaran/bvh3d/vec3"
)

// BuildTopDown replaces t's tree with one built by recursive
// longest-axis centroid partitioning over bvs[0..N). maxDepth caps
// recursion (MaxDepthUnbounded for no cap).
//
// N == 0 (bvs may be nil) yields an empty tree, not an error.
// maxDepth == 0 with N >= 1 yields a single leaf holding every index.
// Building on a non-empty BVH clears it first; no state leaks across builds.
//
// Complexity: O(N log N) expected (O(1) axis choice + O(|S|) partition per node).
func (t *BVH) BuildTopDown(bvs []vec3.AABB, maxDepth uint32) {
	t.Clear()

	if len(bvs) == 0 {
		return
	}

	indices := make([]uint32, len(bvs))
	for i := range indices {
		indices[i] = uint32(i)
	}

	t.root = buildTopDownRecursive(bvs, indices, 0, maxDepth)
}

func buildTopDownRecursive(bvs []vec3.AABB, indices []uint32, depth uint32, maxDepth uint32) *Node {
	bv := unionOf(bvs, indices)

	// Leaf condition: a single object, or the depth cap reached.
	if len(indices) <= 1 || depth == maxDepth {
		return &Node{bv: bv, objects: indices}
	}

	axis := bv.LongestAxis()
	pivot := bv.Centroid().Component(axis)

	left, right := partition(bvs, indices, axis, pivot)
	if len(left) == 0 || len(right) == 0 {
		left, right = medianSplit(bvs, indices, axis)
	}

	leftNode := buildTopDownRecursive(bvs, left, depth+1, maxDepth)
	rightNode := buildTopDownRecursive(bvs, right, depth+1, maxDepth)

	return &Node{bv: bv, children: [2]*Node{leftNode, rightNode}}
}

// partition splits indices into those whose centroid on axis is <= pivot
// (left) and the rest (right).
func partition(bvs []vec3.AABB, indices []uint32, axis int, pivot float32) (left, right []uint32) {
	left = make([]uint32, 0, len(indices))
	right = make([]uint32, 0, len(indices))

	for _, i := range indices {
		if bvs[i].Centroid().Component(axis) <= pivot {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return left, right
}

// medianSplit is the degenerate-partition fallback: sort indices by
// centroid on axis and split at the median. If the sort still leaves
// every index tied (so the natural split would be empty on one side),
// fall back further to a position-based split irrespective of centroid.
func medianSplit(bvs []vec3.AABB, indices []uint32, axis int) (left, right []uint32) {
	slog.Debug("bvh: degenerate partition, falling back to median split",
		"axis", axis, "count", len(indices))

	sorted := make([]uint32, len(indices))
	copy(sorted, indices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return bvs[sorted[i]].Centroid().Component(axis) < bvs[sorted[j]].Centroid().Component(axis)
	})

	mid := len(sorted) / 2

	return sorted[:mid], sorted[mid:]
}

func unionOf(bvs []vec3.AABB, indices []uint32) vec3.AABB {
	result := bvs[indices[0]]
	for _, i := range indices[1:] {
		result = vec3.Union(result, bvs[i])
	}

	return result
}
