package bvh

import "github.com/katalvlaran/bvh3d/vec3"

// Insert adds one object to the tree, preserving every invariant of the
// node model. If the tree is empty, the result is a single leaf holding
// {id} bounding bv. Otherwise the tree grows by at most one internal
// node and one leaf, and every ancestor's bounding volume is refit.
//
// Descent: starting at the root, at each internal node choose the child
// whose bounding volume would be least enlarged by bv (measured by
// surface-area increase), breaking ties by smaller current surface area
// then by child index (0 before 1). Stop when the current node is a
// leaf or maxDepth is reached; split that node into an internal node
// holding the old subtree and a new leaf {id}, then refit every
// ancestor's bounding volume to the union of its children on the way
// back to the root.
//
// maxDepth == MaxDepthUnbounded imposes no cap; the cap is advisory in
// the sense that every invariant holds regardless of where it bites.
func (t *BVH) Insert(bv vec3.AABB, id uint32, maxDepth uint32) {
	if t.Empty() {
		t.root = &Node{bv: bv, objects: []uint32{id}}
		return
	}

	t.root = insertInto(t.root, bv, id, 0, maxDepth)
}

func insertInto(n *Node, bv vec3.AABB, id uint32, depth, maxDepth uint32) *Node {
	if n.IsLeaf() || depth == maxDepth {
		return &Node{
			bv:       vec3.Union(n.bv, bv),
			children: [2]*Node{n, {bv: bv, objects: []uint32{id}}},
		}
	}

	chosen := chooseChild(n.children[0], n.children[1], bv)
	n.children[chosen] = insertInto(n.children[chosen], bv, id, depth+1, maxDepth)
	n.bv = vec3.Union(n.children[0].bv, n.children[1].bv)

	return n
}

// chooseChild picks the child least enlarged by inserting bv, breaking
// ties by smaller current surface area, then by child index (0 before 1).
func chooseChild(left, right *Node, bv vec3.AABB) int {
	enlargeLeft := enlargement(left.bv, bv)
	enlargeRight := enlargement(right.bv, bv)

	if enlargeLeft != enlargeRight {
		if enlargeLeft < enlargeRight {
			return 0
		}
		return 1
	}

	areaLeft := left.bv.SurfaceArea()
	areaRight := right.bv.SurfaceArea()
	if areaLeft != areaRight {
		if areaLeft < areaRight {
			return 0
		}
		return 1
	}

	return 0
}

func enlargement(child vec3.AABB, bv vec3.AABB) float32 {
	return vec3.Union(child, bv).SurfaceArea() - child.SurfaceArea()
}
