// Package bvh defines the Node and BVH types shared by every builder.
package bvh

import "github.com/katalvlaran/bvh3d/vec3"

// MaxDepthUnbounded disables the depth cap on BuildTopDown and Insert:
// the Go rendering of the reference implementation's UINT_MAX sentinel.
const MaxDepthUnbounded uint32 = ^uint32(0)

// Node represents one subtree of a BVH. It is immutable after the call
// that produced it returns, except along the spine Insert walks.
//
// A node is either:
//   - a leaf:     Children[0] == Children[1] == nil, Objects non-empty.
//   - an internal: both Children present, Objects empty.
//
// There is no third shape; a node is never both or neither.
type Node struct {
	bv       vec3.AABB
	children [2]*Node
	objects  []uint32
}

// BV returns the node's tight bounding volume.
func (n *Node) BV() vec3.AABB {
	return n.bv
}

// Children returns the node's two children, or (nil, nil) at a leaf.
func (n *Node) Children() (left, right *Node) {
	return n.children[0], n.children[1]
}

// Objects returns the leaf's owned object indices, or nil at an internal node.
func (n *Node) Objects() []uint32 {
	return n.objects
}

// ObjectCount returns len(Objects()).
func (n *Node) ObjectCount() int {
	return len(n.objects)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.children[0] == nil && n.children[1] == nil
}

// Depth returns 0 at a leaf, else 1 + max(child depths).
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}

	left := n.children[0].Depth()
	right := n.children[1].Depth()
	if left > right {
		return 1 + left
	}

	return 1 + right
}

// Size returns the number of nodes in the subtree rooted at n
// (counts nodes, not objects): 1 at a leaf, else 1 + sum(child sizes).
func (n *Node) Size() int {
	if n.IsLeaf() {
		return 1
	}

	return 1 + n.children[0].Size() + n.children[1].Size()
}

// BVH owns a tree of Nodes built over an array of caller-supplied AABBs.
// The zero value is an empty tree, equivalent to the result of New.
type BVH struct {
	root *Node
}

// New returns an empty BVH.
func New() *BVH {
	return &BVH{}
}

// Empty reports whether the tree has no root.
func (t *BVH) Empty() bool {
	return t.root == nil
}

// Root returns the tree's root node, or nil if the tree is empty.
func (t *BVH) Root() *Node {
	return t.root
}

// Depth returns -1 on an empty tree, else Root().Depth().
func (t *BVH) Depth() int {
	if t.Empty() {
		return -1
	}

	return t.root.Depth()
}

// Size returns 0 on an empty tree, else Root().Size().
func (t *BVH) Size() int {
	if t.Empty() {
		return 0
	}

	return t.root.Size()
}

// Clear releases the entire tree, restoring the empty state. Safe to
// call on an already-empty tree (idempotent).
func (t *BVH) Clear() {
	t.root = nil
}
