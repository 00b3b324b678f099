package bvh_test

import (
	"fmt"

	"github.com/katalvlaran/bvh3d/bvh"
	"github.com/katalvlaran/bvh3d/vec3"
)

// ExampleBVH_BuildTopDown demonstrates building a tree over three boxes
// and reading back its size and depth.
func ExampleBVH_BuildTopDown() {
	bvs := []vec3.AABB{
		{Min: vec3.Vec3{X: 0, Y: 0, Z: 0}, Max: vec3.Vec3{X: 1, Y: 1, Z: 1}},
		{Min: vec3.Vec3{X: 1, Y: 0, Z: 0}, Max: vec3.Vec3{X: 2, Y: 1, Z: 1}},
		{Min: vec3.Vec3{X: 10, Y: 0, Z: 0}, Max: vec3.Vec3{X: 11, Y: 1, Z: 1}},
	}

	tree := bvh.New()
	tree.BuildTopDown(bvs, bvh.MaxDepthUnbounded)

	fmt.Println(tree.Size())
	// Output: 5
}

// ExampleBVH_Insert demonstrates growing a tree incrementally as objects
// appear one at a time.
func ExampleBVH_Insert() {
	tree := bvh.New()
	tree.Insert(vec3.AABB{Min: vec3.Vec3{X: 0, Y: 0, Z: 0}, Max: vec3.Vec3{X: 1, Y: 1, Z: 1}}, 0, bvh.MaxDepthUnbounded)
	tree.Insert(vec3.AABB{Min: vec3.Vec3{X: 1, Y: 0, Z: 0}, Max: vec3.Vec3{X: 2, Y: 1, Z: 1}}, 1, bvh.MaxDepthUnbounded)

	fmt.Println(tree.Depth(), tree.Size())
	// Output: 1 3
}

// ExampleTraverseLevelOrder demonstrates visiting every node breadth-first.
func ExampleTraverseLevelOrder() {
	bvs := []vec3.AABB{
		{Min: vec3.Vec3{X: 0, Y: 0, Z: 0}, Max: vec3.Vec3{X: 1, Y: 1, Z: 1}},
		{Min: vec3.Vec3{X: 1, Y: 0, Z: 0}, Max: vec3.Vec3{X: 2, Y: 1, Z: 1}},
	}
	tree := bvh.New()
	tree.BuildTopDown(bvs, bvh.MaxDepthUnbounded)

	count := 0
	tree.TraverseLevelOrder(func(n *bvh.Node) {
		count++
	})
	fmt.Println(count)
	// Output: 3
}
