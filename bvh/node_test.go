package bvh_test

import (
	"testing"

	"github.com/katalvlaran/bvh3d/bvh"
	"github.com/katalvlaran/bvh3d/vec3"
	"github.com/stretchr/testify/assert"
)

func box(minX, minY, minZ, maxX, maxY, maxZ float32) vec3.AABB {
	return vec3.AABB{
		Min: vec3.Vec3{X: minX, Y: minY, Z: minZ},
		Max: vec3.Vec3{X: maxX, Y: maxY, Z: maxZ},
	}
}

func TestNewIsEmpty(t *testing.T) {
	tree := bvh.New()
	assert.True(t, tree.Empty())
	assert.Equal(t, -1, tree.Depth())
	assert.Equal(t, 0, tree.Size())
	assert.Nil(t, tree.Root())
}

func TestSingleLeafObservables(t *testing.T) {
	tree := bvh.New()
	tree.BuildTopDown([]vec3.AABB{box(0, 0, 0, 1, 1, 1)}, bvh.MaxDepthUnbounded)

	root := tree.Root()
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 1, root.Size())
	assert.Equal(t, []uint32{0}, root.Objects())
	assert.True(t, root.BV().ApproxEqual(box(0, 0, 0, 1, 1, 1), 0.001))
}

func TestInternalNodeHasNoObjects(t *testing.T) {
	tree := bvh.New()
	tree.BuildTopDown([]vec3.AABB{
		box(0, 0, 0, 1, 1, 1),
		box(1, 0, 0, 2, 1, 1),
	}, bvh.MaxDepthUnbounded)

	root := tree.Root()
	assert.False(t, root.IsLeaf())
	assert.Equal(t, 0, root.ObjectCount())
	left, right := root.Children()
	assert.NotNil(t, left)
	assert.NotNil(t, right)
}
