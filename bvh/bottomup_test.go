package bvh_test

import (
	"testing"

	"github.com/katalvlaran/bvh3d/bvh"
	"github.com/katalvlaran/bvh3d/vec3"
	"github.com/stretchr/testify/assert"
)

func TestBuildBottomUpEmpty(t *testing.T) {
	tree := bvh.New()
	tree.BuildBottomUp(nil)
	assert.True(t, tree.Empty())
}

func TestBuildBottomUpSingle(t *testing.T) {
	bvs := []vec3.AABB{box(0, 0, 0, 1, 1, 1)}

	tree := bvh.New()
	tree.BuildBottomUp(bvs)

	assert.True(t, tree.Root().BV().ApproxEqual(bvs[0], 0.001))
	assertTight(t, tree, bvs)
}

func TestBuildBottomUpPair(t *testing.T) {
	bvs := []vec3.AABB{
		box(0, 0, 0, 1, 1, 1),
		box(1, 0, 0, 2, 1, 1),
	}

	tree := bvh.New()
	tree.BuildBottomUp(bvs)

	assert.True(t, tree.Root().BV().ApproxEqual(box(0, 0, 0, 2, 1, 1), 0.001))
	assert.Equal(t, 1, tree.Depth())
	assert.Equal(t, 3, tree.Size())
	assert.ElementsMatch(t, []uint32{0, 1}, flatten(tree.Root()))
}

func TestBuildBottomUpClusteredMergesNearestFirst(t *testing.T) {
	// Two tight pairs far apart: the nearest-pair merges must happen
	// within each pair before the two pairs merge with each other.
	bvs := []vec3.AABB{
		box(0, 0, 0, 1, 1, 1),
		box(1, 0, 0, 2, 1, 1),
		box(100, 0, 0, 101, 1, 1),
		box(101, 0, 0, 102, 1, 1),
	}

	tree := bvh.New()
	tree.BuildBottomUp(bvs)

	assertTight(t, tree, bvs)

	root := tree.Root()
	left, right := root.Children()
	// The top split must separate {0,1} from {2,3}: the far-apart pair
	// can never be cheaper to merge than either tight pair.
	leftIdx := flatten(left)
	rightIdx := flatten(right)
	assert.Len(t, leftIdx, 2)
	assert.Len(t, rightIdx, 2)
	if len(leftIdx) == 2 && len(rightIdx) == 2 {
		// Indices 0,1 and 2,3 are the tight pairs: i/2 names the pair.
		assert.Equal(t, leftIdx[0]/2, leftIdx[1]/2, "left subtree mixes the pairs: %v", leftIdx)
		assert.Equal(t, rightIdx[0]/2, rightIdx[1]/2, "right subtree mixes the pairs: %v", rightIdx)
	}
}

func TestBuildBottomUpManyTightness(t *testing.T) {
	bvs := make([]vec3.AABB, 0, 40)
	for i := 0; i < 40; i++ {
		f := float32(i)
		bvs = append(bvs, box(f, 0, 0, f+0.9, 1, 1))
	}

	tree := bvh.New()
	tree.BuildBottomUp(bvs)

	assert.ElementsMatch(t, indicesUpTo(40), flatten(tree.Root()))
	assertTight(t, tree, bvs)
}

func indicesUpTo(n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = uint32(i)
	}
	return out
}
