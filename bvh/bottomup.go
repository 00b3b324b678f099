package bvh

import (
	"container/heap"
	"log/slog"

	"github.com/katalvlaran/bvh3d/vec3"
)

// BuildBottomUp replaces t's tree with one built by repeated best-pair
// agglomeration: starting from N singleton leaves, it repeatedly merges
// the two live subtrees whose merged surface area is smallest, until one
// root remains.
//
// N == 0 yields an empty tree. N == 1 yields a single leaf directly,
// with no merge step. Building on a non-empty BVH clears it first.
//
// Ties in merge cost are broken deterministically by the lower, then the
// higher, of the two candidates' working-set ids — an arbitrary but fixed
// rule, per the reference semantics, which leave the tie-break
// unspecified beyond "pick one consistently."
//
// Complexity: the naive scan is O(N^3). This implementation instead
// tracks each live node's nearest surviving partner in a min-heap and
// revalidates lazily on pop (the same lazy-decrease-key idiom
// dijkstra.Dijkstra uses in the teacher package), which keeps entries
// for untouched nodes valid across merges and only forces an O(M)
// recompute for nodes whose recorded partner was just merged away.
// Worst case remains O(N^3); well-separated inputs do much better.
func (t *BVH) BuildBottomUp(bvs []vec3.AABB) {
	t.Clear()

	if len(bvs) == 0 {
		return
	}

	if len(bvs) == 1 {
		t.root = &Node{bv: bvs[0], objects: []uint32{0}}
		return
	}

	b := newBottomUpBuilder(bvs)
	t.root = b.run()
}

// bottomUpBuilder holds the working set for one BuildBottomUp call.
// Every live leaf or merged subtree is assigned a stable id the moment
// it is created; ids are never reused, so a dead id unambiguously
// means "already merged into something else."
type bottomUpBuilder struct {
	nodes       []*Node
	bv          []vec3.AABB
	alive       []bool
	bestPartner []int
	bestCost    []float32
	pq          pairHeap
	aliveCount  int
}

func newBottomUpBuilder(bvs []vec3.AABB) *bottomUpBuilder {
	n := len(bvs)
	b := &bottomUpBuilder{
		nodes:       make([]*Node, n),
		bv:          make([]vec3.AABB, n),
		alive:       make([]bool, n),
		bestPartner: make([]int, n),
		bestCost:    make([]float32, n),
		aliveCount:  n,
	}

	for i, bv := range bvs {
		b.nodes[i] = &Node{bv: bv, objects: []uint32{uint32(i)}}
		b.bv[i] = bv
		b.alive[i] = true
	}

	heap.Init(&b.pq)
	for i := range b.nodes {
		b.recompute(i)
	}

	return b
}

// mergeCost is the objective of §4.3: the surface area of the union.
func (b *bottomUpBuilder) mergeCost(i, j int) float32 {
	return vec3.Union(b.bv[i], b.bv[j]).SurfaceArea()
}

// recompute scans every other live id to find i's nearest partner,
// then pushes a fresh heap entry recording that choice. O(M).
func (b *bottomUpBuilder) recompute(i int) {
	best := -1
	var bestCost float32

	for j, alive := range b.alive {
		if j == i || !alive {
			continue
		}

		cost := b.mergeCost(i, j)
		if best == -1 || better(cost, j, bestCost, best) {
			best, bestCost = j, cost
		}
	}

	b.bestPartner[i] = best
	b.bestCost[i] = bestCost
	if best != -1 {
		heap.Push(&b.pq, pairEntry{cost: bestCost, id: i, partner: best})
	}
}

// better reports whether (cost, id) beats (curCost, curID) under the
// merge-cost objective, breaking equal costs in favor of the lower id.
func better(cost float32, id int, curCost float32, curID int) bool {
	if cost != curCost {
		return cost < curCost
	}

	return id < curID
}

// run drives the merge loop to completion and returns the final root.
func (b *bottomUpBuilder) run() *Node {
	for b.aliveCount > 1 {
		entry := b.popValid()
		slog.Debug("bvh: merging nearest pair",
			"id", entry.id, "partner", entry.partner, "cost", entry.cost, "alive", b.aliveCount)
		b.merge(entry.id, entry.partner)
	}

	for i, alive := range b.alive {
		if alive {
			return b.nodes[i]
		}
	}

	return nil // unreachable: aliveCount == 1 guarantees exactly one survivor
}

// popValid pops heap entries until it finds one that still reflects the
// current state: both ids alive, and id's recorded best partner still
// equal to partner (a stale entry means id's partner died and was
// already recomputed under a fresh entry elsewhere in the heap).
func (b *bottomUpBuilder) popValid() pairEntry {
	for {
		e := heap.Pop(&b.pq).(pairEntry)
		if b.alive[e.id] && b.alive[e.partner] && b.bestPartner[e.id] == e.partner {
			return e
		}
	}
}

// merge combines live ids i and j into one new node, retires i and j,
// and repairs the working set: any node whose best partner just died
// gets a full recompute, and every other live node checks whether the
// new node beats its current best partner.
func (b *bottomUpBuilder) merge(i, j int) {
	mergedBV := vec3.Union(b.bv[i], b.bv[j])
	merged := &Node{bv: mergedBV, children: [2]*Node{b.nodes[i], b.nodes[j]}}

	m := len(b.nodes)
	b.nodes = append(b.nodes, merged)
	b.bv = append(b.bv, mergedBV)
	b.alive = append(b.alive, true)
	b.bestPartner = append(b.bestPartner, -1)
	b.bestCost = append(b.bestCost, 0)

	b.alive[i] = false
	b.alive[j] = false

	for x, alive := range b.alive {
		if x == m || x == i || x == j || !alive {
			continue
		}

		if b.bestPartner[x] == i || b.bestPartner[x] == j {
			b.recompute(x)
			continue
		}

		cost := b.mergeCost(x, m)
		if better(cost, m, b.bestCost[x], b.bestPartner[x]) {
			b.bestPartner[x] = m
			b.bestCost[x] = cost
			heap.Push(&b.pq, pairEntry{cost: cost, id: x, partner: m})
		}
	}

	b.aliveCount-- // two live nodes (i, j) replaced by one (m): net -1

	if b.aliveCount > 1 {
		b.recompute(m)
	}
}

// pairEntry is one candidate merge recorded in the heap: "id's current
// nearest partner is partner, at this cost."
type pairEntry struct {
	cost    float32
	id      int
	partner int
}

// pairHeap is a container/heap min-heap over pairEntry, ordered by cost
// and then by the deterministic lowest-id-first, then-second tie-break.
type pairHeap []pairEntry

func (h pairHeap) Len() int { return len(h) }

func (h pairHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}

	loI, hiI := minMax(h[i].id, h[i].partner)
	loJ, hiJ := minMax(h[j].id, h[j].partner)
	if loI != loJ {
		return loI < loJ
	}

	return hiI < hiJ
}

func (h pairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pairHeap) Push(x interface{}) { *h = append(*h, x.(pairEntry)) }

func (h *pairHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

func minMax(a, b int) (lo, hi int) {
	if a < b {
		return a, b
	}

	return b, a
}
