// Package search implements shortest-path planning over the cleaning grid.
package search

import (
	"container/heap"
	"fmt"

	"github.com/elektrokombinacija/sweepsim/internal/core"
)

// cellNode is a frontier entry for the priority queue.
type cellNode struct {
	cell   core.Coord
	dist   int // cost from start
	parent *cellNode
	index  int // heap index
}

// cellHeap implements heap.Interface ordered by tentative distance.
type cellHeap []*cellNode

func (h cellHeap) Len() int           { return len(h) }
func (h cellHeap) Less(i, j int) bool { return h[i].dist < h[j].dist }
func (h cellHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *cellHeap) Push(x any) {
	n := x.(*cellNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *cellHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// FindPath returns the shortest 4-connected path from start to goal with
// both endpoints included, avoiding obstacles. Edge weight is uniformly 1.
// ok is false when goal is unreachable. Out-of-bounds coordinates are a
// caller bug and panic.
func FindPath(g *core.Grid, start, goal core.Coord) ([]core.Coord, bool) {
	if !g.InBounds(start) || !g.InBounds(goal) {
		panic(fmt.Sprintf("search: coordinates out of %dx%d grid: start=%v goal=%v",
			g.Width, g.Height, start, goal))
	}
	if start == goal {
		return []core.Coord{start}, true
	}

	open := &cellHeap{}
	heap.Init(open)
	heap.Push(open, &cellNode{cell: start})

	dist := map[core.Coord]int{start: 0}
	visited := make(map[core.Coord]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*cellNode)

		if current.cell == goal {
			return reconstructPath(current), true
		}
		if visited[current.cell] {
			continue // stale frontier entry
		}
		visited[current.cell] = true

		for _, n := range g.Neighbors(current.cell) {
			if visited[n] {
				continue
			}
			nd := current.dist + 1
			if d, seen := dist[n]; seen && nd >= d {
				continue
			}
			dist[n] = nd
			heap.Push(open, &cellNode{cell: n, dist: nd, parent: current})
		}
	}

	return nil, false
}

// PathLength reports the edge count of the shortest path from start to
// goal. ok is false when goal is unreachable, the infinite-distance case.
func PathLength(g *core.Grid, start, goal core.Coord) (int, bool) {
	path, ok := FindPath(g, start, goal)
	if !ok {
		return 0, false
	}
	return len(path) - 1, true
}

// reconstructPath walks predecessor links from the goal node back to the
// start and reverses.
func reconstructPath(node *cellNode) []core.Coord {
	var path []core.Coord
	for n := node; n != nil; n = n.parent {
		path = append(path, n.cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
