package search

import (
	"math/rand"
	"testing"

	"github.com/elektrokombinacija/sweepsim/internal/core"
)

// createGrid creates an empty n x n grid.
func createGrid(n int) *core.Grid {
	return core.NewGrid(n, n)
}

// checkPathValid asserts the 4-connectivity and obstacle invariants on a
// successful search result.
func checkPathValid(t *testing.T, g *core.Grid, path []core.Coord, start, goal core.Coord) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("Expected non-empty path")
	}
	if path[0] != start {
		t.Errorf("Path starts at %v, want %v", path[0], start)
	}
	if path[len(path)-1] != goal {
		t.Errorf("Path ends at %v, want %v", path[len(path)-1], goal)
	}
	for i, c := range path {
		if g.IsObstacle(c) {
			t.Errorf("Path visits obstacle cell %v", c)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		dx, dy := c.X-prev.X, c.Y-prev.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx+dy != 1 {
			t.Errorf("Step %d: %v -> %v is not a unit grid move", i, prev, c)
		}
	}
}

// bfsDistance is an independent reference: breadth-first edge count from
// start to goal, or -1 if unreachable.
func bfsDistance(g *core.Grid, start, goal core.Coord) int {
	if start == goal {
		return 0
	}
	dist := map[core.Coord]int{start: 0}
	queue := []core.Coord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			if n == goal {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return -1
}

func TestFindPath_EmptyGrid(t *testing.T) {
	g := createGrid(5)
	start, goal := core.Coord{X: 0, Y: 0}, core.Coord{X: 4, Y: 4}

	path, ok := FindPath(g, start, goal)
	if !ok {
		t.Fatal("Expected path on empty grid, got none")
	}
	checkPathValid(t, g, path, start, goal)
	if len(path)-1 != 8 {
		t.Errorf("Expected 8 edges across empty 5x5 grid, got %d", len(path)-1)
	}
}

func TestFindPath_RoutesAroundObstacles(t *testing.T) {
	// Wall across x=2 with a gap at (2,4).
	g := createGrid(5)
	for y := 0; y < 4; y++ {
		g.AddObstacle(core.Coord{X: 2, Y: y})
	}
	start, goal := core.Coord{X: 0, Y: 0}, core.Coord{X: 4, Y: 0}

	path, ok := FindPath(g, start, goal)
	if !ok {
		t.Fatal("Expected path through the gap, got none")
	}
	checkPathValid(t, g, path, start, goal)
	// Down to the gap row, across, and back up: 4+2+4+2 edges.
	if len(path)-1 != 12 {
		t.Errorf("Expected 12 edges around the wall, got %d", len(path)-1)
	}
}

func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := createGrid(5)
	p := core.Coord{X: 3, Y: 2}

	path, ok := FindPath(g, p, p)
	if !ok {
		t.Fatal("Expected degenerate path, got none")
	}
	if len(path) != 1 || path[0] != p {
		t.Errorf("Expected [%v], got %v", p, path)
	}

	edges, ok := PathLength(g, p, p)
	if !ok || edges != 0 {
		t.Errorf("PathLength(p, p) = %d, %v, want 0, true", edges, ok)
	}
}

func TestFindPath_UnreachableGoal(t *testing.T) {
	// Goal walled off by a closed ring of obstacles.
	g := createGrid(7)
	goal := core.Coord{X: 3, Y: 3}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			g.AddObstacle(core.Coord{X: goal.X + dx, Y: goal.Y + dy})
		}
	}

	if _, ok := FindPath(g, core.Coord{X: 0, Y: 0}, goal); ok {
		t.Error("Expected no path to a ringed goal")
	}
	if _, ok := PathLength(g, core.Coord{X: 0, Y: 0}, goal); ok {
		t.Error("Expected PathLength to report unreachable")
	}
}

// TestFindPath_MatchesBFSReference verifies optimality: with unit edge
// weights the search must return exactly the breadth-first distance.
func TestFindPath_MatchesBFSReference(t *testing.T) {
	rng := rand.New(rand.NewSource(91))

	for trial := 0; trial < 25; trial++ {
		g := createGrid(9)
		for i := 0; i < 16; i++ {
			c := core.Coord{X: rng.Intn(9), Y: rng.Intn(9)}
			g.AddObstacle(c)
		}

		var free []core.Coord
		for y := 0; y < 9; y++ {
			for x := 0; x < 9; x++ {
				c := core.Coord{X: x, Y: y}
				if g.Passable(c) {
					free = append(free, c)
				}
			}
		}

		for pair := 0; pair < 10; pair++ {
			start := free[rng.Intn(len(free))]
			goal := free[rng.Intn(len(free))]

			want := bfsDistance(g, start, goal)
			path, ok := FindPath(g, start, goal)

			if want == -1 {
				if ok {
					t.Fatalf("trial %d: found a path %v->%v that BFS says is unreachable", trial, start, goal)
				}
				continue
			}
			if !ok {
				t.Fatalf("trial %d: no path %v->%v but BFS distance is %d", trial, start, goal, want)
			}
			checkPathValid(t, g, path, start, goal)
			if len(path)-1 != want {
				t.Fatalf("trial %d: path %v->%v has %d edges, BFS reference says %d",
					trial, start, goal, len(path)-1, want)
			}
		}
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	g := createGrid(8)
	g.AddObstacle(core.Coord{X: 3, Y: 3})
	g.AddObstacle(core.Coord{X: 4, Y: 3})
	start, goal := core.Coord{X: 0, Y: 0}, core.Coord{X: 7, Y: 7}

	first, ok := FindPath(g, start, goal)
	if !ok {
		t.Fatal("Expected path, got none")
	}
	for i := 0; i < 5; i++ {
		again, ok := FindPath(g, start, goal)
		if !ok || len(again) != len(first) {
			t.Fatalf("Run %d: path changed length: %d vs %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("Run %d: path diverged at %d: %v vs %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestFindPath_OutOfBoundsPanics(t *testing.T) {
	g := createGrid(4)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-bounds goal")
		}
	}()
	FindPath(g, core.Coord{X: 0, Y: 0}, core.Coord{X: 9, Y: 9})
}
