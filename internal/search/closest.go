package search

import "github.com/elektrokombinacija/sweepsim/internal/core"

// FindClosestTarget plans a path to every candidate target and returns the
// shortest, with the target it leads to. Targets are tried in slice order
// and only a strictly shorter path displaces the current best, so the
// first of several equidistant targets wins. Unreachable targets are
// skipped. ok is false when targets is empty or none are reachable.
func FindClosestTarget(g *core.Grid, start core.Coord, targets []core.Coord) ([]core.Coord, core.Coord, bool) {
	var (
		bestPath   []core.Coord
		bestTarget core.Coord
		found      bool
	)
	for _, t := range targets {
		path, ok := FindPath(g, start, t)
		if !ok {
			continue
		}
		if !found || len(path) < len(bestPath) {
			bestPath = path
			bestTarget = t
			found = true
		}
	}
	return bestPath, bestTarget, found
}
