package core

// neighborSteps is the 4-connected expansion order. Search determinism
// depends on this order staying fixed.
var neighborSteps = [4]Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is the bounded 2D workspace. Contents are static for the duration
// of a run except targets, which are removed as agents clean them.
type Grid struct {
	Width, Height int

	content map[Coord]CellContent
	targets *TargetSet
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:   width,
		Height:  height,
		content: make(map[Coord]CellContent),
		targets: NewTargetSet(),
	}
}

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Passable reports whether an agent may occupy c.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && !g.content[c].Has(CellObstacle)
}

// IsObstacle reports whether c holds an obstacle.
func (g *Grid) IsObstacle(c Coord) bool {
	return g.content[c].Has(CellObstacle)
}

// IsStation reports whether c holds a charging station.
func (g *Grid) IsStation(c Coord) bool {
	return g.content[c].Has(CellStation)
}

// IsTarget reports whether c holds an uncleaned target.
func (g *Grid) IsTarget(c Coord) bool {
	return g.content[c].Has(CellTarget)
}

// AddObstacle marks c as blocked.
func (g *Grid) AddObstacle(c Coord) {
	g.content[c] |= CellObstacle
}

// AddStation marks c as a charging station.
func (g *Grid) AddStation(c Coord) {
	g.content[c] |= CellStation
}

// AddTarget marks c as dirty and registers it in the live target set.
func (g *Grid) AddTarget(c Coord) {
	if g.content[c].Has(CellTarget) {
		return
	}
	g.content[c] |= CellTarget
	g.targets.Add(c)
}

// RemoveTarget clears the target flag on c, keeping the live target set
// in sync. Returns false if c held no target.
func (g *Grid) RemoveTarget(c Coord) bool {
	if !g.content[c].Has(CellTarget) {
		return false
	}
	g.content[c] &^= CellTarget
	g.targets.Remove(c)
	return true
}

// Targets returns the live target set. Callers must mutate it only
// through RemoveTarget so the cell flags stay consistent.
func (g *Grid) Targets() *TargetSet {
	return g.targets
}

// Neighbors returns the passable 4-connected neighbors of c in the fixed
// expansion order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range neighborSteps {
		n := Coord{c.X + d.X, c.Y + d.Y}
		if g.Passable(n) {
			out = append(out, n)
		}
	}
	return out
}
