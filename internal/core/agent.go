package core

// Agent is a cleaning unit with a depletable battery. It is created once
// at setup and persists for the whole run, even after depletion.
type Agent struct {
	ID      AgentID
	Pos     Coord
	Home    Coord // charging station cell
	Battery int   // [0, BatteryFull]

	// Cached plan. Path holds only the cells still ahead of the agent;
	// the head of a freshly computed path is stripped on caching.
	Path      []Coord
	Target    Coord
	HasTarget bool
	Returning bool

	Movements int
	Cleans    int
	Charges   int
}

// NewAgent creates a fully charged agent standing on its home station.
func NewAgent(id AgentID, start Coord) *Agent {
	return &Agent{ID: id, Pos: start, Home: start, Battery: BatteryFull}
}

// SetPlan caches a freshly computed path toward target, stripping the
// head cell (the agent's current position).
func (a *Agent) SetPlan(path []Coord, target Coord) {
	a.Path = append(a.Path[:0:0], path[1:]...)
	a.Target = target
	a.HasTarget = true
	a.Returning = false
}

// SetReturnPlan caches a freshly computed path home, stripping the head
// cell, and flags the agent as returning.
func (a *Agent) SetReturnPlan(path []Coord) {
	a.Path = append(a.Path[:0:0], path[1:]...)
	a.Target = Coord{}
	a.HasTarget = false
	a.Returning = true
}

// Advance pops the next cell off the cached path. The arbiter applies the
// move itself along with its battery and counter effects.
func (a *Agent) Advance() (Coord, bool) {
	if len(a.Path) == 0 {
		return Coord{}, false
	}
	next := a.Path[0]
	a.Path = a.Path[1:]
	return next, true
}

// PlanStale reports whether the cached plan may no longer be followed:
// the path is consumed or the target has since been cleaned by another
// agent.
func (a *Agent) PlanStale(live *TargetSet) bool {
	if len(a.Path) == 0 {
		return true
	}
	if !a.HasTarget {
		return true
	}
	return !live.Contains(a.Target)
}

// ClearPlan drops the cached path and target.
func (a *Agent) ClearPlan() {
	a.Path = nil
	a.Target = Coord{}
	a.HasTarget = false
}

// Depleted reports whether the battery is empty.
func (a *Agent) Depleted() bool {
	return a.Battery <= 0
}
