package core

// AgentSnapshot is one agent's observable state at a tick boundary.
type AgentSnapshot struct {
	Pos      Coord
	Battery  int
	Behavior Behavior // action that fired during the tick; Idle at tick 0
	Path     []Coord  // remaining cached path, for overlay drawing
}

// TickSnapshot captures the world at a tick boundary. Snapshot 0 is the
// initial state before any agent acts.
type TickSnapshot struct {
	Tick    int
	Agents  []AgentSnapshot
	Targets []Coord // dirty cells still live
}

// History is a recorded run. The world mutates as agents clean, so
// playback works from these snapshots rather than re-deriving state.
type History struct {
	Scenario  *Scenario
	Snapshots []TickSnapshot
}

// Ticks returns the number of recorded tick boundaries.
func (h *History) Ticks() int {
	return len(h.Snapshots)
}

// At returns the snapshot at tick, clamped to the recorded range.
func (h *History) At(tick int) TickSnapshot {
	if len(h.Snapshots) == 0 {
		return TickSnapshot{}
	}
	if tick < 0 {
		tick = 0
	}
	if tick >= len(h.Snapshots) {
		tick = len(h.Snapshots) - 1
	}
	return h.Snapshots[tick]
}

// Snapshot records the current state of the grid and agents.
func Snapshot(tick int, grid *Grid, agents []*Agent, behaviors []Behavior) TickSnapshot {
	snap := TickSnapshot{
		Tick:    tick,
		Agents:  make([]AgentSnapshot, len(agents)),
		Targets: grid.Targets().Coords(),
	}
	for i, a := range agents {
		as := AgentSnapshot{
			Pos:     a.Pos,
			Battery: a.Battery,
		}
		if behaviors != nil {
			as.Behavior = behaviors[i]
		}
		if len(a.Path) > 0 {
			as.Path = append([]Coord(nil), a.Path...)
		}
		snap.Agents[i] = as
	}
	return snap
}
