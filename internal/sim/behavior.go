// Package sim runs the discrete-time cleaning simulation: a fixed-priority
// behavior arbiter per agent and a tick loop that activates every agent
// once per tick, in randomized order, over a shared target set.
package sim

import (
	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/search"
)

// World is the simulation context an activation acts on. The grid owns
// the shared target set; CellsCleaned is the global counter across all
// agents.
type World struct {
	Grid         *core.Grid
	CellsCleaned int
}

// StepAgent runs one activation of the behavior arbiter: the ladder is
// re-evaluated top-down every tick and exactly the first behavior whose
// preconditions hold fires. Higher behaviors suppress lower ones.
func StepAgent(w *World, a *core.Agent) core.Behavior {
	switch {
	case w.Grid.IsStation(a.Pos) && a.Battery < core.BatteryFull:
		charge(a)
		return core.BehaviorCharge

	case w.Grid.IsTarget(a.Pos) && !a.Depleted():
		clean(w, a)
		return core.BehaviorClean

	case !a.Depleted() && mustReturn(w, a):
		returnHome(w, a)
		return core.BehaviorReturn

	case !a.Depleted():
		seek(w, a)
		return core.BehaviorSeek

	default:
		return core.BehaviorIdle
	}
}

// charge refills the battery one increment, clamped at full.
func charge(a *core.Agent) {
	a.Battery += core.ChargeRate
	if a.Battery > core.BatteryFull {
		a.Battery = core.BatteryFull
	}
	a.Charges++
}

// clean removes the target under the agent from the shared set and drops
// the cached plan (the cleaned cell was the plan's goal).
func clean(w *World, a *core.Agent) {
	w.Grid.RemoveTarget(a.Pos)
	a.Battery -= core.CleanCost
	a.Cleans++
	w.CellsCleaned++
	a.ClearPlan()
}

// mustReturn reports whether the battery reserve no longer covers the
// trip home. An unreachable home counts as infinitely far and triggers.
func mustReturn(w *World, a *core.Agent) bool {
	edges, ok := search.PathLength(w.Grid, a.Pos, a.Home)
	if !ok {
		return true
	}
	return a.Battery-core.SafetyMargin <= edges
}

// returnHome walks the agent toward its station, planning the way home
// when the return starts or the cached path was invalidated mid-return.
// If home is unreachable the agent stalls in place; the run goes on.
func returnHome(w *World, a *core.Agent) {
	if !a.Returning || len(a.Path) == 0 {
		path, ok := search.FindPath(w.Grid, a.Pos, a.Home)
		if !ok {
			return
		}
		a.SetReturnPlan(path)
	}
	moveAlong(a)
}

// seek walks the agent toward the nearest live target, replanning when
// the cached plan went stale. With no reachable target left the agent
// holds position and retries next tick.
func seek(w *World, a *core.Agent) {
	if a.PlanStale(w.Grid.Targets()) {
		targets := w.Grid.Targets().Coords()
		if len(targets) == 0 {
			return
		}
		path, target, ok := search.FindClosestTarget(w.Grid, a.Pos, targets)
		if !ok {
			return
		}
		a.SetPlan(path, target)
	}
	moveAlong(a)
}

// moveAlong commits one step of the cached path: position, battery drain
// and the movement counter.
func moveAlong(a *core.Agent) {
	next, ok := a.Advance()
	if !ok {
		return
	}
	a.Pos = next
	a.Battery -= core.MoveCost
	a.Movements++
}
