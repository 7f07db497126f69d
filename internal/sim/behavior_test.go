package sim

import (
	"testing"

	"github.com/elektrokombinacija/sweepsim/internal/core"
)

// buildWorld creates an empty w x h world.
func buildWorld(w, h int) *World {
	return &World{Grid: core.NewGrid(w, h)}
}

func TestStepAgent_ChargingBeatsCleaning(t *testing.T) {
	// Station and dirty cell co-located: Charging must suppress Cleaning.
	w := buildWorld(5, 5)
	spot := core.Coord{X: 2, Y: 2}
	w.Grid.AddStation(spot)
	w.Grid.AddTarget(spot)

	a := core.NewAgent(0, spot)
	a.Battery = 40

	got := StepAgent(w, a)
	if got != core.BehaviorCharge {
		t.Fatalf("StepAgent = %v, want Charge", got)
	}
	if a.Battery != 45 {
		t.Errorf("Battery = %d, want 45", a.Battery)
	}
	if a.Charges != 1 {
		t.Errorf("Charges = %d, want 1", a.Charges)
	}
	if !w.Grid.IsTarget(spot) {
		t.Errorf("Target should survive a charging tick")
	}
	if a.Cleans != 0 || w.CellsCleaned != 0 {
		t.Errorf("Cleaning fired alongside charging")
	}
}

func TestStepAgent_ChargeClampsAtFull(t *testing.T) {
	w := buildWorld(3, 3)
	home := core.Coord{X: 0, Y: 0}
	w.Grid.AddStation(home)

	a := core.NewAgent(0, home)
	a.Battery = 98

	if got := StepAgent(w, a); got != core.BehaviorCharge {
		t.Fatalf("StepAgent = %v, want Charge", got)
	}
	if a.Battery != core.BatteryFull {
		t.Errorf("Battery = %d, want clamp at %d", a.Battery, core.BatteryFull)
	}
}

func TestStepAgent_FullBatteryOnStationSeeks(t *testing.T) {
	w := buildWorld(5, 5)
	home := core.Coord{X: 0, Y: 0}
	w.Grid.AddStation(home)
	w.Grid.AddTarget(core.Coord{X: 3, Y: 0})

	a := core.NewAgent(0, home)

	if got := StepAgent(w, a); got != core.BehaviorSeek {
		t.Fatalf("StepAgent = %v, want Seek once battery is full", got)
	}
	if a.Pos != (core.Coord{X: 1, Y: 0}) {
		t.Errorf("Pos = %v, want (1,0) after one step toward the target", a.Pos)
	}
}

func TestStepAgent_CleansTargetUnderfoot(t *testing.T) {
	w := buildWorld(5, 5)
	dirt := core.Coord{X: 1, Y: 3}
	w.Grid.AddTarget(dirt)
	w.Grid.AddTarget(core.Coord{X: 4, Y: 4})

	a := core.NewAgent(0, core.Coord{X: 0, Y: 0})
	a.Pos = dirt
	a.Path = []core.Coord{{X: 1, Y: 4}}
	a.Target = dirt
	a.HasTarget = true

	got := StepAgent(w, a)
	if got != core.BehaviorClean {
		t.Fatalf("StepAgent = %v, want Clean", got)
	}
	if w.Grid.IsTarget(dirt) || w.Grid.Targets().Contains(dirt) {
		t.Errorf("Cleaned cell still registered dirty")
	}
	if a.Battery != core.BatteryFull-core.CleanCost {
		t.Errorf("Battery = %d, want %d", a.Battery, core.BatteryFull-core.CleanCost)
	}
	if a.Cleans != 1 || w.CellsCleaned != 1 {
		t.Errorf("Clean counters = agent %d, world %d, want 1 and 1", a.Cleans, w.CellsCleaned)
	}
	if len(a.Path) != 0 || a.HasTarget {
		t.Errorf("Cached plan should be dropped after cleaning")
	}
	if a.Pos != dirt {
		t.Errorf("Cleaning must not move the agent, pos = %v", a.Pos)
	}
}

// TestStepAgent_ReturnThreshold pins the reserve inequality on a 5x5
// open grid with home at (0,4): the trip costs 4, so battery 15 keeps
// seeking (15-10 > 4) while battery 13 turns home (13-10 <= 4).
func TestStepAgent_ReturnThreshold(t *testing.T) {
	build := func(battery int) (*World, *core.Agent) {
		w := buildWorld(5, 5)
		home := core.Coord{X: 0, Y: 4}
		w.Grid.AddStation(home)
		a := core.NewAgent(0, home)
		a.Pos = core.Coord{X: 0, Y: 0}
		a.Battery = battery
		return w, a
	}

	w, a := build(15)
	if got := StepAgent(w, a); got != core.BehaviorSeek {
		t.Errorf("battery 15: StepAgent = %v, want Seek (reserve still covers the trip)", got)
	}

	w, a = build(13)
	if got := StepAgent(w, a); got != core.BehaviorReturn {
		t.Fatalf("battery 13: StepAgent = %v, want Return", got)
	}
	if !a.Returning {
		t.Errorf("battery 13: returning flag not set")
	}
	if a.Pos != (core.Coord{X: 0, Y: 1}) {
		t.Errorf("battery 13: Pos = %v, want one step home (0,1)", a.Pos)
	}
	if a.Battery != 12 {
		t.Errorf("battery 13: Battery = %d after the step, want 12", a.Battery)
	}
	if a.Movements != 1 {
		t.Errorf("battery 13: Movements = %d, want 1", a.Movements)
	}
}

func TestStepAgent_ReturnStallsWhenHomeUnreachable(t *testing.T) {
	w := buildWorld(7, 7)
	home := core.Coord{X: 3, Y: 3}
	w.Grid.AddStation(home)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			w.Grid.AddObstacle(core.Coord{X: home.X + dx, Y: home.Y + dy})
		}
	}

	a := core.NewAgent(0, home)
	a.Pos = core.Coord{X: 0, Y: 0}
	a.Battery = 5 // unreachable home counts as infinitely far, so Return fires

	for tick := 0; tick < 3; tick++ {
		if got := StepAgent(w, a); got != core.BehaviorReturn {
			t.Fatalf("tick %d: StepAgent = %v, want Return", tick, got)
		}
	}
	if a.Pos != (core.Coord{X: 0, Y: 0}) {
		t.Errorf("stalled agent moved to %v", a.Pos)
	}
	if a.Battery != 5 {
		t.Errorf("stalled agent lost battery: %d", a.Battery)
	}
	if a.Movements != 0 {
		t.Errorf("stalled agent counted movements: %d", a.Movements)
	}
}

func TestStepAgent_DepletedIdles(t *testing.T) {
	w := buildWorld(5, 5)
	dirt := core.Coord{X: 2, Y: 2}
	w.Grid.AddTarget(dirt)

	a := core.NewAgent(0, core.Coord{X: 0, Y: 0})
	a.Pos = dirt
	a.Battery = 0

	if got := StepAgent(w, a); got != core.BehaviorIdle {
		t.Fatalf("StepAgent = %v, want Idle at zero battery", got)
	}
	if !w.Grid.IsTarget(dirt) {
		t.Errorf("Depleted agent cleaned a cell")
	}
	if a.Pos != dirt || a.Movements != 0 {
		t.Errorf("Depleted agent acted: pos=%v movements=%d", a.Pos, a.Movements)
	}
}

func TestStepAgent_SeekReplansWhenTargetGone(t *testing.T) {
	w := buildWorld(7, 7)
	stale := core.Coord{X: 6, Y: 0}
	live := core.Coord{X: 0, Y: 3}
	w.Grid.AddTarget(live)

	// Cached plan still points at a target someone else already cleaned.
	a := core.NewAgent(0, core.Coord{X: 0, Y: 0})
	a.Path = []core.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}}
	a.Target = stale
	a.HasTarget = true

	if got := StepAgent(w, a); got != core.BehaviorSeek {
		t.Fatalf("StepAgent = %v, want Seek", got)
	}
	if !a.HasTarget || a.Target != live {
		t.Errorf("Target = %v (has=%v), want replan onto %v", a.Target, a.HasTarget, live)
	}
	if a.Pos != (core.Coord{X: 0, Y: 1}) {
		t.Errorf("Pos = %v, want (0,1): first step toward the live target, not the stale one", a.Pos)
	}
}

func TestStepAgent_SeekHoldsWhenNothingReachable(t *testing.T) {
	w := buildWorld(7, 7)
	ringed := core.Coord{X: 5, Y: 5}
	w.Grid.AddTarget(ringed)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			w.Grid.AddObstacle(core.Coord{X: ringed.X + dx, Y: ringed.Y + dy})
		}
	}

	a := core.NewAgent(0, core.Coord{X: 0, Y: 0})

	if got := StepAgent(w, a); got != core.BehaviorSeek {
		t.Fatalf("StepAgent = %v, want Seek", got)
	}
	if a.Pos != (core.Coord{X: 0, Y: 0}) || a.Movements != 0 {
		t.Errorf("Agent moved with no reachable target: pos=%v", a.Pos)
	}
	if a.Battery != core.BatteryFull {
		t.Errorf("Holding position should not drain battery, got %d", a.Battery)
	}
}

func TestStepAgent_SeekFollowsFreshPlanWithoutReplanning(t *testing.T) {
	w := buildWorld(7, 7)
	target := core.Coord{X: 3, Y: 0}
	w.Grid.AddTarget(target)

	a := core.NewAgent(0, core.Coord{X: 0, Y: 0})
	a.Path = []core.Coord{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	a.Target = target
	a.HasTarget = true

	if got := StepAgent(w, a); got != core.BehaviorSeek {
		t.Fatalf("StepAgent = %v, want Seek", got)
	}
	if a.Pos != (core.Coord{X: 1, Y: 0}) {
		t.Errorf("Pos = %v, want (1,0) following the cached path", a.Pos)
	}
	if len(a.Path) != 2 {
		t.Errorf("Path length = %d, want 2 cells left", len(a.Path))
	}
}

// TestStepAgent_CleanDuringReturnThenResumes verifies that cleaning a
// cell passed over mid-return drops the cached path but the agent plans
// home again on its next activation instead of stalling.
func TestStepAgent_CleanDuringReturnThenResumes(t *testing.T) {
	w := buildWorld(9, 1)
	home := core.Coord{X: 0, Y: 0}
	w.Grid.AddStation(home)
	dirt := core.Coord{X: 4, Y: 0}
	w.Grid.AddTarget(dirt)

	a := core.NewAgent(0, home)
	a.Pos = dirt
	a.Battery = 12 // 12-10 <= 4, deep in return territory
	a.Returning = true
	a.Path = []core.Coord{{X: 3, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	// Standing on dirt: Cleaning suppresses Returning and clears the plan.
	if got := StepAgent(w, a); got != core.BehaviorClean {
		t.Fatalf("first activation = %v, want Clean", got)
	}
	if len(a.Path) != 0 {
		t.Fatalf("plan should be cleared by cleaning")
	}

	// Next activation replans the way home and moves.
	if got := StepAgent(w, a); got != core.BehaviorReturn {
		t.Fatalf("second activation = %v, want Return", got)
	}
	if a.Pos != (core.Coord{X: 3, Y: 0}) {
		t.Errorf("Pos = %v, want (3,0) heading home again", a.Pos)
	}
}
