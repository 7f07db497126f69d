// Package core defines domain models for the sweepsim cleaning fleet.
package core

// Coord is a grid cell position.
type Coord struct {
	X, Y int
}

// AgentID is a unique agent identifier.
type AgentID int

// Battery domain and behavior tuning constants.
const (
	BatteryFull = 100 // battery domain is [0, BatteryFull]
	ChargeRate  = 5   // battery gained per charging tick
	MoveCost    = 1   // battery spent per cell moved
	CleanCost   = 1   // battery spent per cell cleaned

	// SafetyMargin is the battery reserve that triggers the return-home
	// behavior; it covers detours through targets encountered on the way.
	SafetyMargin = 10
)

// CellContent is a bitmask of what statically occupies a grid cell.
// Agents are tracked separately by position. A cell may hold a station
// and a target at once; obstacles exclude everything else.
type CellContent uint8

const (
	CellObstacle CellContent = 1 << iota
	CellTarget
	CellStation

	CellEmpty CellContent = 0
)

// Has reports whether all bits of flag are set.
func (c CellContent) Has(flag CellContent) bool {
	return c&flag == flag
}

func (c CellContent) String() string {
	if c == CellEmpty {
		return "Empty"
	}
	s := ""
	if c.Has(CellObstacle) {
		s += "Obstacle|"
	}
	if c.Has(CellTarget) {
		s += "Target|"
	}
	if c.Has(CellStation) {
		s += "Station|"
	}
	return s[:len(s)-1]
}

// Behavior identifies which arbiter action fired for an agent in a tick.
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorCharge
	BehaviorClean
	BehaviorReturn
	BehaviorSeek
)

func (b Behavior) String() string {
	return [...]string{"Idle", "Charge", "Clean", "Return", "Seek"}[b]
}
