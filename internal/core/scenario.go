package core

import (
	"fmt"
	"math/rand"
)

// Placement modes for random scenario generation.
const (
	ModeSingle = "single" // one agent docked at (0,0)
	ModeFleet  = "fleet"  // N agents docked at random free cells
)

// Scenario is a complete runnable setup: the static world plus agent
// homes. Agent i starts at Starts[i] with Stations[i] as its home.
type Scenario struct {
	Name          string
	Width, Height int
	Obstacles     []Coord
	Targets       []Coord
	Stations      []Coord
	Starts        []Coord
	MaxTicks      int
	Seed          int64
}

// LayoutParams defines parameters for random scenario generation.
type LayoutParams struct {
	Width       int
	Height      int
	Agents      int
	DirtPct     int // percent of the free cells left after placement
	ObstaclePct int // percent of all cells
	Mode        string
	MaxTicks    int
	Seed        int64
}

// DefaultLayoutParams returns the standard 20x20 single-agent layout.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		Width:       20,
		Height:      20,
		Agents:      1,
		DirtPct:     30,
		ObstaclePct: 10,
		Mode:        ModeSingle,
		MaxTicks:    1000,
		Seed:        42,
	}
}

// Validate checks scenario consistency before a run.
func (sc *Scenario) Validate() error {
	if sc.Width <= 0 || sc.Height <= 0 {
		return fmt.Errorf("scenario %q: invalid dimensions %dx%d", sc.Name, sc.Width, sc.Height)
	}
	if len(sc.Starts) == 0 {
		return fmt.Errorf("scenario %q: no agents", sc.Name)
	}
	if len(sc.Stations) != len(sc.Starts) {
		return fmt.Errorf("scenario %q: %d stations for %d agents", sc.Name, len(sc.Stations), len(sc.Starts))
	}
	if sc.MaxTicks <= 0 {
		return fmt.Errorf("scenario %q: max ticks must be positive, got %d", sc.Name, sc.MaxTicks)
	}

	inBounds := func(c Coord) bool {
		return c.X >= 0 && c.X < sc.Width && c.Y >= 0 && c.Y < sc.Height
	}
	blocked := make(map[Coord]bool, len(sc.Obstacles))
	for _, c := range sc.Obstacles {
		if !inBounds(c) {
			return fmt.Errorf("scenario %q: obstacle %v out of bounds", sc.Name, c)
		}
		blocked[c] = true
	}
	for _, c := range sc.Targets {
		if !inBounds(c) {
			return fmt.Errorf("scenario %q: target %v out of bounds", sc.Name, c)
		}
		if blocked[c] {
			return fmt.Errorf("scenario %q: target %v placed on an obstacle", sc.Name, c)
		}
	}
	for _, c := range sc.Stations {
		if !inBounds(c) {
			return fmt.Errorf("scenario %q: station %v out of bounds", sc.Name, c)
		}
		if blocked[c] {
			return fmt.Errorf("scenario %q: station %v placed on an obstacle", sc.Name, c)
		}
	}
	for _, c := range sc.Starts {
		if !inBounds(c) {
			return fmt.Errorf("scenario %q: agent start %v out of bounds", sc.Name, c)
		}
		if blocked[c] {
			return fmt.Errorf("scenario %q: agent start %v placed on an obstacle", sc.Name, c)
		}
	}
	return nil
}

// BuildGrid constructs the grid described by the scenario.
func (sc *Scenario) BuildGrid() *Grid {
	g := NewGrid(sc.Width, sc.Height)
	for _, c := range sc.Obstacles {
		g.AddObstacle(c)
	}
	for _, c := range sc.Stations {
		g.AddStation(c)
	}
	for _, c := range sc.Targets {
		g.AddTarget(c)
	}
	return g
}

// BuildAgents constructs the agent roster described by the scenario.
func (sc *Scenario) BuildAgents() []*Agent {
	agents := make([]*Agent, len(sc.Starts))
	for i, start := range sc.Starts {
		a := NewAgent(AgentID(i), start)
		a.Home = sc.Stations[i]
		agents[i] = a
	}
	return agents
}

// RandomScenario generates a scenario from layout parameters. Obstacles
// are drawn first from the whole grid, then agent docks, then dirt over
// the cells still free, so dirt density is relative to the free area.
func RandomScenario(p LayoutParams) *Scenario {
	rng := rand.New(rand.NewSource(p.Seed))

	agents := p.Agents
	if p.Mode == ModeSingle {
		agents = 1
	}

	origin := Coord{0, 0}
	free := make([]Coord, 0, p.Width*p.Height)
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := Coord{x, y}
			if p.Mode == ModeSingle && c == origin {
				continue // the dock cell stays clear
			}
			free = append(free, c)
		}
	}
	rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})

	numObstacles := p.Width * p.Height * p.ObstaclePct / 100
	if numObstacles > len(free) {
		numObstacles = len(free)
	}
	obstacles := free[:numObstacles]
	free = free[numObstacles:]

	var starts []Coord
	if p.Mode == ModeSingle {
		starts = []Coord{origin}
	} else {
		if agents > len(free) {
			agents = len(free)
		}
		starts = free[:agents]
		free = free[agents:]
	}

	numDirt := len(free) * p.DirtPct / 100
	dirt := free[:numDirt]

	return &Scenario{
		Name:      fmt.Sprintf("sweep_%d_%dx%d_%d", agents, p.Width, p.Height, p.Seed),
		Width:     p.Width,
		Height:    p.Height,
		Obstacles: append([]Coord(nil), obstacles...),
		Targets:   append([]Coord(nil), dirt...),
		Stations:  append([]Coord(nil), starts...),
		Starts:    append([]Coord(nil), starts...),
		MaxTicks:  p.MaxTicks,
		Seed:      p.Seed,
	}
}
