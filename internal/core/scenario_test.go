package core

import "testing"

func validScenario() *Scenario {
	return &Scenario{
		Name:     "test",
		Width:    5,
		Height:   5,
		Targets:  []Coord{{2, 2}, {4, 4}},
		Stations: []Coord{{0, 0}},
		Starts:   []Coord{{0, 0}},
		MaxTicks: 100,
	}
}

func TestScenarioValidate(t *testing.T) {
	if err := validScenario().Validate(); err != nil {
		t.Fatalf("valid scenario rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Scenario)
	}{
		{"zero width", func(sc *Scenario) { sc.Width = 0 }},
		{"no agents", func(sc *Scenario) { sc.Starts = nil; sc.Stations = nil }},
		{"station count mismatch", func(sc *Scenario) { sc.Stations = append(sc.Stations, Coord{1, 1}) }},
		{"zero max ticks", func(sc *Scenario) { sc.MaxTicks = 0 }},
		{"obstacle out of bounds", func(sc *Scenario) { sc.Obstacles = []Coord{{7, 0}} }},
		{"target out of bounds", func(sc *Scenario) { sc.Targets = append(sc.Targets, Coord{0, -1}) }},
		{"target on obstacle", func(sc *Scenario) { sc.Obstacles = []Coord{{2, 2}} }},
		{"start on obstacle", func(sc *Scenario) { sc.Obstacles = []Coord{{0, 0}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := validScenario()
			tt.mutate(sc)
			if err := sc.Validate(); err == nil {
				t.Errorf("Validate accepted a scenario with %s", tt.name)
			}
		})
	}
}

func TestRandomScenarioSingleMode(t *testing.T) {
	p := DefaultLayoutParams()
	p.Width, p.Height = 10, 10
	sc := RandomScenario(p)

	if err := sc.Validate(); err != nil {
		t.Fatalf("generated scenario invalid: %v", err)
	}
	if len(sc.Starts) != 1 || sc.Starts[0] != (Coord{0, 0}) {
		t.Fatalf("single mode starts = %v, want one agent at (0,0)", sc.Starts)
	}
	if sc.Stations[0] != sc.Starts[0] {
		t.Errorf("agent should dock on its own station, station=%v start=%v", sc.Stations[0], sc.Starts[0])
	}

	wantObstacles := 10 * 10 * p.ObstaclePct / 100
	if len(sc.Obstacles) != wantObstacles {
		t.Errorf("obstacles = %d, want %d", len(sc.Obstacles), wantObstacles)
	}
	freeAfter := 10*10 - 1 - wantObstacles
	wantDirt := freeAfter * p.DirtPct / 100
	if len(sc.Targets) != wantDirt {
		t.Errorf("targets = %d, want %d", len(sc.Targets), wantDirt)
	}

	// Placement classes never overlap.
	seen := make(map[Coord]string)
	place := func(kind string, coords []Coord) {
		for _, c := range coords {
			if prev, ok := seen[c]; ok {
				t.Errorf("cell %v placed as both %s and %s", c, prev, kind)
			}
			seen[c] = kind
		}
	}
	place("obstacle", sc.Obstacles)
	place("dirt", sc.Targets)
	place("dock", sc.Starts)
}

func TestRandomScenarioFleetMode(t *testing.T) {
	p := DefaultLayoutParams()
	p.Mode = ModeFleet
	p.Agents = 4
	sc := RandomScenario(p)

	if err := sc.Validate(); err != nil {
		t.Fatalf("generated scenario invalid: %v", err)
	}
	if len(sc.Starts) != 4 {
		t.Fatalf("fleet starts = %d, want 4", len(sc.Starts))
	}
	for i := range sc.Starts {
		if sc.Starts[i] != sc.Stations[i] {
			t.Errorf("agent %d not docked on its station: start=%v station=%v",
				i, sc.Starts[i], sc.Stations[i])
		}
	}
}

func TestRandomScenarioDeterministic(t *testing.T) {
	p := DefaultLayoutParams()
	p.Mode = ModeFleet
	p.Agents = 3
	p.Seed = 7

	a := RandomScenario(p)
	b := RandomScenario(p)

	if len(a.Obstacles) != len(b.Obstacles) || len(a.Targets) != len(b.Targets) {
		t.Fatalf("same seed produced different layout sizes")
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Fatalf("same seed produced different obstacles at %d: %v vs %v",
				i, a.Obstacles[i], b.Obstacles[i])
		}
	}
	for i := range a.Targets {
		if a.Targets[i] != b.Targets[i] {
			t.Fatalf("same seed produced different dirt at %d: %v vs %v",
				i, a.Targets[i], b.Targets[i])
		}
	}
	for i := range a.Starts {
		if a.Starts[i] != b.Starts[i] {
			t.Fatalf("same seed produced different docks at %d: %v vs %v",
				i, a.Starts[i], b.Starts[i])
		}
	}
}
