package sim

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/sweepsim/internal/core"
)

// Config configures a simulation run.
type Config struct {
	// Scenario to run. Its seed drives both layout and activation order.
	Scenario *core.Scenario

	// RecordHistory keeps a per-tick snapshot trail for playback.
	RecordHistory bool

	// Verbose prints progress every 100 ticks.
	Verbose bool
}

// DefaultConfig returns a config running the standard random layout.
func DefaultConfig() Config {
	return Config{
		Scenario:      core.RandomScenario(core.DefaultLayoutParams()),
		RecordHistory: true,
	}
}

// Simulator owns one run: the grid, the agent roster, the activation rng
// and the collected metrics. A single goroutine drives it; activations
// within a tick run to completion sequentially, which is what makes the
// contested-target race well defined.
type Simulator struct {
	config Config
	world  *World
	agents []*core.Agent
	rng    *rand.Rand

	tick    int
	history *core.History
	metrics Metrics
}

// NewSimulator builds a simulator from a validated scenario.
func NewSimulator(config Config) (*Simulator, error) {
	sc := config.Scenario
	if sc == nil {
		return nil, fmt.Errorf("sim: config has no scenario")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	s := &Simulator{
		config: config,
		world:  &World{Grid: sc.BuildGrid()},
		agents: sc.BuildAgents(),
		rng:    rand.New(rand.NewSource(sc.Seed)),
	}
	s.metrics = Metrics{
		RunID:       uuid.NewString(),
		Scenario:    sc.Name,
		InitialDirt: s.world.Grid.Targets().Len(),
	}
	if config.RecordHistory {
		s.history = &core.History{Scenario: sc}
	}
	return s, nil
}

// Run executes ticks until every target is cleaned or the tick budget is
// exhausted.
func (s *Simulator) Run(ctx context.Context) (*Metrics, error) {
	s.metrics.StartTime = time.Now()
	s.collect(nil) // tick 0, before any agent acts

	for s.tick < s.config.Scenario.MaxTicks && s.world.Grid.Targets().Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.Step()

		if s.config.Verbose && s.tick%100 == 0 {
			fmt.Printf("tick %d: %d dirty cells left, %d cleaned\n",
				s.tick, s.world.Grid.Targets().Len(), s.world.CellsCleaned)
		}
	}

	s.metrics.EndTime = time.Now()
	s.finalize()
	return &s.metrics, nil
}

// Step advances the simulation one tick: every agent activates exactly
// once, in an order randomized per tick.
func (s *Simulator) Step() {
	order := s.rng.Perm(len(s.agents))
	behaviors := make([]core.Behavior, len(s.agents))
	for _, idx := range order {
		behaviors[idx] = StepAgent(s.world, s.agents[idx])
	}
	s.tick++
	s.collect(behaviors)
}

// Done reports whether the run has hit a terminal condition.
func (s *Simulator) Done() bool {
	return s.tick >= s.config.Scenario.MaxTicks || s.world.Grid.Targets().Len() == 0
}

// Tick returns the number of ticks executed so far.
func (s *Simulator) Tick() int {
	return s.tick
}

// World exposes the live world, for viewers that render mid-run.
func (s *Simulator) World() *World {
	return s.world
}

// Agents exposes the live agent roster.
func (s *Simulator) Agents() []*core.Agent {
	return s.agents
}

// History returns the recorded snapshot trail, nil unless recording was
// enabled.
func (s *Simulator) History() *core.History {
	return s.history
}

// Metrics returns the metrics collected so far. Totals are only complete
// once Run has returned.
func (s *Simulator) Metrics() *Metrics {
	s.finalize()
	return &s.metrics
}

// collect appends the per-tick stats row and, when enabled, the playback
// snapshot.
func (s *Simulator) collect(behaviors []core.Behavior) {
	row := TickStats{
		Tick:           s.tick,
		DirtyRemaining: s.world.Grid.Targets().Len(),
		CellsCleaned:   s.world.CellsCleaned,
	}
	for _, a := range s.agents {
		row.AvgBattery += float64(a.Battery)
		row.TotalMovements += a.Movements
		row.TotalCharges += a.Charges
	}
	if len(s.agents) > 0 {
		row.AvgBattery /= float64(len(s.agents))
	}
	s.metrics.Series = append(s.metrics.Series, row)

	if s.history != nil {
		s.history.Snapshots = append(s.history.Snapshots,
			core.Snapshot(s.tick, s.world.Grid, s.agents, behaviors))
	}
}

// finalize fills the run totals from the live state.
func (s *Simulator) finalize() {
	m := &s.metrics
	m.TicksRun = s.tick
	m.DirtyRemaining = s.world.Grid.Targets().Len()
	m.AllClean = m.DirtyRemaining == 0
	m.CellsCleaned = s.world.CellsCleaned
	if m.InitialDirt > 0 {
		m.CleanedPct = float64(m.CellsCleaned) / float64(m.InitialDirt) * 100
	}

	m.TotalMovements, m.TotalCharges, m.AvgBattery = 0, 0, 0
	m.Agents = m.Agents[:0]
	for _, a := range s.agents {
		m.TotalMovements += a.Movements
		m.TotalCharges += a.Charges
		m.AvgBattery += float64(a.Battery)
		m.Agents = append(m.Agents, AgentStats{
			ID:           int(a.ID),
			Movements:    a.Movements,
			CellsCleaned: a.Cleans,
			TimesCharged: a.Charges,
			FinalBattery: a.Battery,
		})
	}
	if len(s.agents) > 0 {
		m.AvgBattery /= float64(len(s.agents))
	}
}
