// Command sweepsim runs battery-constrained cleaning fleet simulations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/elektrokombinacija/sweepsim/internal/config"
	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/sim"
)

func main() {
	scenarioFile := flag.String("scenario", "", "Scenario YAML file (overrides the layout flags)")
	width := flag.Int("width", 20, "Grid width")
	height := flag.Int("height", 20, "Grid height")
	agents := flag.Int("agents", 1, "Number of agents (fleet mode)")
	dirt := flag.Int("dirt", 30, "Dirty percentage of the free cells")
	obstacles := flag.Int("obstacles", 10, "Obstacle percentage of all cells")
	mode := flag.String("mode", core.ModeSingle, "Dock placement: single or fleet")
	maxTicks := flag.Int("max-ticks", 1000, "Tick budget per run")
	seed := flag.Int64("seed", 42, "Seed for layout and activation order")
	metricsOut := flag.String("metrics-out", "", "Write run metrics JSON to this file")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	flag.Parse()

	sc, err := pickScenario(*scenarioFile, core.LayoutParams{
		Width:       *width,
		Height:      *height,
		Agents:      *agents,
		DirtPct:     *dirt,
		ObstaclePct: *obstacles,
		Mode:        *mode,
		MaxTicks:    *maxTicks,
		Seed:        *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweepsim: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Sweepsim: Battery-Constrained Cleaning Fleet ===")
	fmt.Printf("Scenario: %s\n", sc.Name)
	fmt.Printf("Grid %dx%d, %d agents, %d dirty cells, %d obstacles, budget %d ticks\n",
		sc.Width, sc.Height, len(sc.Starts), len(sc.Targets), len(sc.Obstacles), sc.MaxTicks)
	fmt.Println()

	s, err := sim.NewSimulator(sim.Config{Scenario: sc, Verbose: !*quiet})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweepsim: %v\n", err)
		os.Exit(1)
	}
	m, err := s.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweepsim: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	m.WriteSummary(os.Stdout)

	if *metricsOut != "" {
		if err := m.Export(*metricsOut); err != nil {
			fmt.Fprintf(os.Stderr, "sweepsim: write metrics: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nMetrics written to: %s\n", *metricsOut)
	}
}

// pickScenario loads the named file, or generates a random layout when
// no file is given.
func pickScenario(path string, params core.LayoutParams) (*core.Scenario, error) {
	if path != "" {
		return config.LoadScenario(path)
	}
	if params.Mode != core.ModeSingle && params.Mode != core.ModeFleet {
		return nil, fmt.Errorf("unknown mode %q", params.Mode)
	}
	return core.RandomScenario(params), nil
}
