// Command sweepsimvis runs a simulation and opens a playback viewer for it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/sweepsim/internal/config"
	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/sim"
	"github.com/elektrokombinacija/sweepsim/internal/vis"
)

func main() {
	scenarioFile := flag.String("scenario", "", "Scenario YAML file (overrides the layout flags)")
	width := flag.Int("width", 20, "Grid width")
	height := flag.Int("height", 20, "Grid height")
	agents := flag.Int("agents", 2, "Number of agents (fleet mode)")
	dirt := flag.Int("dirt", 30, "Dirty percentage of the free cells")
	obstacles := flag.Int("obstacles", 10, "Obstacle percentage of all cells")
	mode := flag.String("mode", core.ModeFleet, "Dock placement: single or fleet")
	maxTicks := flag.Int("max-ticks", 1000, "Tick budget per run")
	seed := flag.Int64("seed", 42, "Seed for layout and activation order")
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
		fmt.Fprintf(os.Stderr, "sweepsimvis: %v\n", err)
		os.Exit(1)
	}

	s, err := sim.NewSimulator(sim.Config{Scenario: sc, RecordHistory: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweepsimvis: %v\n", err)
		os.Exit(1)
	}
	m, err := s.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweepsimvis: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Recorded %d ticks on %s, %d/%d cells cleaned\n",
		m.TicksRun, sc.Name, m.CellsCleaned, m.InitialDirt)

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Sweepsim Playback"),
			app.Size(unit.Dp(1400), unit.Dp(900)),
		)

		application := vis.NewApp(s.History())
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
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
