// Package main provides scenario generation for cleaning-fleet benchmarks.
// Generates deterministic layouts with configurable parameters.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/elektrokombinacija/sweepsim/internal/config"
	"github.com/elektrokombinacija/sweepsim/internal/core"
)

func main() {
	// Parse flags
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	agents := flag.Int("agents", 4, "Number of agents")
	width := flag.Int("width", 20, "Grid width")
	height := flag.Int("height", 20, "Grid height")
	dirt := flag.Int("dirt", 30, "Dirty percentage of the free cells")
	obstacles := flag.Int("obstacles", 10, "Obstacle percentage of all cells")
	mode := flag.String("mode", core.ModeFleet, "Dock placement: single or fleet")
	maxTicks := flag.Int("max-ticks", 1000, "Tick budget per run")
	outputDir := flag.String("output", "testdata", "Output directory")
	scalingMode := flag.Bool("scaling", false, "Generate scaling test layouts (1, 2, 4, 8, 16, 32 agents)")

	flag.Parse()

	if *mode != core.ModeSingle && *mode != core.ModeFleet {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", *mode)
		os.Exit(1)
	}

	// Create output directory
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	var scenarios []*core.Scenario

	if *scalingMode {
		// Generate scaling test suite
		scalingSizes := []int{1, 2, 4, 8, 16, 32}
		for _, size := range scalingSizes {
			// Grid size scales with sqrt of agents
			gridSize := int(math.Ceil(math.Sqrt(float64(size)) * 8))
			if gridSize < 10 {
				gridSize = 10
			}

			params := core.LayoutParams{
				Width:       gridSize,
				Height:      gridSize,
				Agents:      size,
				DirtPct:     *dirt,
				ObstaclePct: *obstacles,
				Mode:        core.ModeFleet,
				MaxTicks:    *maxTicks * size,
				Seed:        *seed,
			}

			scenarios = append(scenarios, core.RandomScenario(params))
		}
	} else {
		// Generate single layout
		params := core.LayoutParams{
			Width:       *width,
			Height:      *height,
			Agents:      *agents,
			DirtPct:     *dirt,
			ObstaclePct: *obstacles,
			Mode:        *mode,
			MaxTicks:    *maxTicks,
			Seed:        *seed,
		}

		scenarios = append(scenarios, core.RandomScenario(params))
	}

	// Write layouts to files
	for _, sc := range scenarios {
		filename := filepath.Join(*outputDir, sc.Name+".yaml")
		if err := config.SaveScenario(filename, sc); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing layout %s: %v\n", filename, err)
			continue
		}

		fmt.Printf("Generated: %s (%d agents, %d dirty cells, %dx%d grid)\n",
			filename, len(sc.Starts), len(sc.Targets), sc.Width, sc.Height)
	}
}
