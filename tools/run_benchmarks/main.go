// Package main provides a benchmark runner for cleaning-fleet scenarios.
// Runs every layout in a directory across several seeds and collects metrics.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/elektrokombinacija/sweepsim/internal/config"
	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/sim"
)

// BenchmarkResult stores results from a single run.
type BenchmarkResult struct {
	Timestamp      string
	CommitHash     string
	GoVersion      string
	OS             string
	Arch           string
	Scenario       string
	NumAgents      int
	GridSize       string
	Seed           int64
	RuntimeMs      float64
	AllClean       bool
	TicksRun       int
	CellsCleaned   int
	DirtyRemaining int
	CleanedPct     float64
	Movements      int
	Charges        int
}

// ScenarioMetrics holds per-scenario aggregated metrics.
type ScenarioMetrics struct {
	Name           string
	TotalRuns      int
	AllClean       int
	TotalRuntimeMs float64
	TotalTicks     int
	TotalPct       float64
	TotalCharges   int
}

func getGitCommit() string {
	cmd := exec.Command("git", "rev-parse", "--short", "HEAD")
	output, err := cmd.Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

// runScenario executes one simulation and collects its metrics.
func runScenario(sc *core.Scenario, seed int64) (*BenchmarkResult, error) {
	result := &BenchmarkResult{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		CommitHash: getGitCommit(),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		Scenario:   sc.Name,
		NumAgents:  len(sc.Starts),
		GridSize:   fmt.Sprintf("%dx%d", sc.Width, sc.Height),
		Seed:       seed,
	}

	run := *sc
	run.Seed = seed

	s, err := sim.NewSimulator(sim.Config{Scenario: &run})
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	m, err := s.Run(context.Background())
	if err != nil {
		return nil, err
	}
	result.RuntimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0

	result.AllClean = m.AllClean
	result.TicksRun = m.TicksRun
	result.CellsCleaned = m.CellsCleaned
	result.DirtyRemaining = m.DirtyRemaining
	result.CleanedPct = m.CleanedPct
	result.Movements = m.TotalMovements
	result.Charges = m.TotalCharges

	return result, nil
}

func writeCSV(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Header
	header := []string{
		"timestamp", "commit_hash", "go_version", "os", "arch",
		"scenario", "num_agents", "grid_size", "seed",
		"runtime_ms", "all_clean", "ticks_run",
		"cells_cleaned", "dirty_remaining", "cleaned_pct",
		"movements", "charges",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	// Data rows
	for _, r := range results {
		row := []string{
			r.Timestamp, r.CommitHash, r.GoVersion, r.OS, r.Arch,
			r.Scenario, fmt.Sprintf("%d", r.NumAgents), r.GridSize,
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprintf("%t", r.AllClean),
			fmt.Sprintf("%d", r.TicksRun),
			fmt.Sprintf("%d", r.CellsCleaned), fmt.Sprintf("%d", r.DirtyRemaining),
			fmt.Sprintf("%.1f", r.CleanedPct),
			fmt.Sprintf("%d", r.Movements), fmt.Sprintf("%d", r.Charges),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func printSummary(results []*BenchmarkResult) {
	// Aggregate by scenario
	metrics := make(map[string]*ScenarioMetrics)
	for _, r := range results {
		m, ok := metrics[r.Scenario]
		if !ok {
			m = &ScenarioMetrics{Name: r.Scenario}
			metrics[r.Scenario] = m
		}
		m.TotalRuns++
		if r.AllClean {
			m.AllClean++
		}
		m.TotalRuntimeMs += r.RuntimeMs
		m.TotalTicks += r.TicksRun
		m.TotalPct += r.CleanedPct
		m.TotalCharges += r.Charges
	}

	// Print summary table
	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-24s %8s %8s %12s %10s %10s %10s\n",
		"Scenario", "Runs", "Clean", "Avg Time(ms)", "AvgTicks", "AvgClean%", "Charges")
	fmt.Println(strings.Repeat("-", 88))

	var names []string
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := metrics[name]
		avgTime := m.TotalRuntimeMs / float64(m.TotalRuns)
		avgTicks := float64(m.TotalTicks) / float64(m.TotalRuns)
		avgPct := m.TotalPct / float64(m.TotalRuns)
		fmt.Printf("%-24s %8d %8d %12.2f %10.1f %9.1f%% %10d\n",
			m.Name, m.TotalRuns, m.AllClean, avgTime, avgTicks, avgPct, m.TotalCharges)
	}
}

func main() {
	inputDir := flag.String("input", "testdata", "Directory containing scenario YAML files")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "Output CSV file")
	repetitions := flag.Int("reps", 5, "Runs per scenario with consecutive seeds")
	baseSeed := flag.Int64("seed", 1000, "First seed of the sweep")
	agentFilter := flag.Int("agents", 0, "Run only layouts with this many agents (0 = all)")
	verbose := flag.Bool("verbose", false, "Verbose output")

	flag.Parse()

	// Create output directory
	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	// Find scenario files
	pattern := filepath.Join(*inputDir, "*.yaml")
	files, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding scenario files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "No scenario files found in %s\n", *inputDir)
		fmt.Fprintf(os.Stderr, "Run gen_layouts first: go run ./tools/gen_layouts -scaling -output testdata\n")
		os.Exit(1)
	}

	var results []*BenchmarkResult
	totalRuns := len(files) * *repetitions
	currentRun := 0

	fmt.Printf("Running benchmarks: %d layouts x %d seeds = %d runs\n",
		len(files), *repetitions, totalRuns)
	fmt.Println()

	for _, file := range files {
		sc, err := config.LoadScenario(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", file, err)
			continue
		}

		// Filter by agent count
		if *agentFilter > 0 && len(sc.Starts) != *agentFilter {
			continue
		}

		for rep := 0; rep < *repetitions; rep++ {
			currentRun++
			seed := *baseSeed + int64(rep)
			if *verbose {
				fmt.Printf("[%d/%d] %s / seed %d ... ", currentRun, totalRuns, sc.Name, seed)
			} else {
				fmt.Printf("\r[%d/%d] Running...", currentRun, totalRuns)
			}

			result, err := runScenario(sc, seed)
			if err != nil {
				fmt.Fprintf(os.Stderr, "\nError running %s: %v\n", sc.Name, err)
				continue
			}
			results = append(results, result)

			if *verbose {
				if result.AllClean {
					fmt.Printf("OK (%.2fms, %d ticks)\n", result.RuntimeMs, result.TicksRun)
				} else {
					fmt.Printf("PARTIAL (%.1f%% in %d ticks)\n", result.CleanedPct, result.TicksRun)
				}
			}
		}
	}

	fmt.Println()

	// Write results
	if err := writeCSV(results, *outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing results: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Results written to: %s\n", *outputFile)

	// Print summary
	printSummary(results)
}
