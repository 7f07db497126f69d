package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// TickStats is one row of the per-tick series, collected at every tick
// boundary starting with tick 0.
type TickStats struct {
	Tick           int     `json:"tick"`
	DirtyRemaining int     `json:"dirty_remaining"`
	AvgBattery     float64 `json:"avg_battery"`
	TotalMovements int     `json:"total_movements"`
	CellsCleaned   int     `json:"cells_cleaned"`
	TotalCharges   int     `json:"total_charges"`
}

// AgentStats summarizes one agent at the end of a run.
type AgentStats struct {
	ID           int `json:"id"`
	Movements    int `json:"movements"`
	CellsCleaned int `json:"cells_cleaned"`
	TimesCharged int `json:"times_charged"`
	FinalBattery int `json:"final_battery"`
}

// Metrics collects the results of a run.
type Metrics struct {
	// Identity
	RunID     string    `json:"run_id"`
	Scenario  string    `json:"scenario"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Outcome
	TicksRun int  `json:"ticks_run"`
	AllClean bool `json:"all_clean"`

	// Cleaning
	InitialDirt    int     `json:"initial_dirt"`
	CellsCleaned   int     `json:"cells_cleaned"`
	DirtyRemaining int     `json:"dirty_remaining"`
	CleanedPct     float64 `json:"cleaned_pct"`

	// Fleet totals
	TotalMovements int     `json:"total_movements"`
	TotalCharges   int     `json:"total_charges"`
	AvgBattery     float64 `json:"avg_battery"`

	// Breakdown
	Agents []AgentStats `json:"agents"`
	Series []TickStats  `json:"series"`
}

// WriteSummary prints the end-of-run statistics block.
func (m *Metrics) WriteSummary(w io.Writer) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "FINAL SIMULATION STATISTICS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Global ---")
	fmt.Fprintf(w, "Ticks run: %d\n", m.TicksRun)
	fmt.Fprintf(w, "Agents: %d\n", len(m.Agents))
	fmt.Fprintf(w, "Initial dirty cells: %d\n", m.InitialDirt)
	fmt.Fprintf(w, "Cells cleaned: %d\n", m.CellsCleaned)
	fmt.Fprintf(w, "Dirty cells remaining: %d\n", m.DirtyRemaining)
	fmt.Fprintf(w, "Cleaned: %.1f%%\n", m.CleanedPct)
	fmt.Fprintf(w, "Total movements: %d\n", m.TotalMovements)
	fmt.Fprintf(w, "Total charges: %d\n", m.TotalCharges)
	fmt.Fprintf(w, "Final average battery: %.1f%%\n", m.AvgBattery)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Per agent ---")
	for _, a := range m.Agents {
		fmt.Fprintf(w, "Agent %d: movements=%d, charges=%d, cleaned=%d, battery=%d%%\n",
			a.ID, a.Movements, a.TimesCharged, a.CellsCleaned, a.FinalBattery)
	}
	fmt.Fprintln(w, "============================================================")
}

// Export writes the metrics to a JSON file.
func (m *Metrics) Export(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
