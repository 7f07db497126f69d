// Command sweepsimtui watches a cleaning fleet run live in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/elektrokombinacija/sweepsim/internal/config"
	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/sim"
)

type Viewer struct {
	screen tcell.Screen
	sim    *sim.Simulator
	paused bool
}

func NewViewer(s *sim.Simulator) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Viewer{screen: screen, sim: s}, nil
}

func (v *Viewer) run(delay time.Duration) {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	v.draw()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !v.paused && !v.sim.Done() {
				v.sim.Step()
			}
			v.draw()
		}
	}
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
				v.draw()
			case 's':
				// Single step while paused.
				if v.paused && !v.sim.Done() {
					v.sim.Step()
					v.draw()
				}
			}
		}

	case *tcell.EventResize:
		v.screen.Sync()
	}

	return true
}

func (v *Viewer) draw() {
	v.screen.Clear()
	g := v.sim.World().Grid

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := core.Coord{X: x, Y: y}
			ch, style := '·', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
			switch {
			case g.IsObstacle(c):
				ch, style = '█', tcell.StyleDefault.Foreground(tcell.ColorGray)
			case g.IsStation(c):
				ch, style = 'H', tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
			case g.IsTarget(c):
				ch, style = '░', tcell.StyleDefault.Foreground(tcell.ColorYellow)
			}
			v.screen.SetContent(x, y+1, ch, nil, style)
		}
	}

	for _, a := range v.sim.Agents() {
		glyph := rune('0' + int(a.ID)%10)
		v.screen.SetContent(a.Pos.X, a.Pos.Y+1, glyph, nil, batteryStyle(a.Battery).Bold(true))
	}

	avg := 0
	for _, a := range v.sim.Agents() {
		avg += a.Battery
	}
	avg /= len(v.sim.Agents())

	status := fmt.Sprintf("tick %d  dirty %d  cleaned %d  avg battery %d%%",
		v.sim.Tick(), g.Targets().Len(), v.sim.World().CellsCleaned, avg)
	if v.sim.Done() {
		status += "  [done]"
	} else if v.paused {
		status += "  [paused]"
	}
	drawText(v.screen, 0, 0, status, tcell.StyleDefault.Bold(true))
	drawText(v.screen, 0, g.Height+1, "space pause   s step   q quit",
		tcell.StyleDefault.Foreground(tcell.ColorDarkGray))

	v.screen.Show()
}

// batteryStyle maps charge to the usual traffic-light portrayal.
func batteryStyle(battery int) tcell.Style {
	switch {
	case battery > 60:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case battery > 20:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, style)
		col++
	}
}

func (v *Viewer) cleanup() {
	v.screen.Fini()
}

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
	delay := flag.Duration("delay", 60*time.Millisecond, "Delay between ticks")
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
		fmt.Fprintf(os.Stderr, "sweepsimtui: %v\n", err)
		os.Exit(1)
	}

	s, err := sim.NewSimulator(sim.Config{Scenario: sc})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sweepsimtui: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	viewer.run(*delay)
	viewer.cleanup()

	fmt.Println()
	s.Metrics().WriteSummary(os.Stdout)
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
