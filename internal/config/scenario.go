// Package config reads and writes scenario files in YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/sweepsim/internal/core"
)

// CoordDef is one grid cell in a scenario file.
type CoordDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ScenarioDef mirrors core.Scenario field for field.
type ScenarioDef struct {
	Name      string     `yaml:"name"`
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	Obstacles []CoordDef `yaml:"obstacles,omitempty"`
	Dirt      []CoordDef `yaml:"dirt"`
	Stations  []CoordDef `yaml:"stations"`
	Starts    []CoordDef `yaml:"starts"`
	MaxTicks  int        `yaml:"max_ticks"`
	Seed      int64      `yaml:"seed"`
}

// LoadScenario reads a scenario file and validates it.
func LoadScenario(path string) (*core.Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var def ScenarioDef
	if err := yaml.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	sc := def.Scenario()
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return sc, nil
}

// SaveScenario writes a scenario file that LoadScenario round-trips.
func SaveScenario(path string, sc *core.Scenario) error {
	b, err := yaml.Marshal(FromScenario(sc))
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Scenario converts the file form into the domain form.
func (d *ScenarioDef) Scenario() *core.Scenario {
	return &core.Scenario{
		Name:      d.Name,
		Width:     d.Width,
		Height:    d.Height,
		Obstacles: coordsIn(d.Obstacles),
		Targets:   coordsIn(d.Dirt),
		Stations:  coordsIn(d.Stations),
		Starts:    coordsIn(d.Starts),
		MaxTicks:  d.MaxTicks,
		Seed:      d.Seed,
	}
}

// FromScenario converts the domain form into the file form.
func FromScenario(sc *core.Scenario) *ScenarioDef {
	return &ScenarioDef{
		Name:      sc.Name,
		Width:     sc.Width,
		Height:    sc.Height,
		Obstacles: coordsOut(sc.Obstacles),
		Dirt:      coordsOut(sc.Targets),
		Stations:  coordsOut(sc.Stations),
		Starts:    coordsOut(sc.Starts),
		MaxTicks:  sc.MaxTicks,
		Seed:      sc.Seed,
	}
}

func coordsIn(defs []CoordDef) []core.Coord {
	if len(defs) == 0 {
		return nil
	}
	out := make([]core.Coord, len(defs))
	for i, d := range defs {
		out[i] = core.Coord{X: d.X, Y: d.Y}
	}
	return out
}

func coordsOut(coords []core.Coord) []CoordDef {
	if len(coords) == 0 {
		return nil
	}
	out := make([]CoordDef, len(coords))
	for i, c := range coords {
		out[i] = CoordDef{X: c.X, Y: c.Y}
	}
	return out
}
