package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/elektrokombinacija/sweepsim/internal/core"
)

const sampleYAML = `
name: office
width: 8
height: 6
obstacles:
  - {x: 3, y: 0}
  - {x: 3, y: 1}
dirt:
  - {x: 5, y: 2}
  - {x: 1, y: 4}
stations:
  - {x: 0, y: 0}
starts:
  - {x: 0, y: 0}
max_ticks: 500
seed: 42
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(writeFile(t, "office.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if sc.Name != "office" || sc.Width != 8 || sc.Height != 6 {
		t.Errorf("header = %s %dx%d, want office 8x6", sc.Name, sc.Width, sc.Height)
	}
	if want := []core.Coord{{X: 3, Y: 0}, {X: 3, Y: 1}}; !reflect.DeepEqual(sc.Obstacles, want) {
		t.Errorf("Obstacles = %v, want %v", sc.Obstacles, want)
	}
	if want := []core.Coord{{X: 5, Y: 2}, {X: 1, Y: 4}}; !reflect.DeepEqual(sc.Targets, want) {
		t.Errorf("Targets = %v, want %v", sc.Targets, want)
	}
	if sc.MaxTicks != 500 || sc.Seed != 42 {
		t.Errorf("MaxTicks=%d Seed=%d, want 500 and 42", sc.MaxTicks, sc.Seed)
	}
}

func TestLoadScenario_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"malformed yaml", "width: [oops"},
		{"dirt out of bounds", strings.Replace(sampleYAML, "{x: 5, y: 2}", "{x: 50, y: 2}", 1)},
		{"start on obstacle", strings.Replace(sampleYAML, "starts:\n  - {x: 0, y: 0}", "starts:\n  - {x: 3, y: 0}", 1)},
		{"station count mismatch", strings.Replace(sampleYAML, "stations:\n  - {x: 0, y: 0}\n", "stations: []\n", 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadScenario(writeFile(t, "bad.yaml", tc.body)); err == nil {
				t.Errorf("LoadScenario accepted %s", tc.name)
			}
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("LoadScenario accepted a missing file")
	}
}

func TestSaveScenario_RoundTrip(t *testing.T) {
	sc := core.RandomScenario(core.LayoutParams{
		Width: 10, Height: 10, Agents: 2,
		DirtPct: 20, ObstaclePct: 10,
		Mode: core.ModeFleet, MaxTicks: 300, Seed: 17,
	})

	path := filepath.Join(t.TempDir(), "generated.yaml")
	if err := SaveScenario(path, sc); err != nil {
		t.Fatalf("SaveScenario: %v", err)
	}
	got, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario: %v", err)
	}
	if !reflect.DeepEqual(got, sc) {
		t.Errorf("round trip changed the scenario:\n got %+v\nwant %+v", got, sc)
	}
}
