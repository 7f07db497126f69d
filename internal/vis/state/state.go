// Package state manages playback state for the run viewer.
package state

import (
	"github.com/elektrokombinacija/sweepsim/internal/core"
)

// State holds everything the viewer renders: the recorded run and the
// playback cursor over it.
type State struct {
	History  *core.History
	Playback *PlaybackState
}

// NewState creates paused playback over a recorded run.
func NewState(h *core.History) *State {
	maxTick := 0.0
	if h != nil && h.Ticks() > 0 {
		maxTick = float64(h.Ticks() - 1)
	}
	return &State{
		History:  h,
		Playback: NewPlaybackState(maxTick),
	}
}

// Scenario returns the layout the run was recorded on.
func (s *State) Scenario() *core.Scenario {
	return s.History.Scenario
}

// Frame returns the snapshots bracketing the playback cursor and the
// interpolation factor between them.
func (s *State) Frame() (from, to core.TickSnapshot, alpha float64) {
	t := int(s.Playback.CurrentTick)
	alpha = s.Playback.CurrentTick - float64(t)
	return s.History.At(t), s.History.At(t + 1), alpha
}

// Current returns the snapshot at the playback cursor, rounded down.
func (s *State) Current() core.TickSnapshot {
	return s.History.At(int(s.Playback.CurrentTick))
}

// Trail returns the cells agent idx has visited up to the cursor, with
// consecutive repeats collapsed.
func (s *State) Trail(idx int) []core.Coord {
	if s.History == nil || s.History.Ticks() == 0 {
		return nil
	}
	end := int(s.Playback.CurrentTick)
	if end >= s.History.Ticks() {
		end = s.History.Ticks() - 1
	}

	var trail []core.Coord
	for t := 0; t <= end; t++ {
		snap := s.History.Snapshots[t]
		if idx >= len(snap.Agents) {
			break
		}
		pos := snap.Agents[idx].Pos
		if n := len(trail); n == 0 || trail[n-1] != pos {
			trail = append(trail, pos)
		}
	}
	return trail
}
