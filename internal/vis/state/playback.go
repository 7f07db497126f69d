package state

import "time"

// PlaybackState manages replay timing over a recorded run. Time is
// measured in ticks; fractional values interpolate between snapshots.
type PlaybackState struct {
	CurrentTick float64 // Playback position in ticks
	MaxTick     float64 // Last recorded tick
	Speed       float64 // Ticks per second
	Playing     bool
	lastUpdate  time.Time
}

// NewPlaybackState creates a paused playback over maxTick ticks.
func NewPlaybackState(maxTick float64) *PlaybackState {
	return &PlaybackState{
		MaxTick:    maxTick,
		Speed:      8,
		lastUpdate: time.Now(),
	}
}

// TogglePlay toggles playback on/off.
func (p *PlaybackState) TogglePlay() {
	p.Playing = !p.Playing
	if p.Playing {
		p.lastUpdate = time.Now()
		// Restart from the beginning if at the end
		if p.CurrentTick >= p.MaxTick {
			p.CurrentTick = 0
		}
	}
}

// Pause stops playback.
func (p *PlaybackState) Pause() {
	p.Playing = false
}

// Reset rewinds to tick zero.
func (p *PlaybackState) Reset() {
	p.CurrentTick = 0
	p.Playing = false
}

// Advance moves playback forward by wall time elapsed since the last
// update.
func (p *PlaybackState) Advance() {
	if !p.Playing {
		return
	}

	now := time.Now()
	elapsed := now.Sub(p.lastUpdate).Seconds()
	p.lastUpdate = now

	p.CurrentTick += elapsed * p.Speed

	if p.CurrentTick >= p.MaxTick {
		p.CurrentTick = p.MaxTick
		p.Playing = false
	}
}

// SetTick jumps to the given tick, clamped to the recording.
func (p *PlaybackState) SetTick(t float64) {
	if t < 0 {
		t = 0
	}
	if t > p.MaxTick {
		t = p.MaxTick
	}
	p.CurrentTick = t
}

// StepForward pauses and advances to the next whole tick.
func (p *PlaybackState) StepForward() {
	p.Pause()
	p.SetTick(float64(int(p.CurrentTick)) + 1)
}

// StepBack pauses and rewinds to the previous whole tick.
func (p *PlaybackState) StepBack() {
	p.Pause()
	t := float64(int(p.CurrentTick))
	if t == p.CurrentTick {
		t--
	}
	p.SetTick(t)
}

// SetSpeed sets the playback rate in ticks per second.
func (p *PlaybackState) SetSpeed(speed float64) {
	if speed < 1 {
		speed = 1
	}
	if speed > 64 {
		speed = 64
	}
	p.Speed = speed
}

// Progress returns playback position as 0-1.
func (p *PlaybackState) Progress() float64 {
	if p.MaxTick <= 0 {
		return 0
	}
	return p.CurrentTick / p.MaxTick
}
