// Package widgets provides Gio UI widgets for the run viewer.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/vis/draw"
	"github.com/elektrokombinacija/sweepsim/internal/vis/interact"
	"github.com/elektrokombinacija/sweepsim/internal/vis/state"
)

// Workspace is the main 2D playback area.
type Workspace struct {
	state  *state.State
	camera *interact.Camera
	fitted bool
}

// NewWorkspace creates a new workspace widget.
func NewWorkspace(st *state.State, camera *interact.Camera) *Workspace {
	return &Workspace{
		state:  st,
		camera: camera,
	}
}

// Layout renders the workspace at the current playback cursor.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	w.handlePointerEvents(gtx)

	sc := w.state.Scenario()
	if sc == nil {
		return layout.Dimensions{Size: bounds}
	}

	// Fit the whole layout into view on the first frame.
	if !w.fitted {
		w.camera.FitBounds(0, 0,
			float64(sc.Width)*draw.CellSize, float64(sc.Height)*draw.CellSize,
			float32(bounds.X), float32(bounds.Y), 40)
		w.fitted = true
	}

	from, to, alpha := w.state.Frame()

	draw.DrawWorld(gtx, sc, from.Targets, w.camera)

	for i := range from.Agents {
		hx, hy := agentWorldPos(from.Agents[i], to.Agents[i], alpha)
		col := draw.AgentColor(i)

		if trail := w.state.Trail(i); len(trail) > 1 {
			draw.DrawTrail(gtx, trail, hx, hy, w.camera, col, 3)
		}
		draw.DrawPlannedPath(gtx, hx, hy, from.Agents[i].Path, w.camera, col)
	}

	// Agents on top of their trails.
	for i := range from.Agents {
		hx, hy := agentWorldPos(from.Agents[i], to.Agents[i], alpha)
		draw.DrawAgent(gtx, hx, hy, from.Agents[i], w.camera)
	}

	return layout.Dimensions{Size: bounds}
}

// agentWorldPos interpolates an agent's world position between two tick
// snapshots.
func agentWorldPos(from, to core.AgentSnapshot, alpha float64) (float64, float64) {
	fx, fy := draw.CellCenter(from.Pos)
	tx, ty := draw.CellCenter(to.Pos)
	return fx + (tx-fx)*alpha, fy + (ty-fy)*alpha
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.camera.HandleEvent(gtx, pe)
		}
	}
}
