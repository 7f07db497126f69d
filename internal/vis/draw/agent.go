package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/vis/interact"
)

// Battery portrayal colors.
var (
	ColorBatteryHigh = color.NRGBA{R: 80, G: 200, B: 120, A: 255}
	ColorBatteryMid  = color.NRGBA{R: 230, G: 190, B: 60, A: 255}
	ColorBatteryLow  = color.NRGBA{R: 220, G: 70, B: 70, A: 255}
	ColorCharging    = color.NRGBA{R: 120, G: 200, B: 255, A: 120}
)

// Per-agent accent colors for trails and path overlays.
var agentPalette = []color.NRGBA{
	{R: 100, G: 200, B: 255, A: 255},
	{R: 255, G: 150, B: 100, A: 255},
	{R: 200, G: 100, B: 255, A: 255},
	{R: 120, G: 220, B: 140, A: 255},
	{R: 240, G: 120, B: 180, A: 255},
	{R: 170, G: 170, B: 90, A: 255},
}

// AgentColor returns a stable accent color for agent idx.
func AgentColor(idx int) color.NRGBA {
	return agentPalette[idx%len(agentPalette)]
}

// BatteryColor maps charge to the traffic-light scheme.
func BatteryColor(battery int) color.NRGBA {
	switch {
	case battery > 60:
		return ColorBatteryHigh
	case battery > 20:
		return ColorBatteryMid
	default:
		return ColorBatteryLow
	}
}

// DrawAgent draws one agent at a fractional world position, colored by
// charge, with a halo while charging and a battery bar above.
func DrawAgent(gtx layout.Context, wx, wy float64, snap core.AgentSnapshot, camera *interact.Camera) {
	screenX, screenY := camera.WorldToScreen(wx, wy)
	r := float32(CellSize*0.32) * camera.Zoom

	if snap.Behavior == core.BehaviorCharge {
		drawFilledCircle(gtx, screenX, screenY, r+4*camera.Zoom, ColorCharging)
	}
	drawFilledCircle(gtx, screenX, screenY, r, BatteryColor(snap.Battery))

	drawBatteryBar(gtx, screenX, screenY-r-6*camera.Zoom, 2*r, 3*camera.Zoom, snap.Battery)
}

func drawBatteryBar(gtx layout.Context, cx, cy, width, height float32, battery int) {
	left := cx - width/2
	back := image.Rect(int(left), int(cy-height/2), int(left+width), int(cy+height/2))
	paint.FillShape(gtx.Ops, color.NRGBA{R: 20, G: 22, B: 25, A: 200}, clip.Rect(back).Op())

	fillW := width * float32(battery) / float32(core.BatteryFull)
	fill := image.Rect(int(left), int(cy-height/2), int(left+fillW), int(cy+height/2))
	paint.FillShape(gtx.Ops, BatteryColor(battery), clip.Rect(fill).Op())
}

func drawFilledCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(f32.Pt(cx+radius, cy))

	segments := 16
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		path.Line(f32.Pt(x-path.Pos().X, y-path.Pos().Y))
	}
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
