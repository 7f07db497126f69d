// Package draw provides rendering functions for the run viewer.
package draw

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/vis/interact"
)

// CellSize is the world-unit size of one grid cell.
const CellSize = 50.0

// Cell colors.
var (
	ColorFloor    = color.NRGBA{R: 32, G: 35, B: 40, A: 255}
	ColorObstacle = color.NRGBA{R: 72, G: 76, B: 84, A: 255}
	ColorDirt     = color.NRGBA{R: 142, G: 100, B: 62, A: 255}
	ColorStation  = color.NRGBA{R: 70, G: 120, B: 200, A: 255}
	ColorGridLine = color.NRGBA{R: 45, G: 50, B: 56, A: 255}
)

// CellCenter returns the world position of a cell's center.
func CellCenter(c core.Coord) (float64, float64) {
	return (float64(c.X) + 0.5) * CellSize, (float64(c.Y) + 0.5) * CellSize
}

// DrawWorld renders the static layout plus the dirty cells still live at
// the playback cursor.
func DrawWorld(gtx layout.Context, sc *core.Scenario, dirty []core.Coord, camera *interact.Camera) {
	x1, y1 := camera.WorldToScreen(0, 0)
	x2, y2 := camera.WorldToScreen(float64(sc.Width)*CellSize, float64(sc.Height)*CellSize)
	paint.FillShape(gtx.Ops, ColorFloor, clip.Rect(image.Rect(int(x1), int(y1), int(x2), int(y2))).Op())

	for _, c := range dirty {
		FillCell(gtx, c, camera, ColorDirt)
	}
	for _, c := range sc.Stations {
		FillCell(gtx, c, camera, ColorStation)
	}
	for _, c := range sc.Obstacles {
		FillCell(gtx, c, camera, ColorObstacle)
	}

	drawGridLines(gtx, sc, camera)
}

// FillCell fills one grid cell with a slight inset.
func FillCell(gtx layout.Context, c core.Coord, camera *interact.Camera, col color.NRGBA) {
	const inset = CellSize * 0.04
	x1, y1 := camera.WorldToScreen(float64(c.X)*CellSize+inset, float64(c.Y)*CellSize+inset)
	x2, y2 := camera.WorldToScreen(float64(c.X+1)*CellSize-inset, float64(c.Y+1)*CellSize-inset)
	paint.FillShape(gtx.Ops, col, clip.Rect(image.Rect(int(x1), int(y1), int(x2), int(y2))).Op())
}

func drawGridLines(gtx layout.Context, sc *core.Scenario, camera *interact.Camera) {
	worldW := float64(sc.Width) * CellSize
	worldH := float64(sc.Height) * CellSize

	for x := 0; x <= sc.Width; x++ {
		sx, sy1 := camera.WorldToScreen(float64(x)*CellSize, 0)
		_, sy2 := camera.WorldToScreen(float64(x)*CellSize, worldH)
		paint.FillShape(gtx.Ops, ColorGridLine,
			clip.Rect(image.Rect(int(sx), int(sy1), int(sx)+1, int(sy2))).Op())
	}
	for y := 0; y <= sc.Height; y++ {
		sx1, sy := camera.WorldToScreen(0, float64(y)*CellSize)
		sx2, _ := camera.WorldToScreen(worldW, float64(y)*CellSize)
		paint.FillShape(gtx.Ops, ColorGridLine,
			clip.Rect(image.Rect(int(sx1), int(sy), int(sx2), int(sy)+1)).Op())
	}
}
