package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/sweepsim/internal/core"
	"github.com/elektrokombinacija/sweepsim/internal/vis/interact"
)

// DrawTrail draws the fading walked trail ending at the agent's current
// position. Older segments are thinner and more transparent.
func DrawTrail(gtx layout.Context, cells []core.Coord, headX, headY float64, camera *interact.Camera, baseColor color.NRGBA, maxWidth float32) {
	pts := make([]f32.Point, 0, len(cells)+1)
	for _, c := range cells {
		wx, wy := CellCenter(c)
		sx, sy := camera.WorldToScreen(wx, wy)
		pts = append(pts, f32.Pt(sx, sy))
	}
	sx, sy := camera.WorldToScreen(headX, headY)
	pts = append(pts, f32.Pt(sx, sy))

	n := len(pts)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		col := baseColor
		col.A = uint8(50 + float64(i)/float64(n)*150)
		w := maxWidth * camera.Zoom * (0.3 + 0.7*float32(i)/float32(n))

		drawPathSegment(gtx, pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y, w, col)
	}
}

// DrawPlannedPath draws the remaining cached path from the agent's
// current position, dim and thin.
func DrawPlannedPath(gtx layout.Context, headX, headY float64, cells []core.Coord, camera *interact.Camera, col color.NRGBA) {
	if len(cells) == 0 {
		return
	}
	dim := col
	dim.A = 80
	w := float32(1.5) * camera.Zoom

	x1, y1 := camera.WorldToScreen(headX, headY)
	for _, c := range cells {
		wx, wy := CellCenter(c)
		x2, y2 := camera.WorldToScreen(wx, wy)
		drawPathSegment(gtx, x1, y1, x2, y2, w, dim)
		x1, y1 = x2, y2
	}
}

func drawPathSegment(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}

	dx /= length
	dy /= length
	px := -dy * width / 2
	py := dx * width / 2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()

	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}
