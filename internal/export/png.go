package export

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/nor-os/plugboard/internal/board"
	"github.com/nor-os/plugboard/pkg/area"
	"github.com/nor-os/plugboard/pkg/drawutil"
	"github.com/nor-os/plugboard/pkg/graph"
)

// Cell-to-pixel scale for PNG output.
const (
	charWidth  = 8.0
	charHeight = 16.0
	fontSize   = 12.0
)

// PNG renders the board into a PNG file. Cells map to charWidth x
// charHeight pixel blocks so proportions match the terminal view.
func PNG(path string, ed *graph.Editor, positions map[string]area.Point) error {
	r, ok := bounds(ed, positions)
	if !ok {
		return fmt.Errorf("export: empty board")
	}
	r = r.Inset(-margin)

	w := int(float64(r.Dx()) * charWidth)
	h := int(float64(r.Dy()) * charHeight)
	dc := gg.NewContext(w, h)

	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("export: parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	px := func(cellX, cellY int) (float64, float64) {
		return (float64(cellX-r.Min.X) + 0.5) * charWidth,
			(float64(cellY-r.Min.Y) + 0.5) * charHeight
	}

	// Connections first so boxes cover them.
	for _, c := range ed.Connections() {
		from, ok1 := socketAt(ed, positions, c.Source, graph.SideOutput, c.SourceOutput)
		to, ok2 := socketAt(ed, positions, c.Target, graph.SideInput, c.TargetInput)
		if !ok1 || !ok2 {
			continue
		}
		x1, y1 := px(from.X, from.Y)
		x2, y2 := px(to.X, to.Y)
		dc.SetLineWidth(1.0)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		drawArrowhead(dc, x1, y1, x2, y2)
	}

	// Node boxes with label and socket dots.
	for _, n := range ed.Nodes() {
		box := board.BoxFor(n, positions[n.ID])
		bx := float64(box.Min.X-r.Min.X) * charWidth
		by := float64(box.Min.Y-r.Min.Y) * charHeight
		bw := float64(box.Dx()) * charWidth
		bh := float64(box.Dy()) * charHeight

		dc.SetColor(color.White)
		dc.DrawRectangle(bx, by, bw, bh)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1.0)
		dc.DrawRectangle(bx, by, bw, bh)
		dc.Stroke()

		dc.DrawString(n.Label, bx+charWidth, by+charHeight)

		for i, p := range n.Inputs() {
			pt := drawutil.SocketPoint(box, drawutil.SocketLeft, i)
			drawSocket(dc, px, pt.X, pt.Y, len(ed.ConnectionsTo(n.ID, p.Key)) > 0)
		}
		for i, p := range n.Outputs() {
			pt := drawutil.SocketPoint(box, drawutil.SocketRight, i)
			drawSocket(dc, px, pt.X, pt.Y, len(ed.ConnectionsFrom(n.ID, p.Key)) > 0)
		}
	}

	return dc.SavePNG(path)
}

// drawArrowhead fills a triangle at (tx, ty) pointing away from (fx, fy).
func drawArrowhead(dc *gg.Context, fx, fy, tx, ty float64) {
	dx := tx - fx
	dy := ty - fy
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	arrowSize := 6.0
	arrowAngle := 0.5 // radians

	baseX1 := tx - arrowSize*dx + arrowSize*dy*arrowAngle
	baseY1 := ty - arrowSize*dy - arrowSize*dx*arrowAngle
	baseX2 := tx - arrowSize*dx - arrowSize*dy*arrowAngle
	baseY2 := ty - arrowSize*dy + arrowSize*dx*arrowAngle

	dc.MoveTo(tx, ty)
	dc.LineTo(baseX1, baseY1)
	dc.LineTo(baseX2, baseY2)
	dc.ClosePath()
	dc.Fill()
}

func drawSocket(dc *gg.Context, px func(int, int) (float64, float64), cellX, cellY int, connected bool) {
	x, y := px(cellX, cellY)
	dc.DrawCircle(x, y, 3)
	if connected {
		dc.Fill()
	} else {
		dc.SetColor(color.White)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawCircle(x, y, 3)
		dc.Stroke()
	}
}
