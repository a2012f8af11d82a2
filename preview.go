package atlasc

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// preview is a minimal static Gio window that shows a finished atlas
// sheet with every sprite's SheetRect outlined, and, in debug mode, each
// sprite's mesh wireframe drawn over the packed pixels. Unlike the
// teacher's animated seam-carving GUI (gui.go/draw.go upstream), a
// texture atlas build has no in-progress frames to stream: the window
// renders exactly one static frame of the finished result and exits on
// Escape or a close request.
type preview struct {
	atlas *Atlas
	debug bool
}

// ShowPreview opens a window showing atlas's packed sheet, with every
// sprite's SheetRect outlined and, when debug is set, its mesh
// wireframe drawn over the packed pixels. It blocks until the window is
// closed. Only invoked when --preview is set, after a successful build.
func ShowPreview(atlas *Atlas, debug bool) error {
	p := &preview{atlas: atlas, debug: debug}
	return p.run()
}

func (p *preview) run() error {
	w := new(app.Window)
	w.Option(
		app.Title("atlasc preview"),
		app.Size(unit.Dp(p.atlas.Width), unit.Dp(p.atlas.Height)),
	)
	w.Perform(system.ActionCenter)

	sheetOp := paint.NewImageOp(p.atlas.Sheet)
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				event, ok := gtx.Event(key.Filter{Name: key.NameEscape})
				if !ok {
					break
				}
				if ke, ok := event.(key.Event); ok && ke.Name == key.NameEscape {
					w.Perform(system.ActionClose)
				}
			}

			widget.Image{Src: sheetOp, Fit: widget.Contain}.Layout(gtx)

			for _, s := range p.atlas.Sprites {
				drawRectOutline(gtx, s.SheetRect, color.NRGBA{R: 0x2f, G: 0xf3, B: 0xe0, A: 0xff})
				if p.debug {
					drawLabel(gtx, s.SheetRect.Min, s.Name, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
					if s.Mesh != nil {
						drawWireframe(gtx, s.Mesh, color.NRGBA{R: 0xff, G: 0x66, B: 0x00, A: 0xff})
					}
				}
			}

			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			return e.Err
		}
	}
}

func pt(p image.Point) f32.Point {
	return f32.Point{X: float32(p.X), Y: float32(p.Y)}
}

// drawRectOutline strokes the 4 edges of r onto the current frame.
func drawRectOutline(gtx layout.Context, r image.Rectangle, col color.NRGBA) {
	corners := [5]image.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
		r.Min,
	}
	for i := 0; i < 4; i++ {
		strokeLine(gtx, corners[i], corners[i+1], col)
	}
}

// drawWireframe strokes every edge of every triangle in m, translating
// sprite-local positions into sheet coordinates via its UVs.
func drawWireframe(gtx layout.Context, m *Mesh, col color.NRGBA) {
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.UVs[m.Indices[i]]
		b := m.UVs[m.Indices[i+1]]
		c := m.UVs[m.Indices[i+2]]
		strokeLine(gtx, a, b, col)
		strokeLine(gtx, b, c, col)
		strokeLine(gtx, c, a, col)
	}
}

// drawLabel stamps text at pos (a sprite's SheetRect.Min) using the
// fixed 7x13 bitmap face from golang.org/x/image/font/basicfont;
// basicfont needs no shaping or hinting for short ASCII sprite names,
// so it is used directly rather than going through Gio's full text
// shaper.
func drawLabel(gtx layout.Context, pos image.Point, text string, col color.NRGBA) {
	img := renderLabel(text, col)
	labelOp := paint.NewImageOp(img)

	defer op.Offset(pos).Push(gtx.Ops).Pop()
	labelOp.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// renderLabel rasterizes text into a tightly cropped RGBA bitmap using
// the golang.org/x/image font face basicfont.Face7x13.
func renderLabel(text string, col color.NRGBA) *image.RGBA {
	face := basicfont.Face7x13
	metrics := face.Metrics()

	d := &font.Drawer{Src: image.NewUniform(col), Face: face}
	w := d.MeasureString(text).Ceil()
	h := metrics.Height.Ceil()
	if w <= 0 {
		w = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d.Dst = img
	d.Dot = fixed.Point26_6{X: 0, Y: metrics.Ascent}
	d.DrawString(text)
	return img
}

func strokeLine(gtx layout.Context, a, b image.Point, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.Move(pt(a))
	path.Line(pt(b).Sub(pt(a)))

	defer clip.Stroke{Path: path.End(), Width: 1}.Op().Push(gtx.Ops).Pop()
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}
