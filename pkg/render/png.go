package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/pkg/errors"
)

// Image рисует диаграмму в RGBA-картинку размера области.
func Image(d *voronoi.Diagram, v Viewport) (*image.RGBA, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	w, h := int(math.Ceil(v.Width)), int(math.Ceil(v.Height))
	m := image.NewRGBA(image.Rect(0, 0, w, h))

	gc := draw2dimg.NewGraphicContext(m)
	gc.SetFillColor(color.White)
	draw2dkit.Rectangle(gc, 0, 0, float64(w), float64(h))
	gc.Fill()

	for i, cell := range Cells(d, v) {
		if len(cell.Points) < 3 {
			continue
		}
		r, g, b := rgb(cellColor(i))
		gc.SetFillColor(color.RGBA{R: r, G: g, B: b, A: 255})
		p := v.flip(cell.Points[0])
		gc.MoveTo(p.X, p.Y)
		for _, q := range cell.Points[1:] {
			q = v.flip(q)
			gc.LineTo(q.X, q.Y)
		}
		gc.Close()
		gc.Fill()
	}

	gc.SetStrokeColor(color.RGBA{R: 40, G: 40, B: 40, A: 255})
	gc.SetLineWidth(1.5)
	for _, s := range Segments(d, v) {
		a, b := v.flip(s.A), v.flip(s.B)
		gc.MoveTo(a.X, a.Y)
		gc.LineTo(b.X, b.Y)
		gc.Stroke()
	}

	gc.SetFillColor(color.Black)
	for _, site := range d.Sites() {
		p := v.flip(site.Pt)
		draw2dkit.Circle(gc, p.X, p.Y, 3)
		gc.Fill()
	}
	return m, nil
}

// PNG кодирует картинку диаграммы в w.
func PNG(w io.Writer, d *voronoi.Diagram, v Viewport) error {
	m, err := Image(d, v)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, m), "render: encode png")
}
