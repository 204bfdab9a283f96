package render

import (
	"io"

	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	svg "github.com/ajstarks/svgo/float"
)

// SVG рисует ячейки, ребра и сайты диаграммы.
func SVG(w io.Writer, d *voronoi.Diagram, v Viewport) error {
	if err := v.validate(); err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Start(v.Width, v.Height)
	canvas.Title("Voronoi diagram")
	canvas.Rect(0, 0, v.Width, v.Height, "fill:rgb(255,255,255)")

	canvas.Gstyle("stroke:none;fill-opacity:0.6")
	for i, cell := range Cells(d, v) {
		if len(cell.Points) < 3 {
			continue
		}
		xs := make([]float64, len(cell.Points))
		ys := make([]float64, len(cell.Points))
		for j, p := range cell.Points {
			q := v.flip(p)
			xs[j], ys[j] = q.X, q.Y
		}
		canvas.Polygon(xs, ys, "fill:"+cellColor(i))
	}
	canvas.Gend()

	canvas.Gstyle("stroke:rgb(40,40,40);stroke-width:1.5")
	for _, s := range Segments(d, v) {
		a, b := v.flip(s.A), v.flip(s.B)
		if s.Ray {
			canvas.Line(a.X, a.Y, b.X, b.Y, "stroke-dasharray:6,3")
		} else {
			canvas.Line(a.X, a.Y, b.X, b.Y)
		}
	}
	canvas.Gend()

	canvas.Gstyle("fill:black")
	for _, site := range d.Sites() {
		p := v.flip(site.Pt)
		canvas.Circle(p.X, p.Y, 3)
	}
	canvas.Gend()

	canvas.End()
	return nil
}
