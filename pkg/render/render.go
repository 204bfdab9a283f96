// Package render рисует диаграмму: SVG, PNG, GeoJSON и страница echarts.
// Неограниченные ячейки обрезаются прямоугольником Viewport.
package render

import (
	"fmt"

	"github.com/0x0FACED/winged-fortune/pkg/geom"
	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	"github.com/0x0FACED/winged-fortune/pkg/winged"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Viewport - видимая область [0, Width] x [0, Height] в координатах диаграммы.
type Viewport struct {
	Width, Height float64
	// длина, на которую продлеваются лучи перед обрезкой
	RayLength float64
}

func (v Viewport) validate() error {
	if v.Width <= 0 || v.Height <= 0 {
		return errors.Errorf("render: bad viewport %gx%g", v.Width, v.Height)
	}
	return nil
}

func (v Viewport) rayLength() float64 {
	if v.RayLength > 0 {
		return v.RayLength
	}
	return 4 * (v.Width + v.Height)
}

// Rect - прямоугольник области против часовой стрелки.
func (v Viewport) Rect() []r2.Point {
	return []r2.Point{{X: 0, Y: 0}, {X: v.Width, Y: 0}, {X: v.Width, Y: v.Height}, {X: 0, Y: v.Height}}
}

// flip переводит y диаграммы (вверх) в y картинки (вниз).
func (v Viewport) flip(p r2.Point) r2.Point {
	return r2.Point{X: p.X, Y: v.Height - p.Y}
}

// Cell - ячейка, обрезанная областью. Points против часовой стрелки,
// пусто, если ячейка вне области.
type Cell struct {
	Site      voronoi.Site
	Points    []r2.Point
	Unbounded bool
}

// Cells обрезает все обычные ячейки диаграммы областью v.
func Cells(d *voronoi.Diagram, v Viewport) []Cell {
	rect := v.Rect()
	res := make([]Cell, 0, len(d.Polygons))
	for _, id := range d.RealPolygons() {
		p := d.Polygons[id]
		cell := Cell{
			Site:      voronoi.Site{Pt: p.Generator, Cookie: p.Cookie},
			Unbounded: d.IsInfinite(id),
		}
		if len(p.Edges) == 0 {
			cell.Points = rect
			cell.Unbounded = true
		} else {
			pts := d.PolygonPoints(id, v.rayLength())
			geom.Reverse(pts)
			cell.Points = geom.ConvexIntersection(pts, rect)
		}
		res = append(res, cell)
	}
	return res
}

// Segment - видимое ребро диаграммы.
type Segment struct {
	A, B r2.Point
	Ray  bool
}

// Segments возвращает ребра (лучи обрезаны на длине луча), пересекающие
// область. Ребра на бесконечности не рисуются.
func Segments(d *voronoi.Diagram, v Viewport) []Segment {
	var res []Segment
	for i := range d.Edges {
		a, b, ok := d.Segment(winged.EdgeID(i), v.rayLength())
		if !ok {
			continue
		}
		a, b, ok = clipSegment(a, b, v)
		if !ok {
			continue
		}
		e := d.Edges[i]
		res = append(res, Segment{A: a, B: b, Ray: d.Vertices[e.Start].AtInfinity || d.Vertices[e.End].AtInfinity})
	}
	return res
}

// clipSegment - отсечение Лианга-Барски по прямоугольнику области.
func clipSegment(a, b r2.Point, v Viewport) (r2.Point, r2.Point, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	check := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}
	if !check(-d.X, a.X) || !check(d.X, v.Width-a.X) || !check(-d.Y, a.Y) || !check(d.Y, v.Height-a.Y) {
		return r2.Point{}, r2.Point{}, false
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}

// палитра ячеек
var palette = []string{
	"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462",
	"#b3de69", "#fccde5", "#d9d9d9", "#bc80bd", "#ccebc5", "#ffed6f",
}

func cellColor(i int) string {
	return palette[i%len(palette)]
}

// rgb разбирает цвет палитры #rrggbb.
func rgb(hex string) (r, g, b uint8) {
	var ri, gi, bi int
	fmt.Sscanf(hex, "#%02x%02x%02x", &ri, &gi, &bi)
	return uint8(ri), uint8(gi), uint8(bi)
}
