// Package winged хранит плоский граф в представлении "крылатых ребер":
// у каждого ребра две вершины, два многоугольника и четыре соседних ребра
// (CW/CCW предшественник и преемник). Все элементы лежат в массивах графа
// и ссылаются друг на друга индексами.
package winged

import (
	"github.com/golang/geo/r2"
)

type VertexID int
type EdgeID int
type PolygonID int

const (
	NoVertex  VertexID  = -1
	NoEdge    EdgeID    = -1
	NoPolygon PolygonID = -1
)

// Vertex - вершина графа. Если AtInfinity, то Pt - единичный вектор
// направления, в котором уходит луч.
type Vertex struct {
	Pt         r2.Point
	AtInfinity bool
	// ребра вокруг вершины по часовой стрелке
	Edges []EdgeID
}

// ConvertToReal возвращает конечную точку для отрисовки: для вершины на
// бесконечности это точка на расстоянии rayLength от origin.
func (v Vertex) ConvertToReal(origin r2.Point, rayLength float64) r2.Point {
	if !v.AtInfinity {
		return v.Pt
	}
	return origin.Add(v.Pt.Mul(rayLength))
}

// Edge - ребро от Start к End. Left и Right - многоугольники слева и справа
// по направлению Start->End. Succ-ссылки - соседи вокруг End,
// Pred-ссылки - соседи вокруг Start.
type Edge struct {
	Start, End  VertexID
	Left, Right PolygonID

	CWPred, CCWPred EdgeID
	CWSucc, CCWSucc EdgeID

	// вторая половина разрезанного бесконечного ребра
	Partner EdgeID
}

// Polygon - грань графа. Generator и Cookie имеют смысл только для
// обычных многоугольников (для диаграммы Вороного это сайт ячейки).
type Polygon struct {
	Generator  r2.Point
	Cookie     int
	AtInfinity bool
	// ребра по часовой стрелке
	Edges []EdgeID
}

type Graph struct {
	Vertices []Vertex
	Edges    []Edge
	Polygons []Polygon
}

func NewGraph() *Graph {
	return &Graph{}
}

func (g *Graph) AddVertex(pt r2.Point, atInfinity bool) VertexID {
	g.Vertices = append(g.Vertices, Vertex{Pt: pt, AtInfinity: atInfinity})
	return VertexID(len(g.Vertices) - 1)
}

// AddEdge добавляет ребро без ссылок на соседей; они заполняются позже.
func (g *Graph) AddEdge(start, end VertexID, left, right PolygonID) EdgeID {
	g.Edges = append(g.Edges, Edge{
		Start:   start,
		End:     end,
		Left:    left,
		Right:   right,
		CWPred:  NoEdge,
		CCWPred: NoEdge,
		CWSucc:  NoEdge,
		CCWSucc: NoEdge,
		Partner: NoEdge,
	})
	return EdgeID(len(g.Edges) - 1)
}

func (g *Graph) AddPolygon(p Polygon) PolygonID {
	g.Polygons = append(g.Polygons, p)
	return PolygonID(len(g.Polygons) - 1)
}

// Infinity возвращает многоугольник на бесконечности или NoPolygon.
func (g *Graph) Infinity() PolygonID {
	for i := range g.Polygons {
		if g.Polygons[i].AtInfinity {
			return PolygonID(i)
		}
	}
	return NoPolygon
}

// RealPolygons - все многоугольники, кроме многоугольника на бесконечности.
func (g *Graph) RealPolygons() []PolygonID {
	res := make([]PolygonID, 0, len(g.Polygons))
	for i := range g.Polygons {
		if !g.Polygons[i].AtInfinity {
			res = append(res, PolygonID(i))
		}
	}
	return res
}

func (g *Graph) OtherVertex(e EdgeID, v VertexID) VertexID {
	edge := g.Edges[e]
	switch v {
	case edge.Start:
		return edge.End
	case edge.End:
		return edge.Start
	}
	return NoVertex
}

func (g *Graph) OtherPolygon(e EdgeID, p PolygonID) PolygonID {
	edge := g.Edges[e]
	switch p {
	case edge.Left:
		return edge.Right
	case edge.Right:
		return edge.Left
	}
	return NoPolygon
}

// SharedVertex - общая вершина двух ребер или NoVertex.
func (g *Graph) SharedVertex(a, b EdgeID) VertexID {
	ea, eb := g.Edges[a], g.Edges[b]
	switch {
	case ea.End == eb.Start || ea.End == eb.End:
		return ea.End
	case ea.Start == eb.Start || ea.Start == eb.End:
		return ea.Start
	}
	return NoVertex
}

// NextCWAround - следующее по часовой стрелке ребро вокруг вершины v.
func (g *Graph) NextCWAround(e EdgeID, v VertexID) EdgeID {
	edge := g.Edges[e]
	switch v {
	case edge.End:
		return edge.CWSucc
	case edge.Start:
		return edge.CWPred
	}
	return NoEdge
}

// NextCCWAround - следующее против часовой стрелки ребро вокруг вершины v.
func (g *Graph) NextCCWAround(e EdgeID, v VertexID) EdgeID {
	edge := g.Edges[e]
	switch v {
	case edge.End:
		return edge.CCWSucc
	case edge.Start:
		return edge.CCWPred
	}
	return NoEdge
}

// NextInPolygon - следующее ребро при обходе многоугольника p по часовой
// стрелке (p остается справа).
func (g *Graph) NextInPolygon(e EdgeID, p PolygonID) EdgeID {
	edge := g.Edges[e]
	switch p {
	case edge.Right:
		return edge.CCWSucc
	case edge.Left:
		return edge.CCWPred
	}
	return NoEdge
}

// RayOrigin возвращает конечную вершину луча, уходящего в вершину v на
// бесконечности. Для конечной вершины возвращается она сама.
func (g *Graph) RayOrigin(v VertexID) VertexID {
	if !g.Vertices[v].AtInfinity {
		return v
	}
	for _, e := range g.Vertices[v].Edges {
		other := g.OtherVertex(e, v)
		if other != NoVertex && !g.Vertices[other].AtInfinity {
			return other
		}
	}
	return NoVertex
}

// RealPoint - конечная точка вершины; вершины на бесконечности сдвигаются на
// rayLength от начала своего луча.
func (g *Graph) RealPoint(v VertexID, rayLength float64) r2.Point {
	vert := g.Vertices[v]
	if !vert.AtInfinity {
		return vert.Pt
	}
	origin := g.RayOrigin(v)
	if origin == NoVertex {
		return vert.Pt.Mul(rayLength)
	}
	return vert.ConvertToReal(g.Vertices[origin].Pt, rayLength)
}

// PolygonPoints возвращает вершины многоугольника в порядке обхода по часовой
// стрелке, переводя вершины на бесконечности в конечные точки. Ребро на
// бесконечности заменяется двумя отрезками через точку, вынесенную на
// rayLength за его хорду.
func (g *Graph) PolygonPoints(p PolygonID, rayLength float64) []r2.Point {
	edges := g.Polygons[p].Edges
	if len(edges) < 2 {
		return nil
	}
	pts := make([]r2.Point, 0, len(edges)+2)
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		v := g.SharedVertex(e, next)
		if v == NoVertex {
			continue
		}
		pts = append(pts, g.RealPoint(v, rayLength))
		if g.IsInfinityEdge(next) && g.Edges[next].Left == p {
			far := g.RealPoint(g.OtherVertex(next, v), rayLength)
			mid := pts[len(pts)-1].Add(far).Mul(0.5)
			pts = append(pts, mid.Add(g.InfinityDirection(next).Mul(rayLength)))
		}
	}
	return pts
}

// IsInfinityEdge - оба конца ребра на бесконечности.
func (g *Graph) IsInfinityEdge(e EdgeID) bool {
	edge := g.Edges[e]
	return g.Vertices[edge.Start].AtInfinity && g.Vertices[edge.End].AtInfinity
}

// InfinityDirection - направление "середины" ребра на бесконечности, если
// идти от Start к End против часовой стрелки. Для ребра между параллельными
// лучами - их общее направление, между противоположными - поворот на 90
// градусов от направления Start.
func (g *Graph) InfinityDirection(e EdgeID) r2.Point {
	edge := g.Edges[e]
	return InfinityDirection(g.Vertices[edge.Start].Pt, g.Vertices[edge.End].Pt)
}

func InfinityDirection(from, to r2.Point) r2.Point {
	const tol = 1e-12
	cross := from.Cross(to)
	switch {
	case cross > tol:
		return from.Add(to).Normalize()
	case cross < -tol:
		return from.Add(to).Mul(-1).Normalize()
	case from.Dot(to) >= 0:
		return from
	default:
		return from.Ortho()
	}
}

// IsInfinite - уходит ли многоугольник на бесконечность.
func (g *Graph) IsInfinite(p PolygonID) bool {
	for _, e := range g.Polygons[p].Edges {
		edge := g.Edges[e]
		if g.Vertices[edge.Start].AtInfinity || g.Vertices[edge.End].AtInfinity {
			return true
		}
	}
	return false
}

// LinkWings заполняет CW/CCW ссылки всех ребер по спискам ребер вершин,
// которые должны быть упорядочены по часовой стрелке.
func (g *Graph) LinkWings() {
	for i := range g.Edges {
		e := &g.Edges[i]
		id := EdgeID(i)
		e.CWSucc, e.CCWSucc = g.neighbours(e.End, id)
		e.CWPred, e.CCWPred = g.neighbours(e.Start, id)
	}
}

// neighbours возвращает соседей ребра в списке вершины: следующего (CW) и
// предыдущего (CCW).
func (g *Graph) neighbours(v VertexID, e EdgeID) (cw, ccw EdgeID) {
	list := g.Vertices[v].Edges
	n := len(list)
	// обычный случай - вершина степени 3
	if n == 3 {
		switch e {
		case list[0]:
			return list[1], list[2]
		case list[1]:
			return list[2], list[0]
		case list[2]:
			return list[0], list[1]
		}
		return NoEdge, NoEdge
	}
	for i, x := range list {
		if x == e {
			return list[(i+1)%n], list[(i+n-1)%n]
		}
	}
	return NoEdge, NoEdge
}
