package voronoi

import (
	"github.com/0x0FACED/winged-fortune/pkg/winged"
	"github.com/golang/geo/r2"
)

// Diagram - диаграмма Вороного в виде графа крылатых ребер. Ячейки идут в
// порядке обработки сайтов, многоугольник на бесконечности последний.
type Diagram struct {
	*winged.Graph
}

// buildWingedEdge переносит рабочие структуры в граф и связывает крылья.
func (f *fortune) buildWingedEdge() *Diagram {
	g := winged.NewGraph()

	polyIDs := make(map[*fortunePoly]winged.PolygonID, len(f.polys)+1)
	for _, p := range f.polys {
		polyIDs[p] = g.AddPolygon(winged.Polygon{Generator: p.site.Pt, Cookie: p.site.Cookie})
	}
	if f.polyInf != nil {
		polyIDs[f.polyInf] = g.AddPolygon(winged.Polygon{Cookie: -1, AtInfinity: true})
	}

	vertexIDs := make(map[*fortuneVertex]winged.VertexID, len(f.vertices))
	for _, v := range f.vertices {
		if v.dead {
			continue
		}
		vertexIDs[v] = g.AddVertex(v.pt, v.atInfinity)
	}

	edgeIDs := make(map[*fortuneEdge]winged.EdgeID, len(f.edges))
	for _, e := range f.edges {
		if e.dead {
			continue
		}
		start, ok1 := vertexIDs[e.start]
		end, ok2 := vertexIDs[e.end]
		assert(ok1 && ok2, "edge %s|%s points to a removed vertex", e.poly1.site, e.poly2.site)
		edgeIDs[e] = g.AddEdge(start, end, polyIDs[e.left], polyIDs[e.right])
	}
	for e, id := range edgeIDs {
		if e.partner != nil {
			g.Edges[id].Partner = edgeIDs[e.partner]
		}
	}

	for p, id := range polyIDs {
		g.Polygons[id].Edges = edgeList(p.edges, edgeIDs)
	}
	for v, id := range vertexIDs {
		g.Vertices[id].Edges = edgeList(v.edges, edgeIDs)
	}

	g.LinkWings()
	if err := g.Validate(); err != nil {
		internalf("winged-edge graph is inconsistent: %v", err)
	}
	return &Diagram{Graph: g}
}

func edgeList(edges []*fortuneEdge, ids map[*fortuneEdge]winged.EdgeID) []winged.EdgeID {
	res := make([]winged.EdgeID, 0, len(edges))
	for _, e := range edges {
		id, ok := ids[e]
		assert(ok, "removed edge %s|%s is still referenced", e.poly1.site, e.poly2.site)
		res = append(res, id)
	}
	return res
}

// Sites - генераторы ячеек в порядке ячеек.
func (d *Diagram) Sites() []Site {
	var res []Site
	for _, id := range d.RealPolygons() {
		p := d.Polygons[id]
		res = append(res, Site{Pt: p.Generator, Cookie: p.Cookie})
	}
	return res
}

// Cell - ячейка сайта с данным Cookie или NoPolygon.
func (d *Diagram) Cell(cookie int) winged.PolygonID {
	for _, id := range d.RealPolygons() {
		if d.Polygons[id].Cookie == cookie {
			return id
		}
	}
	return winged.NoPolygon
}

// Neighbors - соседние ячейки (через общее ребро), без многоугольника на
// бесконечности.
func (d *Diagram) Neighbors(p winged.PolygonID) []winged.PolygonID {
	var res []winged.PolygonID
	seen := make(map[winged.PolygonID]bool)
	for _, e := range d.Polygons[p].Edges {
		other := d.OtherPolygon(e, p)
		if other == winged.NoPolygon || d.Polygons[other].AtInfinity || seen[other] {
			continue
		}
		seen[other] = true
		res = append(res, other)
	}
	return res
}

// FiniteVertices - точки всех конечных вершин.
func (d *Diagram) FiniteVertices() []r2.Point {
	var res []r2.Point
	for _, v := range d.Vertices {
		if !v.AtInfinity {
			res = append(res, v.Pt)
		}
	}
	return res
}

// Segment - отрезок ребра для отрисовки. Лучи обрезаются на rayLength,
// ребра на бесконечности пропускаются (ok = false).
func (d *Diagram) Segment(e winged.EdgeID, rayLength float64) (a, b r2.Point, ok bool) {
	edge := d.Edges[e]
	if d.IsInfinityEdge(e) {
		return r2.Point{}, r2.Point{}, false
	}
	return d.RealPoint(edge.Start, rayLength), d.RealPoint(edge.End, rayLength), true
}
