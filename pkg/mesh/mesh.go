// Package mesh строит полуреберную сетку по диаграмме Вороного. Многоугольник
// на бесконечности в сетку не попадает: его ребра становятся границей,
// а вершины на бесконечности - вершинами с лучом.
package mesh

import (
	"fmt"

	"github.com/0x0FACED/winged-fortune/pkg/voronoi"
	"github.com/0x0FACED/winged-fortune/pkg/winged"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

type VertexIndex int
type EdgeIndex int
type FaceIndex int

const (
	NoVertex VertexIndex = -1
	NoEdge   EdgeIndex   = -1
	NoFace   FaceIndex   = -1
)

// ErrNot2D - сетка вырождена (нет ни одной грани с границей).
var ErrNot2D = errors.New("mesh: not two-dimensional")

// Ray - вершина на бесконечности: луч из Origin в направлении Dir.
type Ray struct {
	Origin r2.Point
	Dir    r2.Point
}

type Vertex struct {
	Pos r2.Point
	// не nil для вершины на бесконечности, тогда Pos = Ray.Origin
	Ray *Ray
}

// Point - конечная точка вершины; вершина с лучом сдвигается на rayLength.
func (v Vertex) Point(rayLength float64) r2.Point {
	if v.Ray == nil {
		return v.Pos
	}
	return v.Ray.Origin.Add(v.Ray.Dir.Mul(rayLength))
}

// HalfEdge идет из Origin в Next.Origin, грань Face слева. Обход по Next -
// против часовой стрелки.
type HalfEdge struct {
	Origin VertexIndex
	Twin   EdgeIndex
	Next   EdgeIndex
	Prev   EdgeIndex
	Face   FaceIndex
}

type Face struct {
	Generator r2.Point
	Cookie    int
	// любое полуребро грани
	Edge EdgeIndex
}

type Mesh struct {
	Vertices []Vertex
	Edges    []HalfEdge
	Faces    []Face
}

func (e HalfEdge) String() string {
	return fmt.Sprintf("(o: %3d, t: %3d, n: %3d, p: %3d, f: %3d)", e.Origin, e.Twin, e.Next, e.Prev, e.Face)
}

// FromDiagram обходит отсортированные списки ребер всех обычных ячеек и
// собирает из них сетку. Вершины общие для соседних граней.
func FromDiagram(d *voronoi.Diagram) (*Mesh, error) {
	if d == nil || d.Graph == nil {
		return nil, errors.New("mesh: nil diagram")
	}
	m := &Mesh{}
	vertices := make(map[winged.VertexID]VertexIndex)
	// полуребра по ребру графа и грани
	type side struct {
		edge winged.EdgeID
		face winged.PolygonID
	}
	halves := make(map[side]EdgeIndex)

	vertexOf := func(v winged.VertexID) VertexIndex {
		if idx, ok := vertices[v]; ok {
			return idx
		}
		vert := d.Vertices[v]
		mv := Vertex{Pos: vert.Pt}
		if vert.AtInfinity {
			origin := d.RayOrigin(v)
			if origin == winged.NoVertex {
				mv.Pos = r2.Point{}
			} else {
				mv.Pos = d.Vertices[origin].Pt
			}
			mv.Ray = &Ray{Origin: mv.Pos, Dir: vert.Pt}
		}
		m.Vertices = append(m.Vertices, mv)
		idx := VertexIndex(len(m.Vertices) - 1)
		vertices[v] = idx
		return idx
	}

	for _, pid := range d.RealPolygons() {
		poly := d.Polygons[pid]
		face := FaceIndex(len(m.Faces))
		m.Faces = append(m.Faces, Face{Generator: poly.Generator, Cookie: poly.Cookie, Edge: NoEdge})

		n := len(poly.Edges)
		if n == 0 {
			continue
		}
		first := EdgeIndex(len(m.Edges))
		// список ребер по часовой стрелке, сетке нужен обход против
		for i := n - 1; i >= 0; i-- {
			eid := poly.Edges[i]
			edge := d.Edges[eid]
			origin := edge.End
			if edge.Left == pid {
				origin = edge.Start
			}
			m.Edges = append(m.Edges, HalfEdge{Origin: vertexOf(origin), Twin: NoEdge, Face: face})
			halves[side{edge: eid, face: pid}] = EdgeIndex(len(m.Edges) - 1)
		}
		for k := 0; k < n; k++ {
			cur := first + EdgeIndex(k)
			m.Edges[cur].Next = first + EdgeIndex((k+1)%n)
			m.Edges[cur].Prev = first + EdgeIndex((k+n-1)%n)
		}
		m.Faces[face].Edge = first
	}

	for s, idx := range halves {
		other := d.OtherPolygon(s.edge, s.face)
		if twin, ok := halves[side{edge: s.edge, face: other}]; ok {
			m.Edges[idx].Twin = twin
		}
	}

	if err := m.Verify(); err != nil {
		return nil, err
	}
	return m, nil
}

// Verify проверяет связность полуребер и что сетка двумерная: есть хотя бы
// одна грань и у каждой грани с границей не меньше трех полуребер.
func (m *Mesh) Verify() error {
	bounded := 0
	for i, e := range m.Edges {
		idx := EdgeIndex(i)
		if m.Edges[e.Next].Prev != idx || m.Edges[e.Prev].Next != idx {
			return errors.Errorf("mesh: half-edge %d: next/prev links are broken", idx)
		}
		if e.Twin != NoEdge {
			twin := m.Edges[e.Twin]
			if twin.Twin != idx {
				return errors.Errorf("mesh: half-edge %d: twin %d does not point back", idx, e.Twin)
			}
			if twin.Origin != m.Edges[e.Next].Origin {
				return errors.Errorf("mesh: half-edge %d: twin starts at %d, expected %d", idx, twin.Origin, m.Edges[e.Next].Origin)
			}
		}
	}
	for i, f := range m.Faces {
		if f.Edge == NoEdge {
			continue
		}
		count := 0
		e := f.Edge
		for {
			if m.Edges[e].Face != FaceIndex(i) {
				return errors.Errorf("mesh: face %d: half-edge %d belongs to face %d", i, e, m.Edges[e].Face)
			}
			count++
			e = m.Edges[e].Next
			if e == f.Edge {
				break
			}
			if count > len(m.Edges) {
				return errors.Errorf("mesh: face %d: loop does not close", i)
			}
		}
		if count < 3 {
			return errors.Wrapf(ErrNot2D, "face %d has %d half-edges", i, count)
		}
		bounded++
	}
	if bounded == 0 {
		return ErrNot2D
	}
	return nil
}

// FaceEdges - полуребра грани против часовой стрелки.
func (m *Mesh) FaceEdges(f FaceIndex) []EdgeIndex {
	start := m.Faces[f].Edge
	if start == NoEdge {
		return nil
	}
	var res []EdgeIndex
	for e := start; ; {
		res = append(res, e)
		e = m.Edges[e].Next
		if e == start {
			break
		}
	}
	return res
}

// FacePoints - вершины грани против часовой стрелки. Соседние вершины с
// лучами соединяются через точку, вынесенную наружу, как в
// winged.Graph.PolygonPoints.
func (m *Mesh) FacePoints(f FaceIndex, rayLength float64) []r2.Point {
	var pts []r2.Point
	for _, e := range m.FaceEdges(f) {
		v := m.Vertices[m.Edges[e].Origin]
		pts = append(pts, v.Point(rayLength))
		next := m.Vertices[m.Edges[m.Edges[e].Next].Origin]
		if v.Ray != nil && next.Ray != nil && m.Edges[e].Twin == NoEdge {
			dir := winged.InfinityDirection(v.Ray.Dir, next.Ray.Dir)
			mid := v.Point(rayLength).Add(next.Point(rayLength)).Mul(0.5)
			pts = append(pts, mid.Add(dir.Mul(rayLength)))
		}
	}
	return pts
}

// IsBoundary - полуребро без пары (ребро на бесконечности).
func (m *Mesh) IsBoundary(e EdgeIndex) bool {
	return m.Edges[e].Twin == NoEdge
}
