package winged

import (
	"github.com/pkg/errors"
)

// Validate проверяет согласованность графа: ссылки ребер на вершины и
// многоугольники, замкнутость обходов вокруг вершин и многоугольников,
// эйлерову характеристику. Возвращает первую найденную ошибку.
func (g *Graph) Validate() error {
	for i, e := range g.Edges {
		id := EdgeID(i)
		if !g.validVertex(e.Start) || !g.validVertex(e.End) {
			return errors.Errorf("edge %d: invalid endpoints %d-%d", id, e.Start, e.End)
		}
		if !g.validPolygon(e.Left) || !g.validPolygon(e.Right) {
			return errors.Errorf("edge %d: invalid polygons %d|%d", id, e.Left, e.Right)
		}
		if e.Left == e.Right {
			return errors.Errorf("edge %d: same polygon %d on both sides", id, e.Left)
		}
		if !contains(g.Vertices[e.Start].Edges, id) || !contains(g.Vertices[e.End].Edges, id) {
			return errors.Errorf("edge %d: missing from its vertices", id)
		}
		if !contains(g.Polygons[e.Left].Edges, id) || !contains(g.Polygons[e.Right].Edges, id) {
			return errors.Errorf("edge %d: missing from its polygons", id)
		}
		if e.Partner != NoEdge {
			if int(e.Partner) >= len(g.Edges) || g.Edges[e.Partner].Partner != id {
				return errors.Errorf("edge %d: partner %d does not point back", id, e.Partner)
			}
		}
	}

	for i, v := range g.Vertices {
		if err := g.validateVertexWalk(VertexID(i), v); err != nil {
			return err
		}
	}

	for i, p := range g.Polygons {
		if err := g.validatePolygonWalk(PolygonID(i), p); err != nil {
			return err
		}
	}

	if len(g.Polygons) > 0 {
		if chi := len(g.Vertices) - len(g.Edges) + len(g.Polygons); chi != 2 {
			return errors.Errorf("euler characteristic is %d, expected 2", chi)
		}
	}
	return nil
}

func (g *Graph) validateVertexWalk(id VertexID, v Vertex) error {
	if len(v.Edges) == 0 {
		return errors.Errorf("vertex %d: no edges", id)
	}
	start := v.Edges[0]
	e := start
	for step := 0; step < len(v.Edges); step++ {
		if v.Edges[step] != e {
			return errors.Errorf("vertex %d: walk reached edge %d at step %d, expected %d", id, e, step, v.Edges[step])
		}
		e = g.NextCWAround(e, id)
		if e == NoEdge {
			return errors.Errorf("vertex %d: broken cw link at step %d", id, step)
		}
	}
	if e != start {
		return errors.Errorf("vertex %d: cw walk does not close after %d edges", id, len(v.Edges))
	}

	// обратный обход должен быть зеркальным
	e = start
	for step := 0; step < len(v.Edges); step++ {
		e = g.NextCCWAround(e, id)
		want := v.Edges[(len(v.Edges)-1-step+len(v.Edges))%len(v.Edges)]
		if e != want {
			return errors.Errorf("vertex %d: ccw walk reached edge %d, expected %d", id, e, want)
		}
	}
	return nil
}

func (g *Graph) validatePolygonWalk(id PolygonID, p Polygon) error {
	if len(p.Edges) == 0 {
		return nil
	}
	start := p.Edges[0]
	e := start
	for step := 0; step < len(p.Edges); step++ {
		if p.Edges[step] != e {
			return errors.Errorf("polygon %d: walk reached edge %d at step %d, expected %d", id, e, step, p.Edges[step])
		}
		e = g.NextInPolygon(e, id)
		if e == NoEdge {
			return errors.Errorf("polygon %d: edge at step %d does not border it", id, step)
		}
	}
	if e != start {
		return errors.Errorf("polygon %d: edges do not form one cycle", id)
	}
	return nil
}

func (g *Graph) validVertex(v VertexID) bool {
	return v >= 0 && int(v) < len(g.Vertices)
}

func (g *Graph) validPolygon(p PolygonID) bool {
	return p >= 0 && int(p) < len(g.Polygons)
}

func contains(list []EdgeID, e EdgeID) bool {
	for _, x := range list {
		if x == e {
			return true
		}
	}
	return false
}
