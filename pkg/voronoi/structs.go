package voronoi

import (
	"github.com/golang/geo/r2"
)

// Рабочие структуры построения. После buildWingedEdge они переносятся
// в winged.Graph и больше не нужны.

// fortunePoly - будущая ячейка диаграммы (или многоугольник на бесконечности).
type fortunePoly struct {
	site       Site
	index      int
	edges      []*fortuneEdge
	atInfinity bool
	// в ячейке могло появиться ребро нулевой длины
	zeroLength bool
}

type fortuneVertex struct {
	pt r2.Point
	// для вершины на бесконечности pt - единичное направление луча
	atInfinity bool
	edges      []*fortuneEdge
	dead       bool
}

// fortuneEdge - ребро между ячейками poly1 и poly2. Концы появляются по ходу
// сканирования: nil означает "еще не найден". Сторона (left/right)
// определяется только в конце, в orientEdges.
type fortuneEdge struct {
	start, end   *fortuneVertex
	poly1, poly2 *fortunePoly
	left, right  *fortunePoly
	partner      *fortuneEdge
	dead         bool
}

func (e *fortuneEdge) startResolved() bool { return e.start != nil }
func (e *fortuneEdge) endResolved() bool   { return e.end != nil }

// setVertex ставит найденную вершину в первый свободный конец ребра.
func (e *fortuneEdge) setVertex(v *fortuneVertex) {
	switch {
	case !e.startResolved():
		e.start = v
	case !e.endResolved():
		e.end = v
	default:
		internalf("edge %s|%s already has both endpoints", e.poly1.site, e.poly2.site)
	}
}

// isRay - ребро уходит в вершину на бесконечности.
func (e *fortuneEdge) isRay() bool {
	return e.end != nil && e.end.atInfinity
}

func (e *fortuneEdge) isInfinity() bool {
	return e.start != nil && e.start.atInfinity
}

func (e *fortuneEdge) otherVertex(v *fortuneVertex) *fortuneVertex {
	if e.start == v {
		return e.end
	}
	return e.start
}

func (e *fortuneEdge) otherPoly(p *fortunePoly) *fortunePoly {
	if e.poly1 == p {
		return e.poly2
	}
	return e.poly1
}

func (e *fortuneEdge) replaceVertex(old, v *fortuneVertex) {
	if e.start == old {
		e.start = v
	}
	if e.end == old {
		e.end = v
	}
}

func removeEdge(list []*fortuneEdge, e *fortuneEdge) []*fortuneEdge {
	for i, x := range list {
		if x == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func replaceEdge(list []*fortuneEdge, old *fortuneEdge, with ...*fortuneEdge) []*fortuneEdge {
	for i, x := range list {
		if x == old {
			res := make([]*fortuneEdge, 0, len(list)+len(with)-1)
			res = append(res, list[:i]...)
			res = append(res, with...)
			return append(res, list[i+1:]...)
		}
	}
	return list
}
