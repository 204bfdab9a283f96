package voronoi

import (
	"math"
	"sort"

	"github.com/0x0FACED/winged-fortune/pkg/geom"
	"github.com/0x0FACED/winged-fortune/pkg/winged"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// finish доводит результат сканирования до замкнутого графа.
func (f *fortune) finish() {
	f.fixInfiniteEdges()
	f.removeZeroLengthEdges()
	f.orientEdges()
	f.closeAtInfinity()
	f.sortPolygonEdges()
	f.sortVertexEdges()
}

// fixInfiniteEdges дает каждому незаконченному ребру вершину на
// бесконечности. Ребро без обоих концов разрезается в середине между
// генераторами на два противоположных луча.
func (f *fortune) fixInfiniteEdges() {
	var rays, splits int
	for _, e := range append([]*fortuneEdge(nil), f.edges...) {
		if e.dead {
			continue
		}
		switch {
		case !e.startResolved() && !e.endResolved():
			f.splitEdge(e)
			splits++
		case !e.endResolved():
			f.closeRay(e)
			rays++
		}
	}
	f.log.Info("[finish] Бесконечные ребра", zap.Int("rays", rays), zap.Int("split", splits))
}

func (f *fortune) splitEdge(e *fortuneEdge) {
	g1, g2 := e.poly1.site.Pt, e.poly2.site.Pt
	mid := f.newVertex(g1.Add(g2).Mul(0.5))
	dir := g2.Sub(g1).Ortho().Normalize()

	half := &fortuneEdge{poly1: e.poly1, poly2: e.poly2}
	f.edges = append(f.edges, half)
	e.partner, half.partner = half, e

	for _, p := range [2]*fortunePoly{e.poly1, e.poly2} {
		p.edges = replaceEdge(p.edges, e, e, half)
	}

	e.start = mid
	e.end = f.newInfiniteVertex(dir)
	half.start = mid
	half.end = f.newInfiniteVertex(dir.Mul(-1))

	mid.edges = append(mid.edges, e, half)
	e.end.edges = append(e.end.edges, e)
	half.end.edges = append(half.end.edges, half)
}

// closeRay направляет ребро с одним концом от третьей ячейки вершины:
// вдоль луча точки все дальше от нее, чем от своих генераторов.
func (f *fortune) closeRay(e *fortuneEdge) {
	v := e.start
	g1, g2 := e.poly1.site.Pt, e.poly2.site.Pt
	dir := g2.Sub(g1).Ortho().Normalize()

	var best float64
	found := false
	for _, other := range v.edges {
		for _, p := range [2]*fortunePoly{other.poly1, other.poly2} {
			if p == e.poly1 || p == e.poly2 {
				continue
			}
			dot := dir.Dot(g1.Sub(p.site.Pt))
			if !found || math.Abs(dot) > math.Abs(best) {
				best = dot
				found = true
			}
		}
	}
	assert(found, "ray %s|%s has no third polygon at its vertex", e.poly1.site, e.poly2.site)
	if best < 0 {
		dir = dir.Mul(-1)
	}

	e.end = f.newInfiniteVertex(dir)
	e.end.edges = append(e.end.edges, e)
}

// removeZeroLengthEdges склеивает концы ребер нулевой длины. Такие ребра
// есть только у ячеек с флагом zeroLength. Ребра конца переезжают в начало,
// порядок вокруг вершины потом восстановит sortVertexEdges.
func (f *fortune) removeZeroLengthEdges() {
	var marked, removed int
	for _, p := range f.polys {
		if !p.zeroLength {
			continue
		}
		marked++
		for _, e := range append([]*fortuneEdge(nil), p.edges...) {
			if e.dead || e.start == nil || e.end == nil || e.start.atInfinity || e.end.atInfinity {
				continue
			}
			if !geom.NearPtTol(e.start.pt, e.end.pt, f.eps) {
				continue
			}
			f.mergeEdge(e)
			removed++
		}
	}
	if marked > 0 {
		f.log.Info("[finish] Ребра нулевой длины удалены", zap.Int("removed", removed), zap.Int("marked-polygons", marked))
	}
}

func (f *fortune) mergeEdge(e *fortuneEdge) {
	s, t := e.start, e.end
	s.edges = removeEdge(s.edges, e)
	if s != t {
		for _, x := range t.edges {
			if x == e {
				continue
			}
			x.replaceVertex(t, s)
			s.edges = append(s.edges, x)
		}
		t.edges = nil
		t.dead = true
	} else {
		s.edges = removeEdge(s.edges, e)
	}
	e.dead = true
	e.poly1.edges = removeEdge(e.poly1.edges, e)
	e.poly2.edges = removeEdge(e.poly2.edges, e)
}

// direction - направление ребра от start: к end или вдоль луча.
func (e *fortuneEdge) direction() r2.Point {
	if e.isRay() {
		return e.end.pt
	}
	return e.end.pt.Sub(e.start.pt)
}

// orientEdges выбирает, какая из ячеек ребра слева от start->end.
func (f *fortune) orientEdges() {
	for _, e := range f.edges {
		if e.dead {
			continue
		}
		assert(e.startResolved() && e.endResolved(), "edge %s|%s is not finished", e.poly1.site, e.poly2.site)
		side := e.direction().Cross(e.poly1.site.Pt.Sub(e.start.pt))
		if side > 0 {
			e.left, e.right = e.poly1, e.poly2
		} else {
			e.left, e.right = e.poly2, e.poly1
		}
	}
}

type angledRay struct {
	edge  *fortuneEdge
	angle float64
}

// closeAtInfinity соединяет концы соседних (по углу) лучей ребрами на
// бесконечности и создает многоугольник на бесконечности.
func (f *fortune) closeAtInfinity() {
	if len(f.polys) == 0 {
		return
	}
	f.polyInf = &fortunePoly{index: len(f.polys), atInfinity: true, site: Site{Cookie: -1}}

	var rays []angledRay
	for _, e := range f.edges {
		if e.dead || !e.isRay() {
			continue
		}
		a := math.Atan2(e.end.pt.Y, e.end.pt.X)
		if a <= -math.Pi+f.eps {
			a = math.Pi
		}
		rays = append(rays, angledRay{edge: e, angle: a})
	}
	if len(rays) == 0 {
		assert(len(f.polys) == 1, "%d polygons without rays", len(f.polys))
		return
	}
	assert(len(rays) >= 2, "single ray in diagram")

	// параллельные лучи упорядочиваем поперек направления
	sort.SliceStable(rays, func(i, j int) bool {
		ri, rj := rays[i], rays[j]
		if !geom.NearTol(ri.angle, rj.angle, f.eps) {
			return ri.angle < rj.angle
		}
		oi := ri.edge.start.pt.Dot(ri.edge.end.pt.Ortho())
		oj := rj.edge.start.pt.Dot(rj.edge.end.pt.Ortho())
		return oi < oj
	})

	for j, r := range rays {
		next := rays[(j+1)%len(rays)].edge
		ray := r.edge
		assert(ray.left == next.right, "rays %s|%s and %s|%s do not share a polygon",
			ray.left.site, ray.right.site, next.left.site, next.right.site)

		e := &fortuneEdge{
			start: ray.end,
			end:   next.end,
			poly1: ray.left,
			poly2: f.polyInf,
			left:  ray.left,
			right: f.polyInf,
		}
		f.edges = append(f.edges, e)
		ray.left.edges = append(ray.left.edges, e)
		f.polyInf.edges = append(f.polyInf.edges, e)
		ray.end.edges = append(ray.end.edges, e)
		next.end.edges = append(next.end.edges, e)
	}
	f.log.Info("[finish] Граница на бесконечности замкнута", zap.Int("edges", len(rays)))
}

// edgeAngle - угол точки ребра относительно генератора gen. Сравнивать
// можно только ребра одной ячейки.
func edgeAngle(e *fortuneEdge, gen r2.Point) float64 {
	var p r2.Point
	switch {
	case e.isInfinity():
		p = winged.InfinityDirection(e.start.pt, e.end.pt)
	case e.isRay():
		t := geom.Dist(e.start.pt, gen) + 1
		p = e.start.pt.Add(e.end.pt.Mul(t)).Sub(gen)
	default:
		p = e.start.pt.Add(e.end.pt).Mul(0.5).Sub(gen)
	}
	return math.Atan2(p.Y, p.X)
}

// sortPolygonEdges упорядочивает ребра ячеек по часовой стрелке вокруг
// генератора. Многоугольник на бесконечности уже упорядочен при
// построении.
func (f *fortune) sortPolygonEdges() {
	for _, p := range f.polys {
		gen := p.site.Pt
		angles := make(map[*fortuneEdge]float64, len(p.edges))
		for _, e := range p.edges {
			angles[e] = edgeAngle(e, gen)
		}
		sort.SliceStable(p.edges, func(i, j int) bool {
			return angles[p.edges[i]] > angles[p.edges[j]]
		})
	}
}

// localDirection - куда ребро e уходит из вершины v.
func localDirection(e *fortuneEdge, v *fortuneVertex) r2.Point {
	if !v.atInfinity {
		other := e.otherVertex(v)
		if other.atInfinity {
			return other.pt
		}
		return other.pt.Sub(v.pt)
	}
	switch {
	case !e.isInfinity():
		// луч, пришедший в вершину
		return v.pt.Mul(-1)
	case e.start == v:
		return v.pt.Ortho()
	default:
		return v.pt.Ortho().Mul(-1)
	}
}

// sortVertexEdges упорядочивает ребра вокруг каждой вершины по часовой
// стрелке.
func (f *fortune) sortVertexEdges() {
	for _, v := range f.vertices {
		if v.dead || len(v.edges) < 3 {
			continue
		}
		angles := make(map[*fortuneEdge]float64, len(v.edges))
		for _, e := range v.edges {
			d := localDirection(e, v)
			angles[e] = math.Atan2(d.Y, d.X)
		}
		sort.SliceStable(v.edges, func(i, j int) bool {
			return angles[v.edges[i]] > angles[v.edges[j]]
		})
	}
}
