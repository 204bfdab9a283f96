package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// ConvexIntersection пересекает два выпуклых многоугольника, заданных обходом
// против часовой стрелки. Возвращает вершины пересечения (тоже CCW) или nil,
// если многоугольники не пересекаются.
func ConvexIntersection(subject, clip []r2.Point) []r2.Point {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	out := append([]r2.Point(nil), subject...)
	for i := range clip {
		if len(out) == 0 {
			return nil
		}
		a := clip[i]
		b := clip[(i+1)%len(clip)]
		ab := b.Sub(a).Norm()

		in := out
		out = make([]r2.Point, 0, len(in)+1)
		for j := range in {
			cur := in[j]
			prev := in[(j+len(in)-1)%len(in)]
			curIn := SignedArea2(a, b, cur) >= -Epsilon*ab*Dist(a, cur)
			prevIn := SignedArea2(a, b, prev) >= -Epsilon*ab*Dist(a, prev)

			switch {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn && !prevIn:
				out = append(out, lineCross(prev, cur, a, b), cur)
			case !curIn && prevIn:
				out = append(out, lineCross(prev, cur, a, b))
			}
		}
	}

	out = dedup(out)
	if len(out) < 3 || math.Abs(Area(out)) <= Epsilon*extentSq(out) {
		return nil
	}
	return out
}

// lineCross - точка пересечения отрезка pq с прямой ab.
func lineCross(p, q, a, b r2.Point) r2.Point {
	ab := b.Sub(a)
	pq := q.Sub(p)
	den := ab.Cross(pq)
	if math.Abs(den) <= Epsilon*ab.Norm()*pq.Norm() {
		return q
	}
	t := ab.Cross(a.Sub(p)) / den
	return p.Add(q.Sub(p).Mul(t))
}

func dedup(pts []r2.Point) []r2.Point {
	if len(pts) == 0 {
		return pts
	}
	res := pts[:1]
	for _, p := range pts[1:] {
		if !NearPt(p, res[len(res)-1]) {
			res = append(res, p)
		}
	}
	for len(res) > 1 && NearPt(res[0], res[len(res)-1]) {
		res = res[:len(res)-1]
	}
	return res
}

// Area - ориентированная площадь многоугольника (положительная для CCW).
func Area(pts []r2.Point) float64 {
	var s float64
	for i := range pts {
		s += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	return s / 2
}

// Centroid - центр масс многоугольника. Для вырожденного многоугольника
// возвращается среднее арифметическое вершин.
func Centroid(pts []r2.Point) r2.Point {
	if len(pts) == 0 {
		return r2.Point{}
	}
	area := Area(pts)
	if math.Abs(area) <= Epsilon*extentSq(pts) {
		var sum r2.Point
		for _, p := range pts {
			sum = sum.Add(p)
		}
		return sum.Mul(1 / float64(len(pts)))
	}

	var cx, cy float64
	for i := range pts {
		p, q := pts[i], pts[(i+1)%len(pts)]
		f := p.Cross(q)
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	return r2.Point{X: cx / (6 * area), Y: cy / (6 * area)}
}

// extentSq - квадрат диагонали описывающего прямоугольника. Масштаб для
// сравнения площадей.
func extentSq(pts []r2.Point) float64 {
	r := r2.RectFromPoints(pts...)
	return DistSq(r.Lo(), r.Hi())
}

// Reverse разворачивает порядок обхода на месте.
func Reverse(pts []r2.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
