package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Epsilon - допуск для всех сравнений с плавающей точкой.
// Значение то же, что и в старых equalWithEpsilon/lessThanWithEpsilon.
const Epsilon = 1e-9

// Near сравнивает два числа с допуском Epsilon.
func Near(a, b float64) bool {
	return NearTol(a, b, Epsilon)
}

// NearTol сравнивает два числа с заданным допуском.
func NearTol(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// NearPt - покоординатное сравнение точек с допуском.
func NearPt(p, q r2.Point) bool {
	return NearPtTol(p, q, Epsilon)
}

func NearPtTol(p, q r2.Point, tol float64) bool {
	return NearTol(p.X, q.X, tol) && NearTol(p.Y, q.Y, tol)
}

func Dist(p, q r2.Point) float64 {
	return p.Sub(q).Norm()
}

func DistSq(p, q r2.Point) float64 {
	d := p.Sub(q)
	return d.Dot(d)
}

// SignedArea2 возвращает удвоенную ориентированную площадь треугольника.
func SignedArea2(p1, p2, p3 r2.Point) float64 {
	return p2.Sub(p1).Cross(p3.Sub(p1))
}

// Ccw: 1 - обход против часовой, -1 - по часовой, 0 - точки на одной прямой.
func Ccw(p1, p2, p3 r2.Point) int {
	return CcwTol(p1, p2, p3, Epsilon)
}

// CcwTol сравнивает с tol синус угла при p1, а не саму площадь: результат
// не зависит от масштаба координат.
func CcwTol(p1, p2, p3 r2.Point, tol float64) int {
	b, c := p2.Sub(p1), p3.Sub(p1)
	area := b.Cross(c)
	switch {
	case math.Abs(area) <= tol*b.Norm()*c.Norm():
		return 0
	case area > 0:
		return 1
	default:
		return -1
	}
}

// ICcwVoronoi расширяет Ccw на коллинеарные тройки: считаем, что они лежат на
// бесконечно большой окружности. Если p2 лежит между p1 и p3 (p1p3 - самая
// длинная пара), результат 1, иначе -1.
func ICcwVoronoi(p1, p2, p3 r2.Point) int {
	return ICcwVoronoiTol(p1, p2, p3, Epsilon)
}

func ICcwVoronoiTol(p1, p2, p3 r2.Point, tol float64) int {
	if ccw := CcwTol(p1, p2, p3, tol); ccw != 0 {
		return ccw
	}
	d12 := DistSq(p1, p2)
	d23 := DistSq(p2, p3)
	d13 := DistSq(p1, p3)
	if d13 >= d12 && d13 >= d23 {
		return 1
	}
	return -1
}

// Circumcenter - центр окружности через три точки. false, если точки
// (почти) коллинеарны.
func Circumcenter(p1, p2, p3 r2.Point) (r2.Point, bool) {
	return CircumcenterTol(p1, p2, p3, Epsilon)
}

func CircumcenterTol(p1, p2, p3 r2.Point, tol float64) (r2.Point, bool) {
	// считаем относительно p1, так точнее
	b := p2.Sub(p1)
	c := p3.Sub(p1)
	d := 2 * b.Cross(c)
	if math.Abs(d) <= 2*tol*b.Norm()*c.Norm() {
		return r2.Point{}, false
	}
	hb := b.Dot(b)
	hc := c.Dot(c)
	return r2.Point{
		X: p1.X + (c.Y*hb-b.Y*hc)/d,
		Y: p1.Y + (b.X*hc-c.X*hb)/d,
	}, true
}

// ParabolicCut возвращает x точки излома пляжной линии между дугой left (слева)
// и дугой right (справа) при положении прямой сканирования directrixY.
// Сканирование идет сверху вниз, фокусы лежат не ниже directrixY.
func ParabolicCut(left, right r2.Point, directrixY float64) float64 {
	return ParabolicCutTol(left, right, directrixY, Epsilon)
}

func ParabolicCutTol(left, right r2.Point, directrixY, tol float64) float64 {
	a, b := left.X, right.X
	p1 := left.Y - directrixY
	p2 := right.Y - directrixY

	onLeft := math.Abs(p1) < tol
	onRight := math.Abs(p2) < tol
	switch {
	case onLeft && onRight:
		return (a + b) / 2
	case onLeft:
		// вырожденная парабола - вертикальный луч из фокуса
		return a
	case onRight:
		return b
	}

	// p2(x-a)^2 - p1(x-b)^2 + p1*p2*(p1-p2) = 0
	qa := p2 - p1
	qb := 2 * (b*p1 - a*p2)
	qc := p2*a*a - p1*b*b + p1*p2*(p1-p2)
	// фокусы на одной высоте: уравнение линейное
	if math.Abs(qa) <= tol*math.Max(math.Abs(p1), math.Abs(p2)) {
		if qb == 0 {
			return (a + b) / 2
		}
		return -qc / qb
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		disc = 0
	}
	s := math.Sqrt(disc)

	// нужный корень всегда (-qb + s) / (2qa); при qb > 0 считаем его через
	// произведение корней, чтобы не терять точность
	if qb > 0 {
		return 2 * qc / (-qb - s)
	}
	return (-qb + s) / (2 * qa)
}
