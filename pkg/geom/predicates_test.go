package geom_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"

	. "github.com/0x0FACED/winged-fortune/pkg/geom"
)

func pt(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

func TestCcw(t *testing.T) {
	if got := Ccw(pt(0, 0), pt(1, 0), pt(0, 1)); got != 1 {
		t.Errorf("Expected ccw 1, got %d", got)
	}
	if got := Ccw(pt(0, 0), pt(0, 1), pt(1, 0)); got != -1 {
		t.Errorf("Expected ccw -1, got %d", got)
	}
	if got := Ccw(pt(0, 0), pt(1, 1), pt(2, 2)); got != 0 {
		t.Errorf("Expected collinear, got %d", got)
	}
	if got := Ccw(pt(0, 0), pt(1, 0), pt(2, 1e-12)); got != 0 {
		t.Errorf("Expected near-collinear to be 0, got %d", got)
	}
}

func TestICcwVoronoi(t *testing.T) {
	if got := ICcwVoronoi(pt(0, 0), pt(1, 0), pt(0, 1)); got != 1 {
		t.Errorf("Expected plain ccw result, got %d", got)
	}
	// середина между крайними
	if got := ICcwVoronoi(pt(0, 0), pt(1, 0), pt(2, 0)); got != 1 {
		t.Errorf("Expected 1 for middle point between, got %d", got)
	}
	if got := ICcwVoronoi(pt(1, 0), pt(0, 0), pt(2, 0)); got != -1 {
		t.Errorf("Expected -1 for outer middle point, got %d", got)
	}
}

func TestCircumcenter(t *testing.T) {
	c, ok := Circumcenter(pt(1, 0), pt(-1, 0), pt(0, 1))
	if !ok {
		t.Fatal("Expected circumcenter")
	}
	if !NearPt(c, pt(0, 0)) {
		t.Errorf("Expected (0,0), got %v", c)
	}

	c, ok = Circumcenter(pt(3, 4), pt(5, 4), pt(4, 7))
	if !ok {
		t.Fatal("Expected circumcenter")
	}
	r := Dist(c, pt(3, 4))
	if !Near(r, Dist(c, pt(5, 4))) || !Near(r, Dist(c, pt(4, 7))) {
		t.Errorf("Center %v is not equidistant", c)
	}

	if _, ok := Circumcenter(pt(0, 0), pt(1, 1), pt(3, 3)); ok {
		t.Error("Expected no circumcenter for collinear points")
	}
}

func parabolaY(focus r2.Point, directrix, x float64) float64 {
	p := focus.Y - directrix
	return (x-focus.X)*(x-focus.X)/(2*p) + (focus.Y+directrix)/2
}

func TestParabolicCut(t *testing.T) {
	// одинаковая высота фокусов - середина
	if x := ParabolicCut(pt(0, 5), pt(4, 5), 0); !Near(x, 2) {
		t.Errorf("Expected midpoint 2, got %v", x)
	}
	// фокус на директрисе - вертикальный луч
	if x := ParabolicCut(pt(0, 5), pt(3, 0), 0); !Near(x, 3) {
		t.Errorf("Expected 3, got %v", x)
	}
	if x := ParabolicCut(pt(-2, 0), pt(3, 4), 0); !Near(x, -2) {
		t.Errorf("Expected -2, got %v", x)
	}

	cases := []struct {
		left, right r2.Point
		directrix   float64
	}{
		{pt(0, 1), pt(2, 2), 0},
		{pt(2, 2), pt(0, 1), 0},
		{pt(0, 2), pt(0, 1), 0},
		{pt(0, 1), pt(0, 2), 0},
		{pt(-3, 10), pt(4, 3), -1},
		{pt(4, 3), pt(-3, 10), -1},
	}
	for _, c := range cases {
		x := ParabolicCut(c.left, c.right, c.directrix)
		yl := parabolaY(c.left, c.directrix, x)
		yr := parabolaY(c.right, c.directrix, x)
		if math.Abs(yl-yr) > 1e-7 {
			t.Errorf("%v|%v: parabolas do not meet at x=%v (%v vs %v)", c.left, c.right, x, yl, yr)
		}
		// правее излома ниже должна быть правая парабола
		xr := x + 1e-3
		if parabolaY(c.right, c.directrix, xr) > parabolaY(c.left, c.directrix, xr) {
			t.Errorf("%v|%v: wrong branch at x=%v", c.left, c.right, x)
		}
	}
}

func TestParabolicCutBranches(t *testing.T) {
	left := ParabolicCut(pt(0, 2), pt(0, 1), 0)
	right := ParabolicCut(pt(0, 1), pt(0, 2), 0)
	if !(left < 0 && right > 0) {
		t.Errorf("Expected breakpoints around lower focus, got %v and %v", left, right)
	}
	if !Near(left, -right) {
		t.Errorf("Expected symmetric breakpoints, got %v and %v", left, right)
	}
}

func TestPredicatesScale(t *testing.T) {
	for _, s := range []float64{1e-6, 1e-3, 1, 1e6} {
		p1, p2, p3 := pt(s, 0), pt(-s, 0), pt(0, s)
		if got := Ccw(p1, p2, p3); got != -1 {
			t.Errorf("Scale %g: expected cw -1, got %d", s, got)
		}
		c, ok := Circumcenter(p1, p2, p3)
		if !ok {
			t.Errorf("Scale %g: expected circumcenter", s)
			continue
		}
		if math.Abs(c.X) > 1e-9*s || math.Abs(c.Y) > 1e-9*s {
			t.Errorf("Scale %g: expected (0,0), got %v", s, c)
		}
		if got := Ccw(pt(0, 0), pt(s, 0), pt(2*s, 1e-12*s)); got != 0 {
			t.Errorf("Scale %g: expected near-collinear to be 0, got %d", s, got)
		}
	}
}

func TestParabolicCutSameHeight(t *testing.T) {
	// высоты равны с точностью до округления
	x := ParabolicCut(pt(0, 1e-5), pt(4e-5, 1e-5*(1+1e-12)), 0)
	if math.Abs(x-2e-5) > 1e-12 {
		t.Errorf("Expected midpoint 2e-5, got %v", x)
	}
}
