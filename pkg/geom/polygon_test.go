package geom_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"

	. "github.com/0x0FACED/winged-fortune/pkg/geom"
)

func square(x0, y0, size float64) []r2.Point {
	return []r2.Point{pt(x0, y0), pt(x0+size, y0), pt(x0+size, y0+size), pt(x0, y0+size)}
}

func TestConvexIntersection(t *testing.T) {
	res := ConvexIntersection(square(0, 0, 2), square(1, 1, 2))
	if len(res) != 4 {
		t.Fatalf("Expected 4 points, got %v", res)
	}
	if a := Area(res); !Near(a, 1) {
		t.Errorf("Expected area 1, got %v", a)
	}
	if c := Centroid(res); !NearPt(c, pt(1.5, 1.5)) {
		t.Errorf("Expected centroid (1.5,1.5), got %v", c)
	}
}

func TestConvexIntersectionDisjoint(t *testing.T) {
	if res := ConvexIntersection(square(0, 0, 1), square(5, 5, 1)); res != nil {
		t.Errorf("Expected nil for disjoint polygons, got %v", res)
	}
}

func TestConvexIntersectionContained(t *testing.T) {
	inner := []r2.Point{pt(1, 1), pt(2, 1), pt(1.5, 2)}
	res := ConvexIntersection(inner, square(0, 0, 10))
	if len(res) != 3 {
		t.Fatalf("Expected the inner triangle back, got %v", res)
	}
	if !Near(Area(res), Area(inner)) {
		t.Errorf("Expected area %v, got %v", Area(inner), Area(res))
	}
}

func TestCentroidDegenerate(t *testing.T) {
	c := Centroid([]r2.Point{pt(0, 0), pt(2, 0), pt(4, 0)})
	if !NearPt(c, pt(2, 0)) {
		t.Errorf("Expected average (2,0), got %v", c)
	}
}

func TestConvexIntersectionSmall(t *testing.T) {
	res := ConvexIntersection(square(0, 0, 2e-6), square(1e-6, 1e-6, 2e-6))
	if len(res) != 4 {
		t.Fatalf("Expected 4 points, got %v", res)
	}
	if a := Area(res); math.Abs(a-1e-12) > 1e-20 {
		t.Errorf("Expected area 1e-12, got %g", a)
	}
	if c := Centroid(res); math.Abs(c.X-1.5e-6) > 1e-15 || math.Abs(c.Y-1.5e-6) > 1e-15 {
		t.Errorf("Expected centroid (1.5e-6, 1.5e-6), got %v", c)
	}
}
