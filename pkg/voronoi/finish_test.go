package voronoi

import (
	"testing"

	"github.com/0x0FACED/winged-fortune/pkg/geom"
)

func sweepOnly(sites []Site) *fortune {
	f := newFortune(newOptions(nil))
	for _, s := range f.uniqueSites(sites) {
		f.queue.add(&siteEvent{site: s})
	}
	f.sweep()
	f.fixInfiniteEdges()
	return f
}

func zeroLengthEdges(f *fortune) []*fortuneEdge {
	var res []*fortuneEdge
	for _, e := range f.edges {
		if e.dead || e.start.atInfinity || e.end.atInfinity {
			continue
		}
		if geom.NearPtTol(e.start.pt, e.end.pt, f.eps) {
			res = append(res, e)
		}
	}
	return res
}

func TestZeroLengthEdgesFlagged(t *testing.T) {
	var grid []Site
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			grid = append(grid, NewSite(float64(x), float64(y), len(grid)))
		}
	}
	cases := []struct {
		name  string
		sites []Site
	}{
		{"square", []Site{NewSite(0, 0, 0), NewSite(1, 0, 1), NewSite(0, 1, 2), NewSite(1, 1, 3)}},
		{"grid", grid},
	}
	for _, tc := range cases {
		f := sweepOnly(tc.sites)

		zero := zeroLengthEdges(f)
		if len(zero) == 0 {
			t.Fatalf("%s: expected zero-length edges for cocircular sites", tc.name)
		}
		for _, e := range zero {
			if !e.poly1.zeroLength || !e.poly2.zeroLength {
				t.Errorf("%s: zero-length edge %s|%s is not flagged", tc.name, e.poly1.site, e.poly2.site)
			}
		}

		f.removeZeroLengthEdges()
		if left := zeroLengthEdges(f); len(left) != 0 {
			t.Errorf("%s: expected all zero-length edges merged, %d left", tc.name, len(left))
		}
	}
}

func TestDuplicatesKeepFirstInSweepOrder(t *testing.T) {
	f := newFortune(newOptions(nil))
	got := f.uniqueSites([]Site{
		NewSite(0, 0, 0),
		NewSite(5, 5e-11, 1),
		NewSite(0, 1e-10, 2),
		NewSite(5, 0, 3),
		NewSite(1, 1, 4),
	})
	want := []int{4, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("Expected %d sites, got %v", len(want), got)
	}
	for i, s := range got {
		if s.Cookie != want[i] {
			t.Errorf("Expected cookie %d at %d, got %d", want[i], i, s.Cookie)
		}
	}
}
