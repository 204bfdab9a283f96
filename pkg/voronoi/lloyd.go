package voronoi

import (
	"github.com/0x0FACED/winged-fortune/pkg/geom"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// LloydRelax делает один шаг релаксации Ллойда: каждый сайт сдвигается к
// центру масс своей ячейки, обрезанной многоугольником clip (обход против
// часовой стрелки). Неограниченные ячейки сначала обрезаются лучами длины
// rayLength. strength = 1 - полный сдвиг в центр масс.
func LloydRelax(d *Diagram, rayLength float64, clip []r2.Point, strength float64, opts ...Option) (*Diagram, error) {
	if d == nil || d.Graph == nil {
		return nil, errors.New("voronoi: nil diagram")
	}
	if len(clip) < 3 {
		return nil, errors.Errorf("voronoi: clip polygon needs at least 3 points, got %d", len(clip))
	}
	if rayLength <= 0 {
		return nil, errors.Errorf("voronoi: ray length must be positive, got %g", rayLength)
	}
	if strength <= 0 || strength > 2 {
		return nil, errors.Errorf("voronoi: relaxation strength %g is out of (0, 2]", strength)
	}

	o := newOptions(opts)
	cells := d.RealPolygons()
	sites := make([]Site, 0, len(cells))
	var moved int
	for _, id := range cells {
		p := d.Polygons[id]
		cell := clip
		if len(p.Edges) > 0 {
			pts := d.PolygonPoints(id, rayLength)
			geom.Reverse(pts)
			cell = geom.ConvexIntersection(pts, clip)
		}

		site := Site{Pt: p.Generator, Cookie: p.Cookie}
		if len(cell) >= 3 {
			c := geom.Centroid(cell)
			site.Pt = site.Pt.Add(c.Sub(site.Pt).Mul(strength))
			moved++
		}
		sites = append(sites, site)
	}
	o.log.Info("[lloyd] Сайты сдвинуты к центрам масс", zap.Int("sites", len(sites)), zap.Int("moved", moved))

	return Compute(sites, opts...)
}
