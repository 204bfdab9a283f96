// Package voronoi строит диаграмму Вороного алгоритмом Форчуна (прямая
// сканирования идет сверху вниз) и отдает ее в виде графа крылатых ребер
// без обрезки: неограниченные ячейки замыкаются вершинами, ребрами и
// многоугольником на бесконечности.
package voronoi

import (
	"math"
	"sort"
	"time"

	"github.com/0x0FACED/winged-fortune/pkg/geom"
	"github.com/0x0FACED/winged-fortune/pkg/logger"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type fortune struct {
	log *logger.ZapLogger
	eps float64

	queue  *eventQueue
	beach  *beachline
	sweepY float64

	polys    []*fortunePoly
	vertices []*fortuneVertex
	edges    []*fortuneEdge
	polyInf  *fortunePoly

	// центр последнего обработанного события окружности
	lastCircle *r2.Point
}

func newFortune(o *options) *fortune {
	f := &fortune{
		log:    o.log,
		eps:    o.eps,
		queue:  newEventQueue(),
		sweepY: math.Inf(1),
	}
	f.beach = &beachline{f: f}
	return f
}

// Compute строит диаграмму Вороного для sites. Совпадающие (в пределах
// допуска) точки учитываются один раз. Ошибка возвращается только для
// нечисловых координат или при нарушении внутренней структуры.
func Compute(sites []Site, opts ...Option) (d *Diagram, err error) {
	o := newOptions(opts)
	for _, s := range sites {
		if !isFinite(s.Pt.X) || !isFinite(s.Pt.Y) {
			return nil, errors.Errorf("voronoi: site %s is not a finite point", s)
		}
	}

	defer recoverInternal(&err)

	start := time.Now()
	f := newFortune(o)
	f.log.Info("[fortune] Алгоритм Форчуна запущен", zap.Int("sites", len(sites)))

	for _, s := range f.uniqueSites(sites) {
		f.queue.add(&siteEvent{site: s})
	}
	f.sweep()
	f.log.Info("[fortune] Сканирование завершено",
		zap.Int("polygons", len(f.polys)), zap.Int("vertices", len(f.vertices)), zap.Int("edges", len(f.edges)))

	f.finish()
	d = f.buildWingedEdge()

	f.log.Info("[fortune] Диаграмма построена",
		zap.Int("polygons", len(d.Polygons)), zap.Int("vertices", len(d.Vertices)), zap.Int("edges", len(d.Edges)),
		zap.Duration("took", time.Since(start)))
	return d, nil
}

// sweep обрабатывает события, пока очередь не опустеет.
func (f *fortune) sweep() {
	var counter int
	for !f.queue.isEmpty() {
		ev := f.queue.pop()
		f.sweepY = ev.point().Y
		counter++

		switch e := ev.(type) {
		case *siteEvent:
			f.handleSite(e)
		case *circleEvent:
			f.handleCircle(e)
		}
	}
	f.log.Debug("[fortune] Обработано событий", zap.Int("events", counter))
}

// uniqueSites убирает совпадающие в пределах допуска точки. Остается
// первая в порядке очереди: совпадающие точки могут оказаться в очереди
// не подряд, поэтому сравниваем со всеми принятыми в полосе высотой eps.
func (f *fortune) uniqueSites(sites []Site) []Site {
	sorted := append([]Site(nil), sites...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pt, sorted[j].Pt
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X < b.X
	})

	kept := sorted[:0]
	for _, s := range sorted {
		dup := -1
		for j := len(kept) - 1; j >= 0 && kept[j].Pt.Y-s.Pt.Y < f.eps; j-- {
			if geom.NearPtTol(kept[j].Pt, s.Pt, f.eps) {
				dup = j
				break
			}
		}
		if dup >= 0 {
			f.log.Warn("[sweep-site] Найден дубликат, пропускаем", zap.Stringer("site", s), zap.Stringer("kept", kept[dup]))
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

func (f *fortune) handleSite(e *siteEvent) {
	site := e.site
	poly := &fortunePoly{site: site, index: len(f.polys)}
	f.polys = append(f.polys, poly)
	f.log.Debug("[sweep-site] Новая ячейка", zap.Stringer("site", site))

	f.beach.insertSite(poly)
}

func (f *fortune) handleCircle(e *circleEvent) {
	if f.lastCircle != nil && geom.NearPtTol(*f.lastCircle, e.center, f.eps) {
		e.zeroLength = true
	}
	center := e.center
	f.lastCircle = &center
	f.log.Debug("[sweep-circle] Событие окружности",
		zap.Float64("x", e.center.X), zap.Float64("y", e.center.Y), zap.Bool("zero", e.zeroLength))

	f.beach.removeAndInsertVertex(e)
}

func (f *fortune) newVertex(pt r2.Point) *fortuneVertex {
	v := &fortuneVertex{pt: pt}
	f.vertices = append(f.vertices, v)
	return v
}

// newInfiniteVertex - вершина на бесконечности в направлении dir.
func (f *fortune) newInfiniteVertex(dir r2.Point) *fortuneVertex {
	v := &fortuneVertex{pt: dir.Normalize(), atInfinity: true}
	f.vertices = append(f.vertices, v)
	return v
}

func (f *fortune) newEdge(p1, p2 *fortunePoly) *fortuneEdge {
	e := &fortuneEdge{poly1: p1, poly2: p2}
	f.edges = append(f.edges, e)
	p1.edges = append(p1.edges, e)
	p2.edges = append(p2.edges, e)
	return e
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
