package voronoi

import (
	"github.com/0x0FACED/winged-fortune/pkg/geom"
	"github.com/golang/geo/r2"
)

// event - событие сканирования: точка (site) или окружность (circle).
type event interface {
	rbValue
	point() r2.Point
	isCircle() bool
	order() int
	setOrder(n int)
}

type eventBase struct {
	node *rbNode
	// порядок добавления в очередь
	seq int
}

func (b *eventBase) bindToNode(node *rbNode) { b.node = node }
func (b *eventBase) treeNode() *rbNode       { return b.node }
func (b *eventBase) order() int              { return b.seq }
func (b *eventBase) setOrder(n int)          { b.seq = n }

type siteEvent struct {
	eventBase
	site Site
}

func (e *siteEvent) point() r2.Point { return e.site.Pt }
func (e *siteEvent) isCircle() bool  { return false }

// circleEvent - нижняя точка окружности через три соседние дуги. Когда до нее
// доходит прямая сканирования, средняя дуга (leaf) исчезает.
type circleEvent struct {
	eventBase
	center r2.Point
	radius float64
	leaf   *leafNode
	// событие совпало с предыдущим (4 и более точек на окружности)
	zeroLength bool
}

func (e *circleEvent) point() r2.Point {
	return r2.Point{X: e.center.X, Y: e.center.Y - e.radius}
}

func (e *circleEvent) isCircle() bool { return true }

// contains - лежит ли p строго внутри окружности события.
func (e *circleEvent) contains(p r2.Point, eps float64) bool {
	return geom.Dist(e.center, p) < e.radius-eps
}

// eventBefore задает порядок очереди: сначала большие y, при равных y -
// меньшие x, в одной точке окружность раньше точки, дальше по порядку
// добавления.
func eventBefore(a, b event) bool {
	pa, pb := a.point(), b.point()
	if pa.Y != pb.Y {
		return pa.Y > pb.Y
	}
	if pa.X != pb.X {
		return pa.X < pb.X
	}
	if ca, cb := a.isCircle(), b.isCircle(); ca != cb {
		return ca
	}
	return a.order() < b.order()
}

// eventQueue - очередь с приоритетом на красно-черном дереве. Живые события
// окружностей дополнительно лежат в circles, чтобы их можно было перебрать
// при вставке новой точки.
type eventQueue struct {
	tree    rbTree
	circles map[*circleEvent]struct{}
	counter int
}

func newEventQueue() *eventQueue {
	return &eventQueue{circles: make(map[*circleEvent]struct{})}
}

func (q *eventQueue) add(ev event) {
	q.counter++
	ev.setOrder(q.counter)
	q.tree.insert(ev, func(a, b rbValue) bool {
		return eventBefore(a.(event), b.(event))
	})
	if c, ok := ev.(*circleEvent); ok {
		q.circles[c] = struct{}{}
	}
}

// pop достает событие с наивысшим приоритетом.
func (q *eventQueue) pop() event {
	node := q.tree.first
	assert(node != nil, "pop from empty event queue")
	ev := node.value.(event)
	q.tree.removeNode(node)
	ev.bindToNode(nil)
	if c, ok := ev.(*circleEvent); ok {
		delete(q.circles, c)
	}
	return ev
}

// delete убирает событие окружности из очереди. Повторное удаление ничего
// не делает.
func (q *eventQueue) delete(c *circleEvent) {
	if c == nil || c.node == nil {
		return
	}
	q.tree.removeNode(c.node)
	c.bindToNode(nil)
	delete(q.circles, c)
	if c.leaf != nil && c.leaf.circle == c {
		c.leaf.circle = nil
	}
}

func (q *eventQueue) isEmpty() bool {
	return q.tree.first == nil
}

func (q *eventQueue) len() int {
	return q.tree.size
}

// circlesContaining - живые события, окружность которых строго содержит p.
func (q *eventQueue) circlesContaining(p r2.Point, eps float64) []*circleEvent {
	var res []*circleEvent
	for c := range q.circles {
		if c.contains(p, eps) {
			res = append(res, c)
		}
	}
	return res
}
