package voronoi

import (
	"github.com/0x0FACED/winged-fortune/pkg/geom"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Пляжная линия - двоичное дерево: листья - дуги слева направо, внутренние
// узлы - точки излома между соседними дугами. Дерево не балансируется.

type beachNode interface {
	parentNode() *internalNode
	setParent(p *internalNode)
}

type nodeBase struct {
	parent *internalNode
}

func (n *nodeBase) parentNode() *internalNode  { return n.parent }
func (n *nodeBase) setParent(p *internalNode) { n.parent = p }

// leafNode - дуга ячейки poly. prev/next - соседние дуги на линии.
type leafNode struct {
	nodeBase
	poly   *fortunePoly
	prev   *leafNode
	next   *leafNode
	circle *circleEvent
}

// internalNode - излом между дугами polyLeft и polyRight, который
// прочерчивает ребро edge.
type internalNode struct {
	nodeBase
	left, right beachNode
	polyLeft    *fortunePoly
	polyRight   *fortunePoly
	edge        *fortuneEdge
}

func (n *internalNode) setLeft(c beachNode) {
	n.left = c
	c.setParent(n)
}

func (n *internalNode) setRight(c beachNode) {
	n.right = c
	c.setParent(n)
}

type beachline struct {
	root beachNode
	f    *fortune
}

func (b *beachline) isEmpty() bool {
	return b.root == nil
}

// search находит дугу над точкой x при положении прямой сканирования y.
func (b *beachline) search(x, y float64) *leafNode {
	assert(b.root != nil, "search in empty beachline")
	node := b.root
	for {
		switch n := node.(type) {
		case *leafNode:
			return n
		case *internalNode:
			cut := geom.ParabolicCutTol(n.polyLeft.site.Pt, n.polyRight.site.Pt, y, b.f.eps)
			if x < cut {
				node = n.left
			} else {
				node = n.right
			}
		}
	}
}

// replace ставит with на место old у родителя old.
func (b *beachline) replace(old, with beachNode) {
	parent := old.parentNode()
	switch {
	case parent == nil:
		b.root = with
		with.setParent(nil)
	case parent.left == old:
		parent.setLeft(with)
	default:
		parent.setRight(with)
	}
}

// insertSite добавляет дугу новой ячейки poly.
func (b *beachline) insertSite(poly *fortunePoly) {
	f := b.f
	leaf := &leafNode{poly: poly}
	if b.root == nil {
		b.root = leaf
		return
	}

	site := poly.site.Pt
	located := b.search(site.X, site.Y)
	if f.log.Enabled(zapcore.DebugLevel) {
		f.log.Debug("[beach] Дуга над точкой", zap.Stringer("site", poly.site), zap.Stringer("arc", located.poly.site))
	}

	// точки, которые уже не могут стать событиями
	for _, c := range f.queue.circlesContaining(site, f.eps) {
		f.log.Debug("[beach] Новая точка внутри окружности, событие удалено", zap.Any("center", c.center))
		f.queue.delete(c)
	}

	if geom.NearTol(located.poly.site.Pt.Y, site.Y, f.eps) {
		if (site.X > located.poly.site.Pt.X && located.next == nil) ||
			(site.X < located.poly.site.Pt.X && located.prev == nil) {
			b.insertLevel(located, leaf)
			return
		}
	}

	b.split(located, leaf)
}

// insertLevel - вырожденный случай: новая точка на одной высоте с крайней
// дугой. Дуга еще вертикальный луч, поэтому излом один.
func (b *beachline) insertLevel(located, leaf *leafNode) {
	f := b.f
	edge := f.newEdge(located.poly, leaf.poly)
	node := &internalNode{edge: edge}
	b.replace(located, node)

	if leaf.poly.site.Pt.X > located.poly.site.Pt.X {
		node.polyLeft, node.polyRight = located.poly, leaf.poly
		node.setLeft(located)
		node.setRight(leaf)
		leaf.prev = located
		located.next = leaf
	} else {
		node.polyLeft, node.polyRight = leaf.poly, located.poly
		node.setLeft(leaf)
		node.setRight(located)
		leaf.next = located
		located.prev = leaf
	}
	f.log.Debug("[beach] Точка на уровне крайней дуги, один излом", zap.Stringer("site", leaf.poly.site))

	f.queue.delete(located.circle)
	b.createCircleEvent(located.prev, located, located.next)
	b.createCircleEvent(leaf.prev, leaf, leaf.next)
}

// split разрезает дугу located новой дугой leaf:
//
//	outer(P|N){ Xl(P), inner(N|P){ N, X(P) } }
//
// Оба излома чертят одно и то же новое ребро в разные стороны.
func (b *beachline) split(located, leaf *leafNode) {
	f := b.f
	old := located.poly
	edge := f.newEdge(old, leaf.poly)

	left := &leafNode{poly: old, prev: located.prev, next: leaf}
	if located.prev != nil {
		located.prev.next = left
	}
	leaf.prev = left
	leaf.next = located
	located.prev = leaf

	inner := &internalNode{polyLeft: leaf.poly, polyRight: old, edge: edge}
	outer := &internalNode{polyLeft: old, polyRight: leaf.poly, edge: edge}

	b.replace(located, outer)
	inner.setLeft(leaf)
	inner.setRight(located)
	outer.setLeft(left)
	outer.setRight(inner)

	f.queue.delete(located.circle)
	b.createCircleEvent(left.prev, left, leaf)
	b.createCircleEvent(leaf, located, located.next)
}

// createCircleEvent ставит в очередь событие для тройки соседних дуг l, c, r,
// если их изломы сходятся.
func (b *beachline) createCircleEvent(l, c, r *leafNode) {
	if l == nil || c == nil || r == nil {
		return
	}
	if l.poly == c.poly || c.poly == r.poly || l.poly == r.poly {
		return
	}
	f := b.f
	p1, p2, p3 := l.poly.site.Pt, c.poly.site.Pt, r.poly.site.Pt
	// изломы сходятся только при обходе по часовой стрелке
	if geom.ICcwVoronoiTol(p1, p2, p3, f.eps) != -1 {
		return
	}
	center, ok := geom.CircumcenterTol(p1, p2, p3, f.eps)
	if !ok {
		return
	}
	radius := geom.Dist(center, p2)
	ev := &circleEvent{center: center, radius: radius, leaf: c}
	if ev.point().Y > f.sweepY+f.eps {
		return
	}

	f.queue.delete(c.circle)
	c.circle = ev
	f.queue.add(ev)
	if f.log.Enabled(zapcore.DebugLevel) {
		f.log.Debug("[beach] Событие окружности",
			zap.Stringer("l", l.poly.site), zap.Stringer("c", c.poly.site), zap.Stringer("r", r.poly.site),
			zap.Float64("x", center.X), zap.Float64("y", center.Y), zap.Float64("r", radius))
	}
}

// removeAndInsertVertex обрабатывает событие окружности: дуга ev.leaf
// исчезает, в центре окружности появляется вершина, два входящих ребра
// заканчиваются в ней, начинается одно новое.
func (b *beachline) removeAndInsertVertex(ev *circleEvent) {
	f := b.f
	c := ev.leaf
	l, r := c.prev, c.next
	assert(l != nil && r != nil, "circle event on boundary arc %s", c.poly.site)
	c.circle = nil

	parent := c.parentNode()
	assert(parent != nil, "circle event on root arc %s", c.poly.site)

	// второй излом ищем вверх по дереву: первый предок, к которому пришли
	// с другой стороны
	var other *internalNode
	fromLeft := parent.left == c
	var sibling beachNode
	if fromLeft {
		sibling = parent.right
	} else {
		sibling = parent.left
	}
	node := parent
	for node.parent != nil {
		up := node.parent
		if fromLeft && up.right == node || !fromLeft && up.left == node {
			other = up
			break
		}
		node = up
	}
	assert(other != nil, "no second breakpoint above arc %s", c.poly.site)

	v := f.newVertex(ev.center)
	incoming := [2]*fortuneEdge{parent.edge, other.edge}
	for _, e := range incoming {
		zero := ev.zeroLength
		if e.startResolved() && geom.NearPtTol(e.start.pt, v.pt, f.eps) {
			zero = true
		}
		if zero {
			e.poly1.zeroLength = true
			e.poly2.zeroLength = true
		}
		e.setVertex(v)
	}

	edge := f.newEdge(l.poly, r.poly)
	edge.setVertex(v)
	v.edges = append(v.edges, incoming[0], incoming[1], edge)

	other.polyLeft, other.polyRight = l.poly, r.poly
	other.edge = edge
	b.replace(parent, sibling)

	l.next = r
	r.prev = l
	c.prev, c.next = nil, nil

	if f.log.Enabled(zapcore.DebugLevel) {
		f.log.Debug("[beach] Новая вершина",
			zap.Stringer("arc", c.poly.site), zap.Float64("x", v.pt.X), zap.Float64("y", v.pt.Y),
			zap.Bool("zero", ev.zeroLength))
	}

	f.queue.delete(l.circle)
	f.queue.delete(r.circle)
	b.createCircleEvent(l.prev, l, r)
	b.createCircleEvent(l, r, r.next)
}
