package voronoi

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
)

// blackHeight проверяет свойства красно-черного дерева и возвращает черную
// высоту; -1 - свойство нарушено.
func blackHeight(n *rbNode) int {
	if n == nil {
		return 1
	}
	if n.red && (isRed(n.left) || isRed(n.right)) {
		return -1
	}
	l, r := blackHeight(n.left), blackHeight(n.right)
	if l < 0 || l != r {
		return -1
	}
	if !n.red {
		l++
	}
	return l
}

func TestEventOrder(t *testing.T) {
	q := newEventQueue()
	q.add(&siteEvent{site: NewSite(5, 1, 0)})
	q.add(&siteEvent{site: NewSite(0, 3, 1)})
	q.add(&siteEvent{site: NewSite(-2, 1, 2)})
	// нижняя точка окружности совпадает с сайтом (0, 3)
	q.add(&circleEvent{center: r2.Point{X: 0, Y: 4}, radius: 1})
	q.add(&siteEvent{site: NewSite(5, 1, 3)})

	var got []r2.Point
	var circles []bool
	for !q.isEmpty() {
		ev := q.pop()
		got = append(got, ev.point())
		circles = append(circles, ev.isCircle())
	}

	want := []r2.Point{{X: 0, Y: 3}, {X: 0, Y: 3}, {X: -2, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 1}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if !circles[0] || circles[1] {
		t.Errorf("Expected circle event before site event at the same point, got %v", circles)
	}
}

func TestEventQueueRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	q := newEventQueue()

	var live []*circleEvent
	for i := 0; i < 500; i++ {
		p := r2.Point{X: float64(rnd.Intn(20)), Y: float64(rnd.Intn(20))}
		if rnd.Intn(2) == 0 {
			q.add(&siteEvent{site: Site{Pt: p, Cookie: i}})
			continue
		}
		c := &circleEvent{center: p, radius: float64(rnd.Intn(3))}
		q.add(c)
		live = append(live, c)
	}
	// часть окружностей удаляем, некоторые дважды
	for i, c := range live {
		if i%3 == 0 {
			q.delete(c)
			q.delete(c)
		}
	}

	if h := blackHeight(q.tree.root); h < 0 {
		t.Fatalf("Red-black properties are broken")
	}
	if q.len() != len(q.circles)+countSites(q) {
		t.Errorf("Expected size %d, got %d", len(q.circles)+countSites(q), q.len())
	}

	prev := q.pop()
	for !q.isEmpty() {
		ev := q.pop()
		if eventBefore(ev, prev) {
			t.Fatalf("Events out of order: %v after %v", ev.point(), prev.point())
		}
		prev = ev
	}
	if len(q.circles) != 0 {
		t.Errorf("Expected no live circles after draining, got %d", len(q.circles))
	}
}

func countSites(q *eventQueue) int {
	var n int
	for node := q.tree.first; node != nil; node = node.next {
		if !node.value.(event).isCircle() {
			n++
		}
	}
	return n
}

func TestCirclesContaining(t *testing.T) {
	q := newEventQueue()
	c := &circleEvent{center: r2.Point{X: 0, Y: 0}, radius: 2}
	q.add(c)

	if got := q.circlesContaining(r2.Point{X: 1, Y: 1}, 1e-9); len(got) != 1 || got[0] != c {
		t.Errorf("Expected the circle to contain (1, 1), got %v", got)
	}
	// точка на окружности не считается
	if got := q.circlesContaining(r2.Point{X: 2, Y: 0}, 1e-9); len(got) != 0 {
		t.Errorf("Expected no circles for a point on the boundary, got %d", len(got))
	}

	leaf := &leafNode{}
	leaf.circle = c
	c.leaf = leaf
	q.delete(c)
	if leaf.circle != nil {
		t.Errorf("Expected deleted event to be detached from its arc")
	}
	if !q.isEmpty() {
		t.Errorf("Expected empty queue")
	}
}
