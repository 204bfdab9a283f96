package voronoi

// Красно-черное дерево с прошивкой previous/next. Узлы знают своих соседей
// по порядку, поэтому минимум и удаление произвольного узла дешевые.
// Используется как хранилище очереди событий.

type rbValue interface {
	bindToNode(node *rbNode)
	treeNode() *rbNode
}

type rbNode struct {
	value    rbValue
	left     *rbNode
	right    *rbNode
	parent   *rbNode
	previous *rbNode
	next     *rbNode
	red      bool
}

type rbTree struct {
	root  *rbNode
	first *rbNode
	size  int
}

// insert кладет значение в дерево по порядку less. Равные значения
// встают после уже имеющихся.
func (t *rbTree) insert(v rbValue, less func(a, b rbValue) bool) {
	var predecessor *rbNode
	node := t.root
	for node != nil {
		if less(v, node.value) {
			if node.left == nil {
				predecessor = node.previous
				break
			}
			node = node.left
		} else {
			if node.right == nil {
				predecessor = node
				break
			}
			node = node.right
		}
	}
	t.insertSuccessor(predecessor, v)
}

// insertSuccessor вставляет значение сразу после node (nil - в начало).
func (t *rbTree) insertSuccessor(node *rbNode, v rbValue) {
	successor := &rbNode{value: v, red: true}
	v.bindToNode(successor)
	t.size++

	var parent *rbNode
	switch {
	case node != nil:
		successor.previous = node
		successor.next = node.next
		if node.next != nil {
			node.next.previous = successor
		}
		node.next = successor
		if node.right != nil {
			// самый левый узел правого поддерева
			node = leftmost(node.right)
			node.left = successor
		} else {
			node.right = successor
		}
		parent = node
	case t.root != nil:
		node = leftmost(t.root)
		successor.next = node
		node.previous = successor
		node.left = successor
		parent = node
	default:
		t.root = successor
	}
	successor.parent = parent

	if successor.previous == nil {
		t.first = successor
	}
	t.fixInsert(successor)
}

func (t *rbTree) fixInsert(node *rbNode) {
	parent := node.parent
	for parent != nil && parent.red {
		grandpa := parent.parent
		if parent == grandpa.left {
			uncle := grandpa.right
			if uncle != nil && uncle.red {
				parent.red, uncle.red, grandpa.red = false, false, true
				node = grandpa
			} else {
				if node == parent.right {
					t.rotateLeft(parent)
					node = parent
					parent = node.parent
				}
				parent.red, grandpa.red = false, true
				t.rotateRight(grandpa)
			}
		} else {
			uncle := grandpa.left
			if uncle != nil && uncle.red {
				parent.red, uncle.red, grandpa.red = false, false, true
				node = grandpa
			} else {
				if node == parent.left {
					t.rotateRight(parent)
					node = parent
					parent = node.parent
				}
				parent.red, grandpa.red = false, true
				t.rotateLeft(grandpa)
			}
		}
		parent = node.parent
	}
	t.root.red = false
}

func (t *rbTree) removeNode(node *rbNode) {
	if node == t.first {
		t.first = node.next
	}
	if node.next != nil {
		node.next.previous = node.previous
	}
	if node.previous != nil {
		node.previous.next = node.next
	}
	node.next, node.previous = nil, nil
	t.size--

	parent := node.parent
	left, right := node.left, node.right

	var next *rbNode
	switch {
	case left == nil:
		next = right
	case right == nil:
		next = left
	default:
		next = leftmost(right)
	}
	t.replaceChild(parent, node, next)

	var wasRed bool
	if left != nil && right != nil {
		wasRed = next.red
		next.red = node.red
		next.left = left
		left.parent = next
		if next != right {
			parent = next.parent
			next.parent = node.parent
			node = next.right
			parent.left = node
			next.right = right
			right.parent = next
		} else {
			next.parent = parent
			parent = next
			node = next.right
		}
	} else {
		wasRed = node.red
		node = next
	}
	if node != nil {
		node.parent = parent
	}
	if wasRed {
		return
	}
	if node != nil && node.red {
		node.red = false
		return
	}
	t.fixRemove(node, parent)
}

func (t *rbTree) fixRemove(node, parent *rbNode) {
	var sibling *rbNode
	for node != t.root {
		if node == parent.left {
			sibling = parent.right
			if sibling.red {
				sibling.red, parent.red = false, true
				t.rotateLeft(parent)
				sibling = parent.right
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.right) {
					sibling.left.red = false
					sibling.red = true
					t.rotateRight(sibling)
					sibling = parent.right
				}
				sibling.red = parent.red
				parent.red = false
				sibling.right.red = false
				t.rotateLeft(parent)
				node = t.root
				break
			}
		} else {
			sibling = parent.left
			if sibling.red {
				sibling.red, parent.red = false, true
				t.rotateRight(parent)
				sibling = parent.left
			}
			if isRed(sibling.left) || isRed(sibling.right) {
				if !isRed(sibling.left) {
					sibling.right.red = false
					sibling.red = true
					t.rotateLeft(sibling)
					sibling = parent.left
				}
				sibling.red = parent.red
				parent.red = false
				sibling.left.red = false
				t.rotateRight(parent)
				node = t.root
				break
			}
		}
		sibling.red = true
		node = parent
		parent = parent.parent
		if node.red {
			break
		}
	}
	if node != nil {
		node.red = false
	}
}

func (t *rbTree) replaceChild(parent, old, child *rbNode) {
	switch {
	case parent == nil:
		t.root = child
	case parent.left == old:
		parent.left = child
	default:
		parent.right = child
	}
}

func (t *rbTree) rotateLeft(p *rbNode) {
	q := p.right
	t.replaceChild(p.parent, p, q)
	q.parent = p.parent
	p.parent = q
	p.right = q.left
	if p.right != nil {
		p.right.parent = p
	}
	q.left = p
}

func (t *rbTree) rotateRight(p *rbNode) {
	q := p.left
	t.replaceChild(p.parent, p, q)
	q.parent = p.parent
	p.parent = q
	p.left = q.right
	if p.left != nil {
		p.left.parent = p
	}
	q.right = p
}

func leftmost(node *rbNode) *rbNode {
	for node.left != nil {
		node = node.left
	}
	return node
}

func isRed(node *rbNode) bool {
	return node != nil && node.red
}
