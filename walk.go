package comptree

// Traversal orders.
const (
	PreOrder = iota
	PostOrder
	LevelOrder
)

// Search strategies.
const (
	DepthFirst = iota
	BreadthFirst
)

// Traverse applies fn to every node of the subtree rooted at n in
// pre-order.
func (n *Node[T]) Traverse(fn func(*Node[T])) {
	n.TraverseEx(fn, PreOrder)
}

// TraverseEx applies fn to every node of the subtree rooted at n. PreOrder
// visits a node before its children, PostOrder after, LevelOrder visits
// level by level, left to right within a level. Purely for side effects.
func (n *Node[T]) TraverseEx(fn func(*Node[T]), order int) {
	switch order {
	case PostOrder:
		for _, c := range n.children {
			c.TraverseEx(fn, PostOrder)
		}
		fn(n)
	case LevelOrder:
		queue := []*Node[T]{n}
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			fn(next)
			queue = append(queue, next.children...)
		}
	default:
		fn(n)
		for _, c := range n.children {
			c.TraverseEx(fn, PreOrder)
		}
	}
}

// Find returns the first node in the subtree rooted at n for which pred is
// true, searching depth-first, or nil when nothing matches.
func (n *Node[T]) Find(pred func(*Node[T]) bool) *Node[T] {
	return n.FindEx(pred, DepthFirst)
}

// FindEx is Find with an explicit strategy. DepthFirst tests a node before
// recursing into its children left to right; BreadthFirst tests level by
// level. Both stop at the first match and may return different nodes when
// several match.
func (n *Node[T]) FindEx(pred func(*Node[T]) bool, strategy int) *Node[T] {
	if strategy == BreadthFirst {
		queue := []*Node[T]{n}
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if pred(next) {
				return next
			}
			queue = append(queue, next.children...)
		}
		return nil
	}

	if pred(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.FindEx(pred, DepthFirst); found != nil {
			return found
		}
	}
	return nil
}
