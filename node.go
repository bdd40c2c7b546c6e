// Package comptree implements a generic composite tree: nodes carrying an
// arbitrary payload, parent/child links, traversal and search, and a plain
// nested form for serialization round-trips.
package comptree

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidOperation is returned when a child mutation is attempted on a
// declared leaf, or when an insertion would make a node its own descendant.
var ErrInvalidOperation = errors.New("invalid operation")

// Lifecycle is implemented by payloads that want to be notified when their
// node is attached to or detached from a parent.
type Lifecycle interface {
	Attached()
	Detached()
}

// Node is a composite tree node with payload of type T. A node owns its
// children; the parent link is a non-owning back-reference, nil at the root.
//
// Not safe for concurrent use: callers must serialize access to a shared
// tree.
type Node[T any] struct {
	data     T
	parent   *Node[T]
	children []*Node[T]
	leaf     bool
}

// New returns a node that can hold children.
func New[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

// NewLeaf returns a node declared as a leaf: Add and Remove on it fail with
// ErrInvalidOperation.
func NewLeaf[T any](data T) *Node[T] {
	return &Node[T]{data: data, leaf: true}
}

// Data returns the payload set at construction.
func (n *Node[T]) Data() T {
	return n.data
}

// Parent returns the owning node, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Root walks the parent links up to the top of the tree.
func (n *Node[T]) Root() *Node[T] {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns a copy of the ordered child sequence. A declared leaf
// has no observable children.
func (n *Node[T]) Children() []*Node[T] {
	if n.leaf || len(n.children) == 0 {
		return nil
	}
	children := make([]*Node[T], len(n.children))
	copy(children, n.children)
	return children
}

// Add appends child to the end of n's child sequence and reparents it to n.
// A child already attached elsewhere is detached from its old parent first;
// a node never has two parents. Fails with ErrInvalidOperation when n is a
// declared leaf or when child is n or an ancestor of n.
func (n *Node[T]) Add(child *Node[T]) error {
	if n.leaf {
		return fmt.Errorf("add: %w: node is a leaf", ErrInvalidOperation)
	}
	if child == n || child.isAncestorOf(n) {
		return fmt.Errorf("add: %w: node cannot become its own descendant", ErrInvalidOperation)
	}
	if child.parent != nil {
		child.parent.detach(child)
	}
	n.attach(child)
	return nil
}

// Remove detaches child from n and clears its parent link. Removing a node
// that is not a child of n is a no-op; matching is by identity, not by
// payload equality. Fails with ErrInvalidOperation when n is a declared
// leaf.
func (n *Node[T]) Remove(child *Node[T]) error {
	if n.leaf {
		return fmt.Errorf("remove: %w: node is a leaf", ErrInvalidOperation)
	}
	n.detach(child)
	return nil
}

// SetLeaf toggles the declared-leaf flag. Turning it on detaches every
// current child, clearing each child's parent link so none is left pointing
// at a parent that no longer lists it.
func (n *Node[T]) SetLeaf(leaf bool) {
	n.leaf = leaf
	if !leaf {
		return
	}
	for _, c := range n.children {
		c.parent = nil
		if l, ok := any(c.data).(Lifecycle); ok {
			l.Detached()
		}
	}
	n.children = nil
}

// IsLeaf reports whether the node is declared unable to hold children. A
// node with zero children but no leaf flag is not a leaf: leaf-ness is a
// declared property, not a structural observation.
func (n *Node[T]) IsLeaf() bool {
	return n.leaf
}

// Depth is 0 for the root and the parent's depth plus one otherwise.
func (n *Node[T]) Depth() int {
	if n.parent == nil {
		return 0
	}
	return 1 + n.parent.Depth()
}

// Index is the zero-based position of n within its parent's child
// sequence, or -1 for the root.
func (n *Node[T]) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Path describes the root-to-n chain, e.g. "root -> 0.child -> 1.child".
// The root itself is "root".
func (n *Node[T]) Path() string {
	if n.parent == nil {
		return "root"
	}
	return n.parent.Path() + " -> " + strconv.Itoa(n.Index()) + ".child"
}

// Count returns the number of nodes in the subtree rooted at n, including
// n itself.
func (n *Node[T]) Count() int {
	count := 1
	for _, c := range n.children {
		count += c.Count()
	}
	return count
}

// Clone deep-copies the subtree rooted at n, leaf flags included. The
// clone's root has no parent. Payloads are copied by assignment.
func (n *Node[T]) Clone() *Node[T] {
	cp := &Node[T]{data: n.data, leaf: n.leaf}
	for _, c := range n.children {
		sub := c.Clone()
		sub.parent = cp
		cp.children = append(cp.children, sub)
	}
	return cp
}

func (n *Node[T]) attach(child *Node[T]) {
	child.parent = n
	n.children = append(n.children, child)
	if l, ok := any(child.data).(Lifecycle); ok {
		l.Attached()
	}
}

func (n *Node[T]) detach(child *Node[T]) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			if l, ok := any(child.data).(Lifecycle); ok {
				l.Detached()
			}
			return
		}
	}
}

func (n *Node[T]) isAncestorOf(other *Node[T]) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}
