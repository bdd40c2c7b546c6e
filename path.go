package comptree

import (
	"strconv"
	"strings"
)

const (
	PathTokenKindThis = iota
	PathTokenKindParent
	PathTokenKindRoot
	PathTokenKindIndex
	PathTokenKindDirectChildren
	PathTokenKindAllChildren
	PathTokenKindAllParents
)

type pathToken struct {
	Kind  int
	Index int
}

// TokenizePath splits a "/"-separated path into tokens. Components: a
// decimal number selects a child by index, ".." the parent, "..." every
// ancestor, "*" the direct children, "**" every descendant; a leading "/"
// restarts at the root. Returns nil for a path with an unparseable
// component.
func TokenizePath(path string) []pathToken {
	parts := strings.Split(path, "/")

	var tokens []pathToken
	for i, part := range parts {
		t := pathToken{Kind: PathTokenKindThis}

		switch {
		case part == "" && i == 0 && len(parts) > 1:
			t.Kind = PathTokenKindRoot

		case part == "":
			t.Kind = PathTokenKindThis

		case part == "..":
			t.Kind = PathTokenKindParent

		case part == "...":
			t.Kind = PathTokenKindAllParents

		case part == "*":
			t.Kind = PathTokenKindDirectChildren

		case part == "**":
			t.Kind = PathTokenKindAllChildren

		default:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 {
				return nil
			}
			t.Kind = PathTokenKindIndex
			t.Index = idx
		}

		tokens = append(tokens, t)
	}

	return tokens
}

// Resolve returns the nodes reached by following path from n, without
// duplicates, in discovery order. An empty path resolves to n itself; an
// unparseable path resolves to no nodes.
func (n *Node[T]) Resolve(path string) []*Node[T] {
	tokens := TokenizePath(path)
	if tokens == nil {
		return nil
	}

	result := []*Node[T]{n}
	for _, t := range tokens {
		result = resolveToken(result, t)
	}
	return result
}

// ResolveOne returns the first node Resolve yields, or nil.
func (n *Node[T]) ResolveOne(path string) *Node[T] {
	nodes := n.Resolve(path)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func resolveToken[T any](nodes []*Node[T], t pathToken) []*Node[T] {
	var result []*Node[T]

	appendUnique := func(n *Node[T]) {
		if n == nil {
			return
		}
		for _, existing := range result {
			if existing == n {
				return
			}
		}
		result = append(result, n)
	}

	for _, n := range nodes {
		switch t.Kind {
		case PathTokenKindThis:
			appendUnique(n)

		case PathTokenKindParent:
			appendUnique(n.parent)

		case PathTokenKindAllParents:
			for p := n.parent; p != nil; p = p.parent {
				appendUnique(p)
			}

		case PathTokenKindRoot:
			appendUnique(n.Root())

		case PathTokenKindIndex:
			children := n.Children()
			if t.Index < len(children) {
				appendUnique(children[t.Index])
			}

		case PathTokenKindDirectChildren:
			for _, c := range n.Children() {
				appendUnique(c)
			}

		case PathTokenKindAllChildren:
			root := n
			root.Traverse(func(sub *Node[T]) {
				if sub != root {
					appendUnique(sub)
				}
			})
		}
	}

	return result
}
