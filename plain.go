package comptree

import "encoding/json"

// PlainNode is the serialization-friendly mirror of a Node: a payload plus
// nested children, no behavior. A nil Children slice and an empty one both
// mean "no children".
type PlainNode[T any] struct {
	Data     T               `json:"data"`
	Children []*PlainNode[T] `json:"children,omitempty"`
}

// FromPlain recursively builds a composite tree from its plain mirror.
func FromPlain[T any](p *PlainNode[T]) *Node[T] {
	n := New(p.Data)
	for _, c := range p.Children {
		n.attach(FromPlain(c))
	}
	return n
}

// ToPlain recursively mirrors the subtree rooted at n into its plain form.
// Children are read through Children(), so a declared leaf always converts
// to a childless plain node.
func ToPlain[T any](n *Node[T]) *PlainNode[T] {
	p := &PlainNode[T]{Data: n.data}
	for _, c := range n.Children() {
		p.Children = append(p.Children, ToPlain(c))
	}
	return p
}

// ToJSON marshals the subtree rooted at n as a nested JSON document.
func ToJSON[T any](n *Node[T]) ([]byte, error) {
	return json.Marshal(ToPlain(n))
}

// FromJSON builds a composite tree from a nested JSON document in the
// PlainNode shape. A missing children field means zero children.
func FromJSON[T any](data []byte) (*Node[T], error) {
	var p PlainNode[T]
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return FromPlain(&p), nil
}
