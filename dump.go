package comptree

import "github.com/rs/zerolog"

// Dump writes one debug event per node of the subtree rooted at n, in
// pre-order: path, depth, declared-leaf flag and payload.
func (n *Node[T]) Dump(log zerolog.Logger) {
	n.Traverse(func(c *Node[T]) {
		log.Debug().
			Str("path", c.Path()).
			Int("depth", c.Depth()).
			Bool("leaf", c.IsLeaf()).
			Interface("data", c.Data()).
			Msg("node")
	})
}
