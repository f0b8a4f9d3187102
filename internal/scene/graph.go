package scene

import (
	"iter"
	"slices"
)

// Handle indexes a node in its Graph.
type Handle int

const NoHandle Handle = -1

// Graph is a pool of nodes linked into a forest. Removed slots stay empty
// so handles of the remaining nodes never change.
type Graph struct {
	nodes []Node
	count int
}

func NewGraph() *Graph {
	return &Graph{}
}

// Add stores n as a root node.
func (g *Graph) Add(n Node) Handle {
	b := n.Base()
	b.parent = NoHandle
	b.children = nil
	g.nodes = append(g.nodes, n)
	g.count++
	return Handle(len(g.nodes) - 1)
}

// AddChild stores n under parent.
func (g *Graph) AddChild(n Node, parent Handle) Handle {
	h := g.Add(n)
	g.Link(h, parent)
	return h
}

func (g *Graph) Node(h Handle) Node {
	if h < 0 || int(h) >= len(g.nodes) {
		return nil
	}
	return g.nodes[h]
}

// Link makes child the last child of parent.
func (g *Graph) Link(child, parent Handle) {
	c := g.Node(child)
	p := g.Node(parent)
	if c == nil || p == nil || child == parent || g.isAncestor(child, parent) {
		return
	}
	g.unlink(child)
	c.Base().parent = parent
	p.Base().children = append(p.Base().children, child)
}

func (g *Graph) unlink(h Handle) {
	b := g.Node(h).Base()
	if p := g.Node(b.parent); p != nil {
		pb := p.Base()
		pb.children = slices.DeleteFunc(pb.children, func(c Handle) bool { return c == h })
	}
	b.parent = NoHandle
}

// isAncestor reports whether a lies on the parent chain of h.
func (g *Graph) isAncestor(a, h Handle) bool {
	for n := g.Node(h); n != nil; n = g.Node(n.Base().parent) {
		if n.Base().parent == a {
			return true
		}
	}
	return false
}

// Remove deletes h and its descendants.
func (g *Graph) Remove(h Handle) {
	n := g.Node(h)
	if n == nil {
		return
	}
	g.unlink(h)
	g.removeSubtree(h)
}

func (g *Graph) removeSubtree(h Handle) {
	n := g.Node(h)
	if n == nil {
		return
	}
	for _, c := range slices.Clone(n.Base().children) {
		g.removeSubtree(c)
	}
	g.nodes[h] = nil
	g.count--
}

// Len is the number of live nodes.
func (g *Graph) Len() int { return g.count }

// LinearIter yields every live node in pool order.
func (g *Graph) LinearIter() iter.Seq2[Handle, Node] {
	return func(yield func(Handle, Node) bool) {
		for i, n := range g.nodes {
			if n == nil {
				continue
			}
			if !yield(Handle(i), n) {
				return
			}
		}
	}
}

// FindByName returns the first node with the given name.
func (g *Graph) FindByName(name string) (Handle, Node) {
	for h, n := range g.LinearIter() {
		if n.Base().Name == name {
			return h, n
		}
	}
	return NoHandle, nil
}
