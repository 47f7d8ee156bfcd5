// Package tree implements a labeled tree with downward-owning edges and a
// non-owning parent back-reference.
//
// Children are exclusively owned by their parent (and by whatever other
// strong handles callers hold). The parent link is a weak handle: it lets
// a node answer "what is my parent's value" without keeping the parent
// alive, so the ownership graph stays acyclic and releasing all owning
// handles anywhere in the tree reclaims the subtree beneath it.
package tree

import "github.com/kolkov/golab/internal/ref"

// Node is a tree node. Access it through the owning handle returned by
// New; the node is reclaimed when its last owning handle is released.
type Node struct {
	value    int
	children []*ref.Strong[*Node]
	parent   *ref.Weak[*Node]
}

// New creates a detached node and returns its first owning handle. When
// the last owning handle goes away, the node releases its hold on every
// child, cascading reclamation down the subtree.
func New(value int) *ref.Strong[*Node] {
	n := &Node{value: value}
	return ref.NewStrongFunc(n, func(n *Node) {
		for _, c := range n.children {
			c.Release()
		}
		n.children = nil
	})
}

// Value returns the node's label.
func (n *Node) Value() int { return n.value }

// NumChildren returns the number of owned children.
func (n *Node) NumChildren() int { return len(n.children) }

// ChildValue returns the value of the i-th child, or false if out of range.
func (n *Node) ChildValue(i int) (int, bool) {
	if i < 0 || i >= len(n.children) {
		return 0, false
	}
	return n.children[i].Get().value, true
}

// ParentValue resolves the weak parent link. Returns false for a root node
// and for a node whose parent has already been reclaimed.
func (n *Node) ParentValue() (int, bool) {
	if n.parent == nil {
		return 0, false
	}
	p, ok := n.parent.Get()
	if !ok {
		return 0, false
	}
	return p.value, true
}

// AddChild attaches child beneath parent. The parent takes an owning
// handle on the child; the child gets only a weak back-reference, never an
// owning one.
func AddChild(parent, child *ref.Strong[*Node]) {
	p := parent.Get()
	c := child.Get()
	p.children = append(p.children, child.Clone())
	c.parent = parent.Downgrade()
}
