package lab

import (
	"context"
	"fmt"
	"io"

	"github.com/kolkov/golab/internal/ref"
	"github.com/kolkov/golab/internal/tree"
)

func init() {
	register(Demo{
		Name:    "tree-cycle",
		Topic:   TopicMemory,
		Variant: Buggy,
		Summary: "owning parent back-reference: a cycle that never reaches zero",
		Run:     runTreeCycle,
	})
	register(Demo{
		Name:    "tree-weak-parent",
		Topic:   TopicMemory,
		Variant: Fixed,
		Summary: "weak parent back-reference: subtrees reclaimed, parent lookup safe",
		Run:     runTreeWeakParent,
	})
}

// leakyNode wires ownership in both directions. That is the bug: parent
// and child each keep the other alive, so neither strong count can reach
// zero once the external handles are gone.
type leakyNode struct {
	value    int
	children []*ref.Strong[*leakyNode]
	parent   *ref.Strong[*leakyNode] // BUG: owning back-reference
}

func runTreeCycle(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Owning Parent Reference (BUGGY) ===")
	fmt.Fprintln(out)

	parent := ref.NewStrongFunc(&leakyNode{value: 1}, func(n *leakyNode) {
		for _, c := range n.children {
			c.Release()
		}
		if n.parent != nil {
			n.parent.Release()
		}
	})
	child := ref.NewStrongFunc(&leakyNode{value: 2}, func(n *leakyNode) {
		for _, c := range n.children {
			c.Release()
		}
		if n.parent != nil {
			n.parent.Release()
		}
	})

	// Wire both directions with owning handles.
	parent.Get().children = append(parent.Get().children, child.Clone())
	child.Get().parent = parent.Clone() // BUG: should be a weak handle

	ps, _ := parent.Counts()
	cs, _ := child.Counts()
	fmt.Fprintf(out, "before releasing external handles: parent strong=%d, child strong=%d\n", ps, cs)

	parentWeak := parent.Downgrade()
	childWeak := child.Downgrade()

	// Drop the external handles. The cycle keeps both cells alive.
	parent.Release()
	child.Release()

	if _, ok := parentWeak.Get(); ok {
		fmt.Fprintln(out, "parent still alive after releasing every external handle")
	}
	if _, ok := childWeak.Get(); ok {
		fmt.Fprintln(out, "child still alive after releasing every external handle")
	}
	fmt.Fprintln(out, "✗ the cycle leaks: neither node can ever be reclaimed")
	return nil
}

func runTreeWeakParent(_ context.Context, out io.Writer) error {
	fmt.Fprintln(out, "=== Weak Parent Reference ===")
	fmt.Fprintln(out)

	root := tree.New(1)
	a := tree.New(2)
	b := tree.New(3)
	tree.AddChild(root, a)
	tree.AddChild(root, b)

	fmt.Fprintf(out, "root has %d children\n", root.Get().NumChildren())
	if pv, ok := a.Get().ParentValue(); ok {
		fmt.Fprintf(out, "child 2 resolves its parent: value %d\n", pv)
	}

	strong, weak := root.Counts()
	fmt.Fprintf(out, "root counts: strong=%d weak=%d (children never own upward)\n", strong, weak)

	// Hand child 3 entirely to the tree; keep only a weak handle on it.
	bWeak := b.Downgrade()
	b.Release()
	if _, ok := bWeak.Get(); ok {
		fmt.Fprintln(out, "child 3 alive: the tree still owns it")
	}

	// Releasing the root reclaims it immediately: the children's back
	// references hold nothing up.
	fmt.Fprintln(out, "releasing the root...")
	root.Release()

	if _, ok := a.Get().ParentValue(); !ok {
		fmt.Fprintln(out, "child 2 now reports: parent already reclaimed")
	}
	if _, ok := bWeak.Get(); !ok {
		fmt.Fprintln(out, "child 3 reclaimed with the subtree")
	}
	a.Release()

	fmt.Fprintln(out, "✓ parent links never extend lifetimes; release cascades downward")
	return nil
}
