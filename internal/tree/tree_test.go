package tree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddChild(t *testing.T) {
	root := New(1)
	child := New(2)

	AddChild(root, child)

	require.Equal(t, 1, root.Get().NumChildren())
	v, ok := root.Get().ChildValue(0)
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = root.Get().ChildValue(1)
	require.False(t, ok)

	child.Release()
	root.Release()
}

func TestParentValue(t *testing.T) {
	root := New(10)
	child := New(20)
	AddChild(root, child)

	pv, ok := child.Get().ParentValue()
	require.True(t, ok)
	require.Equal(t, 10, pv)

	// A root has no parent.
	_, ok = root.Get().ParentValue()
	require.False(t, ok)

	child.Release()
	root.Release()
}

// TestParentLinkDoesNotOwn is the acyclicity property: the child's back
// reference must not keep the parent alive, so releasing the root's owning
// handles reclaims it even while the child survives.
func TestParentLinkDoesNotOwn(t *testing.T) {
	root := New(10)
	child := New(20)
	AddChild(root, child)

	strong, _ := root.Counts()
	require.Equal(t, 1, strong, "child must not hold an owning handle on its parent")

	root.Release()

	// The child is still owned by the caller, but its parent is gone.
	_, ok := child.Get().ParentValue()
	require.False(t, ok)
	require.Equal(t, 20, child.Get().Value())

	child.Release()
}

// TestSubtreeReclamation: releasing every owning handle on the root
// cascades through the owned children.
func TestSubtreeReclamation(t *testing.T) {
	root := New(1)
	a := New(2)
	b := New(3)
	AddChild(root, a)
	AddChild(root, b)

	// Drop the caller's handles; the tree now solely owns a and b.
	aWeak := a.Downgrade()
	bWeak := b.Downgrade()
	a.Release()
	b.Release()

	_, ok := aWeak.Get()
	require.True(t, ok, "still owned by the tree")

	root.Release()

	_, ok = aWeak.Get()
	require.False(t, ok)
	_, ok = bWeak.Get()
	require.False(t, ok)
}

func TestGrandchildReclamation(t *testing.T) {
	root := New(1)
	mid := New(2)
	leaf := New(3)
	AddChild(root, mid)
	AddChild(mid, leaf)

	leafWeak := leaf.Downgrade()
	mid.Release()
	leaf.Release()

	root.Release()

	_, ok := leafWeak.Get()
	require.False(t, ok, "cascade must reach the grandchild")
}
