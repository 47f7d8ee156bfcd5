package ref

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrongGet(t *testing.T) {
	s := NewStrong(42)
	require.Equal(t, 42, s.Get())

	strong, weak := s.Counts()
	require.Equal(t, 1, strong)
	require.Equal(t, 0, weak)
}

func TestCloneSharesValue(t *testing.T) {
	s := NewStrong(42)
	c := s.Clone()

	strong, _ := s.Counts()
	require.Equal(t, 2, strong)
	require.Equal(t, 42, c.Get())

	s.Release()
	// The clone still owns the value.
	require.Equal(t, 42, c.Get())
	c.Release()
}

// TestWeakResolution is the lifetime property: a weak handle resolves
// while any owning handle remains and reports absent immediately after the
// last release.
func TestWeakResolution(t *testing.T) {
	s := NewStrong(42)
	w := s.Downgrade()

	strong, weak := s.Counts()
	require.Equal(t, 1, strong)
	require.Equal(t, 1, weak)

	v, ok := w.Get()
	require.True(t, ok)
	require.Equal(t, 42, v)

	c := s.Clone()
	s.Release()

	// One owner left; still resolvable.
	v, ok = w.Get()
	require.True(t, ok)
	require.Equal(t, 42, v)

	c.Release()

	_, ok = w.Get()
	require.False(t, ok)
}

func TestDoubleReleasePanics(t *testing.T) {
	s := NewStrong(1)
	s.Release()
	require.Panics(t, func() { s.Release() })
	require.Panics(t, func() { s.Get() })
	require.Panics(t, func() { s.Clone() })
}

func TestOnZeroHook(t *testing.T) {
	var reclaimed []int
	s := NewStrongFunc(7, func(v int) { reclaimed = append(reclaimed, v) })
	c := s.Clone()

	s.Release()
	require.Empty(t, reclaimed, "hook must wait for the last owner")

	c.Release()
	require.Equal(t, []int{7}, reclaimed)
}
