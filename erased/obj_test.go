package erased

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/require"
)

// entity is a dynamically dispatched interface over unknown concrete
// types. It requires the erased contracts instead of the unusable
// originals, which keeps it usable as a trait object.
type entity interface {
	KeyObject
	Kind() string
}

type Door struct {
	Comparable[Door]
	Id int
}

func (Door) Kind() string { return "door" }

type Window struct {
	Comparable[Window]
	Id int
}

func (Window) Kind() string { return "window" }

func TestObjMirrorsTarget(t *testing.T) {
	seed := maphash.MakeSeed()

	a := Of[entity](Door{Id: 1})
	b := Of[entity](Door{Id: 1})
	c := Of[entity](Door{Id: 2})

	require.True(t, Equals(a, b))
	require.False(t, Equals(a, c))

	require.Equal(t, Sum(seed, a), Sum(seed, Door{Id: 1}))
	require.Equal(t, Maphash(a), Maphash(Door{Id: 1}))

	t.Run("wrapped and bare handles compare equal", func(t *testing.T) {
		require.True(t, Equals(a, Door{Id: 1}))
		require.True(t, Equals(Door{Id: 1}, a))
	})
}

func TestObjCrossTypeEquality(t *testing.T) {
	// same field values, different concrete types
	door := Of[entity](Door{Id: 1})
	window := Of[entity](Window{Id: 1})

	require.False(t, Equals(door, window))
	require.False(t, Equals(window, door))
}

func TestObjUnwrap(t *testing.T) {
	obj := Of[entity](Door{Id: 7})

	door, ok := obj.Unwrap().(Door)
	require.True(t, ok)
	require.Equal(t, 7, door.Id)
}

func TestBox(t *testing.T) {
	require.True(t, Equals(BoxOf(10), BoxOf(10)))
	require.False(t, Equals(BoxOf(10), BoxOf(11)))
	require.True(t, Equals(BoxOf("hello"), BoxOf("hello")))

	t.Run("boxes of different types are never equal", func(t *testing.T) {
		require.False(t, Equals(BoxOf(10), BoxOf("10")))
		require.False(t, Equals(BoxOf(int32(10)), BoxOf(int64(10))))
	})

	t.Run("boxes hash by content", func(t *testing.T) {
		seed := maphash.MakeSeed()
		require.Equal(t, Sum(seed, BoxOf("hello")), Sum(seed, BoxOf("hello")))
		require.NotEqual(t, Sum(seed, BoxOf("hello")), Sum(seed, BoxOf("world")))
	})
}
