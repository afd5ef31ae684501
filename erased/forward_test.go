package erased

import (
	"hash/fnv"
	"hash/maphash"
	"io"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestEquals(t *testing.T) {
	t.Run("same type, same value", func(t *testing.T) {
		require.True(t, Equals(Point{X: 1, Y: 2}, Point{X: 1, Y: 2}))
	})

	t.Run("same type, different value", func(t *testing.T) {
		require.False(t, Equals(Point{X: 1, Y: 2}, Point{X: 1, Y: 3}))
	})

	t.Run("different types are never equal", func(t *testing.T) {
		// Point and Color have identical field layouts for X/R, Y/G
		require.False(t, Equals(Point{}, Color{}))
		require.False(t, Equals(Color{}, Point{}))
		require.False(t, Equals(Label{Name: "a"}, Path{Segments: "a"}))
	})

	t.Run("custom equality", func(t *testing.T) {
		require.True(t, Equals(Temperature{Celsius: 20}, Temperature{Celsius: 20.05}))
		require.False(t, Equals(Temperature{Celsius: 20}, Temperature{Celsius: 21}))
	})

	t.Run("value and pointer handles compare equal", func(t *testing.T) {
		point := Point{X: 4, Y: 5}
		require.True(t, Equals(&point, Point{X: 4, Y: 5}))
	})
}

func TestSum(t *testing.T) {
	seed := maphash.MakeSeed()

	t.Run("equal values hash equal", func(t *testing.T) {
		require.Equal(t, Sum(seed, Point{X: 1, Y: 2}), Sum(seed, Point{X: 1, Y: 2}))
		require.Equal(t, Sum(seed, Label{Name: "hello"}), Sum(seed, Label{Name: "hello"}))
		require.Equal(t, Sum(seed, Path{Segments: "a/b"}), Sum(seed, Path{Segments: "a/b"}))
	})

	t.Run("different values hash different", func(t *testing.T) {
		require.NotEqual(t, Sum(seed, Point{X: 1, Y: 2}), Sum(seed, Point{X: 2, Y: 1}))
		require.NotEqual(t, Sum(seed, Label{Name: "hello"}), Sum(seed, Label{Name: "world"}))
	})

	t.Run("repeated calls are idempotent", func(t *testing.T) {
		first := Sum(seed, Color{R: 1, G: 2, B: 3})
		for range 16 {
			require.Equal(t, first, Sum(seed, Color{R: 1, G: 2, B: 3}))
		}
	})
}

func TestAppendHashRoundTrip(t *testing.T) {
	t.Run("bridged hash equals direct hash", func(t *testing.T) {
		// hashing through the erased sink must write the same content as
		// the type's own AppendHash
		direct := fnv.New64a()
		Path{Segments: "x/y/z"}.AppendHash(SinkOf(direct))

		bridged := fnv.New64a()
		AppendHash(Path{Segments: "x/y/z"}, SinkOf(bridged))

		require.Equal(t, direct.Sum64(), bridged.Sum64())
	})

	t.Run("string fields write their content, not a fingerprint", func(t *testing.T) {
		// the written bytes must not depend on the process seed, so they
		// can be predicted exactly: field walk order, length prefix, bytes
		direct := fnv.New64a()
		sink := SinkOf(direct)
		sink.WriteUint64(uint64(len("hello")))
		sink.WriteString("hello")

		bridged := fnv.New64a()
		AppendHash(Label{Name: "hello"}, SinkOf(bridged))

		require.Equal(t, direct.Sum64(), bridged.Sum64())
	})

	t.Run("pointer fields hash by identity", func(t *testing.T) {
		seed := maphash.MakeSeed()
		target := &Point{X: 1}

		require.True(t, Equals(Ref{Target: target}, Ref{Target: target}))
		require.Equal(t, Sum(seed, Ref{Target: target}), Sum(seed, Ref{Target: target}))

		require.False(t, Equals(Ref{Target: target}, Ref{Target: &Point{X: 1}}))
	})

	t.Run("trivially hashable types write their content bytes", func(t *testing.T) {
		direct := fnv.New64a()
		value := Color{R: 1, G: 2, B: 3}
		appendMemorySlices(SinkOf(direct), TypeOf[Color]().MemorySlices, unsafe.Pointer(&value))

		bridged := fnv.New64a()
		AppendHash(Color{R: 1, G: 2, B: 3}, SinkOf(bridged))

		require.Equal(t, direct.Sum64(), bridged.Sum64())
	})
}

func TestEqualsImpliesEqualSum(t *testing.T) {
	seed := maphash.MakeSeed()

	handles := []KeyObject{
		Point{X: 1, Y: 2},
		Point{X: 1, Y: 2},
		Point{X: 3, Y: 4},
		Color{R: 1, G: 2},
		Label{Name: "hello"},
		Label{Name: "hello"},
		Path{Segments: "a/b"},
		Path{Segments: "a/b"},
		BoxOf(10),
		BoxOf(10),
		BoxOf("10"),
	}

	for _, a := range handles {
		for _, b := range handles {
			if Equals(a, b) {
				require.Equal(t, Sum(seed, a), Sum(seed, b))
				require.Equal(t, Maphash(a), Maphash(b))
			}
		}
	}
}

func TestMissingCapabilityPanics(t *testing.T) {
	t.Run("hashing an equality only type", func(t *testing.T) {
		require.Panics(t, func() {
			AppendHash(Of[Object](Temperature{Celsius: 1}), SinkOf(io.Discard))
		})
	})
}
