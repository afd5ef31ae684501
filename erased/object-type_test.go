package erased

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type Point struct {
	Comparable[Point]
	X, Y int
}

type Color struct {
	Comparable[Color]
	R, G, B uint8
}

type Label struct {
	Comparable[Label]
	Name string
}

type Padded struct {
	Comparable[Padded]
	A uint8
	B uint64
}

type Ref struct {
	Comparable[Ref]
	Target *Point
}

type Temperature struct {
	Equatable[Temperature]
	Celsius float64
}

func (t Temperature) Equal(other Temperature) bool {
	// values within a tenth of a degree count as equal
	diff := t.Celsius - other.Celsius
	return diff < 0.1 && diff > -0.1
}

type Path struct {
	Hashed[Path]
	Segments string
}

func (p Path) Equal(other Path) bool {
	return p.Segments == other.Segments
}

func (p Path) AppendHash(sink Sink) {
	sink.WriteString(p.Segments)
}

func TestObjectTypeIsCanonical(t *testing.T) {
	require.Same(t, TypeOf[Point](), TypeOf[Point]())
	require.NotSame(t, TypeOf[Point](), TypeOf[Color]())

	t.Run("value and pointer handles share the descriptor", func(t *testing.T) {
		var p Point
		require.Same(t, p.ObjectType(), (&p).ObjectType())
	})

	t.Run("descriptor of a wrapped handle", func(t *testing.T) {
		require.Same(t, TypeOf[Point](), Of[Object](Point{}).ObjectType())
	})
}

func TestComparableObjectType(t *testing.T) {
	ty := TypeOf[Point]()

	require.Equal(t, "erased.Point", ty.Name)
	require.True(t, ty.Comparable)
	require.True(t, ty.Strict)
	require.True(t, ty.TriviallyHashable)
	require.False(t, ty.HasPointers)

	t.Run("adjacent fields join into one memory slice", func(t *testing.T) {
		require.Len(t, ty.MemorySlices, 1)
	})

	t.Run("padding splits memory slices", func(t *testing.T) {
		padded := TypeOf[Padded]()
		require.True(t, padded.TriviallyHashable)
		require.Equal(t, []memorySlice{
			{Start: 0, Len: 1},
			{Start: 8, Len: 8},
		}, padded.MemorySlices)
	})

	t.Run("string fields prevent trivial hashing", func(t *testing.T) {
		label := TypeOf[Label]()
		require.True(t, label.Comparable)
		require.True(t, label.HasPointers)
		require.False(t, label.TriviallyHashable)
		require.NotNil(t, label.AppendHash)
	})
}

func TestEquatableObjectType(t *testing.T) {
	ty := TypeOf[Temperature]()

	require.False(t, ty.Comparable)
	require.False(t, ty.Strict)
	require.NotNil(t, ty.Equal)
	require.Nil(t, ty.AppendHash)
	require.Nil(t, ty.Maphash)
}

func TestHashedObjectType(t *testing.T) {
	ty := TypeOf[Path]()

	require.False(t, ty.Comparable)
	require.True(t, ty.Strict)
	require.NotNil(t, ty.Equal)
	require.NotNil(t, ty.AppendHash)
	require.NotNil(t, ty.Maphash)
}

func TestValueOf(t *testing.T) {
	point := Point{X: 1, Y: 2}

	require.Equal(t, point, valueOf[Point](point))
	require.Equal(t, point, valueOf[Point](&point))
	require.Equal(t, point, valueOf[Point](Of[Object](point)))
	require.Equal(t, point, valueOf[Point](Of[Object](Of[Object](point))))

	t.Run("panics for a foreign handle", func(t *testing.T) {
		require.Panics(t, func() {
			valueOf[Point](Color{})
		})
	})
}
