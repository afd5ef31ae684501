// Package objectsafe lets values behind type erased handles take part in
// hashing and equality.
//
// Go's native hashing and equality need the concrete type: == on an
// interface value panics when the dynamic type is not comparable,
// maphash.Comparable requires the type statically, and a self typed
// Equal method cannot appear in an interface over unknown types. This
// package defines object safe twin contracts that are expressed purely
// over erased types, and bridges every qualifying concrete type into them
// with a single embedded marker:
//
//	type Circle struct {
//		objectsafe.Comparable[Circle]
//		Radius int
//	}
//
// Interfaces embed the twin contracts instead of the unusable originals:
//
//	type Shape interface {
//		objectsafe.KeyObject
//		Area() int
//	}
//
// Any two Shape handles can now be compared with Equals and hashed with
// Sum or Maphash, and the objmap package accepts them as map keys and set
// elements. Obj wraps a handle into a value that forwards all behavior,
// and cmd/objgen generates the forwarding implementations that make
// listed target types satisfy the original contracts again.
package objectsafe

import (
	"hash/maphash"
	"io"

	"github.com/dnut/object-safe/erased"
)

// HashValue is the result of content hashing an erased handle.
type HashValue = erased.HashValue

// Object is a type erased handle whose concrete type is reachable only
// through its ObjectType descriptor.
//
// To implement the Object interface for a type, you must embed one of the
// bridge markers Comparable, Equatable or Hashed.
type Object = erased.Object

// HashObject is the object safe twin of content hashing.
type HashObject = erased.HashObject

// EqualObject is the object safe twin of equality. Handles of different
// underlying types compare unequal, never raise an error.
type EqualObject = erased.EqualObject

// EqObject marks equality of the handle as a full equivalence relation.
// It carries no operations beyond EqualObject.
type EqObject = erased.EqObject

// KeyObject is what keyed collections require of their keys.
type KeyObject = erased.KeyObject

// Wrapper is implemented by values forwarding their object behavior to an
// inner handle, such as Obj or the targets of generated forwarding code.
type Wrapper = erased.Wrapper

// Sink is the erased hashing sink: primitive write operations only.
type Sink = erased.Sink

// ObjectType is the canonical per type descriptor carrying the bridged
// hashing and equality behavior.
type ObjectType = erased.ObjectType

type ObjectTypeId = erased.ObjectTypeId

// Equaler is the original, dispatch incompatible equality contract.
type Equaler[C any] = erased.Equaler[C]

// Hashable is the original content hash contract.
type Hashable = erased.Hashable

// IsObject can be used in a type parameter to ensure that type T is an
// object type (see Object).
type IsObject[T any] = erased.IsObject[T]

// IsComparableObject constrains T to object types bridged through native
// comparability (see Comparable).
type IsComparableObject[T IsObject[T]] = erased.IsComparableObject[T]

// IsEquatableObject constrains T to object types bridged through their
// own Equal method (see Equatable).
type IsEquatableObject[T IsObject[T]] = erased.IsEquatableObject[T]

// IsHashedObject constrains T to object types bridged through their own
// AppendHash and Equal methods (see Hashed).
type IsHashedObject[T IsObject[T]] = erased.IsHashedObject[T]

// Comparable is a zero sized type that may be embedded into a struct to
// bridge that struct into all object contracts using native comparability.
type Comparable[C erased.IsComparableObject[C]] = erased.Comparable[C]

// Equatable is a zero sized type that may be embedded into a struct to
// bridge that struct into the equality contract using the struct's own
// Equal method.
type Equatable[C erased.IsEquatableObject[C]] = erased.Equatable[C]

// Hashed is a zero sized type that may be embedded into a struct to
// bridge that struct into all object contracts using the struct's own
// AppendHash and Equal methods.
type Hashed[C erased.IsHashedObject[C]] = erased.Hashed[C]

// Obj is a wrapper that carries any erased handle and itself satisfies
// all object contracts by forwarding to the wrapped handle.
type Obj[T Object] = erased.Obj[T]

// Box lifts a plain comparable value, such as an int or a string, into an
// erased handle without declaring a new type.
type Box[C comparable] = erased.Box[C]

// Of wraps a handle into an Obj. Typically used with an explicit
// interface type parameter: Of[Shape](concrete).
func Of[T Object](value T) Obj[T] {
	return erased.Of(value)
}

// BoxOf wraps a plain comparable value into a Box.
func BoxOf[C comparable](value C) Box[C] {
	return erased.BoxOf(value)
}

// TypeOf returns the canonical descriptor of C.
func TypeOf[C IsObject[C]]() *ObjectType {
	return erased.TypeOf[C]()
}

// AppendHash writes the content of the value behind o into the sink.
func AppendHash(o HashObject, sink Sink) {
	erased.AppendHash(o, sink)
}

// Sum computes the content hash of the value behind o with the given
// seed. Handles that compare equal produce equal sums for the same seed.
func Sum(seed maphash.Seed, o HashObject) HashValue {
	return erased.Sum(seed, o)
}

// Maphash computes the content hash of the value behind o with a process
// wide seed.
func Maphash(o HashObject) HashValue {
	return erased.Maphash(o)
}

// Equals reports whether the values behind two erased handles are equal.
// Handles of different underlying types are never equal.
func Equals(a, b EqualObject) bool {
	return erased.Equals(a, b)
}

// SinkOf adapts a hasher exposed as an io.Writer into a Sink.
func SinkOf(w io.Writer) Sink {
	return erased.SinkOf(w)
}
