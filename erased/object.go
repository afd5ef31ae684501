package erased

// HashValue is the result of content hashing an erased handle.
type HashValue uint64

type objectMarker struct{}

// Object is a type erased handle: a value whose concrete type is unknown
// at the call site, accessed through its ObjectType descriptor.
//
// Values of this type are usually the concrete value itself or a pointer
// to it; the interface is implemented by embedding one of the bridge
// markers Comparable, Equatable or Hashed.
type Object interface {
	// ObjectType returns the descriptor of the underlying concrete type.
	// Descriptors are canonical: two handles share an underlying type
	// exactly if they return the same pointer.
	ObjectType() *ObjectType
}

// HashObject is the object safe twin of content hashing: the content of
// the value behind the handle can be written into an erased Sink.
type HashObject interface {
	Object
	isHashObject(objectMarker)
}

// EqualObject is the object safe twin of equality: the value behind the
// handle can be compared against any other EqualObject handle. Handles of
// different underlying types compare unequal, never raise an error.
type EqualObject interface {
	Object
	isEqualObject(objectMarker)
}

// EqObject marks equality of the handle as a full equivalence relation.
// It carries no operations beyond EqualObject.
type EqObject interface {
	EqualObject
	isEqObject(objectMarker)
}

// KeyObject is what keyed collections require of their keys.
type KeyObject interface {
	HashObject
	EqObject
}

// Wrapper is implemented by values that forward their object behavior to
// an inner handle, such as Obj. The bridge resolves chains of wrappers
// when it extracts the concrete value behind a handle.
type Wrapper interface {
	Object

	// Unwrap returns the handle one dereference step closer to the
	// concrete value.
	Unwrap() Object
}
