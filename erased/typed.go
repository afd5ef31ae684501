package erased

// Equaler is the original, dispatch incompatible equality contract:
// comparison against another value of the concrete type itself.
type Equaler[C any] interface {
	Equal(other C) bool
}

// Hashable is the original content hash contract: append the value's
// content to a hashing sink.
type Hashable interface {
	AppendHash(sink Sink)
}

// IsObject can be used in a type parameter to ensure that type T is an
// object type.
//
// To implement the IsObject interface for a type, you must embed one of
// the bridge markers Comparable, Equatable or Hashed.
type IsObject[T any] interface {
	Object
	IsObject(T)
}

// IsComparableObject constrains T to object types bridged through native
// comparability.
//
// To implement the IsComparableObject interface for a type, you must embed
// the Comparable type.
type IsComparableObject[T IsObject[T]] interface {
	IsObject[T]
	comparable
}

// IsEquatableObject constrains T to object types bridged through their own
// Equal method.
//
// To implement the IsEquatableObject interface for a type, you must embed
// the Equatable type and define Equal.
type IsEquatableObject[T IsObject[T]] interface {
	IsObject[T]
	Equaler[T]
}

// IsHashedObject constrains T to object types bridged through their own
// AppendHash and Equal methods.
//
// To implement the IsHashedObject interface for a type, you must embed the
// Hashed type and define AppendHash and Equal.
type IsHashedObject[T IsObject[T]] interface {
	IsObject[T]
	Equaler[T]
	Hashable
}

// Comparable is a zero sized type that may be embedded into a struct to
// bridge that struct into the erased object contracts. Hashing and
// equality are derived from native comparability: equality is ==, content
// hashing reads the struct's padding free memory when possible and falls
// back to a per field encoding otherwise. Either way the written content
// is independent of any process seed.
//
// The bridged type satisfies HashObject, EqualObject and EqObject.
type Comparable[C IsComparableObject[C]] struct{}

func (Comparable[C]) IsObject(C) {}

func (Comparable[C]) ObjectType() *ObjectType {
	return comparableObjectTypeOf[C]()
}

func (Comparable[C]) isHashObject(objectMarker)  {}
func (Comparable[C]) isEqualObject(objectMarker) {}
func (Comparable[C]) isEqObject(objectMarker)    {}

// Equatable is a zero sized type that may be embedded into a struct to
// bridge that struct into the erased equality contract using the struct's
// own Equal method. No hashing is bridged, and equality is not required to
// be an equivalence relation.
//
// The bridged type satisfies EqualObject only.
type Equatable[C IsEquatableObject[C]] struct{}

func (Equatable[C]) IsObject(C) {}

func (Equatable[C]) ObjectType() *ObjectType {
	return equatableObjectTypeOf[C]()
}

func (Equatable[C]) isEqualObject(objectMarker) {}

// Hashed is a zero sized type that may be embedded into a struct to bridge
// that struct into all erased object contracts using the struct's own
// AppendHash and Equal methods. Equal must be an equivalence relation, and
// equal values must append identical content.
//
// The bridged type satisfies HashObject, EqualObject and EqObject.
type Hashed[C IsHashedObject[C]] struct{}

func (Hashed[C]) IsObject(C) {}

func (Hashed[C]) ObjectType() *ObjectType {
	return hashedObjectTypeOf[C]()
}

func (Hashed[C]) isHashObject(objectMarker)  {}
func (Hashed[C]) isEqualObject(objectMarker) {}
func (Hashed[C]) isEqObject(objectMarker)    {}
