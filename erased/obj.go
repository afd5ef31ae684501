package erased

// Obj is a convenient wrapper that carries any erased handle and itself
// satisfies all object contracts by forwarding to the wrapped handle. It
// has no state of its own: hashing and equality are entirely derived from
// the wrapped value.
//
// The type parameter is usually an interface embedding the object
// contracts, e.g. Obj[Shape] for any Shape requiring EqualObject.
//
// Obj satisfies every contract statically; using a capability the wrapped
// type was not bridged with panics at the first forwarded call.
type Obj[T Object] struct {
	Value T
}

// Of wraps a handle. Typically used with an explicit interface type
// parameter: Of[Shape](concrete).
func Of[T Object](value T) Obj[T] {
	return Obj[T]{Value: value}
}

func (o Obj[T]) Unwrap() Object {
	return o.Value
}

func (o Obj[T]) ObjectType() *ObjectType {
	return o.Value.ObjectType()
}

func (o Obj[T]) isHashObject(objectMarker)  {}
func (o Obj[T]) isEqualObject(objectMarker) {}
func (o Obj[T]) isEqObject(objectMarker)    {}
