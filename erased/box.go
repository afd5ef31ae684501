package erased

// Box lifts a plain comparable value, such as an int or a string, into an
// erased handle without declaring a new type.
type Box[C comparable] struct {
	Comparable[Box[C]]
	Value C
}

// BoxOf wraps a plain comparable value into a Box.
func BoxOf[C comparable](value C) Box[C] {
	return Box[C]{Value: value}
}
