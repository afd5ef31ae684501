package objmap

import (
	"iter"

	"github.com/dnut/object-safe/erased"
)

// Set provides a wrapper around a Map with no values. The zero value is
// an empty set ready for use.
type Set[K erased.KeyObject] struct {
	entries Map[K, struct{}]
}

func (s *Set[K]) Insert(value K) bool {
	// check if the value exists
	if s.entries.Has(value) {
		return false
	}

	// insert value
	s.entries.Put(value, struct{}{})
	return true
}

func (s *Set[K]) Remove(value K) {
	s.entries.Delete(value)
}

func (s *Set[K]) Has(value K) bool {
	return s.entries.Has(value)
}

func (s *Set[K]) Values() iter.Seq[K] {
	return s.entries.Keys()
}

func (s *Set[K]) Len() int {
	return s.entries.Len()
}

func (s *Set[K]) PopOne() (K, bool) {
	for value := range s.entries.Keys() {
		return value, true
	}

	var kNil K
	return kNil, false
}
