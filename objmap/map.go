// Package objmap provides a map and a set keyed by type erased handles.
//
// Keys are hashed and compared through their bridged object contracts, so
// keys of different underlying concrete types may coexist in the same
// collection without ever comparing equal to each other.
package objmap

import (
	"iter"

	"github.com/dnut/object-safe/erased"
)

type entry[K erased.KeyObject, V any] struct {
	key   K
	value V
}

// Map is a hash map keyed by erased handles. The zero value is an empty
// map ready for use. Map is not safe for concurrent mutation.
type Map[K erased.KeyObject, V any] struct {
	buckets map[erased.HashValue][]entry[K, V]
	size    int
}

// Put inserts the value under the given key, replacing any value stored
// under an equal key.
func (m *Map[K, V]) Put(key K, value V) {
	if m.buckets == nil {
		m.buckets = map[erased.HashValue][]entry[K, V]{}
	}

	hash := erased.Maphash(key)

	bucket := m.buckets[hash]
	for idx := range bucket {
		if erased.Equals(bucket[idx].key, key) {
			bucket[idx].value = value
			return
		}
	}

	m.buckets[hash] = append(bucket, entry[K, V]{key: key, value: value})
	m.size += 1
}

// Get returns the value stored under a key equal to the given key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.buckets != nil {
		bucket := m.buckets[erased.Maphash(key)]

		for idx := range bucket {
			if erased.Equals(bucket[idx].key, key) {
				return bucket[idx].value, true
			}
		}
	}

	var vNil V
	return vNil, false
}

// Has reports whether a key equal to the given key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, exists := m.Get(key)
	return exists
}

// Delete removes the entry stored under a key equal to the given key and
// reports whether an entry was removed.
func (m *Map[K, V]) Delete(key K) bool {
	if m.buckets == nil {
		return false
	}

	hash := erased.Maphash(key)

	bucket := m.buckets[hash]
	for idx := range bucket {
		if !erased.Equals(bucket[idx].key, key) {
			continue
		}

		bucket[idx] = bucket[len(bucket)-1]
		bucket = bucket[:len(bucket)-1]

		if len(bucket) == 0 {
			delete(m.buckets, hash)
		} else {
			m.buckets[hash] = bucket
		}

		m.size -= 1
		return true
	}

	return false
}

func (m *Map[K, V]) Len() int {
	return m.size
}

// All iterates over all entries in no particular order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range m.buckets {
			for idx := range bucket {
				if !yield(bucket[idx].key, bucket[idx].value) {
					return
				}
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range m.All() {
			if !yield(key) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range m.All() {
			if !yield(value) {
				return
			}
		}
	}
}
