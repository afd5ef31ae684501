package erased

import (
	"fmt"
	"hash/maphash"
)

// AppendHash writes the content of the value behind o into the sink by
// forwarding through the handle's descriptor.
func AppendHash(o HashObject, sink Sink) {
	ty := o.ObjectType()
	if ty.AppendHash == nil {
		panic(fmt.Sprintf("type %s was bridged without hashing", ty))
	}

	ty.AppendHash(o, sink)
}

// Sum computes the content hash of the value behind o with the given seed.
// Handles that compare equal produce equal sums for the same seed.
func Sum(s maphash.Seed, o HashObject) HashValue {
	var h maphash.Hash
	h.SetSeed(s)

	AppendHash(o, (*maphashSink)(&h))
	return HashValue(h.Sum64())
}

// Maphash computes the content hash of the value behind o with a process
// wide seed. This is the fast path for keyed collections: for natively
// comparable types it skips the Sink indirection entirely.
func Maphash(o HashObject) HashValue {
	if maphash := o.ObjectType().Maphash; maphash != nil {
		return maphash(o)
	}

	return Sum(seed, o)
}

// Equals reports whether the values behind two erased handles are equal.
// Handles of different underlying types are never equal. This is a defined
// result, not an error.
func Equals(a, b EqualObject) bool {
	ta := a.ObjectType()
	tb := b.ObjectType()

	if ta != tb {
		return false
	}

	if ta.Equal == nil {
		panic(fmt.Sprintf("type %s was bridged without equality", ta))
	}

	return ta.Equal(a, b)
}
