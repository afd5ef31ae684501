package erased

import (
	"encoding/binary"
	"hash/maphash"
	"io"
)

// Sink is the erased hashing sink. It offers primitive write operations
// only, so that it stays usable through dynamic dispatch. Writes never
// fail.
type Sink interface {
	WriteBytes(p []byte)
	WriteString(s string)
	WriteUint64(v uint64)
}

// SinkOf adapts a hasher exposed as an io.Writer, such as the hash.Hash
// implementations of the standard library, into a Sink.
func SinkOf(w io.Writer) Sink {
	return writerSink{w: w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) WriteBytes(p []byte) {
	// hash.Hash writers never return an error
	_, _ = s.w.Write(p)
}

func (s writerSink) WriteString(v string) {
	_, _ = io.WriteString(s.w, v)
}

func (s writerSink) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = s.w.Write(buf[:])
}

// maphashSink writes directly into a maphash.Hash.
type maphashSink maphash.Hash

func (s *maphashSink) WriteBytes(p []byte) {
	_, _ = (*maphash.Hash)(s).Write(p)
}

func (s *maphashSink) WriteString(v string) {
	_, _ = (*maphash.Hash)(s).WriteString(v)
}

func (s *maphashSink) WriteUint64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, _ = (*maphash.Hash)(s).Write(buf[:])
}
