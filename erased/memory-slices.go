package erased

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

type memorySlice struct {
	Start uintptr
	Len   uintptr
}

// memorySlicesOf returns a slice of memorySlice instances that define the bytes that
// are actually defined and do not contain padding within the type. The type itself must
// be a trivially hashable struct.
func memorySlicesOf(t reflect.Type, base uintptr, slices []memorySlice) []memorySlice {
	if t.Kind() != reflect.Struct || !t.Comparable() {
		panic("memorySlicesOf only works with comparable struct types")
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		fieldStart := base + field.Offset

		// Recursively check embedded structs (anonymous or not)
		if field.Type.Kind() == reflect.Struct {
			slices = memorySlicesOf(field.Type, fieldStart, slices)
			continue
		}

		if len(slices) > 0 {
			prev := &slices[len(slices)-1]
			if prev.Start+prev.Len == fieldStart {
				// we join the previous field, extend it
				prev.Len += field.Type.Size()
				continue
			}
		}

		// there was a gap, add another slice
		slices = append(slices, memorySlice{
			Start: fieldStart,
			Len:   field.Type.Size(),
		})
	}

	return slices
}

// appendMemorySlices writes the defined bytes of the value into the sink,
// skipping any padding bytes.
func appendMemorySlices(sink Sink, slices []memorySlice, value unsafe.Pointer) {
	for _, slice := range slices {
		start := unsafe.Add(value, slice.Start)
		sink.WriteBytes(unsafe.Slice((*byte)(start), slice.Len))
	}
}

// appendReflectValue writes the content of a comparable value into the sink
// using a per field encoding. This is the hash path for comparable types whose
// memory cannot be read directly, e.g. due to string or pointer fields. The
// encoding does not depend on any process seed, so value like content writes
// identical bytes across runs.
func appendReflectValue(sink Sink, v reflect.Value) {
	switch v.Kind() {
	case reflect.Bool:
		var bit uint64
		if v.Bool() {
			bit = 1
		}
		sink.WriteUint64(bit)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sink.WriteUint64(uint64(v.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sink.WriteUint64(v.Uint())

	case reflect.Float32, reflect.Float64:
		sink.WriteUint64(floatBits(v.Float()))

	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		sink.WriteUint64(floatBits(real(c)))
		sink.WriteUint64(floatBits(imag(c)))

	case reflect.String:
		s := v.String()
		sink.WriteUint64(uint64(len(s)))
		sink.WriteString(s)

	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		// equality of these fields is identity, hash the address
		sink.WriteUint64(uint64(v.Pointer()))

	case reflect.Interface:
		if v.IsNil() {
			sink.WriteUint64(0)
			return
		}

		elem := v.Elem()
		sink.WriteUint64(uint64(uintptr(abiTypePointerTo(elem.Type()))))
		appendReflectValue(sink, elem)

	case reflect.Array:
		for idx := range v.Len() {
			appendReflectValue(sink, v.Index(idx))
		}

	case reflect.Struct:
		for idx := range v.NumField() {
			appendReflectValue(sink, v.Field(idx))
		}

	default:
		// slices, maps and funcs are not comparable
		panic(fmt.Sprintf("cannot hash value of kind %s", v.Kind()))
	}
}

// floatBits normalizes negative zero so that equal floats write equal bits.
func floatBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}

	return math.Float64bits(f)
}

// typeIsTriviallyHashable reports whether a value of the type can be content
// hashed by reading its memory directly. Floats are excluded: positive and
// negative zero compare equal but differ in their bit pattern.
func typeIsTriviallyHashable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr:
		return true

	case reflect.Array:
		return typeIsTriviallyHashable(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !typeIsTriviallyHashable(t.Field(i).Type) {
				return false
			}
		}

		return true

	default:
		return false
	}
}

// typeHasPointers reports whether a value of the type contains pointers, e.g.
// by having a field of type *T, a string, a slice or a map value.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.String,
		reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true

	case reflect.Array:
		return typeHasPointers(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}

		return false

	default:
		return false
	}
}

func typeHasFloats(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true

	case reflect.Array:
		return typeHasFloats(t.Elem())

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasFloats(t.Field(i).Type) {
				return true
			}
		}

		return false

	default:
		return false
	}
}
