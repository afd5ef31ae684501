package erased

import (
	"fmt"
	"hash/maphash"
	"log/slog"
	"maps"
	"reflect"
	"sync/atomic"
	"unsafe"

	"github.com/dnut/object-safe/internal/assert"
)

var seed = maphash.MakeSeed()

type ObjectTypeId uint16

// ObjectType describes a concrete type bridged into the erased object
// contracts. Descriptors are canonical: exactly one instance exists per
// concrete type, so pointer equality of descriptors is type identity.
type ObjectType struct {
	Name string
	Type reflect.Type

	// Equal compares the values behind two handles that are already known
	// to share this type. nil if the type was bridged without equality.
	Equal func(a, b Object) bool

	// AppendHash writes the content of the value behind the handle into
	// the sink. nil if the type was bridged without hashing.
	AppendHash func(o Object, sink Sink)

	// Maphash is the fast path used by keyed collections: the full
	// content hash with the package seed, skipping the Sink indirection.
	// nil exactly if AppendHash is nil.
	Maphash func(o Object) HashValue

	// MemorySlices define regions that this type is well defined in. If the type
	// has holes due to having padding bytes, we might have multiple memory slices.
	// Only set if the type is TriviallyHashable.
	MemorySlices []memorySlice

	// The Id of the type
	Id ObjectTypeId

	// HasPointers indicates that a value of the type contains pointers, e.g.
	// by having a field of type *T, a string, a slice or a map value.
	HasPointers bool

	// TriviallyHashable indicates that the type can be trivially hashed by
	// writing the types MemorySlices into the sink.
	TriviallyHashable bool

	// Comparable indicates that equality of the type is native go comparability.
	Comparable bool

	// Strict indicates that equality of the type is a full equivalence relation.
	Strict bool
}

func (t *ObjectType) String() string {
	return t.Name
}

func (t *ObjectType) PtrType() reflect.Type {
	return reflect.PointerTo(t.Type)
}

func (t *ObjectType) New() Object {
	return reflect.New(t.Type).Interface().(Object)
}

// TypeOf returns the canonical descriptor of C.
func TypeOf[C IsObject[C]]() *ObjectType {
	var zeroValue C
	return zeroValue.ObjectType()
}

var objectTypes atomic.Pointer[map[unsafe.Pointer]*ObjectType]

func init() {
	// initialize the lookup table
	objectTypes.Store(&map[unsafe.Pointer]*ObjectType{})
}

func abiTypePointerTo(t reflect.Type) unsafe.Pointer {
	type eface struct {
		typ, val unsafe.Pointer
	}

	// a reflect.Type is backed by an *rType. The rType contains a abi.Type as
	// its first value. This means, that a *rType can be re-interpreted as *abi.Type
	return (*eface)(unsafe.Pointer(&t)).val
}

func ensureObjectType(ptrToType unsafe.Pointer, makeType func(id ObjectTypeId) *ObjectType) *ObjectType {
	for {
		previousTypes := objectTypes.Load()
		if cached, ok := (*previousTypes)[ptrToType]; ok {
			return cached
		}

		newType := makeType(ObjectTypeId(len(*previousTypes) + 1))

		newTypes := maps.Clone(*previousTypes)
		newTypes[ptrToType] = newType

		if objectTypes.CompareAndSwap(previousTypes, &newTypes) {
			slog.Debug(
				"New object type registered",
				slog.String("name", newType.Name),
				slog.Int("id", int(newType.Id)),
			)

			return newType
		}
	}
}

func comparableObjectTypeOf[C IsComparableObject[C]]() *ObjectType {
	reflectType := reflect.TypeFor[C]()
	ptrToType := abiTypePointerTo(reflectType)

	if cached, ok := (*objectTypes.Load())[ptrToType]; ok {
		return cached
	}

	if typeHasFloats(reflectType) {
		fmt.Printf("[warn] type %s contains floating point fields, equality is not reflexive for NaN\n", reflectType)
	}

	return ensureObjectType(ptrToType, func(id ObjectTypeId) *ObjectType {
		ty := makeObjectType[C](id)

		ty.Comparable = true
		ty.Strict = true

		ty.Equal = func(a, b Object) bool {
			return valueOf[C](a) == valueOf[C](b)
		}

		ty.Maphash = func(o Object) HashValue {
			return HashValue(maphash.Comparable(seed, valueOf[C](o)))
		}

		if ty.TriviallyHashable {
			slices := ty.MemorySlices

			ty.AppendHash = func(o Object, sink Sink) {
				value := valueOf[C](o)
				appendMemorySlices(sink, slices, unsafe.Pointer(&value))
			}
		} else {
			// the content is not directly addressable, e.g. due to string or
			// pointer fields. walk the fields and write a per field encoding
			// instead, so that the written content does not depend on the
			// process seed.
			ty.AppendHash = func(o Object, sink Sink) {
				appendReflectValue(sink, reflect.ValueOf(valueOf[C](o)))
			}
		}

		return ty
	})
}

func equatableObjectTypeOf[C IsEquatableObject[C]]() *ObjectType {
	ptrToType := abiTypePointerTo(reflect.TypeFor[C]())

	if cached, ok := (*objectTypes.Load())[ptrToType]; ok {
		return cached
	}

	return ensureObjectType(ptrToType, func(id ObjectTypeId) *ObjectType {
		ty := makeObjectType[C](id)

		ty.Equal = func(a, b Object) bool {
			return valueOf[C](a).Equal(valueOf[C](b))
		}

		return ty
	})
}

func hashedObjectTypeOf[C IsHashedObject[C]]() *ObjectType {
	ptrToType := abiTypePointerTo(reflect.TypeFor[C]())

	if cached, ok := (*objectTypes.Load())[ptrToType]; ok {
		return cached
	}

	return ensureObjectType(ptrToType, func(id ObjectTypeId) *ObjectType {
		ty := makeObjectType[C](id)

		ty.Strict = true

		ty.Equal = func(a, b Object) bool {
			return valueOf[C](a).Equal(valueOf[C](b))
		}

		ty.AppendHash = func(o Object, sink Sink) {
			valueOf[C](o).AppendHash(sink)
		}

		ty.Maphash = func(o Object) HashValue {
			var h maphash.Hash
			h.SetSeed(seed)
			valueOf[C](o).AppendHash((*maphashSink)(&h))
			return HashValue(h.Sum64())
		}

		return ty
	})
}

func makeObjectType[C any](id ObjectTypeId) *ObjectType {
	reflectType := reflect.TypeFor[C]()

	assert.IsStructType(reflectType)

	ty := &ObjectType{
		Id:   id,
		Type: reflectType,
		Name: reflectType.String(),
	}

	ty.HasPointers = typeHasPointers(reflectType)

	ty.TriviallyHashable = typeIsTriviallyHashable(reflectType)
	if ty.TriviallyHashable {
		ty.MemorySlices = memorySlicesOf(reflectType, 0, nil)
	}

	return ty
}

// valueOf extracts the concrete value behind an erased handle. The handle
// either contains a C or a *C directly, or wraps a handle that does.
func valueOf[C any](o Object) C {
	for {
		switch value := any(o).(type) {
		case C:
			return value
		case *C:
			return *value
		}

		wrapper, ok := o.(Wrapper)
		if !ok {
			panic(fmt.Sprintf("handle of type %T does not contain a %s", o, reflect.TypeFor[C]()))
		}

		o = wrapper.Unwrap()
	}
}
