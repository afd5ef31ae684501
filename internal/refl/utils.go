package refl

import (
	"iter"
	"reflect"

	"github.com/dnut/object-safe/erased"
)

func IterFields(ty reflect.Type) iter.Seq[reflect.StructField] {
	return func(yield func(reflect.StructField) bool) {
		for idx := range ty.NumField() {
			if !yield(ty.Field(idx)) {
				return
			}
		}
	}
}

func ImplementsInterfaceDirectly[If any](ty reflect.Type) bool {
	iface := reflect.TypeFor[If]()

	if !ty.Implements(iface) {
		return false
	}

	for ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}

	for field := range IterFields(ty) {
		if !field.Anonymous {
			continue
		}

		if field.Type.Implements(iface) {
			return false
		}

		if reflect.PointerTo(field.Type).Implements(iface) {
			return false
		}
	}

	return true
}

func IsObject(ty reflect.Type) bool {
	if ty.Kind() != reflect.Struct {
		return false
	}

	if !ty.Implements(reflect.TypeFor[erased.Object]()) {
		return false
	}

	// an object must embed exactly one of the bridge markers
	var count int
	for field := range IterFields(ty) {
		if ImplementsInterfaceDirectly[erased.Object](field.Type) {
			count += 1
		}
	}

	// expect to have exactly one
	return count == 1
}
