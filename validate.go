package objectsafe

import (
	"fmt"
	"reflect"

	"github.com/dnut/object-safe/internal/refl"
)

// Validate should be called to verify that the Object interface is
// correctly implemented.
//
//	type Circle struct {
//	   objectsafe.Comparable[Circle]
//	   Radius int
//	}
//
//	var _ = objectsafe.Validate[Circle]()
//
// This identifies mistakes in the type passed to the bridge marker during
// program initialization, before any handle is hashed or compared.
func Validate[C IsObject[C]]() struct{} {
	objectType := TypeOf[C]()

	if objectType.Type != reflect.TypeFor[C]() {
		// the marker was instantiated with the wrong type parameter
		panic(fmt.Sprintf(
			"type %s embeds a bridge marker parameterized with %s",
			reflect.TypeFor[C](), objectType,
		))
	}

	if !refl.IsObject(objectType.Type) {
		panic(fmt.Sprintf(
			"type %s must embed exactly one of the bridge markers",
			objectType,
		))
	}

	return struct{}{}
}
