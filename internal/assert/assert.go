package assert

import (
	"fmt"
	"reflect"
)

func IsStructType(t reflect.Type) {
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("expected struct type, got %s", t))
	}
}
