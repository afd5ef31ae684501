package objectsafe

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// handRolled implements Object without embedding a bridge marker and
// reports a correct descriptor for itself.
type handRolled struct{ Id int }

func (handRolled) IsObject(handRolled) {}

func (handRolled) ObjectType() *ObjectType { return handRolledType }

var handRolledType = &ObjectType{
	Name: "objectsafe.handRolled",
	Type: reflect.TypeFor[handRolled](),
}

// mislabeled implements Object but reports the descriptor of an
// unrelated type.
type mislabeled struct{ Id int }

func (mislabeled) IsObject(mislabeled) {}

func (mislabeled) ObjectType() *ObjectType { return TypeOf[Square]() }

func TestValidate(t *testing.T) {
	t.Run("bridged types pass", func(t *testing.T) {
		require.NotPanics(t, func() {
			Validate[Square]()
			Validate[Rect]()
		})
	})

	t.Run("foreign descriptor panics", func(t *testing.T) {
		require.PanicsWithValue(t,
			"type objectsafe.mislabeled embeds a bridge marker parameterized with objectsafe.Square",
			func() { Validate[mislabeled]() })
	})

	t.Run("missing bridge marker panics", func(t *testing.T) {
		require.Panics(t, func() { Validate[handRolled]() })
	})
}
