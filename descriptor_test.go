package schemaxml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type descriptorTestElement struct {
	Element
}

func TestNewTextRejectsRequiredAndMultiple(t *testing.T) {
	require.Panics(t, func() {
		NewText("tag", Required(), Multiple())
	})
}

func TestNewChildRejectsRequiredAndMultiple(t *testing.T) {
	require.Panics(t, func() {
		NewChild[descriptorTestElement]("tag", Required(), Multiple())
	})
}

func TestTextDescriptorSetAnyTypeChecks(t *testing.T) {
	single := NewText("name")
	e := &Element{data: map[string]any{}}

	require.NoError(t, single.setAny(e, "Alice"))
	require.Equal(t, "Alice", e.data["name"])

	err := single.setAny(e, 42)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestTextDescriptorMultipleSetAny(t *testing.T) {
	multi := NewText("tag", Multiple())
	e := &Element{data: map[string]any{}}

	require.NoError(t, multi.setAny(e, []string{"a", "b"}))
	require.Equal(t, []string{"a", "b"}, e.data["tag"])

	require.ErrorIs(t, multi.setAny(e, "not-a-slice"), ErrTypeMismatch)
}
