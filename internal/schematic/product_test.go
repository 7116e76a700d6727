package schematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/schematica/internal/world"
)

type crate struct {
	Marker   marker
	Position point
	Contents Children[Bundle[label]]
	hidden   label
}

func TestStructAppliesFieldsInOrder(t *testing.T) {
	w := world.New()
	s, err := Struct(crate{
		Position: point{1, 2},
		Contents: ChildrenOf(Insert(label(1)), Insert(label(2))),
		hidden:   label(99),
	})
	require.NoError(t, err)

	root, err := Spawn(w, s)
	require.NoError(t, err)

	assert.True(t, world.Has[marker](w, root))
	pos, _ := world.Get[point](w, root)
	assert.Equal(t, point{1, 2}, pos)
	assert.False(t, world.Has[label](w, root), "unexported fields are skipped")
	assert.Len(t, w.Children(root), 2)
}

func TestStructShortCircuits(t *testing.T) {
	type steps struct {
		A fail
		B fail
		C fail
	}
	a, b, c := 0, 0, 0

	s, err := Struct(&steps{
		A: fail{calls: &a},
		B: fail{calls: &b, err: errBoom},
		C: fail{calls: &c},
	})
	require.NoError(t, err)

	_, err = Spawn(world.New(), s)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, []int{1, 1, 0}, []int{a, b, c})
}

func TestStructRefusesUnsupportedShapes(t *testing.T) {
	type empty struct{}
	type private struct{ x int }
	var nilCrate *crate

	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"nil pointer", nilCrate},
		{"int", 4},
		{"slice", []int{1}},
		{"empty struct", empty{}},
		{"no exported fields", private{x: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Struct(tt.input)
			assert.Nil(t, s)

			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, CodeUnsupportedShape, se.Code)
			assert.False(t, IsPrecondition(err))
		})
	}
}

func TestMustStructPanics(t *testing.T) {
	assert.Panics(t, func() { MustStruct(struct{}{}) })
	assert.NotPanics(t, func() { MustStruct(point{}) })
}
