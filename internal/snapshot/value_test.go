package snapshot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	N int
}

type sample struct {
	Name    string
	Count   uint8
	Ratio   float64
	On      bool
	Tags    []string
	Inner   inner
	Ptr     *inner
	Attrs   map[string]int
	private int
}

func TestFromGo(t *testing.T) {
	got, err := FromGo(sample{
		Name:  "crate",
		Count: 3,
		Ratio: 0.25,
		On:    true,
		Tags:  []string{"a"},
		Inner: inner{N: 1},
		Attrs: map[string]int{"k": 2},
	})
	require.NoError(t, err)

	assert.Equal(t, Object{
		"Name":  String("crate"),
		"Count": Int(3),
		"Ratio": Float(0.25),
		"On":    Bool(true),
		"Tags":  Array{String("a")},
		"Inner": Object{"N": Int(1)},
		"Ptr":   Null{},
		"Attrs": Object{"k": Int(2)},
	}, got)
}

func TestFromGoScalars(t *testing.T) {
	type label int

	tests := []struct {
		name  string
		input any
		want  Value
	}{
		{"nil", nil, Null{}},
		{"named int", label(7), Int(7)},
		{"nil slice", []int(nil), Array{}},
		{"array", [2]int{1, 2}, Array{Int(1), Int(2)}},
		{"pointer", &inner{N: 4}, Object{"N": Int(4)}},
		{"empty struct", struct{}{}, Object{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromGoRejects(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"func", func() {}},
		{"chan", make(chan int)},
		{"int map keys", map[int]int{1: 1}},
		{"uint overflow", uint64(math.MaxUint64)},
		{"nan", math.NaN()},
		{"nested", struct{ F []any }{F: []any{func() {}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromGo(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestToGo(t *testing.T) {
	v := Object{
		"a": Array{Int(1), Null{}},
		"b": Float(1.5),
		"c": Bool(true),
		"d": String("x"),
	}

	assert.Equal(t, map[string]any{
		"a": []any{int64(1), nil},
		"b": 1.5,
		"c": true,
		"d": "x",
	}, ToGo(v))
}
