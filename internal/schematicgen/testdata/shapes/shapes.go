package shapes

import "github.com/roach88/schematica/internal/schematic"

type Tag string

//schematic:derive
type Crate struct {
	Name         Tag
	Size, Weight int
	Children     schematic.Children[schematic.Bundle[Tag]]
	_            struct{}
}

//schematic:derive
type Pair[L, R schematic.Schematic] struct {
	Left  L
	Right R
}

type Wrapped struct {
	Tag
	*Inner
	hidden int
}

type Inner struct{ V int }

type Shape interface{ Area() int }

type Empty struct{}

type Blank struct{ _ int }

type Count int

type Alias = Crate
