// Package demo holds the example hierarchy spawned by `schematica spawn`: a
// root carrying two components and three children built from tuples with
// defaults.
package demo

import "github.com/roach88/schematica/internal/schematic"

//go:generate go run github.com/roach88/schematica/cmd/schematica gen .

type A struct{}

type B struct {
	X uint8
	Y uint8
}

type C uint8

type D uint8

// Child is the schematic applied to each child of Simple.
type Child = schematic.Many2[schematic.Bundle[C], schematic.OrDefault[schematic.Bundle[D]]]

// Simple is the root schematic. Its Instantiate method is generated.
//
//schematic:derive
type Simple struct {
	A A
	B B
	C schematic.Children[Child]
}

// NewChild builds a child carrying C and, when d is nil, the default D.
func NewChild(c C, d *D) Child {
	od := schematic.UseDefault[schematic.Bundle[D]]()
	if d != nil {
		od = schematic.Present(schematic.Insert(*d))
	}
	return schematic.NewMany2(schematic.Insert(c), od)
}

// NewSimple returns the example value: B{4, 6} on the root and three
// children C(0) D(10), C(1) D(default), C(2) D(default).
func NewSimple() Simple {
	d := D(10)
	return Simple{
		A: A{},
		B: B{X: 4, Y: 6},
		C: schematic.ChildrenOf(
			NewChild(0, &d),
			NewChild(1, nil),
			NewChild(2, nil),
		),
	}
}
