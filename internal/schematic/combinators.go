package schematic

import (
	"fmt"
	"reflect"
)

// Maybe applies its schematic when present and does nothing otherwise.
type Maybe[S Schematic] struct {
	value S
	ok    bool
}

// Some returns a Maybe holding s.
func Some[S Schematic](s S) Maybe[S] {
	return Maybe[S]{value: s, ok: true}
}

// None returns an empty Maybe.
func None[S Schematic]() Maybe[S] {
	return Maybe[S]{}
}

// IsSome reports whether m holds a schematic.
func (m Maybe[S]) IsSome() bool { return m.ok }

func (m Maybe[S]) Instantiate(ctx *Context) error {
	if !m.ok {
		return nil
	}
	return m.value.Instantiate(ctx)
}

func (m Maybe[S]) Clone() Maybe[S] {
	if m.ok {
		m.value = cloneOf(m.value)
	}
	return m
}

// OrDefault applies its schematic when present and the default value of S
// otherwise. The default is S's Default() result when S implements
// Defaulter[S], and the zero value of S when it does not.
type OrDefault[S Schematic] struct {
	value   S
	present bool
}

// Present returns an OrDefault holding s.
func Present[S Schematic](s S) OrDefault[S] {
	return OrDefault[S]{value: s, present: true}
}

// UseDefault returns an OrDefault that applies the default of S. S must be a
// concrete type: instantiating UseDefault for an interface type such as
// Schematic panics, since there is no value to take a default from.
func UseDefault[S Schematic]() OrDefault[S] {
	return OrDefault[S]{}
}

func (o OrDefault[S]) Instantiate(ctx *Context) error {
	s := o.value
	if !o.present {
		s = defaultSchematic[S]()
	}
	return s.Instantiate(ctx)
}

// defaultSchematic panics when S is an interface type: its zero value is nil
// and there is no concrete type to take a default from.
func defaultSchematic[S Schematic]() S {
	if t := reflect.TypeFor[S](); t.Kind() == reflect.Interface {
		panic(fmt.Sprintf("schematic: no default for interface type %s", t))
	}
	return defaultOf[S]()
}

func (o OrDefault[S]) Clone() OrDefault[S] {
	if o.present {
		o.value = cloneOf(o.value)
	}
	return o
}

// Sequence applies each element in order to the current entity and stops at
// the first error.
type Sequence []Schematic

func (s Sequence) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, s...)
}

// Clone returns a new sequence holding a duplicate of every element.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, elem := range s {
		out[i] = cloneOf(elem)
	}
	return out
}

func instantiateAll(ctx *Context, schematics ...Schematic) error {
	for _, s := range schematics {
		if err := s.Instantiate(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Many2 through Many10 are fixed-arity forms of Sequence. Elements are
// applied in field order to the same entity; the first error skips the rest.
// Clone duplicates each element, so tuples can be repeated with
// RepeatChildren without sharing element state.

type Many2[T0, T1 Schematic] struct {
	V0 T0
	V1 T1
}

func NewMany2[T0, T1 Schematic](v0 T0, v1 T1) Many2[T0, T1] {
	return Many2[T0, T1]{v0, v1}
}

func (m Many2[T0, T1]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1)
}

func (m Many2[T0, T1]) Clone() Many2[T0, T1] {
	return Many2[T0, T1]{cloneOf(m.V0), cloneOf(m.V1)}
}

type Many3[T0, T1, T2 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
}

func NewMany3[T0, T1, T2 Schematic](v0 T0, v1 T1, v2 T2) Many3[T0, T1, T2] {
	return Many3[T0, T1, T2]{v0, v1, v2}
}

func (m Many3[T0, T1, T2]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2)
}

func (m Many3[T0, T1, T2]) Clone() Many3[T0, T1, T2] {
	return Many3[T0, T1, T2]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2)}
}

type Many4[T0, T1, T2, T3 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
}

func NewMany4[T0, T1, T2, T3 Schematic](v0 T0, v1 T1, v2 T2, v3 T3) Many4[T0, T1, T2, T3] {
	return Many4[T0, T1, T2, T3]{v0, v1, v2, v3}
}

func (m Many4[T0, T1, T2, T3]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2, m.V3)
}

func (m Many4[T0, T1, T2, T3]) Clone() Many4[T0, T1, T2, T3] {
	return Many4[T0, T1, T2, T3]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2), cloneOf(m.V3)}
}

type Many5[T0, T1, T2, T3, T4 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

func NewMany5[T0, T1, T2, T3, T4 Schematic](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4) Many5[T0, T1, T2, T3, T4] {
	return Many5[T0, T1, T2, T3, T4]{v0, v1, v2, v3, v4}
}

func (m Many5[T0, T1, T2, T3, T4]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2, m.V3, m.V4)
}

func (m Many5[T0, T1, T2, T3, T4]) Clone() Many5[T0, T1, T2, T3, T4] {
	return Many5[T0, T1, T2, T3, T4]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2), cloneOf(m.V3), cloneOf(m.V4)}
}

type Many6[T0, T1, T2, T3, T4, T5 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

func NewMany6[T0, T1, T2, T3, T4, T5 Schematic](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Many6[T0, T1, T2, T3, T4, T5] {
	return Many6[T0, T1, T2, T3, T4, T5]{v0, v1, v2, v3, v4, v5}
}

func (m Many6[T0, T1, T2, T3, T4, T5]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2, m.V3, m.V4, m.V5)
}

func (m Many6[T0, T1, T2, T3, T4, T5]) Clone() Many6[T0, T1, T2, T3, T4, T5] {
	return Many6[T0, T1, T2, T3, T4, T5]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2), cloneOf(m.V3), cloneOf(m.V4), cloneOf(m.V5)}
}

type Many7[T0, T1, T2, T3, T4, T5, T6 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

func NewMany7[T0, T1, T2, T3, T4, T5, T6 Schematic](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Many7[T0, T1, T2, T3, T4, T5, T6] {
	return Many7[T0, T1, T2, T3, T4, T5, T6]{v0, v1, v2, v3, v4, v5, v6}
}

func (m Many7[T0, T1, T2, T3, T4, T5, T6]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2, m.V3, m.V4, m.V5, m.V6)
}

func (m Many7[T0, T1, T2, T3, T4, T5, T6]) Clone() Many7[T0, T1, T2, T3, T4, T5, T6] {
	return Many7[T0, T1, T2, T3, T4, T5, T6]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2), cloneOf(m.V3), cloneOf(m.V4), cloneOf(m.V5), cloneOf(m.V6)}
}

type Many8[T0, T1, T2, T3, T4, T5, T6, T7 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

func NewMany8[T0, T1, T2, T3, T4, T5, T6, T7 Schematic](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) Many8[T0, T1, T2, T3, T4, T5, T6, T7] {
	return Many8[T0, T1, T2, T3, T4, T5, T6, T7]{v0, v1, v2, v3, v4, v5, v6, v7}
}

func (m Many8[T0, T1, T2, T3, T4, T5, T6, T7]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2, m.V3, m.V4, m.V5, m.V6, m.V7)
}

func (m Many8[T0, T1, T2, T3, T4, T5, T6, T7]) Clone() Many8[T0, T1, T2, T3, T4, T5, T6, T7] {
	return Many8[T0, T1, T2, T3, T4, T5, T6, T7]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2), cloneOf(m.V3), cloneOf(m.V4), cloneOf(m.V5), cloneOf(m.V6), cloneOf(m.V7)}
}

type Many9[T0, T1, T2, T3, T4, T5, T6, T7, T8 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

func NewMany9[T0, T1, T2, T3, T4, T5, T6, T7, T8 Schematic](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) Many9[T0, T1, T2, T3, T4, T5, T6, T7, T8] {
	return Many9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{v0, v1, v2, v3, v4, v5, v6, v7, v8}
}

func (m Many9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2, m.V3, m.V4, m.V5, m.V6, m.V7, m.V8)
}

func (m Many9[T0, T1, T2, T3, T4, T5, T6, T7, T8]) Clone() Many9[T0, T1, T2, T3, T4, T5, T6, T7, T8] {
	return Many9[T0, T1, T2, T3, T4, T5, T6, T7, T8]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2), cloneOf(m.V3), cloneOf(m.V4), cloneOf(m.V5), cloneOf(m.V6), cloneOf(m.V7), cloneOf(m.V8)}
}

type Many10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 Schematic] struct {
	V0 T0
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
}

func NewMany10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9 Schematic](v0 T0, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9) Many10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return Many10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{v0, v1, v2, v3, v4, v5, v6, v7, v8, v9}
}

func (m Many10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Instantiate(ctx *Context) error {
	return instantiateAll(ctx, m.V0, m.V1, m.V2, m.V3, m.V4, m.V5, m.V6, m.V7, m.V8, m.V9)
}

func (m Many10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]) Clone() Many10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return Many10[T0, T1, T2, T3, T4, T5, T6, T7, T8, T9]{cloneOf(m.V0), cloneOf(m.V1), cloneOf(m.V2), cloneOf(m.V3), cloneOf(m.V4), cloneOf(m.V5), cloneOf(m.V6), cloneOf(m.V7), cloneOf(m.V8), cloneOf(m.V9)}
}
