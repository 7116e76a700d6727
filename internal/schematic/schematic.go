package schematic

import "reflect"

// Schematic describes a mutation of the entity a Context points at.
//
// Instantiate is called once per value. Implementations use value receivers;
// the value is consumed by the call.
type Schematic interface {
	Instantiate(ctx *Context) error
}

// Func adapts a function to Schematic.
type Func func(ctx *Context) error

// Instantiate calls f(ctx).
func (f Func) Instantiate(ctx *Context) error { return f(ctx) }

// Defaulter is implemented by types whose default value is not their zero
// value.
type Defaulter[T any] interface {
	Default() T
}

// Cloner is implemented by types that need more than a value copy to be
// duplicated, typically because they hold slices, maps or pointers.
type Cloner[T any] interface {
	Clone() T
}

func defaultOf[T any]() T {
	var zero T
	if d, ok := any(zero).(Defaulter[T]); ok {
		return d.Default()
	}
	return zero
}

// cloneOf duplicates v through Clone when it has one. When T is an interface
// such as Schematic, the dynamic value's Clone is used as long as its result
// still satisfies T.
func cloneOf[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	if out, ok := cloneDynamic(any(v)); ok {
		if t, ok := out.(T); ok {
			return t
		}
	}
	return v
}

func cloneDynamic(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	m := rv.MethodByName("Clone")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return nil, false
	}
	return m.Call(nil)[0].Interface(), true
}

// Bundle is the leaf schematic: it inserts Value on the current entity and
// never fails.
type Bundle[T any] struct {
	Value T
}

// Insert wraps v as a leaf schematic.
func Insert[T any](v T) Bundle[T] {
	return Bundle[T]{Value: v}
}

func (b Bundle[T]) Instantiate(ctx *Context) error {
	ctx.Insert(b.Value)
	return nil
}

// Default wraps the default value of T.
func (Bundle[T]) Default() Bundle[T] {
	return Bundle[T]{Value: defaultOf[T]()}
}

// Clone wraps a duplicate of Value.
func (b Bundle[T]) Clone() Bundle[T] {
	return Bundle[T]{Value: cloneOf(b.Value)}
}

type leaf struct {
	value any
}

func (l leaf) Instantiate(ctx *Context) error {
	ctx.Insert(l.value)
	return nil
}

// Of returns v itself if it is a Schematic, otherwise v as a leaf that
// inserts it.
func Of(v any) Schematic {
	if s, ok := v.(Schematic); ok {
		return s
	}
	return leaf{value: v}
}
