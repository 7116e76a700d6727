package schematic

import (
	"iter"
	"slices"
)

// Parent applies Inner to the parent of the current entity.
//
// At the root it returns ErrNoParent and touches nothing.
type Parent[S Schematic] struct {
	Inner S
}

// OnParent wraps s so it is applied to the parent entity.
func OnParent[S Schematic](s S) Parent[S] {
	return Parent[S]{Inner: s}
}

func (p Parent[S]) Instantiate(ctx *Context) error {
	parent, ok := ctx.Current().Parent()
	if !ok {
		return ErrNoParent
	}
	view, ok := ctx.Of(parent)
	if !ok {
		// Parents are appended before their children, so the index is
		// always in range.
		panic("schematic: parent index out of range")
	}
	return p.Inner.Instantiate(view)
}

// Clone duplicates Inner.
func (p Parent[S]) Clone() Parent[S] {
	return Parent[S]{Inner: cloneOf(p.Inner)}
}

// Children creates one child of the current entity per element, in order,
// and applies the element to it. A failing element stops the remaining ones
// from being created.
type Children[S Schematic] []S

// ChildrenOf builds a Children list from its arguments.
func ChildrenOf[S Schematic](items ...S) Children[S] {
	return Children[S](items)
}

func (c Children[S]) Instantiate(ctx *Context) error {
	_, err := TryMapChildren(ctx, slices.Values(c), func(v *Context, s S) (struct{}, error) {
		return struct{}{}, s.Instantiate(v)
	})
	return err
}

// Clone returns a new list holding a duplicate of every element.
func (c Children[S]) Clone() Children[S] {
	if c == nil {
		return nil
	}
	out := make(Children[S], len(c))
	for i, s := range c {
		out[i] = cloneOf(s)
	}
	return out
}

// RepeatChildren creates Count children of the current entity, each
// instantiated from its own duplicate of Schematic. Duplicates come from
// Clone when S implements Cloner[S] and from a value copy otherwise.
type RepeatChildren[S Schematic] struct {
	Schematic S
	Count     int
}

// Repeat builds a RepeatChildren of n copies of s.
func Repeat[S Schematic](s S, n int) RepeatChildren[S] {
	return RepeatChildren[S]{Schematic: s, Count: n}
}

func (r RepeatChildren[S]) Instantiate(ctx *Context) error {
	count := max(r.Count, 0)
	_, err := TryMapChildren(ctx, counter(count), func(v *Context, _ int) (struct{}, error) {
		return struct{}{}, cloneOf(r.Schematic).Instantiate(v)
	})
	return err
}

// Clone duplicates the repeated schematic.
func (r RepeatChildren[S]) Clone() RepeatChildren[S] {
	return RepeatChildren[S]{Schematic: cloneOf(r.Schematic), Count: r.Count}
}

func counter(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	}
}
