package world

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
)

// Bundle groups several components so they are attached by one insertion.
// Nested bundles are flattened.
type Bundle []any

// Bundles builds a Bundle from the given components.
func Bundles(components ...any) Bundle {
	return Bundle(components)
}

// World stores entities, their components, and the hierarchy between them.
//
// INVARIANTS:
//   - every live entity has a (possibly empty) component map
//   - parents[c] == p  <=>  c appears exactly once in children[p]
//   - children lists preserve attach order
type World struct {
	pool       *entityPool
	components map[Entity]map[reflect.Type]any
	parents    map[Entity]Entity
	children   map[Entity][]Entity
}

// New creates an empty World.
func New() *World {
	return &World{
		pool:       newEntityPool(),
		components: make(map[Entity]map[reflect.Type]any),
		parents:    make(map[Entity]Entity),
		children:   make(map[Entity][]Entity),
	}
}

// SpawnEmpty allocates a new entity with no components.
func (w *World) SpawnEmpty() Entity {
	e := w.pool.create()
	w.components[e] = make(map[reflect.Type]any)
	return e
}

// Spawn allocates a new entity and inserts the given components on it.
func (w *World) Spawn(components ...any) Entity {
	e := w.SpawnEmpty()
	for _, c := range components {
		w.Insert(e, c)
	}
	return e
}

// Insert attaches bundle to e. A component of the same type already present
// on e is replaced. Nil bundles are ignored.
//
// Panics if e is not alive: inserting on a despawned entity is a caller bug.
func (w *World) Insert(e Entity, bundle any) {
	w.mustBeAlive(e, "insert")
	w.insert(e, bundle)
}

func (w *World) insert(e Entity, bundle any) {
	switch b := bundle.(type) {
	case nil:
		return
	case Bundle:
		for _, c := range b {
			w.insert(e, c)
		}
	default:
		w.components[e][reflect.TypeOf(bundle)] = bundle
	}
}

// AddChild makes child a child of parent. If child already had a parent it
// is detached from it first.
func (w *World) AddChild(parent, child Entity) {
	w.mustBeAlive(parent, "add child to")
	w.mustBeAlive(child, "add as child")
	if parent == child {
		panic(fmt.Sprintf("world: entity %s cannot be its own child", parent))
	}

	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// detach removes child from its current parent's child list, if any.
func (w *World) detach(child Entity) {
	old, ok := w.parents[child]
	if !ok {
		return
	}
	siblings := w.children[old]
	if i := slices.Index(siblings, child); i >= 0 {
		siblings = slices.Delete(siblings, i, i+1)
	}
	if len(siblings) == 0 {
		delete(w.children, old)
	} else {
		w.children[old] = siblings
	}
	delete(w.parents, child)
}

// Get returns the component of type t stored on e.
func (w *World) Get(e Entity, t reflect.Type) (any, bool) {
	comps, ok := w.components[e]
	if !ok {
		return nil, false
	}
	c, ok := comps[t]
	return c, ok
}

// Get returns the component of type T stored on e.
func Get[T any](w *World, e Entity) (T, bool) {
	c, ok := w.Get(e, reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// Has reports whether e carries a component of type T.
func Has[T any](w *World, e Entity) bool {
	_, ok := w.Get(e, reflect.TypeFor[T]())
	return ok
}

// Components returns all components on e ordered by TypeName.
func (w *World) Components(e Entity) []any {
	comps := w.components[e]
	out := make([]any, 0, len(comps))
	for _, c := range comps {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return TypeName(reflect.TypeOf(out[i])) < TypeName(reflect.TypeOf(out[j]))
	})
	return out
}

// TypeName is the stable name used for a component type in listings and
// snapshots.
func TypeName(t reflect.Type) string {
	return t.String()
}

// Parent returns the parent of e, if it has one.
func (w *World) Parent(e Entity) (Entity, bool) {
	p, ok := w.parents[e]
	return p, ok
}

// Children returns a copy of e's children in attach order.
func (w *World) Children(e Entity) []Entity {
	return slices.Clone(w.children[e])
}

// Alive reports whether e refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.pool.isAlive(e)
}

// Despawn removes e and its components. e is detached from its parent and its
// children become roots. Returns false for stale handles.
func (w *World) Despawn(e Entity) bool {
	if !w.pool.destroy(e) {
		return false
	}
	w.detach(e)
	for _, c := range w.children[e] {
		delete(w.parents, c)
	}
	delete(w.children, e)
	delete(w.components, e)
	return true
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.pool.alive
}

// Entities returns all live entities ordered by index.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.components))
	for e := range w.components {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entity) int {
		return int(a.Index()) - int(b.Index())
	})
	return out
}

func (w *World) mustBeAlive(e Entity, op string) {
	if !w.pool.isAlive(e) {
		panic(fmt.Sprintf("world: cannot %s entity %s: not alive", op, e))
	}
}
