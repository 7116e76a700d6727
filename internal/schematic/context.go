package schematic

import (
	"fmt"
	"iter"
	"slices"

	"github.com/roach88/schematica/internal/world"
)

// Store is the entity/component store a schematic is instantiated against.
// *world.World implements it.
type Store interface {
	SpawnEmpty() world.Entity
	Insert(e world.Entity, bundle any)
	AddChild(parent, child world.Entity)
}

// arena is the state shared by every view of one spawn.
//
// INVARIANTS:
//   - records[0] is the root and has no parent
//   - records[i].parent < i whenever it is set
//   - records is append-only; indices never move
type arena struct {
	store   Store
	records []EntityRecord
	active  *lease
}

// lease marks the scope a view may mutate in. Leases form a stack that
// mirrors the With/WithChild call depth.
type lease struct {
	prev     *lease
	released bool
}

// Context is a view into the arena of one spawn, pointed at a current record.
type Context struct {
	arena   *arena
	current int
	lease   *lease
}

func newArena(store Store, root world.Entity, capacity int) *arena {
	if capacity < 1 {
		capacity = 1
	}
	records := make([]EntityRecord, 1, capacity)
	records[0] = rootRecord(root)
	return &arena{store: store, records: records}
}

// enter opens a nested lease and returns a view on record i holding it.
func (a *arena) enter(i int) *Context {
	l := &lease{prev: a.active}
	a.active = l
	return &Context{arena: a, current: i, lease: l}
}

// exit releases v's lease and restores the enclosing one.
func (a *arena) exit(v *Context) {
	v.lease.released = true
	a.active = v.lease.prev
}

func (c *Context) mustHoldLease(op string) {
	if c.lease.released {
		panic(fmt.Sprintf("schematic: %s through a view that outlived its scope", op))
	}
	if c.arena.active != c.lease {
		panic(fmt.Sprintf("schematic: %s through an outer view while a nested view is active", op))
	}
}

// Root returns the record of the spawned root entity.
func (c *Context) Root() EntityRecord {
	return c.arena.records[0]
}

// Current returns the record this view points at.
func (c *Context) Current() EntityRecord {
	return c.arena.records[c.current]
}

// CurrentIndex returns the arena index this view points at.
func (c *Context) CurrentIndex() int {
	return c.current
}

// Get returns the record at index i.
func (c *Context) Get(i int) (EntityRecord, bool) {
	if i < 0 || i >= len(c.arena.records) {
		return EntityRecord{}, false
	}
	return c.arena.records[i], true
}

// Len returns the number of records created so far in this spawn.
func (c *Context) Len() int {
	return len(c.arena.records)
}

// Records returns a copy of every record in creation order.
func (c *Context) Records() []EntityRecord {
	return slices.Clone(c.arena.records)
}

// Store returns the store this spawn writes to.
func (c *Context) Store() Store {
	return c.arena.store
}

// SetCurrent repoints this view at index i. It reports false and leaves the
// view unchanged if i is out of range.
func (c *Context) SetCurrent(i int) bool {
	if i < 0 || i >= len(c.arena.records) {
		return false
	}
	c.current = i
	return true
}

// Insert attaches bundle to the current entity.
func (c *Context) Insert(bundle any) {
	c.mustHoldLease("insert")
	c.arena.store.Insert(c.Current().entity, bundle)
}

// Of returns a view on index i sharing this view's scope. The returned view
// must not be used after the receiver's scope ends.
func (c *Context) Of(i int) (*Context, bool) {
	if i < 0 || i >= len(c.arena.records) {
		return nil, false
	}
	return &Context{arena: c.arena, current: i, lease: c.lease}, true
}

// With calls f with a nested view on index i and returns its result. It
// reports false without calling f if i is out of range.
func With[T any](c *Context, i int, f func(*Context) T) (T, bool) {
	if i < 0 || i >= len(c.arena.records) {
		var zero T
		return zero, false
	}
	c.mustHoldLease("open nested view")
	v := c.arena.enter(i)
	defer c.arena.exit(v)
	return f(v), true
}

// WithChild creates a new entity as a child of the current one, records it,
// and calls f with a nested view pointed at it.
func WithChild[T any](c *Context, f func(*Context) T) T {
	v := c.spawnChild()
	defer c.arena.exit(v)
	return f(v)
}

// WithChild is the error-returning form of the package-level WithChild.
func (c *Context) WithChild(f func(*Context) error) error {
	return WithChild(c, f)
}

func (c *Context) spawnChild() *Context {
	c.mustHoldLease("create child")
	a := c.arena
	child := a.store.SpawnEmpty()
	a.records = append(a.records, childRecord(child, c.current))
	a.store.AddChild(c.Current().entity, child)
	return a.enter(len(a.records) - 1)
}

// MapChildren creates one child per item, in order, and collects f's results.
func MapChildren[I, T any](c *Context, items iter.Seq[I], f func(*Context, I) T) []T {
	var out []T
	for item := range items {
		out = append(out, WithChild(c, func(v *Context) T {
			return f(v, item)
		}))
	}
	return out
}

// TryMapChildren is MapChildren for fallible f. It stops at the first error
// and returns it; children created for earlier items stay in the store.
func TryMapChildren[I, T any](c *Context, items iter.Seq[I], f func(*Context, I) (T, error)) ([]T, error) {
	var out []T
	for item := range items {
		var err error
		res := WithChild(c, func(v *Context) T {
			var r T
			r, err = f(v, item)
			return r
		})
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Children returns the indices of records whose parent is the current record,
// in ascending order.
func (c *Context) Children() []int {
	var out []int
	for i := c.current + 1; i < len(c.arena.records); i++ {
		if p, ok := c.arena.records[i].Parent(); ok && p == c.current {
			out = append(out, i)
		}
	}
	return out
}
