package schematic

import (
	"errors"

	"github.com/roach88/schematica/internal/world"
)

type marker struct{}

type point struct{ X, Y int }

type label int

type power int

func (power) Default() power { return 7 }

type tags []string

func (t tags) Clone() tags {
	out := make(tags, len(t))
	copy(out, t)
	return out
}

var errBoom = errors.New("boom")

// fail is a schematic that counts its invocations and returns err.
type fail struct {
	calls *int
	err   error
}

func (f fail) Instantiate(*Context) error {
	*f.calls++
	return f.err
}

// countingStore records every mutation that reaches the world.
type countingStore struct {
	*world.World
	spawns  int
	inserts int
	links   int
}

func newCountingStore() *countingStore {
	return &countingStore{World: world.New()}
}

func (s *countingStore) SpawnEmpty() world.Entity {
	s.spawns++
	return s.World.SpawnEmpty()
}

func (s *countingStore) Insert(e world.Entity, bundle any) {
	s.inserts++
	s.World.Insert(e, bundle)
}

func (s *countingStore) AddChild(parent, child world.Entity) {
	s.links++
	s.World.AddChild(parent, child)
}

func (s *countingStore) mutations() int {
	return s.spawns + s.inserts + s.links
}

// capture runs f inside a spawn and returns the root.
func capture(w Store, f func(ctx *Context) error) (world.Entity, error) {
	return Spawn(w, Func(f))
}
