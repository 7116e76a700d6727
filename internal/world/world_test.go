package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct{ X, Y int }
type name string

func TestEntityPacking(t *testing.T) {
	e := NewEntity(7, 3)
	assert.Equal(t, uint32(7), e.Index())
	assert.Equal(t, uint32(3), e.Generation())
	assert.Equal(t, "7v3", e.String())
}

func TestSpawnEmpty(t *testing.T) {
	w := New()
	a := w.SpawnEmpty()
	b := w.SpawnEmpty()

	assert.NotEqual(t, a, b)
	assert.True(t, w.Alive(a))
	assert.True(t, w.Alive(b))
	assert.Equal(t, 2, w.Len())
	assert.Empty(t, w.Components(a))
}

func TestInsertLastWriteWins(t *testing.T) {
	w := New()
	e := w.SpawnEmpty()

	w.Insert(e, position{1, 2})
	w.Insert(e, position{3, 4})
	w.Insert(e, name("crate"))

	pos, ok := Get[position](w, e)
	require.True(t, ok)
	assert.Equal(t, position{3, 4}, pos)
	assert.True(t, Has[name](w, e))
	assert.Len(t, w.Components(e), 2)
}

func TestInsertBundleFlattens(t *testing.T) {
	w := New()
	e := w.SpawnEmpty()

	w.Insert(e, Bundles(position{1, 1}, Bundles(name("nested"))))

	assert.True(t, Has[position](w, e))
	n, ok := Get[name](w, e)
	require.True(t, ok)
	assert.Equal(t, name("nested"), n)
}

func TestInsertNilIgnored(t *testing.T) {
	w := New()
	e := w.SpawnEmpty()
	w.Insert(e, nil)
	assert.Empty(t, w.Components(e))
}

func TestComponentsSortedByTypeName(t *testing.T) {
	w := New()
	e := w.Spawn(position{1, 2}, name("a"))

	comps := w.Components(e)
	require.Len(t, comps, 2)
	// "world.name" < "world.position"
	assert.Equal(t, name("a"), comps[0])
	assert.Equal(t, position{1, 2}, comps[1])
}

func TestAddChildOrderAndParent(t *testing.T) {
	w := New()
	root := w.SpawnEmpty()
	c1 := w.SpawnEmpty()
	c2 := w.SpawnEmpty()

	w.AddChild(root, c1)
	w.AddChild(root, c2)

	assert.Equal(t, []Entity{c1, c2}, w.Children(root))
	p, ok := w.Parent(c2)
	require.True(t, ok)
	assert.Equal(t, root, p)
	_, ok = w.Parent(root)
	assert.False(t, ok)
}

func TestAddChildReparents(t *testing.T) {
	w := New()
	a := w.SpawnEmpty()
	b := w.SpawnEmpty()
	c := w.SpawnEmpty()

	w.AddChild(a, c)
	w.AddChild(b, c)

	assert.Empty(t, w.Children(a))
	assert.Equal(t, []Entity{c}, w.Children(b))
}

func TestAddChildSelfPanics(t *testing.T) {
	w := New()
	a := w.SpawnEmpty()
	assert.Panics(t, func() { w.AddChild(a, a) })
}

func TestChildrenReturnsCopy(t *testing.T) {
	w := New()
	root := w.SpawnEmpty()
	c := w.SpawnEmpty()
	w.AddChild(root, c)

	kids := w.Children(root)
	kids[0] = root

	assert.Equal(t, []Entity{c}, w.Children(root))
}

func TestDespawn(t *testing.T) {
	w := New()
	root := w.SpawnEmpty()
	mid := w.SpawnEmpty()
	leaf := w.SpawnEmpty()
	w.AddChild(root, mid)
	w.AddChild(mid, leaf)
	w.Insert(mid, name("mid"))

	require.True(t, w.Despawn(mid))

	assert.False(t, w.Alive(mid))
	assert.False(t, w.Despawn(mid), "stale handle")
	assert.Empty(t, w.Children(root))
	_, ok := w.Parent(leaf)
	assert.False(t, ok)
	assert.False(t, Has[name](w, mid))
	assert.Equal(t, 2, w.Len())
}

func TestSlotReuseBumpsGeneration(t *testing.T) {
	w := New()
	a := w.SpawnEmpty()
	require.True(t, w.Despawn(a))

	b := w.SpawnEmpty()
	assert.Equal(t, a.Index(), b.Index())
	assert.Equal(t, a.Generation()+1, b.Generation())
	assert.False(t, w.Alive(a))
	assert.True(t, w.Alive(b))
}

func TestInsertOnDeadEntityPanics(t *testing.T) {
	w := New()
	a := w.SpawnEmpty()
	w.Despawn(a)
	assert.Panics(t, func() { w.Insert(a, name("x")) })
}

func TestEntitiesOrderedByIndex(t *testing.T) {
	w := New()
	a := w.SpawnEmpty()
	b := w.SpawnEmpty()
	c := w.SpawnEmpty()

	assert.Equal(t, []Entity{a, b, c}, w.Entities())
}
