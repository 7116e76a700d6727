package world

import "fmt"

// Entity is an opaque handle to a node in the World.
//
// The lower 32 bits hold the slot index and the upper 32 bits the slot
// generation. Generation increments on despawn so stale handles no longer
// resolve.
type Entity uint64

// NewEntity packs an index and a generation into an Entity.
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

func (e Entity) Index() uint32      { return uint32(e) }
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

// String renders the handle as "<index>v<generation>".
func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.Index(), e.Generation())
}

// entityPool allocates entity slots with a free list for reuse.
type entityPool struct {
	generations []uint32
	live        []bool
	freeList    []uint32
	nextIndex   uint32
	alive       int
}

func newEntityPool() *entityPool {
	return &entityPool{
		generations: make([]uint32, 0, 64),
	}
}

func (p *entityPool) create() Entity {
	p.alive++
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		p.live[idx] = true
		return NewEntity(idx, p.generations[idx])
	}
	idx := p.nextIndex
	p.nextIndex++
	p.generations = append(p.generations, 0)
	p.live = append(p.live, true)
	return NewEntity(idx, 0)
}

func (p *entityPool) isAlive(e Entity) bool {
	idx := e.Index()
	if idx >= p.nextIndex {
		return false
	}
	return p.live[idx] && p.generations[idx] == e.Generation()
}

func (p *entityPool) destroy(e Entity) bool {
	if !p.isAlive(e) {
		return false // stale handle
	}
	idx := e.Index()
	p.generations[idx]++
	p.live[idx] = false
	p.freeList = append(p.freeList, idx)
	p.alive--
	return true
}
