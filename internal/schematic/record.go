package schematic

import "github.com/roach88/schematica/internal/world"

// EntityRecord is the bookkeeping entry for one entity created during a
// spawn: its handle and the arena index of its parent.
type EntityRecord struct {
	entity    world.Entity
	parent    int
	hasParent bool
}

func rootRecord(e world.Entity) EntityRecord {
	return EntityRecord{entity: e}
}

func childRecord(e world.Entity, parent int) EntityRecord {
	return EntityRecord{entity: e, parent: parent, hasParent: true}
}

// Entity returns the store handle.
func (r EntityRecord) Entity() world.Entity { return r.entity }

// Parent returns the arena index of the parent record. The root has none.
func (r EntityRecord) Parent() (int, bool) { return r.parent, r.hasParent }
