// Package world is the in-memory entity/component store that schematics are
// instantiated against.
//
// A World owns three things:
//   - an entity pool handing out generational handles (index + generation)
//   - per-entity component storage keyed by the component's Go type
//   - the parent/child hierarchy, recorded in both directions
//
// Insertion is last-write-wins per component type. Children are kept in the
// order they were attached, which is the order schematics create them.
//
// World is not safe for concurrent use. Code that needs to describe work from
// other goroutines pushes Commands onto a Commands queue, and the owner of the
// World applies them in FIFO order.
package world
