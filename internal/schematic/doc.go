// Package schematic builds entity hierarchies from declarative descriptions.
//
// A Schematic is a value that knows how to apply itself to the entity a
// Context currently points at. Plain component values are schematics through
// the leaf adapter (Insert, Of); everything else is built by composing
// schematics with the combinators in this package:
//
//	Maybe[S]           apply S or nothing
//	OrDefault[S]       apply S, or S's default value
//	Many2 .. Many10    apply several schematics in order to the same entity
//	Sequence           the same, for lists assembled at runtime
//	Children[S]        one new child entity per element
//	RepeatChildren[S]  N new child entities, each from a copy of S
//	Parent[S]          apply S to the parent of the current entity
//
// Struct types compose field by field, either through code emitted by
// schematicgen or at runtime through Struct.
//
// ARCHITECTURE:
//
// One call to Spawn owns an arena: an append-only list of EntityRecords plus
// the Store they live in. A Context is a view into that arena, a pointer to
// the arena and the index of the current record. Views are cheap and are
// passed down the call stack; nested views are created by With and WithChild
// and live exactly as long as the callback they are handed to.
//
// Only the innermost live view may mutate (Insert, WithChild and friends).
// Using an outer or released view for a mutation panics. Read-only queries
// work from any view.
//
// FAILURE:
//
// The first error aborts all remaining work and is returned unchanged by
// every combinator. Nothing is rolled back: entities and components created
// before the failure stay in the store.
package schematic
