// Package schematicgen emits Instantiate methods for struct types so they
// satisfy schematic.Schematic without reflection.
//
// For every requested type the generated method applies each field, in
// declaration order, to the context's current entity and returns the first
// error. Fields that are schematics are instantiated; other fields are
// inserted as components (schematic.Of decides at run time).
//
// Types are selected by name or by a directive line in their doc comment:
//
//	//schematic:derive
//	type Crate struct { ... }
//
// Only structs with at least one field are accepted. Interfaces (sum shapes),
// field-less structs and every other kind of type are refused with a
// GenError and nothing is written.
package schematicgen
