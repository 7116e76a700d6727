package schematic

import (
	"reflect"
)

// Struct composes a struct value field by field at runtime.
//
// The returned schematic applies every exported field, in declaration order,
// to the current entity: fields that are Schematics are instantiated, any
// other field is inserted as a component. The first error stops the rest.
//
// Struct is the reflection fallback for types without generated code (see
// schematicgen). It is slower and skips unexported fields, which generated
// code includes.
//
// Pointers to structs are dereferenced. Non-struct values and structs
// without exported fields are refused with a CodeUnsupportedShape error.
func Struct(v any) (Schematic, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, unsupportedShape("cannot compose nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, unsupportedShape("cannot compose nil value")
	}
	if rv.Kind() != reflect.Struct {
		return nil, unsupportedShape("cannot compose %s: only struct types compose field by field", rv.Type())
	}

	t := rv.Type()
	fields := make([]Schematic, 0, t.NumField())
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			continue
		}
		fields = append(fields, Of(rv.Field(i).Interface()))
	}
	if len(fields) == 0 {
		return nil, unsupportedShape("cannot compose %s: struct has no exported fields", t)
	}
	return Sequence(fields), nil
}

// MustStruct is Struct for values known to be composable. It panics on
// refusal.
func MustStruct(v any) Schematic {
	s, err := Struct(v)
	if err != nil {
		panic(err)
	}
	return s
}
