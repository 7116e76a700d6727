package snapshot

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"unicode/utf16"
)

// Value is a sealed interface over the value kinds a snapshot can hold.
type Value interface {
	snapshotValue()
}

// Null is the absence of a value (nil pointers, nil interfaces).
type Null struct{}

// String is a string value.
type String string

// Int is an integer value. Unsigned integers above MaxInt64 are rejected.
type Int int64

// Float is a floating point value. NaN and infinities are rejected.
type Float float64

// Bool is a boolean value.
type Bool bool

// Array is an ordered list of values.
type Array []Value

// Object maps keys to values. Use SortedKeys for deterministic iteration.
type Object map[string]Value

func (Null) snapshotValue()   {}
func (String) snapshotValue() {}
func (Int) snapshotValue()    {}
func (Float) snapshotValue()  {}
func (Bool) snapshotValue()   {}
func (Array) snapshotValue()  {}
func (Object) snapshotValue() {}

// SortedKeys returns the keys ordered by UTF-16 code units, the order
// required by RFC 8785.
func (o Object) SortedKeys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareUTF16)
	return keys
}

func compareUTF16(a, b string) int {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	return slices.Compare(ua, ub)
}

// FromGo converts a Go value into a Value.
//
// Structs become objects of their exported fields keyed by field name, maps
// with string keys become objects, slices and arrays become arrays, and
// pointers are followed. Channels, funcs and complex numbers are rejected.
func FromGo(v any) (Value, error) {
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null{}, nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return fromReflect(rv.Elem())
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("unsigned value %d overflows int64", u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("non-finite float %v", f)
		}
		return Float(f), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return Array{}, nil
		}
		return fromList(rv)
	case reflect.Array:
		return fromList(rv)
	case reflect.Map:
		return fromMap(rv)
	case reflect.Struct:
		return fromStruct(rv)
	default:
		return nil, fmt.Errorf("unsupported kind %s (%s)", rv.Kind(), rv.Type())
	}
}

func fromList(rv reflect.Value) (Value, error) {
	arr := make(Array, rv.Len())
	for i := range rv.Len() {
		elem, err := fromReflect(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		arr[i] = elem
	}
	return arr, nil
}

func fromMap(rv reflect.Value) (Value, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("map key kind %s is not string", rv.Type().Key().Kind())
	}
	obj := make(Object, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		elem, err := fromReflect(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("[%q]: %w", k, err)
		}
		obj[k] = elem
	}
	return obj, nil
}

func fromStruct(rv reflect.Value) (Value, error) {
	t := rv.Type()
	obj := make(Object, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		elem, err := fromReflect(rv.Field(i))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		obj[f.Name] = elem
	}
	return obj, nil
}

// ToGo converts v into plain Go values (map[string]any, []any, string,
// int64, float64, bool, nil) for encoders such as YAML.
func ToGo(v Value) any {
	switch val := v.(type) {
	case Null:
		return nil
	case String:
		return string(val)
	case Int:
		return int64(val)
	case Float:
		return float64(val)
	case Bool:
		return bool(val)
	case Array:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToGo(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = ToGo(elem)
		}
		return out
	default:
		return nil
	}
}

// Format renders v as compact canonical JSON, or a Go-syntax fallback if v
// cannot be encoded.
func Format(v Value) string {
	b, err := MarshalCanonical(v)
	if err != nil {
		return strings.TrimSpace(fmt.Sprintf("%#v", v))
	}
	return string(b)
}
