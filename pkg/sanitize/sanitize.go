package sanitize

import (
	"fmt"
	"reflect"
	"strings"
)

// Normalize returns a copy of v built only from plain serialization-safe
// values: int, float64, string, bool, nil, []any and map[string]any. Sized
// integer and float kinds collapse to int and float64, slices and arrays
// become []any, maps become map[string]any, and structs become
// map[string]any keyed by their json tags. Strings, bools and nil pass
// through unchanged. Pointers and interfaces are unwrapped first.
func Normalize(v any) any {
	if v == nil {
		return nil
	}
	return normalize(reflect.ValueOf(v))
}

// List normalizes every element of items. The result is never nil, so an
// empty input serializes as an empty array.
func List(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, Normalize(item))
	}
	return out
}

func normalize(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem())
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		return normalizeList(rv)
	case reflect.Array:
		return normalizeList(rv)
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = normalize(iter.Value())
		}
		return out
	case reflect.Struct:
		return normalizeStruct(rv)
	default:
		return rv.Interface()
	}
}

func normalizeList(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = normalize(rv.Index(i))
	}
	return out
}

// normalizeStruct flattens a struct into a map keyed the way encoding/json
// would name the fields: the json tag name when present, the field name
// otherwise. Unexported fields and fields tagged json:"-" are dropped. Tag
// options beyond the name are not interpreted.
func normalizeStruct(rv reflect.Value) map[string]any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name := field.Name
		if tag, ok := field.Tag.Lookup("json"); ok {
			if tag == "-" {
				continue
			}
			if tagName, _, _ := strings.Cut(tag, ","); tagName != "" {
				name = tagName
			}
		}

		out[name] = normalize(rv.Field(i))
	}
	return out
}

func mapKey(rv reflect.Value) string {
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(rv.Interface())
}
