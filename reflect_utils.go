package grampa

import (
	"reflect"
	"strings"
)

// ResolveKey resolves the attribute key under which a struct field is
// exposed. Priority: grampa:"name=..." > json tag name > field name; "-"
// hides the field.
func ResolveKey(sf reflect.StructField) string {
	if gt := sf.Tag.Get("grampa"); gt != "" {
		if gt == "-" {
			return "-"
		}
		parts := strings.Split(gt, ",")
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			if jt[:i] != "" {
				return jt[:i]
			}
			return sf.Name
		}
		return jt
	}
	return sf.Name
}

// deref follows non-nil pointers down to the pointed-to value.
func deref(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

type field struct {
	key string
	val reflect.Value
}

// structFields lists the exposed fields of a struct value. Own fields come
// first in declaration order. With inherited set, exported embedded structs
// contribute their promoted fields afterwards, skipping keys that are
// already shadowed; otherwise an embedded struct is a single own field.
func structFields(rv reflect.Value, inherited bool) []field {
	var own []field
	var embedded []reflect.Value
	seen := map[string]bool{}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && inherited {
			if ev := deref(rv.Field(i)); ev.Kind() == reflect.Struct {
				embedded = append(embedded, ev)
				continue
			}
		}
		key := ResolveKey(sf)
		if key == "-" {
			continue
		}
		seen[key] = true
		own = append(own, field{key: key, val: rv.Field(i)})
	}
	for _, ev := range embedded {
		for _, f := range structFields(ev, true) {
			if seen[f.key] {
				continue
			}
			seen[f.key] = true
			own = append(own, f)
		}
	}
	return own
}

// ownField looks up an own (non-promoted) field by key.
func ownField(rv reflect.Value, key string) (reflect.Value, bool) {
	for _, f := range structFields(rv, false) {
		if f.key == key {
			return f.val, true
		}
	}
	return reflect.Value{}, false
}
