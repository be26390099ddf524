package grampa

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Stringifier renders values as single-line, human-readable text.
//
// There is no cycle detection: a self-referential value recurses until the
// stack is exhausted. Callers must not pass one.
type Stringifier struct {
	// Inherited flattens the promoted fields of embedded structs into object
	// output after the own fields, skipping shadowed keys. This matches the
	// output of older renderers. By default an embedded struct is rendered
	// as a single field.
	Inherited bool
}

var defaultStringifier = &Stringifier{}

// Stringify renders v with the default Stringifier.
func Stringify(v any) string { return defaultStringifier.Stringify(v) }

// StringifyList renders a list-like value with the default Stringifier.
func StringifyList(v any) string { return defaultStringifier.List(v) }

// StringifyObject renders the attributes of v with the default Stringifier.
func StringifyObject(v any) string { return defaultStringifier.Object(v) }

// Stringify renders v: nil as "null", non-objects through their natural
// string form, list-like objects as "[ a, b ]" and other objects as
// "{ k: v }".
func (s *Stringifier) Stringify(v any) string {
	switch {
	case isNull(v):
		return "null"
	case !IsObject(v):
		return primitiveString(Unbox(v))
	case IsListLike(v):
		return s.List(v)
	default:
		return s.Object(v)
	}
}

// List renders the present elements of v between "[ " and " ]", or "[]"
// when v is empty.
func (s *Stringifier) List(v any) string {
	if IsEmpty(v) {
		return "[]"
	}
	parts := make([]string, 0, 8)
	ForEach(v, func(x any, _ int, _ List) {
		parts = append(parts, s.Stringify(x))
	})
	return "[ " + strings.Join(parts, ", ") + " ]"
}

// Object renders the attributes of v as "{ k1: v1, k2: v2 }", or "{}" when
// v has none. Keys and values both go through Stringify.
func (s *Stringifier) Object(v any) string {
	var b strings.Builder
	b.WriteString("{ ")
	n := 0
	s.eachAttr(v, func(key, val any) {
		if n > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.Stringify(key))
		b.WriteString(": ")
		b.WriteString(s.Stringify(val))
		n++
	})
	if n == 0 {
		return "{}"
	}
	b.WriteString(" }")
	return b.String()
}

// eachAttr enumerates the attributes of v: struct fields, map entries sorted
// by rendered key, or the present indices of a slice, array or string. Other
// ArrayLike values also expose their length, like a duck-typed map does.
func (s *Stringifier) eachAttr(v any, fn func(key, val any)) {
	if isAbsent(v) {
		return
	}
	rv := deref(reflect.ValueOf(Unbox(v)))
	switch rv.Kind() {
	case reflect.Struct:
		if _, ok := v.(ArrayLike); !ok {
			for _, f := range structFields(rv, s.Inherited) {
				fn(f.key, f.val.Interface())
			}
			return
		}
	case reflect.Map:
		type entry struct {
			text string
			key  any
			val  any
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().Interface()
			entries = append(entries, entry{text: s.Stringify(k), key: k, val: iter.Value().Interface()})
		}
		sort.SliceStable(entries, func(i, j int) bool { return entries[i].text < entries[j].text })
		for _, e := range entries {
			fn(e.key, e.val)
		}
		return
	}
	if a, ok := v.(ArrayLike); ok && rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		n := a.Len()
		for i := 0; i < n; i++ {
			if x, ok := a.Index(i); ok {
				fn(i, x)
			}
		}
		fn("length", n)
		return
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if x := rv.Index(i).Interface(); !isHole(x) {
				fn(i, x)
			}
		}
	default:
		if IsString(v) {
			ForEach(v, func(x any, i int, _ List) { fn(i, x) })
		}
	}
}

// primitiveString converts an unboxed non-object value to text.
func primitiveString(u any) string {
	if u == nil {
		return "null"
	}
	if isUndefined(u) {
		return "undefined"
	}
	if n, ok := u.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		if f, err := n.Float64(); err == nil {
			return formatNumber(f, 64)
		}
		return string(n)
	}
	rv := reflect.ValueOf(u)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatNumber(rv.Float(), 32)
	case reflect.Float64:
		return formatNumber(rv.Float(), 64)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Func:
		return rv.Type().String()
	}
	return fmt.Sprint(u)
}

// formatNumber renders f with the shortest round-trip digits, in plain
// notation between 1e-6 and 1e21 and with a trimmed exponent outside it.
func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, bitSize)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(f, 'f', -1, bitSize)
}
