package grampa

import (
	"encoding/json"
	"math"
	"reflect"
)

// Predicate classifies a single value.
type Predicate func(v any) bool

// Is reports whether v classifies as expected.
func Is(expected Kind, v any) bool {
	return KindOf(v) == expected
}

var is = Curry2(Is)

// IsKind returns Is specialized to expected.
func IsKind(expected Kind) Predicate {
	return Predicate(is.Bind(expected))
}

var (
	IsNumber   = IsKind(KindNumber)
	IsString   = IsKind(KindString)
	IsObject   = IsKind(KindObject)
	IsFunction = IsKind(KindFunction)
	IsBoolean  = IsKind(KindBoolean)
)

// IsInteger reports whether v is a finite number with no fractional part.
func IsInteger(v any) bool {
	if !IsNumber(v) {
		return false
	}
	f, ok := toFloat(Unbox(v))
	return ok && !math.IsInf(f, 0) && f == math.Floor(f)
}

// IsEmpty reports whether v is nil, Undefined, or has a length of zero.
func IsEmpty(v any) bool {
	if isAbsent(v) {
		return true
	}
	n, ok := Length(v)
	return ok && n == 0
}

// IsListLike reports whether v can be treated as an indexed sequence: it has
// an integer length and is a string, has an own index 0, or has length zero.
func IsListLike(v any) bool {
	n, ok := Length(v)
	if !ok {
		return false
	}
	return IsString(v) || HasOwn(v, 0) || n == 0
}

// toFloat converts an unboxed number to float64. NaN is returned as is.
func toFloat(u any) (float64, bool) {
	if n, ok := u.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(u)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
