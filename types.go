package grampa

import (
	"encoding/json"
	"reflect"
)

// Kind is the coarse runtime classification of a value after unboxing.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindNumber
	KindString
	KindBoolean
	KindObject
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindObject:
		return "object"
	case KindFunction:
		return "function"
	default:
		return "undefined"
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined is the "no value" sentinel that is distinct from nil.
// It classifies as KindUndefined and stringifies as "undefined".
var Undefined = undefined{}

type hole struct{}

func (hole) String() string { return "<hole>" }

// Hole marks an absent slot in a sparse List. ForEach never visits it and
// HasOwn reports false for its index.
var Hole = hole{}

func isHole(v any) bool {
	_, ok := v.(hole)
	return ok
}

func isUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// Box wraps a primitive so that it is an aggregate value until unboxed.
// The zero Box holds nil and unboxes to nil.
type Box struct{ v any }

// BoxNumber wraps a number.
func BoxNumber(n float64) Box { return Box{v: n} }

// BoxString wraps a string.
func BoxString(s string) Box { return Box{v: s} }

// BoxBool wraps a boolean.
func BoxBool(b bool) Box { return Box{v: b} }

// Unbox returns the wrapped primitive.
func (b Box) Unbox() any { return b.v }

var jsonNumberType = reflect.TypeOf(json.Number(""))

// kindOfValue classifies an already unboxed, non-null value.
func kindOfValue(rv reflect.Value) Kind {
	if !rv.IsValid() {
		return KindNull
	}
	if rv.Type() == jsonNumberType {
		return KindNumber
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBoolean
	case reflect.Func:
		return KindFunction
	default:
		return KindObject
	}
}

// isNull reports whether v is the nil interface or a typed nil pointer.
func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// isAbsent reports whether v is one of the two "no value" sentinels.
func isAbsent(v any) bool {
	return isNull(v) || isUndefined(v)
}

// Unbox returns the primitive held by a boxed value, or v itself.
//
// A Box unboxes to its content, and a non-nil pointer to a number, string or
// boolean unboxes to the pointed-to value. Every other value, including
// pointers to aggregates, is returned unchanged.
func Unbox(v any) any {
	switch b := v.(type) {
	case nil:
		return nil
	case Box:
		return b.v
	case *Box:
		if b == nil {
			return v
		}
		return b.v
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return v
	}
	switch kindOfValue(rv.Elem()) {
	case KindNumber, KindString, KindBoolean:
		return rv.Elem().Interface()
	}
	return v
}

// KindOf classifies v. Nil and typed nil pointers are KindNull; everything
// else is classified on its unboxed form.
func KindOf(v any) Kind {
	if isNull(v) {
		return KindNull
	}
	u := Unbox(v)
	if isUndefined(u) {
		return KindUndefined
	}
	if u == nil {
		// zero Box
		return KindNull
	}
	return kindOfValue(reflect.ValueOf(u))
}
