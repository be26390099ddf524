package grampa

import (
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// ArrayLike is implemented by host values that expose an indexed view of
// themselves. Index reports false for positions that hold no element.
type ArrayLike interface {
	Len() int
	Index(i int) (any, bool)
}

// Length returns the integer length attribute of v.
//
// Strings report their rune count; slices, arrays and ArrayLike values their
// Len; string-keyed maps the unboxed value of their "length" entry. Pointers
// to slices, arrays and maps report the length of the pointed-to value. The
// second result is false when v has no integer length in [0, math.MaxInt).
func Length(v any) (int, bool) {
	if isAbsent(v) {
		return 0, false
	}
	if a, ok := v.(ArrayLike); ok {
		return a.Len(), true
	}
	u := Unbox(v)
	if IsString(u) {
		return utf8.RuneCountInString(reflect.ValueOf(u).String()), true
	}
	rv := deref(reflect.ValueOf(u))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	case reflect.Map:
		lv, ok := mapLookup(rv, "length")
		if !ok || !IsInteger(lv) {
			return 0, false
		}
		f, _ := toFloat(Unbox(lv))
		if f < 0 || f >= math.MaxInt {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// HasOwn reports whether key is an own attribute of v. Integer keys and
// their decimal string forms address the same index.
func HasOwn(v any, key any) bool {
	if isAbsent(v) {
		return false
	}
	if a, ok := v.(ArrayLike); ok {
		i, ok := keyIndex(key)
		if !ok {
			return false
		}
		_, present := a.Index(i)
		return present
	}
	u := Unbox(v)
	if IsString(u) {
		i, ok := keyIndex(key)
		return ok && i >= 0 && i < utf8.RuneCountInString(reflect.ValueOf(u).String())
	}
	rv := deref(reflect.ValueOf(u))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		i, ok := keyIndex(key)
		return ok && i >= 0 && i < rv.Len() && !isHole(rv.Index(i).Interface())
	case reflect.Map:
		_, ok := mapLookup(rv, key)
		return ok
	case reflect.Struct:
		_, ok := ownField(rv, keyString(key))
		return ok
	}
	return false
}

// elementAt returns the element at index i of a list-like value.
func elementAt(v any, i int) (any, bool) {
	if a, ok := v.(ArrayLike); ok {
		return a.Index(i)
	}
	rv := deref(reflect.ValueOf(Unbox(v)))
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if i < 0 || i >= rv.Len() {
			return nil, false
		}
		x := rv.Index(i).Interface()
		return x, !isHole(x)
	case reflect.Map:
		return mapLookup(rv, i)
	}
	return nil, false
}

// mapLookup finds key in a map value. String-keyed maps are addressed by the
// key's string form.
func mapLookup(rv reflect.Value, key any) (any, bool) {
	kt := rv.Type().Key()
	var kv reflect.Value
	if kt.Kind() == reflect.String {
		kv = reflect.ValueOf(keyString(key)).Convert(kt)
	} else {
		kv = reflect.ValueOf(key)
		if !kv.IsValid() || !kv.Type().ConvertibleTo(kt) || !fitsKey(kv, kt) {
			return nil, false
		}
		kv = kv.Convert(kt)
	}
	x := rv.MapIndex(kv)
	if !x.IsValid() {
		return nil, false
	}
	return x.Interface(), true
}

// fitsKey reports whether the integer kv converts to kt without wrapping.
func fitsKey(kv reflect.Value, kt reflect.Type) bool {
	zero := reflect.Zero(kt)
	switch kv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := kv.Int()
		switch kt.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return !zero.OverflowInt(n)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return n >= 0 && !zero.OverflowUint(uint64(n))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := kv.Uint()
		switch kt.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return n <= math.MaxInt64 && !zero.OverflowInt(int64(n))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return !zero.OverflowUint(n)
		}
	}
	return true
}

func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	}
	return Stringify(key)
}

func keyIndex(key any) (int, bool) {
	switch k := key.(type) {
	case int:
		return k, true
	case string:
		i, err := strconv.Atoi(k)
		if err != nil || strconv.Itoa(i) != k {
			return 0, false
		}
		return i, true
	}
	if IsInteger(key) {
		f, _ := toFloat(Unbox(key))
		return int(f), true
	}
	return 0, false
}
