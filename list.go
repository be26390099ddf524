package grampa

import (
	"reflect"
)

// List is the normalized sequence form of any value. Sparse inputs keep
// their holes as Hole elements.
type List []any

// Len implements ArrayLike.
func (l List) Len() int { return len(l) }

// Index implements ArrayLike.
func (l List) Index(i int) (any, bool) {
	if i < 0 || i >= len(l) {
		return nil, false
	}
	return l[i], !isHole(l[i])
}

// chars splits the unboxed string form of v into one element per rune.
func chars(v any) List {
	s := reflect.ValueOf(Unbox(v)).String()
	out := make(List, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// elements copies a list-like value into a List. Slots past the last present
// index are not materialized, so a sparse value with a huge length costs
// only as much as the indices it actually holds.
func elements(v any) (List, bool) {
	if !IsListLike(v) {
		return nil, false
	}
	if IsString(v) {
		return chars(v), true
	}
	n, _ := Length(v)
	if _, ok := v.(ArrayLike); !ok {
		if rv := deref(reflect.ValueOf(Unbox(v))); rv.Kind() == reflect.Map {
			return mapElements(rv, n), true
		}
	}
	var out List
	for i := 0; i < n; i++ {
		x, ok := elementAt(v, i)
		if !ok {
			continue
		}
		out = padHoles(out, i)
		out = append(out, x)
	}
	if out == nil {
		out = List{}
	}
	return out, true
}

// mapElements collects the index keys below n of a map, filling the gaps
// between them with Hole. String-keyed maps use canonical decimal keys;
// other maps use integer keys.
func mapElements(rv reflect.Value, n int) List {
	stringKeys := rv.Type().Key().Kind() == reflect.String
	present := map[int]any{}
	last := -1
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() == reflect.Interface {
			k = k.Elem()
		}
		var i int
		var ok bool
		switch {
		case stringKeys:
			i, ok = keyIndex(k.String())
		case k.IsValid() && kindOfValue(k) == KindNumber && k.Kind() != reflect.Float32 && k.Kind() != reflect.Float64:
			i, ok = keyIndex(k.Interface())
		}
		if !ok || i < 0 || i >= n {
			continue
		}
		present[i] = iter.Value().Interface()
		if i > last {
			last = i
		}
	}
	out := make(List, last+1)
	for i := range out {
		if x, ok := present[i]; ok {
			out[i] = x
		} else {
			out[i] = Hole
		}
	}
	return out
}

func padHoles(l List, upTo int) List {
	for len(l) < upTo {
		l = append(l, Hole)
	}
	return l
}

// Slice returns a copy of the elements of v between bounds[0] (begin) and
// bounds[1] (end). Both bounds are optional; negative bounds count from the
// end and out-of-range bounds are clamped. Strings are split into runes
// before the range is applied. Empty and non-list-like values give an
// empty List. Trailing holes are not materialized.
func Slice(v any, bounds ...int) List {
	if IsEmpty(v) {
		return List{}
	}
	all, ok := elements(v)
	if !ok {
		return List{}
	}
	// Bounds are resolved against the declared length; all may be shorter
	// when trailing holes were dropped.
	n := len(all)
	if !IsString(v) {
		n, _ = Length(v)
	}
	begin, end := 0, n
	if len(bounds) > 0 {
		begin = clampIndex(bounds[0], n)
	}
	if len(bounds) > 1 {
		end = clampIndex(bounds[1], n)
	}
	begin, end = min(begin, len(all)), min(end, len(all))
	if end < begin {
		end = begin
	}
	out := make(List, end-begin)
	copy(out, all[begin:end])
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	if i > n {
		return n
	}
	return i
}

// ToList converts any value into a List: nil, Undefined and empty values
// become an empty List, strings a List of runes, list-like values their
// elements, and anything else a single-element List holding v. Trailing
// holes of a sparse value are dropped.
//
// A List or []any input is returned as is without copying.
func ToList(v any) List {
	switch {
	case IsEmpty(v):
		return List{}
	case IsString(v):
		return Slice(v)
	case IsListLike(v):
		switch l := v.(type) {
		case List:
			return l
		case []any:
			return List(l)
		}
		l, _ := elements(v)
		return l
	default:
		return List{v}
	}
}

// ForEach normalizes v with ToList and calls fn for every present index in
// order, skipping holes. It returns the normalized List.
func ForEach(v any, fn func(elem any, i int, l List)) List {
	l := ToList(v)
	for i := 0; i < len(l); i++ {
		if isHole(l[i]) {
			continue
		}
		fn(l[i], i, l)
	}
	return l
}
