// Package grampa provides value introspection helpers:
//
// - Classification of values into coarse kinds after unboxing (KindOf, Is, IsNumber, ...)
// - Duck-typed list detection and normalization into a List (IsListLike, ToList, Slice)
// - Hole-aware iteration (ForEach)
// - Single-line rendering of arbitrary values (Stringify)
//
// Design policy:
// - Every function is synchronous and free of shared state.
// - Nothing is recovered: panics raised by host values propagate to the caller.
// - Path helpers live under path/, the debug console under display/, and
//   JSON/YAML decoding under source/. The CLI is cmd/grampa.
//
// Typical usage:
//
//	grampa.KindOf(grampa.BoxNumber(3))          // number
//	grampa.ToList("ab")                         // [a b]
//	grampa.Stringify(map[string]any{"a": 1})    // { a: 1 }
//	grampa.Stringify([]any{1, []any{2, 3}})     // [ 1, [ 2, 3 ] ]
package grampa
