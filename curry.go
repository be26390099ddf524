package grampa

// Func1 is a unary function.
type Func1[A, R any] func(A) R

// Func2 is a two-argument function that can also be applied one argument at
// a time through Bind.
type Func2[A, B, R any] func(A, B) R

// Bind fixes the first argument.
func (f Func2[A, B, R]) Bind(a A) Func1[B, R] {
	return func(b B) R { return f(a, b) }
}

// Func3 is a three-argument function with partial application through Bind.
type Func3[A, B, C, R any] func(A, B, C) R

// Bind fixes the first argument.
func (f Func3[A, B, C, R]) Bind(a A) Func2[B, C, R] {
	return func(b B, c C) R { return f(a, b, c) }
}

// Func4 is a four-argument function with partial application through Bind.
type Func4[A, B, C, D, R any] func(A, B, C, D) R

// Bind fixes the first argument.
func (f Func4[A, B, C, D, R]) Bind(a A) Func3[B, C, D, R] {
	return func(b B, c C, d D) R { return f(a, b, c, d) }
}

// Curry2 makes fn callable either as Curry2(fn)(a, b) or Curry2(fn).Bind(a)(b).
func Curry2[A, B, R any](fn func(A, B) R) Func2[A, B, R] { return fn }

// Curry3 is Curry2 for three-argument functions.
func Curry3[A, B, C, R any](fn func(A, B, C) R) Func3[A, B, C, R] { return fn }

// Curry4 is Curry2 for four-argument functions.
func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) Func4[A, B, C, D, R] { return fn }
