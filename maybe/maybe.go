/*
Package maybe implements optional values and the Kleisli category of partial
functions.

A partial function A ⇀ B is modelled as a total arrow A → Maybe[B]. Such arrows
compose with Compose and have Return as their identity, which makes them a
category in their own right:

	safeRoot := func(x float64) maybe.Maybe[float64] { … }
	safeReciprocal := func(x float64) maybe.Maybe[float64] { … }
	h := maybe.Compose(safeReciprocal, safeRoot)

Values are inspected with a matcher, in the style of Elm's case expressions:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		…
	case m.Nothing():
		…
	}
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Return is the identity arrow of the Kleisli category. It is Just.
func Return[T any](x T) Maybe[T] {
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// AndThen chains a partial function onto x. f is called only if x holds a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x.IsNothing() {
		return Nothing[S]()
	}
	var zero T
	return f(x.WithDefault(zero))
}

// Map lifts a total function T → S to Maybe[T] → Maybe[S].
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if x.IsNothing() {
		return Nothing[S]()
	}
	var zero T
	return Just(f(x.WithDefault(zero)))
}

// Compose is composition in the Kleisli category: f runs first, and g runs on
// f's value if there is one. A Nothing from f short-circuits g.
func Compose[A, B, C any](f func(A) Maybe[B], g func(B) Maybe[C]) func(A) Maybe[C] {
	return func(a A) Maybe[C] {
		return AndThen(g, f(a))
	}
}

// Lift turns a total function into a Kleisli arrow which always succeeds.
func Lift[A, B any](f func(A) B) func(A) Maybe[B] {
	return func(a A) Maybe[B] {
		return Just(f(a))
	}
}

// Equal reports whether x and y are both Nothing, or both hold equal values.
func Equal[T comparable](x, y Maybe[T]) bool {
	if x.IsNothing() || y.IsNothing() {
		return x.IsNothing() && y.IsNothing()
	}
	var zero T
	return x.WithDefault(zero) == y.WithDefault(zero)
}

// --- Matching --------------------------------------------------------------

// Matcher selects the case of a Maybe in a switch statement. A case method
// returns the matcher itself if it applies, nil otherwise. Switching on a
// matcher compares interface values, therefore T has to be comparable.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
