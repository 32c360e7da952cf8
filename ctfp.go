package ctfp

// One is the terminal object: a type with exactly one value, One{}.
type One struct{}

// Id is the identity arrow for any type T. It returns x unchanged.
func Id[T any](x T) T {
	return x
}

// Compose returns h = g ∘ f, i.e. the arrow applying f first, then g.
//
//	Compose(f, g)(a) == g(f(a))
//
// Neither f nor g is called at composition time. Panics raised by f or g
// pass through h unchanged.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		b := f(a)
		return g(b)
	}
}

// After is Compose with the operands in mathematical order: After(g, f) reads
// "g after f" and equals Compose(f, g).
func After[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return Compose(f, g)
}

// Unit is the unique arrow from any type T to the terminal object.
// It discards its input.
func Unit[T any](_ T) One {
	return One{}
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Constant returns the constant arrow A → B, which ignores its argument.
// Constant(b) equals Compose(Unit[A], Point(b)).
func Constant[A, B any](b B) func(A) B {
	return func(_ A) B {
		return b
	}
}

// Point returns the arrow One → B selecting b. Arrows from the terminal object
// are in one-to-one correspondence with the values of B.
func Point[B any](b B) func(One) B {
	return func(One) B {
		return b
	}
}

// Element recovers the value selected by an arrow from the terminal object.
func Element[B any](p func(One) B) B {
	return p(One{})
}

// Pipe composes endomorphisms left to right. Pipe() is Id,
// Pipe(f, g, h) equals Compose(Compose(f, g), h).
func Pipe[A any](fs ...func(A) A) func(A) A {
	if len(fs) == 0 {
		return Id[A]
	}
	chain := make([]func(A) A, len(fs))
	copy(chain, fs)
	return func(a A) A {
		for _, f := range chain {
			a = f(a)
		}
		return a
	}
}
