/*
Package result implements the Kleisli category of fallible functions.

Go functions which may fail return (T, error). Composing such functions by
hand means checking the error after every step. Compose does this once and for
all: the composite runs f, and only if f succeeds it runs g. An error from
either operand is handed to the caller unchanged.

Result wraps a (T, error) pair into a single value, for code which prefers to
pass outcomes around instead of returning them.
*/
package result

import "fmt"

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err must not be nil, otherwise the result would be
// indistinguishable from an Ok; use From for (value, error) pairs.
func Err[T any](err error) Result[T] {
	assertThat(err != nil, "Err called with nil error")
	return result[T]{err: err}
}

// From wraps the return values of a Go function. If err is non-nil,
// x is dropped.
func From[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// AndThen chains a fallible function onto r.
func AndThen[T, S any](f func(T) (S, error), r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return From(f(v))
}

// Map applies a total function to a successful value.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// --- Kleisli arrows --------------------------------------------------------

// Id is the identity arrow of fallible functions. It never fails.
func Id[A any](a A) (A, error) {
	return a, nil
}

// Compose runs f, then g on f's value. If f fails, g is not called and f's
// error is returned as is; the same holds for an error of g.
func Compose[A, B, C any](f func(A) (B, error), g func(B) (C, error)) func(A) (C, error) {
	return func(a A) (C, error) {
		b, err := f(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return g(b)
	}
}

// Lift turns a total function into a fallible one which never fails.
func Lift[A, B any](f func(A) B) func(A) (B, error) {
	return func(a A) (B, error) {
		return f(a), nil
	}
}

// --- Matching --------------------------------------------------------------

// Matcher selects the case of a Result in a switch statement. A case method
// returns the matcher itself if it applies, nil otherwise. Switching on a
// matcher compares interface values, therefore T and the dynamic type of the
// error have to be comparable.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ctfp.result: "+msg, msgargs...)
		panic(msg)
	}
}
