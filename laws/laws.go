package laws

import (
	"fmt"

	"github.com/npillmayer/ctfp"
)

// Eq decides equality of two values of type T.
type Eq[T any] func(T, T) bool

// Equals returns the built-in equality for comparable types.
func Equals[T comparable]() Eq[T] {
	return func(a, b T) bool {
		return a == b
	}
}

// check evaluates both sides of a law for every sample.
func check[A, B any](law string, samples []A, lhs, rhs func(A) B, eq Eq[B]) *Report {
	assertThat(eq != nil, "%s: equality must not be nil", law)
	tracer().Debugf("checking %s on %d samples", law, len(samples))
	r := &Report{Law: law, Samples: len(samples)}
	for _, a := range samples {
		l, rr := lhs(a), rhs(a)
		if !eq(l, rr) {
			v := Violation{
				Sample: fmt.Sprintf("%v", a),
				Left:   fmt.Sprintf("%v", l),
				Right:  fmt.Sprintf("%v", rr),
			}
			tracer().Infof("%s violated for %s", law, v)
			r.Violations = append(r.Violations, v)
		}
	}
	return r
}

// CheckEqual checks that f and g agree on every sample.
func CheckEqual[A, B any](law string, f, g func(A) B, samples []A, eq Eq[B]) *Report {
	return check(law, samples, f, g, eq)
}

// CheckLeftIdentity checks id ; f = f.
func CheckLeftIdentity[A, B any](f func(A) B, samples []A, eq Eq[B]) *Report {
	return check("left identity", samples, ctfp.Compose(ctfp.Id[A], f), f, eq)
}

// CheckRightIdentity checks f ; id = f.
func CheckRightIdentity[A, B any](f func(A) B, samples []A, eq Eq[B]) *Report {
	return check("right identity", samples, ctfp.Compose(f, ctfp.Id[B]), f, eq)
}

// CheckIdentity checks that Id is a two-sided unit for f. The report merges
// the violations of both sides.
func CheckIdentity[A, B any](f func(A) B, samples []A, eq Eq[B]) *Report {
	left := CheckLeftIdentity(f, samples, eq)
	right := CheckRightIdentity(f, samples, eq)
	return &Report{
		Law:        "identity",
		Samples:    len(samples),
		Violations: append(left.Violations, right.Violations...),
	}
}

// CheckAssociativity checks (f ; g) ; h = f ; (g ; h).
func CheckAssociativity[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D,
	samples []A, eq Eq[D]) *Report {
	//
	lhs := ctfp.Compose(ctfp.Compose(f, g), h)
	rhs := ctfp.Compose(f, ctfp.Compose(g, h))
	return check("associativity", samples, lhs, rhs, eq)
}

// CheckRepeatable checks that calling f twice with the same input yields
// equal outputs.
func CheckRepeatable[A, B any](f func(A) B, samples []A, eq Eq[B]) *Report {
	second := func(a A) B {
		f(a)
		return f(a)
	}
	return check("repeatable", samples, f, second, eq)
}

// CheckUnitCollapse checks that Unit sends every x in xs and every y in ys
// to the same value.
func CheckUnitCollapse[A, B any](xs []A, ys []B) *Report {
	tracer().Debugf("checking unit collapse on %d×%d samples", len(xs), len(ys))
	r := &Report{Law: "unit collapse", Samples: len(xs) * len(ys)}
	for _, x := range xs {
		for _, y := range ys {
			if ctfp.Unit(x) != ctfp.Unit(y) {
				r.Violations = append(r.Violations, Violation{
					Sample: fmt.Sprintf("(%v, %v)", x, y),
					Left:   fmt.Sprintf("%v", ctfp.Unit(x)),
					Right:  fmt.Sprintf("%v", ctfp.Unit(y)),
				})
			}
		}
	}
	return r
}

// CheckInverse checks that f: A → B and g: B → A form an isomorphism,
// i.e. g after f = id on as and f after g = id on bs.
func CheckInverse[A, B any](f func(A) B, g func(B) A, as []A, bs []B, eqA Eq[A], eqB Eq[B]) *Report {
	gf := check("g after f", as, ctfp.Compose(f, g), ctfp.Id[A], eqA)
	fg := check("f after g", bs, ctfp.Compose(g, f), ctfp.Id[B], eqB)
	return &Report{
		Law:        "inverse",
		Samples:    gf.Samples + fg.Samples,
		Violations: append(gf.Violations, fg.Violations...),
	}
}
