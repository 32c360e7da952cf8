/*
Package memo memoizes pure functions.

A pure function always produces the same output for the same input. Mathematically
it is just a relation between its domain and its codomain, a set of pairs, and
nothing keeps us from computing each pair once and looking it up afterwards. A
memoized pure function is indistinguishable from the original one, apart from
its running time. Memoizing a function with side effects breaks this: effects
run once per distinct argument only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package memo

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfp.memo'.
func tracer() tracing.Trace {
	return tracing.Select("ctfp.memo")
}
