/*
Package laws checks the laws of a category for concrete arrows.

The compiler cannot prove that a Go function is associative under composition
or that an arrow and its candidate inverse compose to the identity. What we can
do is test these laws on sample inputs. Each check returns a Report listing the
samples for which the law did not hold; a Suite bundles reports and renders
them as a tree:

	suite := laws.NewSuite("int arrows")
	suite.Add(laws.CheckIdentity(inc, samples, laws.Equals[int]()))
	suite.Add(laws.CheckAssociativity(inc, double, strconv.Itoa, samples, laws.Equals[string]()))
	if err := suite.Err(); err != nil {
		fmt.Println(suite)
	}

Passing a check is evidence, not proof: a law may still fail for an input not
in the sample set.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package laws

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ctfp.laws'.
func tracer() tracing.Trace {
	return tracing.Select("ctfp.laws")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("ctfp.laws: "+msg, msgargs...)
		panic(msg)
	}
}
