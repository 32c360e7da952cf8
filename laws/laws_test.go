package laws_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/ctfp"
	"github.com/npillmayer/ctfp/laws"
	"github.com/npillmayer/ctfp/memo"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inc(x int) int    { return x + 1 }
func double(x int) int { return x * 2 }

var ints = []int{-3, -1, 0, 1, 2, 7, 100}

func TestIdentityLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfp.laws")
	defer teardown()
	//
	eq := laws.Equals[int]()
	for _, f := range []func(int) int{inc, double, ctfp.Id[int]} {
		r := laws.CheckIdentity(f, ints, eq)
		assert.True(t, r.OK(), r.String())
		assert.NoError(t, r.Err())
		assert.Equal(t, len(ints), r.Samples)
	}
	r := laws.CheckLeftIdentity(strconv.Itoa, ints, laws.Equals[string]())
	assert.True(t, r.OK())
	r = laws.CheckRightIdentity(strconv.Itoa, ints, laws.Equals[string]())
	assert.True(t, r.OK())
}

func TestAssociativityLaw(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfp.laws")
	defer teardown()
	//
	r := laws.CheckAssociativity(inc, double, strconv.Itoa, ints, laws.Equals[string]())
	assert.True(t, r.OK(), r.String())
}

func TestEqualDetectsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfp.laws")
	defer teardown()
	//
	r := laws.CheckEqual("inc;double = double;inc",
		ctfp.Compose(inc, double), ctfp.Compose(double, inc), []int{1}, laws.Equals[int]())
	require.False(t, r.OK())
	require.Len(t, r.Violations, 1)
	assert.Equal(t, laws.Violation{Sample: "1", Left: "4", Right: "3"}, r.Violations[0])
	err := r.Err()
	assert.True(t, errors.Is(err, laws.ErrLawViolated))
	assert.Contains(t, r.String(), "FAIL")
}

func TestRepeatableDetectsState(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfp.laws")
	defer teardown()
	//
	assert.True(t, laws.CheckRepeatable(ctfp.Compose(inc, double), ints, laws.Equals[int]()).OK())
	counter := 0
	stateful := func(x int) int {
		counter++
		return x + counter
	}
	r := laws.CheckRepeatable(stateful, ints, laws.Equals[int]())
	assert.False(t, r.OK())
	assert.Len(t, r.Violations, len(ints))
}

func TestUnitCollapse(t *testing.T) {
	r := laws.CheckUnitCollapse(ints, []string{"", "a", "OK"})
	assert.True(t, r.OK())
	assert.Equal(t, len(ints)*3, r.Samples)
}

func TestInverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfp.laws")
	defer teardown()
	//
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	strs := []string{"-3", "0", "42"}
	r := laws.CheckInverse(strconv.Itoa, atoi, ints, strs,
		laws.Equals[int](), laws.Equals[string]())
	assert.True(t, r.OK(), r.String())
	// "007" is not in the image of Itoa, so atoi is no inverse on it
	r = laws.CheckInverse(strconv.Itoa, atoi, ints, []string{"007"},
		laws.Equals[int](), laws.Equals[string]())
	assert.False(t, r.OK())
	assert.Len(t, r.Violations, 1)
}

func TestMemoizedIsExtensionallyEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfp.laws", "ctfp.memo")
	defer teardown()
	//
	m := memo.Memoize(double)
	samples := append(ints, ints...)
	r := laws.CheckEqual("memoized double", m.Func(), double, samples, laws.Equals[int]())
	assert.True(t, r.OK(), r.String())
	assert.True(t, laws.CheckRepeatable(m.Func(), ints, laws.Equals[int]()).OK())
}

func TestSuite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ctfp.laws")
	defer teardown()
	//
	suite := laws.NewSuite("int arrows")
	suite.Add(laws.CheckIdentity(inc, ints, laws.Equals[int]())).
		Add(laws.CheckAssociativity(inc, double, inc, ints, laws.Equals[int]()))
	assert.True(t, suite.OK())
	assert.NoError(t, suite.Err())
	assert.Len(t, suite.Reports(), 2)

	suite.Add(laws.CheckEqual("commutes", ctfp.Compose(inc, double), ctfp.Compose(double, inc),
		ints, laws.Equals[int]()))
	assert.False(t, suite.OK())
	assert.True(t, errors.Is(suite.Err(), laws.ErrLawViolated))
	out := suite.String()
	t.Logf("%s", out)
	assert.True(t, strings.HasPrefix(out, "int arrows\n"))
	assert.Contains(t, out, "ok    identity")
	assert.Contains(t, out, "FAIL  commutes")
}

func TestNilEqualityPanics(t *testing.T) {
	assert.Panics(t, func() {
		laws.CheckIdentity(inc, ints, nil)
	})
}
