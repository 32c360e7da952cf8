package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/npillmayer/ctfp"
	"github.com/npillmayer/ctfp/laws"
	"github.com/npillmayer/ctfp/memo"
	"github.com/spf13/cobra"
)

var (
	colorGreen = color.Green.Sprintf
	colorRed   = color.Red.Sprintf
	colorCyan  = color.Cyan.Sprintf
)

func inc(x int) int    { return x + 1 }
func double(x int) int { return x * 2 }

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

var lawsCmd = &cobra.Command{
	Use:   "laws",
	Short: "Check the category laws for built-in arrows",
	RunE: func(cmd *cobra.Command, args []string) error {
		suite := builtinSuite()
		printSuite(cmd.OutOrStdout(), suite)
		return suite.Err()
	},
}

var composeCmd = &cobra.Command{
	Use:   "compose <n>",
	Short: "Show that the order of composition matters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("compose expects an integer: %w", err)
		}
		printCompositions(cmd.OutOrStdout(), n)
		return nil
	},
}

// builtinSuite checks every law on inc, double, Itoa and their memoized
// variants.
func builtinSuite() *laws.Suite {
	ints := []int{-100, -7, -1, 0, 1, 2, 3, 42, 1000}
	strs := []string{"-7", "0", "42"}
	eqInt, eqStr := laws.Equals[int](), laws.Equals[string]()
	memoDouble := memo.Memoize(double).Func()

	suite := laws.NewSuite("built-in arrows")
	suite.Add(laws.CheckIdentity(inc, ints, eqInt)).
		Add(laws.CheckIdentity(strconv.Itoa, ints, eqStr)).
		Add(laws.CheckAssociativity(inc, double, strconv.Itoa, ints, eqStr)).
		Add(laws.CheckRepeatable(ctfp.Compose(inc, double), ints, eqInt)).
		Add(laws.CheckUnitCollapse(ints, strs)).
		Add(laws.CheckInverse(strconv.Itoa, atoi, ints, strs, eqInt, eqStr)).
		Add(laws.CheckEqual("memoized double", memoDouble, double, ints, eqInt))
	return suite
}

func printSuite(w io.Writer, suite *laws.Suite) {
	fmt.Fprintln(w, colorCyan(suite.Name))
	for _, r := range suite.Reports() {
		if r.OK() {
			fmt.Fprintf(w, "  %s  %s (%d samples)\n", colorGreen("ok  "), r.Law, r.Samples)
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n", colorRed("FAIL"), r.Err())
	}
}

func printCompositions(w io.Writer, n int) {
	fmt.Fprintf(w, "inc then double: %d\n", ctfp.Compose(inc, double)(n))
	fmt.Fprintf(w, "double then inc: %d\n", ctfp.Compose(double, inc)(n))
	fmt.Fprintf(w, "unit:            %v\n", ctfp.Unit(n))
}
