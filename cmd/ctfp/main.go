package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	rootCmd = &cobra.Command{
		Use:   "ctfp",
		Short: "Category theory for programmers, in Go",
		Long: `ctfp demonstrates identity, composition and the terminal object
with plain Go functions, and checks the category laws for a set of
built-in arrows.`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				enableTracing()
			}
		},
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace law checks")

	rootCmd.AddCommand(lawsCmd)
	rootCmd.AddCommand(composeCmd)
}

var traceKeys = []string{"ctfp.laws", "ctfp.memo"}

// enableTracing routes traces to the standard logger and sets all keys of
// this module to debug level. Without a selector, tracing.Select hands out
// a no-op tracer.
func enableTracing() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(tracing.LevelDebug)
	}
}
