package main

import (
	"fmt"
	"os"

	"benchdiff/internal/benchmark"
	"benchdiff/internal/ui"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var (
		output string
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse divan benchmark output into JSON records",
		Long: `Reads divan's tree-formatted benchmark output from a file (or stdin when
the argument is "-" or omitted) and emits one JSON record per benchmark.

Malformed lines are skipped and unparsable numeric fields become null;
soft-invariant violations (timing order, non-positive counts) are reported
as warnings on stderr without failing the parse.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			source := "<stdin>"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
				source = args[0]
			}

			results := benchmark.ParseTree(in)

			if !quiet {
				for _, w := range benchmark.Validate(results) {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn("warning: "+w))
				}
			}

			if output == "" {
				return benchmark.WriteResults(cmd.OutOrStdout(), results)
			}
			if err := benchmark.SaveResults(output, results); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success(
				fmt.Sprintf("Parsed %d benchmark(s) from %s into %s", len(results), source, output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write JSON to a file instead of stdout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress validation warnings")

	return cmd
}

func init() {
	rootCmd.AddCommand(newParseCmd())
}
