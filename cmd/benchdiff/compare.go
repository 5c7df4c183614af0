package main

import (
	"fmt"
	"os"

	"benchdiff/internal/benchmark"
	"benchdiff/internal/notify"
	"benchdiff/internal/ui"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newCompareCmd() *cobra.Command {
	var (
		title            string
		subtitle         string
		output           string
		preview          bool
		failOnRegression bool
	)

	cmd := &cobra.Command{
		Use:   "compare <base.json> <pr.json>",
		Short: "Compare two benchmark result sets and render a markdown report",
		Long: `Loads two JSON record sets produced by the parse command, compares them
benchmark by benchmark on the chosen metric, and renders a markdown report
grouped by benchmark category.

Unlike the parser, the JSON loader is strict: an entry missing its name, the
selected metric, or the metric's value rejects the whole file, since the
record set is a contract between CI steps and a violation means the
producing step is buggy.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			metric, err := benchmark.ParseMetric(viper.GetString("metric"))
			if err != nil {
				return err
			}

			base, err := benchmark.LoadCollection(args[0], metric)
			if err != nil {
				return err
			}
			pr, err := benchmark.LoadCollection(args[1], metric)
			if err != nil {
				return err
			}

			th := benchmark.Thresholds{
				Improvement: viper.GetFloat64("thresholds.improvement"),
				Warn:        viper.GetFloat64("thresholds.warn"),
				Error:       viper.GetFloat64("thresholds.error"),
			}

			comparisons := benchmark.Compare(base, pr, th)
			report := benchmark.RenderMarkdown(comparisons, title, subtitle, th)

			switch {
			case preview:
				fmt.Fprint(cmd.OutOrStdout(), renderPreview(report))
			case output != "":
				if err := os.WriteFile(output, []byte(report), 0644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), ui.Success("Report written to "+output))
			default:
				fmt.Fprint(cmd.OutOrStdout(), report)
			}

			regressions, improvements := benchmark.Summarize(comparisons, th)
			if hook := viper.GetString("slack_webhook"); hook != "" {
				summary := fmt.Sprintf("%s: %d benchmark(s) compared, %d regression(s), %d improvement(s)",
					title, len(comparisons), regressions, improvements)
				if err := notify.NewWebhook(hook).Post(cmd.Context(), summary); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn("warning: slack notification failed: "+err.Error()))
				}
			}

			if failOnRegression {
				errored := 0
				for _, c := range comparisons {
					if c.Indicator == benchmark.IndicatorError {
						errored++
					}
				}
				if errored > 0 {
					return fmt.Errorf("%d benchmark(s) regressed beyond %+.1f%%", errored, th.Error)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "Benchmark Results", "Report title")
	cmd.Flags().StringVar(&subtitle, "subtitle", "", "Report subtitle")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the markdown report to a file instead of stdout")
	cmd.Flags().String("metric", "mean", "Metric to compare: fastest, slowest, median or mean")
	cmd.Flags().Float64("improvement-threshold", -0.5, "Change % at or below which a benchmark counts as improved")
	cmd.Flags().Float64("warn-threshold", 5.0, "Change % above which a benchmark gets a warning indicator")
	cmd.Flags().Float64("error-threshold", 10.0, "Change % above which a benchmark gets an error indicator")
	cmd.Flags().String("slack-webhook", "", "Slack incoming webhook to post the report summary to")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render the report to the terminal instead of emitting raw markdown")
	cmd.Flags().BoolVar(&failOnRegression, "fail-on-regression", false, "Exit non-zero when any benchmark carries the error indicator")

	viper.BindPFlag("metric", cmd.Flags().Lookup("metric"))
	viper.BindPFlag("thresholds.improvement", cmd.Flags().Lookup("improvement-threshold"))
	viper.BindPFlag("thresholds.warn", cmd.Flags().Lookup("warn-threshold"))
	viper.BindPFlag("thresholds.error", cmd.Flags().Lookup("error-threshold"))
	viper.BindPFlag("slack_webhook", cmd.Flags().Lookup("slack-webhook"))

	return cmd
}

// renderPreview renders markdown for the terminal, falling back to the raw
// report if glamour cannot initialize.
func renderPreview(report string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return report
	}
	out, err := renderer.Render(report)
	if err != nil {
		return report
	}
	return out
}

func init() {
	rootCmd.AddCommand(newCompareCmd())
}
