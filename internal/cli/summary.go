package cli

import (
	"github.com/spf13/cobra"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/summary"
)

func newSummaryCmd(a *app) *cobra.Command {
	var failOnFailures bool

	cmd := &cobra.Command{
		Use:   "summary <results.json>",
		Short: "Show per-language pass/fail counts and the failing tests",
		Long: `Show how many tests passed and failed in each language, followed by every
failing test with its reason.

In compiler mode a test passes when it compiled. In full mode only tests that
compiled and recorded a runtime result are counted, and a test passes when it
ran successfully.

Examples:
  vvresults summary results.json
  vvresults summary results.json --mode full --fail-on-failures`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdicts, err := a.loadVerdicts(args[0])
			if err != nil {
				return err
			}
			sum := summary.Summarize(verdicts, a.opts.Mode)
			a.logger.Debug("summarized", "mode", sum.Mode, "failures", len(sum.Failures), "excluded", sum.Excluded)

			if a.jsonOutput() {
				if err := a.writeJSON(sum); err != nil {
					return err
				}
			} else {
				a.printSummary(sum)
			}

			if failOnFailures && len(sum.Failures) > 0 {
				return errors.Newf("%d failing tests", len(sum.Failures))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&failOnFailures, "fail-on-failures", false, "exit with status 1 when any test fails")
	return cmd
}

func modeTitle(mode summary.Mode) string {
	if mode == summary.ModeFull {
		return "full summary"
	}
	return "compiler summary"
}

func (a *app) printSummary(sum summary.Summary) {
	a.out.SummaryHeader(modeTitle(sum.Mode))

	rows := make([][]string, 0, len(sum.Languages)+1)
	for _, st := range sum.Languages {
		rows = append(rows, a.statsRow(string(st.Language), st))
	}
	if len(sum.Languages) > 1 {
		rows = append(rows, a.statsRow("Total", sum.Totals()))
	}
	a.out.Table([]string{"Language", "Total", "Pass", "Fail", "Pass Rate"}, rows)

	if sum.Excluded > 0 {
		a.out.Println("")
		a.out.SummaryItem("Not counted", a.out.Count(sum.Excluded))
	}

	if len(sum.Failures) == 0 {
		a.out.FinalSuccess("All %s counted tests passed", a.out.Count(sum.Totals().Total))
		return
	}

	a.out.Println("")
	a.out.SummarySectionLabel("Failures:")
	for _, f := range sum.Failures {
		a.out.FailureLine(f.Name, string(f.Language), f.Reason)
	}
	a.out.FinalFailure("%s of %s tests failed", a.out.Count(len(sum.Failures)), a.out.Count(sum.Totals().Total))
}

func (a *app) statsRow(label string, st summary.Stats) []string {
	return []string{
		label,
		a.out.Count(st.Total),
		a.out.Count(st.Pass),
		a.out.Count(st.Fail),
		a.out.Percent(st.PassRate()),
	}
}
