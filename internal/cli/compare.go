package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/output"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/summary"
)

// comparisonReport is the JSON form of the compare command.
type comparisonReport struct {
	Mode summary.Mode            `json:"mode"`
	A    string                  `json:"a"`
	B    string                  `json:"b"`
	Rows []summary.ComparisonRow `json:"rows"`
	Sums [2]summary.Summary      `json:"summaries"`
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a.json> <b.json>",
		Short: "Compare per-language pass counts of two results files",
		Long: `Summarize two results files independently with the same mode and show their
pass counts side by side for every language. Tests are not matched by name
across the files.

Examples:
  vvresults compare gcc.json clang.json
  vvresults compare before.json after.json --mode full --format json`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			docA, err := a.load(args[0])
			if err != nil {
				return err
			}
			docB, err := a.load(args[1])
			if err != nil {
				return err
			}

			cmp, sums, err := summary.CompareDocuments(cmd.Context(), docA, docB, a.verdicts, a.opts.Mode)
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return a.writeJSON(comparisonReport{
					Mode: cmp.Mode,
					A:    args[0],
					B:    args[1],
					Rows: cmp.Rows,
					Sums: sums,
				})
			}
			a.printComparison(cmp, filepath.Base(args[0]), filepath.Base(args[1]))
			return nil
		},
	}
}

func (a *app) printComparison(cmp summary.Comparison, nameA, nameB string) {
	a.out.SummaryHeader(modeTitle(cmp.Mode) + " comparison")
	a.out.SummaryItem("A", nameA)
	a.out.SummaryItem("B", nameB)
	a.out.Println("")

	headers := []string{"Language", "A Pass", "A Rate", "B Pass", "B Rate", "Delta"}
	rows := make([][]output.Cell, 0, len(cmp.Rows))
	for _, r := range cmp.Rows {
		rows = append(rows, []output.Cell{
			output.Plain(string(r.Language)),
			output.Plain(fmt.Sprintf("%s/%s", a.out.Count(r.PassA), a.out.Count(r.TotalA))),
			output.Plain(a.out.Percent(rate(r.PassA, r.TotalA))),
			output.Plain(fmt.Sprintf("%s/%s", a.out.Count(r.PassB), a.out.Count(r.TotalB))),
			output.Plain(a.out.Percent(rate(r.PassB, r.TotalB))),
			a.deltaCell(r.Delta()),
		})
	}
	a.out.CellTable(headers, rows)
}

func (a *app) deltaCell(d int) output.Cell {
	switch {
	case d > 0:
		return a.out.PassCell(fmt.Sprintf("+%d", d))
	case d < 0:
		return a.out.FailCell(fmt.Sprintf("%d", d))
	default:
		return output.Plain("0")
	}
}

func rate(pass, total int) float64 {
	return summary.Stats{Total: total, Pass: pass}.PassRate()
}
