package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/output"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/status"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <results.json>",
		Short: "List the compiler and runtime verdict of every test",
		Long: `List every test in a results file with its language, its folded compiler
and runtime results, and the reason for any failure.

Examples:
  vvresults classify results.json
  vvresults classify results.json --language fortran --include /^atomic/
  vvresults classify results.json --jq '.[] | select(.compiler.result != 0) | .name'`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdicts, err := a.loadVerdicts(args[0])
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return a.writeJSON(verdicts)
			}
			a.printVerdicts(verdicts)
			return nil
		},
	}
}

func (a *app) printVerdicts(verdicts []classify.Verdict) {
	headers := []string{"Test", "Language", "Compiler", "Runtime", "Reason"}
	if a.out.IsVerbose() {
		headers = append(headers, "Runs")
	}

	rows := make([][]output.Cell, 0, len(verdicts))
	for _, v := range verdicts {
		row := []output.Cell{
			output.Plain(v.Name),
			output.Plain(string(v.Language)),
			a.resultCell(v.Compiler.Result),
			a.resultCell(v.Runtime.Result),
			output.Plain(verdictReason(v)),
		}
		if a.out.IsVerbose() {
			row = append(row, output.Plain(strconv.Itoa(v.Runs)))
		}
		rows = append(rows, row)
	}
	a.out.CellTable(headers, rows)
	a.out.Hint("%s tests", a.out.Count(len(verdicts)))
}

func (a *app) resultCell(c status.Code) output.Cell {
	switch {
	case c.IsPass():
		return a.out.PassCell(c.String())
	case c.IsFailure():
		return a.out.FailCell(c.String())
	default:
		return output.Plain(c.String())
	}
}

// verdictReason is the reason of the phase that decided the verdict.
func verdictReason(v classify.Verdict) string {
	if !v.Compiler.Result.IsPass() {
		return v.Compiler.Reason
	}
	return v.Runtime.Reason
}
