package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/export"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/summary"
)

// stdoutPath selects standard output as the export destination.
const stdoutPath = "-"

func newExportCmd(a *app) *cobra.Command {
	var outPath, format string

	cmd := &cobra.Command{
		Use:   "export <results.json>",
		Short: "Write verdicts and the summary to a CSV, XLSX, or JSON file",
		Long: `Write one row per test (name, language, compiler and runtime results,
reasons, and captured output) to a file. XLSX workbooks also carry the
per-language summary and the failure list on their own sheets.

The format is taken from --to, then from the extension of --output, then from
the export.format setting.

Examples:
  vvresults export results.json -o results.xlsx
  vvresults export results.json --to csv -o - | column -s, -t`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verdicts, err := a.loadVerdicts(args[0])
			if err != nil {
				return err
			}

			f, err := a.exportFormat(cmd, format, outPath)
			if err != nil {
				return err
			}
			dest := a.exportPath(args[0], outPath, f)

			rep := export.Report{Verdicts: verdicts, Summary: summary.Summarize(verdicts, a.opts.Mode)}
			if dest == stdoutPath {
				if err := export.Write(a.out.Out(), f, rep); err != nil {
					return errors.Wrap(err, "failed to write export")
				}
				return nil
			}

			if err := export.ToFile(dest, f, rep); err != nil {
				return err
			}
			a.logger.Debug("exported", "path", dest, "format", f, "rows", len(verdicts))
			a.out.Info("Exported %s tests to %s", a.out.Count(len(verdicts)), dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", `destination file ("-" for standard output)`)
	cmd.Flags().StringVar(&format, "to", "", "export format (csv|xlsx|json)")
	return cmd
}

func (a *app) exportFormat(cmd *cobra.Command, flag, outPath string) (export.Format, error) {
	if cmd.Flags().Changed("to") {
		f, err := export.ParseFormat(flag)
		if err != nil {
			return "", errors.Config(err.Error())
		}
		return f, nil
	}
	if outPath != "" && outPath != stdoutPath {
		if f, ok := export.FormatFromPath(outPath); ok {
			return f, nil
		}
	}
	return a.opts.ExportFormat, nil
}

// exportPath picks the destination: the flag, the configured output, or the
// input name with a ".summary.<format>" suffix.
func (a *app) exportPath(input, outPath string, f export.Format) string {
	if outPath != "" {
		return outPath
	}
	if a.opts.ExportOutput != "" {
		return a.opts.ExportOutput
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return base + ".summary." + string(f)
}
