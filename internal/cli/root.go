package cli

import (
	"github.com/spf13/cobra"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/config"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/output"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vvresults",
		Short: "Summarize compiler and runtime validation results",
		Long: `vvresults reads the JSON results of a directive-based validation and
verification test suite and reports, per test and per language (C, C++,
Fortran), whether each test compiled and ran successfully.

Results files may be plain JSON or the legacy "var jsonResults = {...};" form.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetVersionTemplate("vvresults {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Config(err.Error())
	})

	persistent := cmd.PersistentFlags()
	persistent.String("config", "", "path to "+config.FileName+" (default: search upward from the working directory)")
	persistent.BoolP("quiet", "q", false, "print results only")
	persistent.BoolP("verbose", "v", false, "print extra detail")
	persistent.String("color", "", "color output (auto|always|never)")
	persistent.Bool("debug", false, "enable debug logging")
	persistent.String("mode", "", "summary mode (compiler|full)")
	persistent.String("stderr-policy", "", "whether stderr output fails a passing phase (ignore|strict)")
	persistent.Bool("representative", false, "keep one test per base name, preferring Fortran, then C++, then C")
	persistent.StringArray("language", nil, "only report tests in this language (repeatable)")
	persistent.StringArray("include", nil, "only report tests whose name matches (substring or /regex/, repeatable)")
	persistent.StringArray("exclude", nil, "skip tests whose name matches (substring or /regex/, repeatable)")
	persistent.String("format", "", "output format (table|json)")
	persistent.String("jq", "", "jq expression applied to JSON output (implies --format json)")

	cmd.AddCommand(
		newClassifyCmd(a),
		newSummaryCmd(a),
		newCompareCmd(a),
		newExportCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// setup resolves configuration, flags, output and logging for cmd.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	debug, _ := flags.GetBool("debug")
	a.logger = newLogger(cmd.ErrOrStderr(), debug)

	path, _ := flags.GetString("config")
	cfg, warnings, err := config.Resolve(path)
	if err != nil {
		return err
	}

	values, err := gatherFlags(cmd)
	if err != nil {
		return err
	}
	config.ApplyFlags(cfg, values)

	opts, err := cfg.Options()
	if err != nil {
		return &errors.VVError{Kind: errors.KindConfig, Message: "invalid option", Cause: err}
	}
	a.cfg, a.opts = cfg, opts

	a.jq, _ = flags.GetString("jq")
	if a.jq != "" {
		a.opts.Format = config.FormatJSON
	}

	a.out = output.NewWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), usesColor(opts.Color, cmd.OutOrStdout()))
	quiet, _ := flags.GetBool("quiet")
	verbose, _ := flags.GetBool("verbose")
	a.out.SetQuiet(quiet)
	a.out.SetVerbose(verbose)

	for _, w := range warnings {
		a.out.Warning("%s", w)
	}

	a.logger.Debug("configuration resolved",
		"config", path,
		"mode", opts.Mode,
		"stderr_policy", opts.Classify.Status.StderrPolicy,
		"representative", opts.Classify.Representative,
		"format", a.opts.Format,
	)
	return nil
}
