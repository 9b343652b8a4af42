package config

import (
	"fmt"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/classify"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/export"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/filter"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/output"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/status"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/summary"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Options are the typed settings derived from a Config.
type Options struct {
	Mode         summary.Mode
	Classify     classify.Options
	Criteria     filter.Criteria
	Format       string
	Color        output.ColorMode
	ExportFormat export.Format
	ExportOutput string
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	_, err := cfg.Options()
	return err
}

// Options converts the configuration to typed settings. The first invalid
// field is reported as a ValidationError.
func (c *Config) Options() (Options, error) {
	var opts Options
	var err error

	if opts.Mode, err = summary.ParseMode(c.Mode); err != nil {
		return Options{}, &ValidationError{Field: "mode", Message: `must be "compiler" or "full"`}
	}

	policy, err := status.ParseStderrPolicy(c.StderrPolicy)
	if err != nil {
		return Options{}, &ValidationError{Field: "stderr_policy", Message: `must be "ignore" or "strict"`}
	}
	opts.Classify = classify.Options{
		Status:         status.Options{StderrPolicy: policy},
		Representative: c.Representative,
	}

	for i, name := range c.Languages {
		if _, err := classify.ParseLanguage(name); err != nil {
			return Options{}, &ValidationError{Field: fmt.Sprintf("languages[%d]", i), Message: err.Error()}
		}
	}
	if _, err := filter.Compile(c.Include); err != nil {
		return Options{}, &ValidationError{Field: "include", Message: err.Error()}
	}
	if _, err := filter.Compile(c.Exclude); err != nil {
		return Options{}, &ValidationError{Field: "exclude", Message: err.Error()}
	}
	if opts.Criteria, err = filter.NewCriteria(c.Include, c.Exclude, c.Languages); err != nil {
		return Options{}, &ValidationError{Field: "languages", Message: err.Error()}
	}

	switch c.Format {
	case "", FormatTable:
		opts.Format = FormatTable
	case FormatJSON:
		opts.Format = FormatJSON
	default:
		return Options{}, &ValidationError{Field: "format", Message: `must be "table" or "json"`}
	}

	if opts.Color, err = output.ParseColorMode(c.Color); err != nil {
		return Options{}, &ValidationError{Field: "color", Message: `must be "auto", "always", or "never"`}
	}

	opts.ExportFormat = export.FormatCSV
	if c.Export != nil {
		if c.Export.Format != "" {
			if opts.ExportFormat, err = export.ParseFormat(c.Export.Format); err != nil {
				return Options{}, &ValidationError{Field: "export.format", Message: `must be "csv", "xlsx", or "json"`}
			}
		}
		opts.ExportOutput = c.Export.Output
	}

	return opts, nil
}
