package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/config"
	"github.com/UD-CRPL/Directive-Based-VV-Generator/internal/errors"
)

// gatherFlags collects the flags that were set explicitly on the command line.
func gatherFlags(cmd *cobra.Command) (config.FlagValues, error) {
	flags := cmd.Flags()
	var values config.FlagValues

	stringFlags := []struct {
		name string
		dst  *config.StringFlag
	}{
		{"mode", &values.Mode},
		{"stderr-policy", &values.StderrPolicy},
		{"format", &values.Format},
		{"color", &values.Color},
	}
	for _, f := range stringFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return values, flagError(f.name, err)
		}
		*f.dst = config.StringFlag{Value: v, Set: true}
	}

	sliceFlags := []struct {
		name string
		dst  *config.SliceFlag
	}{
		{"language", &values.Languages},
		{"include", &values.Include},
		{"exclude", &values.Exclude},
	}
	for _, f := range sliceFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetStringArray(f.name)
		if err != nil {
			return values, flagError(f.name, err)
		}
		*f.dst = config.SliceFlag{Values: append([]string{}, v...)}
	}

	if flags.Changed("representative") {
		v, err := flags.GetBool("representative")
		if err != nil {
			return values, flagError("representative", err)
		}
		values.Representative = config.BoolFlag{Value: v, Set: true}
	}

	return values, nil
}

func flagError(name string, err error) error {
	return &errors.VVError{Kind: errors.KindConfig, Message: fmt.Sprintf("parse --%s", name), Cause: err}
}
