package config

// FlagValues captures CLI flag state with knowledge of whether each flag was set explicitly.
type FlagValues struct {
	Mode           StringFlag
	StderrPolicy   StringFlag
	Representative BoolFlag
	Languages      SliceFlag
	Include        SliceFlag
	Exclude        SliceFlag
	Format         StringFlag
	Color          StringFlag
}

// StringFlag represents a string flag and whether it was set.
type StringFlag struct {
	Value string
	Set   bool
}

// SliceFlag represents a slice flag and the values it captured.
type SliceFlag struct {
	Values []string
}

// BoolFlag represents a bool flag and whether it was set.
type BoolFlag struct {
	Value bool
	Set   bool
}

// ApplyFlags overrides cfg with the flags that were set explicitly. Slice
// flags replace the file values when they captured anything.
func ApplyFlags(cfg *Config, flags FlagValues) {
	if flags.Mode.Set {
		cfg.Mode = flags.Mode.Value
	}
	if flags.StderrPolicy.Set {
		cfg.StderrPolicy = flags.StderrPolicy.Value
	}
	if flags.Representative.Set {
		cfg.Representative = flags.Representative.Value
	}
	if len(flags.Languages.Values) > 0 {
		cfg.Languages = append([]string{}, flags.Languages.Values...)
	}
	if len(flags.Include.Values) > 0 {
		cfg.Include = append([]string{}, flags.Include.Values...)
	}
	if len(flags.Exclude.Values) > 0 {
		cfg.Exclude = append([]string{}, flags.Exclude.Values...)
	}
	if flags.Format.Set {
		cfg.Format = flags.Format.Value
	}
	if flags.Color.Set {
		cfg.Color = flags.Color.Value
	}
}
