package config

// Default configuration values.
const (
	DefaultMode         = "compiler"
	DefaultStderrPolicy = "ignore"
	DefaultFormat       = "table"
	DefaultColor        = "auto"
	DefaultExportFormat = "csv"
)

// Output formats for terminal commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Mode == "" {
		cfg.Mode = DefaultMode
	}
	if cfg.StderrPolicy == "" {
		cfg.StderrPolicy = DefaultStderrPolicy
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Color == "" {
		cfg.Color = DefaultColor
	}
	applyExportDefaults(cfg)
}

func applyExportDefaults(cfg *Config) {
	if cfg.Export == nil {
		cfg.Export = &ExportConfig{}
	}
	if cfg.Export.Format == "" {
		cfg.Export.Format = DefaultExportFormat
	}
}
