// Package config handles smftool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Split   SplitConfig   `yaml:"split"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// SplitConfig holds POD extraction settings.
type SplitConfig struct {
	OutputDir string `yaml:"output_dir"` // where extracted SMF files land
}

// ExportConfig holds OBJ export settings.
type ExportConfig struct {
	OutputDir string `yaml:"output_dir"` // where exported OBJ files land
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Split: SplitConfig{
			OutputDir: "extracted",
		},
		Export: ExportConfig{
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
