package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Split.OutputDir != "extracted" {
		t.Errorf("expected split output dir 'extracted', got %s", cfg.Split.OutputDir)
	}
	if cfg.Export.OutputDir != "." {
		t.Errorf("expected export output dir '.', got %s", cfg.Export.OutputDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
split:
  output_dir: "models"

export:
  output_dir: "obj"

logging:
  level: "debug"
  log_file: "smftool.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Split.OutputDir != "models" {
		t.Errorf("expected split output dir 'models', got %s", cfg.Split.OutputDir)
	}
	if cfg.Export.OutputDir != "obj" {
		t.Errorf("expected export output dir 'obj', got %s", cfg.Export.OutputDir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "smftool.log" {
		t.Errorf("expected log file 'smftool.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only logging overridden; the rest keeps defaults.
	yamlContent := "logging:\n  level: \"warn\"\n"
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Split.OutputDir != "extracted" {
		t.Errorf("expected default split output dir, got %s", cfg.Split.OutputDir)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
split:
  output_dir: [not, a, string
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "out flag overrides both output dirs",
			setup: func() {
				*flagOut = "work"
			},
			verify: func(cfg *Config) {
				if cfg.Split.OutputDir != "work" {
					t.Errorf("expected split output dir 'work', got %s", cfg.Split.OutputDir)
				}
				if cfg.Export.OutputDir != "work" {
					t.Errorf("expected export output dir 'work', got %s", cfg.Export.OutputDir)
				}
			},
			teardown: func() {
				*flagOut = ""
			},
		},
		{
			name: "log-file flag",
			setup: func() {
				*flagLogFile = "run.log"
			},
			verify: func(cfg *Config) {
				if cfg.Logging.LogFile != "run.log" {
					t.Errorf("expected log file 'run.log', got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() {
				*flagLogFile = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
split:
  output_dir: "from-file"
logging:
  level: "warn"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagDebug = true
	defer func() {
		*flagConfig = ""
		*flagDebug = false
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Level comes from the flag, not the file.
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug' from flag, got %s", cfg.Logging.Level)
	}
	// Output dir comes from the file since no flag override.
	if cfg.Split.OutputDir != "from-file" {
		t.Errorf("expected split output dir 'from-file', got %s", cfg.Split.OutputDir)
	}
}

func TestSave(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("Save targets a fixed per-user directory on this platform")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Logging.Level = "debug"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	path := filepath.Join(ConfigDir(), "config.yaml")
	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected round-tripped log level 'debug', got %s", loaded.Logging.Level)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Split.OutputDir = "saved"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Split.OutputDir != "saved" {
		t.Errorf("expected round-tripped output dir 'saved', got %s", loaded.Split.OutputDir)
	}
}
