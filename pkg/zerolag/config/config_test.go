package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Use a temp directory that doesn't have a config file
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Mode != DefaultMode {
		t.Errorf("Mode = %q, want %q", cfg.Mode, DefaultMode)
	}

	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}

	if cfg.Collector.TopProcesses != DefaultTopProcesses {
		t.Errorf("Collector.TopProcesses = %d, want %d", cfg.Collector.TopProcesses, DefaultTopProcesses)
	}

	if cfg.Collector.CPUSampleMillis != DefaultCPUSampleMillis {
		t.Errorf("Collector.CPUSampleMillis = %d, want %d", cfg.Collector.CPUSampleMillis, DefaultCPUSampleMillis)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_FromFile(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, ".config", "zerolag")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configContent := `
mode: gaming
output_dir: /tmp/zerolag-reports
collector:
  top_processes: 5
  cpu_sample_ms: 250
logging:
  level: debug
  components:
    collector: warn
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Mode != "gaming" {
		t.Errorf("Mode = %q, want %q", cfg.Mode, "gaming")
	}

	if cfg.OutputDir != "/tmp/zerolag-reports" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "/tmp/zerolag-reports")
	}

	if cfg.Collector.TopProcesses != 5 {
		t.Errorf("Collector.TopProcesses = %d, want %d", cfg.Collector.TopProcesses, 5)
	}

	if cfg.Collector.CPUSampleMillis != 250 {
		t.Errorf("Collector.CPUSampleMillis = %d, want %d", cfg.Collector.CPUSampleMillis, 250)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}

	if cfg.Logging.Components["collector"] != "warn" {
		t.Errorf("Logging.Components[collector] = %q, want %q", cfg.Logging.Components["collector"], "warn")
	}
}

func TestWriteDefault(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	configPath := filepath.Join(tempDir, ".config", "zerolag", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	if len(data) == 0 {
		t.Error("written config is empty")
	}

	// A second call must not overwrite an existing file.
	if err := os.WriteFile(configPath, []byte("mode: gaming\n"), 0o644); err != nil {
		t.Fatalf("failed to overwrite config: %v", err)
	}
	if err := WriteDefault(); err != nil {
		t.Fatalf("WriteDefault() second call error = %v", err)
	}
	data, err = os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to re-read config: %v", err)
	}
	if string(data) != "mode: gaming\n" {
		t.Errorf("WriteDefault() overwrote existing config: %q", string(data))
	}
}

func TestExpandPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	got, err := ExpandPath("~/reports")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	want := filepath.Join(tempDir, "reports")
	if got != want {
		t.Errorf("ExpandPath() = %q, want %q", got, want)
	}

	got, err = ExpandPath("/absolute/path")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if got != "/absolute/path" {
		t.Errorf("ExpandPath() = %q, want unchanged", got)
	}
}
