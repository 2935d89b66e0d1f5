package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "jeek") {
		t.Errorf("GetConfigDir() = %v, should contain 'jeek'", configDir)
	}
}

func TestGetConfigDirHonoursXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux/Unix")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir != filepath.Join(dir, "jeek") {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, filepath.Join(dir, "jeek"))
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if cfg.TodoFile != DefaultTodoFile {
		t.Errorf("TodoFile = %v, want %v", cfg.TodoFile, DefaultTodoFile)
	}
	if cfg.CyberFile != DefaultCyberFile {
		t.Errorf("CyberFile = %v, want %v", cfg.CyberFile, DefaultCyberFile)
	}
	if cfg.Weather.Endpoint == "" {
		t.Error("Weather.Endpoint should have a default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BillDir != DefaultBillDir {
		t.Errorf("BillDir = %v, want %v", cfg.BillDir, DefaultBillDir)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `version: 1
todo_file: notes/todo.md
analyzer:
  command: bill-analyze
  args: ["--all"]
weather:
  location: Shanghai
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TodoFile != "notes/todo.md" {
		t.Errorf("TodoFile = %v, want notes/todo.md", cfg.TodoFile)
	}
	if cfg.CyberFile != DefaultCyberFile {
		t.Errorf("CyberFile = %v, want default %v", cfg.CyberFile, DefaultCyberFile)
	}
	if !cfg.Analyzer.Configured() || cfg.Analyzer.Args[0] != "--all" {
		t.Errorf("Analyzer = %+v, want bill-analyze --all", cfg.Analyzer)
	}
	if cfg.Exporter.Configured() {
		t.Error("Exporter should not be configured")
	}
	if cfg.Weather.Location != "Shanghai" {
		t.Errorf("Weather.Location = %v, want Shanghai", cfg.Weather.Location)
	}
	if cfg.Weather.Timeout != DefaultWeatherTimeout {
		t.Errorf("Weather.Timeout = %v, want %v", cfg.Weather.Timeout, DefaultWeatherTimeout)
	}
}

func TestLoadExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nbill_dir: ~/bills\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BillDir != filepath.Join(home, "bills") {
		t.Errorf("BillDir = %v, want %v", cfg.BillDir, filepath.Join(home, "bills"))
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "version: [1\n"},
		{"wrong version", "version: 2\n"},
		{"negative timeout", "version: 1\ncommands_timeout: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load() should fail for %s", tt.name)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Editor = "code -w"
	cfg.Exporter = Command{Command: "bill-export", Args: []string{"--pdf"}}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be removed after save")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Editor != "code -w" {
		t.Errorf("Editor = %v, want 'code -w'", loaded.Editor)
	}
	if loaded.Exporter.Command != "bill-export" || len(loaded.Exporter.Args) != 1 {
		t.Errorf("Exporter = %+v", loaded.Exporter)
	}
}
