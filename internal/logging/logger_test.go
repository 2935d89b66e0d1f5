package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	if err := Initialize("", ""); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(-1) {
		t.Error("nop logger should not enable any level")
	}
}

func TestInitializeUnknownLevel(t *testing.T) {
	if err := Initialize("chatty", ""); err == nil {
		t.Error("Initialize() with unknown level should fail")
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "jeek.log")

	if err := Initialize("debug", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer func() { logger = nil }()

	LogExternalCommand("bill-analyze", []string{"--all"}, 2, time.Second, errors.New("exit status 2"))
	LogViewTransition("menu", "todo")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "External command failed") {
		t.Errorf("log should contain command failure, got: %s", content)
	}
	if !strings.Contains(content, "View transition") {
		t.Errorf("log should contain view transition, got: %s", content)
	}
}

func TestEnvVarLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jeek.log")
	t.Setenv(LogLevelEnvVar, "warn")

	if err := Initialize("", path); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer func() { logger = nil }()

	if GetLogger().Core().Enabled(0) {
		t.Error("info should be disabled at warn level")
	}
}
