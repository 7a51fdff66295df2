package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/initializ/enroll/internal/config"
)

func TestRootCommands(t *testing.T) {
	want := map[string]bool{"register": false, "validate": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetVersionInfo(t *testing.T) {
	oldVersion := appVersion
	defer func() { appVersion = oldVersion }()

	SetVersionInfo("1.2.3", "abc123")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--version"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if got := out.String(); got != "enroll 1.2.3 (commit: abc123)\n" {
		t.Errorf("version output = %q", got)
	}
	if appVersion != "1.2.3" {
		t.Errorf("appVersion = %q", appVersion)
	}
}

func TestNewLogger(t *testing.T) {
	resetFlags(t)
	_, errOut := captureOutput(t)
	cfg := config.Default()

	l, closer, err := newLogger(cfg, false)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	l.Info("hidden", nil)
	_ = closer.Close()
	if errOut.Len() != 0 {
		t.Errorf("logs leaked to stderr: %q", errOut.String())
	}

	verbose = true
	l, closer, err = newLogger(cfg, true)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	l.Debug("shown", nil)
	_ = closer.Close()
	if !strings.Contains(errOut.String(), "shown") {
		t.Errorf("debug log missing from stderr: %q", errOut.String())
	}

	logFile = filepath.Join(t.TempDir(), "enroll.log")
	l, closer, err = newLogger(cfg, true)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	l.Info("to file", nil)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}
