package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bft-labs/devcap/internal/domain"
)

// execute runs the root command against a config path that does not exist,
// so only flags and defaults apply.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithConfig(t, filepath.Join(t.TempDir(), "config.toml"), args...)
}

func executeWithConfig(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", path, "--log-format", "json"))
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCapture_Completes(t *testing.T) {
	out, err := execute(t, "capture", "--settings-path", "", "--frame-rate", "1000", "--count", "3")
	if err != nil {
		t.Fatalf("capture: %v\n%s", err, out)
	}
	if got := strings.Count(out, `"message":"unit"`); got != 3 {
		t.Errorf("unit lines = %d, want 3\n%s", got, out)
	}
	if !strings.Contains(out, `"reason":"Completed"`) {
		t.Errorf("missing final status line\n%s", out)
	}
}

func TestHeartbeat_Completes(t *testing.T) {
	out, err := execute(t, "heartbeat", "--message", "ping", "--count", "1")
	if err != nil {
		t.Fatalf("heartbeat: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"text":"ping"`) {
		t.Errorf("heartbeat message not printed\n%s", out)
	}
}

func TestCapture_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown resolution", []string{"capture", "--resolution", "8K"}, domain.CodeConfigError},
		{"malformed flag", []string{"capture", "--frame-rate", "fast"}, domain.CodeConfigError},
		{"zero heartbeat interval", []string{"heartbeat", "--interval-seconds", "0"}, domain.CodeConfigError},
		{"unreachable settings", []string{"capture", "--settings-path", "/nonexistent/devcap/settings"}, domain.CodeOpenFailed},
		{"probe unreachable settings", []string{"probe", "--settings-path", "/nonexistent/devcap/settings"}, domain.CodeOpenFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if got := exitCode(err); got != tt.want {
				t.Errorf("exit code = %d, want %d (err %v)\n%s", got, tt.want, err, out)
			}
		})
	}
}

func TestConfigFile_ExitCodes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		args    []string
	}{
		{"type mismatch", `frame_rate = "fast"`, []string{"capture"}},
		{"syntax error", `frame_rate = = 3`, []string{"capture"}},
		{"unknown key", `frame_rat = 30`, []string{"capture"}},
		{"zero heartbeat interval", "interval_seconds = 0\n", []string{"heartbeat"}},
		{"negative frame rate", "frame_rate = -5\n", []string{"capture", "--settings-path", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeWithConfig(t, writeConfig(t, tt.content), tt.args...)
			if got := exitCode(err); got != domain.CodeConfigError {
				t.Errorf("exit code = %d, want %d (err %v)\n%s", got, domain.CodeConfigError, err, out)
			}
		})
	}
}

func TestCapture_WatchWithoutConfigFile(t *testing.T) {
	out, err := execute(t, "capture", "--settings-path", "", "--frame-rate", "1000", "--count", "1", "--watch-config")
	if err != nil {
		t.Fatalf("capture: %v\n%s", err, out)
	}
	if !strings.Contains(out, "config file not found, not watching") {
		t.Errorf("missing watcher warning\n%s", out)
	}
}

func TestProbe_ReportsDevice(t *testing.T) {
	out, err := execute(t, "probe", "--settings-path", "")
	if err != nil {
		t.Fatalf("probe: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"model":"Synthetic"`) {
		t.Errorf("probe output missing model\n%s", out)
	}
}
