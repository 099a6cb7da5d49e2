package cliconfig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/devcap/internal/domain"
)

func intPtr(i int) *int { return &i }

func TestApplyFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Driver:          "synthetic",
				Resolution:      "HD1080",
				FrameRate:       intPtr(60),
				DepthMode:       "QUALITY",
				Interval:        "500ms",
				IntervalSeconds: intPtr(4),
				Display:         &trueVal,
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Driver:          "synthetic",
				Resolution:      "HD1080",
				FrameRate:       60,
				DepthMode:       "QUALITY",
				Interval:        500 * time.Millisecond,
				IntervalSeconds: 4,
				Display:         true,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Resolution: "VGA",
				Message:    "file",
			},
			changed:  map[string]bool{"resolution": true},
			initial:  Config{Resolution: "HD2K"},
			expected: Config{Resolution: "HD2K", Message: "file"},
		},
		{
			name:       "zero values leave defaults alone",
			fileConfig: FileConfig{},
			changed:    map[string]bool{},
			initial:    Config{FrameRate: 30, IntervalSeconds: 10},
			expected:   Config{FrameRate: 30, IntervalSeconds: 10},
		},
		{
			name:       "present zero and negative values are applied",
			fileConfig: FileConfig{IntervalSeconds: intPtr(0), FrameRate: intPtr(-5), Count: intPtr(-1)},
			changed:    map[string]bool{},
			initial:    Config{FrameRate: 30, IntervalSeconds: 10},
			expected:   Config{FrameRate: -5, IntervalSeconds: 0, Count: -1},
		},
		{
			name:       "invalid duration",
			fileConfig: FileConfig{WaitStep: "fast"},
			changed:    map[string]bool{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    FileConfig
		wantErr bool
		cfgErr  bool
	}{
		{
			name: "valid config",
			content: `
driver = "heartbeat"
message = "ping"
interval_seconds = 2
wait_step = "50ms"
`,
			want: FileConfig{Driver: "heartbeat", Message: "ping", IntervalSeconds: intPtr(2), WaitStep: "50ms"},
		},
		{
			name:    "malformed toml",
			content: `driver = `,
			wantErr: true,
			cfgErr:  true,
		},
		{
			name:    "type mismatch",
			content: `frame_rate = "fast"`,
			wantErr: true,
			cfgErr:  true,
		},
		{
			name:    "unknown key",
			content: `frame_rat = 30`,
			wantErr: true,
			cfgErr:  true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write %d: %v", i, err)
			}
			got, err := LoadFileConfig(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.cfgErr {
				var ce *domain.ConfigError
				if !errors.As(err, &ce) {
					t.Errorf("error = %T, want *domain.ConfigError", err)
				}
			}
			if !tt.wantErr && got.Driver != tt.want.Driver {
				t.Errorf("Driver = %q, want %q", got.Driver, tt.want.Driver)
			}
			if !tt.wantErr && (got.Message != tt.want.Message || got.IntervalSeconds == nil || *got.IntervalSeconds != *tt.want.IntervalSeconds || got.WaitStep != tt.want.WaitStep) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFileConfig_Missing(t *testing.T) {
	_, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml"))
	var ce *domain.ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("error = %v, want *domain.ConfigError", err)
	}
}

func TestResolve_RejectsNonPositiveFileValues(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		plan      func(*Config) error
		wantField string
	}{
		{
			name:      "zero interval seconds",
			content:   "interval_seconds = 0\n",
			plan:      func(c *Config) error { _, err := c.HeartbeatPlan(); return err },
			wantField: "interval-seconds",
		},
		{
			name:      "negative frame rate",
			content:   "frame_rate = -5\n",
			plan:      func(c *Config) error { _, err := c.CapturePlan(); return err },
			wantField: "frame-rate",
		},
		{
			name:      "negative count",
			content:   "count = -1\n",
			plan:      func(c *Config) error { _, err := c.CapturePlan(); return err },
			wantField: "count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Resolve(DefaultConfig(), path, map[string]bool{})
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			var ce *domain.ConfigError
			if err := tt.plan(&cfg); !errors.As(err, &ce) {
				t.Fatalf("plan error = %v, want *domain.ConfigError", err)
			}
			if ce.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ce.Field, tt.wantField)
			}
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	p := DefaultConfigPath()
	if p == "" {
		t.Skip("no home directory")
	}
	if !strings.HasSuffix(p, filepath.Join(".devcap", "config.toml")) {
		t.Errorf("DefaultConfigPath() = %q", p)
	}
}
