package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "full",
			yaml: "window:\n  width: 800\n  height: 600\ndots:\n  max: 10\n  speed: 1.5\n  size: 4\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
					t.Fatalf("unexpected window: %+v", cfg.Window)
				}
				if cfg.Dots.Max != 10 || cfg.Dots.Speed != 1.5 {
					t.Fatalf("unexpected dots: %+v", cfg.Dots)
				}
			},
		},
		{
			name: "partial_keeps_defaults",
			yaml: "dots:\n  max: 3\n",
			check: func(t *testing.T, cfg *Config) {
				def := DefaultConfig()
				if cfg.Window != def.Window {
					t.Fatalf("unset window should keep defaults, got %+v", cfg.Window)
				}
				if cfg.Dots.Max != 3 || cfg.Dots.Speed != def.Dots.Speed {
					t.Fatalf("unexpected dots: %+v", cfg.Dots)
				}
			},
		},
		{
			name:    "invalid_window",
			yaml:    "window:\n  width: -1\n",
			wantErr: true,
		},
		{
			name:    "invalid_yaml",
			yaml:    "window: [",
			wantErr: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, c.yaml))
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got config %+v", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			c.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
