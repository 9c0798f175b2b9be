package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-frame/internal/view"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    func(Config) Config
		wantErr string
	}{
		"empty keeps defaults": {
			input: "",
			want:  func(c Config) Config { return c },
		},
		"overrides": {
			input: `
width = 120.0
scale = 0.5
border = "double"
color = false

[colors]
title = "#ff0000"
`,
			want: func(c Config) Config {
				c.Width = 120
				c.Scale = 0.5
				c.Border = "double"
				c.Color = false
				c.Colors.Title = "#ff0000"
				return c
			},
		},
		"unknown key": {
			input:   "colour = true",
			wantErr: "unknown key",
		},
		"bad scale": {
			input:   "scale = 0.0",
			wantErr: "invalid scale",
		},
		"bad border": {
			input:   `border = "dotted"`,
			wantErr: "unknown border",
		},
		"bad toml": {
			input:   "width = ",
			wantErr: "parse config",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(tc.input))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if want := tc.want(Default()); got != want {
				t.Errorf("Parse() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("height = 40.0\nborder = \"thick\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Height != 40 || cfg.BorderStyle() != view.BorderThick {
		t.Errorf("Load() = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("Load(missing) error = nil")
	}
	cfg, err = LoadOrDefault(filepath.Join(dir, "missing.toml"))
	if err != nil || cfg != Default() {
		t.Errorf("LoadOrDefault(missing) = %+v, %v; want defaults", cfg, err)
	}
}
