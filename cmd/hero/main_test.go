package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/naveen-enterprises/hero"
)

// effectiveConfig runs the config subcommand with args and decodes its output.
func effectiveConfig(t *testing.T, args ...string) (*hero.Config, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"config"}, args...))
	if err := cmd.Execute(); err != nil {
		return nil, err
	}
	cfg := &hero.Config{}
	if err := yaml.Unmarshal(out.Bytes(), cfg); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	return cfg, nil
}

func writeConfig(t *testing.T, mutate func(*hero.Config)) string {
	t.Helper()
	cfg := hero.DefaultConfig()
	mutate(cfg)
	path := filepath.Join(t.TempDir(), "hero.yaml")
	if err := hero.SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	return path
}

func TestLoadConfigFlags(t *testing.T) {
	file := writeConfig(t, func(c *hero.Config) {
		c.Width = 900
		c.Theme = hero.ThemeLight
		c.Particles.MaxSpeed = 0.3
		c.Particles.Seed = 11
	})

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *hero.Config)
	}{
		{"defaults", nil, func(t *testing.T, cfg *hero.Config) {
			def := hero.DefaultConfig()
			if cfg.Width != def.Width || cfg.Height != def.Height || cfg.TPS != def.TPS || cfg.Theme != def.Theme {
				t.Errorf("got %dx%d tps %d theme %q, want the defaults", cfg.Width, cfg.Height, cfg.TPS, cfg.Theme)
			}
			if cfg.Particles != def.Particles {
				t.Errorf("Particles = %+v, want %+v", cfg.Particles, def.Particles)
			}
		}},
		{"explicit flags", []string{"--theme", "light", "--width", "640", "--height", "360", "--fps", "30", "--show-fps", "--debug"}, func(t *testing.T, cfg *hero.Config) {
			if cfg.Theme != hero.ThemeLight || cfg.Width != 640 || cfg.Height != 360 || cfg.TPS != 30 {
				t.Errorf("got %dx%d tps %d theme %q", cfg.Width, cfg.Height, cfg.TPS, cfg.Theme)
			}
			if !cfg.ShowFPS || !cfg.Debug {
				t.Errorf("ShowFPS %v Debug %v, want both set", cfg.ShowFPS, cfg.Debug)
			}
		}},
		{"preset keeps seed flag", []string{"--seed", "7", "--preset", "sparse"}, func(t *testing.T, cfg *hero.Config) {
			if cfg.Particles.PixelsPerParticle != 40 || cfg.Particles.BaseCount != 20 {
				t.Errorf("Particles = %+v, want the sparse preset", cfg.Particles)
			}
			if cfg.Particles.Seed != 7 {
				t.Errorf("Seed = %d, want 7", cfg.Particles.Seed)
			}
		}},
		{"file values", []string{"--config", file}, func(t *testing.T, cfg *hero.Config) {
			if cfg.Width != 900 || cfg.Theme != hero.ThemeLight || cfg.Particles.MaxSpeed != 0.3 {
				t.Errorf("got width %d theme %q speed %v, want the file values", cfg.Width, cfg.Theme, cfg.Particles.MaxSpeed)
			}
		}},
		{"flags override file", []string{"--config", file, "--width", "1000", "--theme", "dark"}, func(t *testing.T, cfg *hero.Config) {
			if cfg.Width != 1000 || cfg.Theme != hero.ThemeDark {
				t.Errorf("got width %d theme %q, want 1000 dark", cfg.Width, cfg.Theme)
			}
			if cfg.Particles.Seed != 11 {
				t.Errorf("Seed = %d, want 11 from the file", cfg.Particles.Seed)
			}
		}},
		{"preset overrides file particles", []string{"--config", file, "--preset", "dense"}, func(t *testing.T, cfg *hero.Config) {
			if cfg.Particles.MaxSpeed != 0.4 || cfg.Particles.BaseCount != 100 {
				t.Errorf("Particles = %+v, want the dense preset", cfg.Particles)
			}
			if cfg.Particles.Seed != 11 {
				t.Errorf("Seed = %d, want 11 from the file", cfg.Particles.Seed)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := effectiveConfig(t, tt.args...)
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown theme", []string{"--theme", "sepia"}, "theme"},
		{"unknown preset", []string{"--preset", "nope"}, "unknown preset"},
		{"explicit zero width", []string{"--width", "0"}, "window size"},
		{"explicit zero fps", []string{"--fps", "0"}, "tps"},
		{"missing file", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, "load config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := effectiveConfig(t, tt.args...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestTraceCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"trace", "--eps", "0.01"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(out.String(), "after 21 frames") {
		t.Errorf("output should report 21 frames:\n%s", out.String())
	}
}
