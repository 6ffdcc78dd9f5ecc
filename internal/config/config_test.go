package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() *Config {
	cfg := Default()
	cfg.SourceDir = "/in"
	cfg.OutputDir = "/out"
	cfg.Matching.Left = "ES-"
	cfg.Matching.Right = "HR-"
	return cfg
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	if cfg.Matching.Mode != ModePrefix {
		t.Errorf("Matching.Mode = %q, want %q", cfg.Matching.Mode, ModePrefix)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Audio.SampleRate = %d, want 44100", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Speed != 1.0 {
		t.Errorf("Audio.Speed = %f, want 1.0", cfg.Audio.Speed)
	}
	if cfg.Audio.Bitrate != "192k" {
		t.Errorf("Audio.Bitrate = %q, want %q", cfg.Audio.Bitrate, "192k")
	}
	if cfg.Audio.Format != "mp3" {
		t.Errorf("Audio.Format = %q, want %q", cfg.Audio.Format, "mp3")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "duomux.toml")
	doc := `
source_dir = "/voices/in"
output_dir = "/voices/out"

[matching]
mode = "suffix"
left = "-ES"
right = "-HR"

[audio]
sample_rate = 22050
speed = 0.85
bitrate = "128k"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SourceDir != "/voices/in" {
		t.Errorf("SourceDir = %q, want %q", cfg.SourceDir, "/voices/in")
	}
	if cfg.Matching.Mode != ModeSuffix {
		t.Errorf("Matching.Mode = %q, want %q", cfg.Matching.Mode, ModeSuffix)
	}
	if cfg.Audio.SampleRate != 22050 {
		t.Errorf("Audio.SampleRate = %d, want 22050", cfg.Audio.SampleRate)
	}
	if cfg.Audio.Speed != 0.85 {
		t.Errorf("Audio.Speed = %f, want 0.85", cfg.Audio.Speed)
	}
	// Unset keys keep their defaults.
	if cfg.Audio.Format != "mp3" {
		t.Errorf("Audio.Format = %q, want default %q", cfg.Audio.Format, "mp3")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"valid suffix", func(c *Config) {
			c.Matching.Mode = ModeSuffix
			c.Matching.Left, c.Matching.Right = "-ES", "-HR"
		}, ""},
		{"valid wav", func(c *Config) { c.Audio.Format = "wav" }, ""},
		{"missing source", func(c *Config) { c.SourceDir = " " }, "source_dir"},
		{"missing output", func(c *Config) { c.OutputDir = "" }, "output_dir"},
		{"bad mode", func(c *Config) { c.Matching.Mode = "glob" }, "matching.mode"},
		{"missing labels", func(c *Config) { c.Matching.Left = "" }, "matching.left"},
		{"equal labels", func(c *Config) { c.Matching.Right = "ES-" }, "must differ"},
		{"zero rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample_rate"},
		{"negative speed", func(c *Config) { c.Audio.Speed = -1 }, "speed"},
		{"bad format", func(c *Config) { c.Audio.Format = "flac" }, "audio.format"},
		{"bad bitrate", func(c *Config) { c.Audio.Bitrate = "lots" }, "bitrate"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestBitrateKbps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"192k", 192, false},
		{"192K", 192, false},
		{"192", 192, false},
		{"192000", 192, false},
		{" 64k ", 64, false},
		{"8", 8, false},
		{"320", 320, false},
		{"321", 0, true},
		{"4", 0, true},
		{"k", 0, true},
		{"", 0, true},
		{"fast", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.Audio.Bitrate = tt.in

			got, err := cfg.BitrateKbps()
			if tt.wantErr {
				if err == nil {
					t.Errorf("BitrateKbps(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("BitrateKbps(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("BitrateKbps(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
