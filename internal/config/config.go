// Package config loads and validates the batch configuration from a TOML
// file, with defaults matching a plain stereo merge at 44.1 kHz.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Matching modes. Prefix mode pairs "ES-greeting.mp3" with
// "HR-greeting.mp3"; suffix mode pairs "greeting-ES.mp3" with
// "greeting-HR.mp3".
const (
	ModePrefix = "prefix"
	ModeSuffix = "suffix"
)

// Matching selects how left/right source files are paired.
type Matching struct {
	Mode  string `toml:"mode"`
	Left  string `toml:"left"`
	Right string `toml:"right"`
}

// Audio holds the signal-processing knobs of the pipeline.
type Audio struct {
	SampleRate int     `toml:"sample_rate"`
	Speed      float64 `toml:"speed"`
	Bitrate    string  `toml:"bitrate"`
	Format     string  `toml:"format"`
}

// Log holds logger construction options.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the immutable run configuration. It is fully resolved and
// validated before any pair is processed.
type Config struct {
	SourceDir  string `toml:"source_dir"`
	OutputDir  string `toml:"output_dir"`
	ScratchDir string `toml:"scratch_dir"`

	Matching Matching `toml:"matching"`
	Audio    Audio    `toml:"audio"`
	Log      Log      `toml:"log"`
}

// Default returns the built-in configuration: prefix matching, 44.1 kHz,
// no tempo change, 192 kbit/s MP3 output.
func Default() *Config {
	return &Config{
		Matching: Matching{
			Mode: ModePrefix,
		},
		Audio: Audio{
			SampleRate: 44100,
			Speed:      1.0,
			Bitrate:    "192k",
			Format:     "mp3",
		},
		Log: Log{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration before a run. It reports the first
// problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceDir) == "" {
		return errors.New("source_dir is required")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir is required")
	}

	switch c.Matching.Mode {
	case ModePrefix, ModeSuffix:
	default:
		return fmt.Errorf("matching.mode must be %q or %q: %q", ModePrefix, ModeSuffix, c.Matching.Mode)
	}
	if c.Matching.Left == "" || c.Matching.Right == "" {
		return errors.New("matching.left and matching.right are required")
	}
	if c.Matching.Left == c.Matching.Right {
		return errors.New("matching.left and matching.right must differ")
	}

	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive: %d", c.Audio.SampleRate)
	}
	if c.Audio.Speed <= 0 || math.IsNaN(c.Audio.Speed) || math.IsInf(c.Audio.Speed, 0) {
		return fmt.Errorf("audio.speed must be positive and finite: %f", c.Audio.Speed)
	}

	switch c.Audio.Format {
	case "mp3":
		if _, err := c.BitrateKbps(); err != nil {
			return err
		}
	case "wav":
	default:
		return fmt.Errorf("audio.format must be \"mp3\" or \"wav\": %q", c.Audio.Format)
	}

	return nil
}

// BitrateKbps parses the bitrate setting into kbit/s. Accepted forms:
// "192k", "192", "192000".
func (c *Config) BitrateKbps() (int, error) {
	raw := strings.TrimSpace(strings.ToLower(c.Audio.Bitrate))
	raw = strings.TrimSuffix(raw, "k")

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("audio.bitrate %q is not a bitrate", c.Audio.Bitrate)
	}
	if n >= 8000 {
		// Given in bit/s.
		n /= 1000
	}
	if n < 8 || n > 320 {
		return 0, fmt.Errorf("audio.bitrate %q outside the MP3 range (8-320 kbit/s)", c.Audio.Bitrate)
	}
	return n, nil
}
