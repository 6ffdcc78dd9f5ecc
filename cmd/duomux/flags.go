package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"duomux/internal/config"
)

// overrides holds flag values layered over the config file. Only flags
// the user actually set replace file values.
type overrides struct {
	source     string
	output     string
	scratch    string
	mode       string
	left       string
	right      string
	speed      float64
	sampleRate int
	bitrate    string
	format     string
	logLevel   string
}

func (o *overrides) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&o.source, "source", "", "Source folder with the mono recordings")
	fl.StringVar(&o.output, "output", "", "Output folder for the stereo files")
	fl.StringVar(&o.scratch, "scratch-dir", "", "Scratch folder for temporary artifacts (default: system temp)")
	fl.StringVar(&o.mode, "mode", "", `Matching mode: "prefix" or "suffix"`)
	fl.StringVar(&o.left, "left", "", "Left-channel prefix or suffix (e.g. \"ES-\")")
	fl.StringVar(&o.right, "right", "", "Right-channel prefix or suffix (e.g. \"HR-\")")
	fl.Float64Var(&o.speed, "speed", 1.0, "Playback speed factor, pitch preserved")
	fl.IntVar(&o.sampleRate, "sample-rate", 44100, "Target sample rate in Hz")
	fl.StringVar(&o.bitrate, "bitrate", "192k", "MP3 export bitrate")
	fl.StringVar(&o.format, "format", "", `Output container: "mp3" or "wav"`)
	fl.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// resolveConfig loads the config file (or defaults) and applies the
// flags the user set, then validates the result.
func resolveConfig(configPath string, o *overrides, fl *pflag.FlagSet) (*config.Config, error) {
	var cfg *config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if fl.Changed("source") {
		cfg.SourceDir = o.source
	}
	if fl.Changed("output") {
		cfg.OutputDir = o.output
	}
	if fl.Changed("scratch-dir") {
		cfg.ScratchDir = o.scratch
	}
	if fl.Changed("mode") {
		cfg.Matching.Mode = o.mode
	}
	if fl.Changed("left") {
		cfg.Matching.Left = o.left
	}
	if fl.Changed("right") {
		cfg.Matching.Right = o.right
	}
	if fl.Changed("speed") {
		cfg.Audio.Speed = o.speed
	}
	if fl.Changed("sample-rate") {
		cfg.Audio.SampleRate = o.sampleRate
	}
	if fl.Changed("bitrate") {
		cfg.Audio.Bitrate = o.bitrate
	}
	if fl.Changed("format") {
		cfg.Audio.Format = o.format
	}
	if fl.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
