package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"duomux/audio"
	"duomux/formats"
	wavfmt "duomux/formats/wav"
)

// normalize decodes one input file, coerces it to mono at the target
// sample rate, and persists the result as a scratch WAV. It returns the
// scratch path; ownership stays with the pair's scratch scope.
func (p *Pipeline) normalize(path string, sc *scratch, tag string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	dec, err := formats.ForPath(p.reg, path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}
	src, err := dec.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}
	defer src.Close()

	// Resampling is skipped at matching rates so frame counts stay
	// exact; interpolation only rounds when rates actually differ.
	var stream audio.Source = src
	if stream.SampleRate() != p.cfg.Audio.SampleRate {
		stream = audio.NewResampler(stream, p.cfg.Audio.SampleRate)
	}
	stream = audio.NewMonoMixer(stream)

	buf, err := audio.Collect(stream, stream.BufSize())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, filepath.Base(path), err)
	}

	dst := sc.path("norm-" + tag)
	if err := wavfmt.WriteFile(dst, buf); err != nil {
		return "", err
	}
	return dst, nil
}

// loadMono reads a scratch WAV back into memory. Frame counts are always
// recomputed from what is actually on disk, never carried over from a
// previous stage.
func (p *Pipeline) loadMono(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scratch: %w", err)
	}
	defer f.Close()

	src, err := wavfmt.Decoder{}.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading scratch %s: %w", filepath.Base(path), err)
	}
	defer src.Close()

	return audio.Collect(src, src.BufSize())
}
