package pipeline

import (
	"duomux/audio"
	wavfmt "duomux/formats/wav"
	"duomux/stretch"
)

// applyTempo rewrites one normalized stream at the configured speed
// factor, preserving pitch, and persists the result as a new scratch
// artifact. Left and right run through here independently; channel
// synchrony is restored later by reconciliation, not by the stretcher.
func (p *Pipeline) applyTempo(srcPath string, sc *scratch, tag string) (string, error) {
	buf, err := p.loadMono(srcPath)
	if err != nil {
		return "", err
	}

	str, err := stretch.New(buf.Rate, p.cfg.Audio.Speed)
	if err != nil {
		return "", err
	}
	data, err := str.Process(buf.Data)
	if err != nil {
		return "", err
	}

	out := &audio.Buffer{Data: data, Rate: buf.Rate, Channels: 1}
	dst := sc.path("tempo-" + tag)
	if err := wavfmt.WriteFile(dst, out); err != nil {
		return "", err
	}
	return dst, nil
}
