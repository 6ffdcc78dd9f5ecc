// SPDX-License-Identifier: EPL-2.0

// Package formats wires the container decoders into an audio.Registry
// keyed by file extension.
package formats

import (
	"fmt"
	"path/filepath"

	"duomux/audio"
	"duomux/formats/aiff"
	"duomux/formats/mp3"
	"duomux/formats/vorbis"
	"duomux/formats/wav"
)

// DefaultRegistry returns a registry with every decoder this module
// ships: WAV, MP3, Ogg Vorbis and AIFF.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register(".wav", wav.Decoder{})
	reg.Register(".mp3", mp3.Decoder{})
	reg.Register(".ogg", vorbis.Decoder{})
	reg.Register(".oga", vorbis.Decoder{})
	reg.Register(".aiff", aiff.Decoder{})
	reg.Register(".aif", aiff.Decoder{})
	return reg
}

// ForPath picks the decoder for a file path by its extension.
func ForPath(reg *audio.Registry, path string) (audio.Decoder, error) {
	ext := filepath.Ext(path)
	dec, ok := reg.Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("no decoder for %q (known: %v)", ext, reg.Extensions())
	}
	return dec, nil
}
