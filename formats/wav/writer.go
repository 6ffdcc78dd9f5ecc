// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"duomux/audio"
	"duomux/utils"
)

// Encode writes buf as a PCM 16-bit WAV file. Samples outside [-1, 1]
// are clamped during quantization.
func Encode(f *os.File, buf *audio.Buffer) error {
	enc := gowav.NewEncoder(f, buf.Rate, 16, buf.Channels, 1)

	data := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = int(utils.Float32ToInt16(v))
	}

	ib := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Channels,
			SampleRate:  buf.Rate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(ib); err != nil {
		enc.Close()
		return fmt.Errorf("writing wav samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

// WriteFile persists buf to path as PCM 16-bit WAV.
func WriteFile(path string, buf *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Encode(f, buf); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
