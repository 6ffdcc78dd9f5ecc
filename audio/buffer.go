// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds a fully decoded PCM stream in memory: interleaved float32
// samples in [-1, 1] at a fixed sample rate and channel count.
type Buffer struct {
	Data     []float32
	Rate     int
	Channels int
}

// Frames returns the frame count. A frame holds one sample per channel.
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Duration returns the playback length in seconds.
func (b *Buffer) Duration() float64 {
	if b.Rate == 0 {
		return 0
	}
	return float64(b.Frames()) / float64(b.Rate)
}

// AppendSilence grows the buffer by n frames of zero samples.
func (b *Buffer) AppendSilence(n int) {
	if n <= 0 {
		return
	}
	b.Data = append(b.Data, make([]float32, n*b.Channels)...)
}

// TrimFrames shortens the buffer to at most n frames. A no-op when the
// buffer is already that short.
func (b *Buffer) TrimFrames(n int) {
	if n < 0 {
		n = 0
	}
	if b.Frames() > n {
		b.Data = b.Data[:n*b.Channels]
	}
}

// Collect drains src into a Buffer, reading bufSize samples at a time.
// The source is not closed.
func Collect(src Source, bufSize int) (*Buffer, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Round the read buffer down to whole frames.
	channels := src.Channels()
	if rem := bufSize % channels; rem != 0 {
		bufSize -= rem
	}
	if bufSize < channels {
		bufSize = channels
	}

	out := &Buffer{
		Rate:     src.SampleRate(),
		Channels: channels,
	}
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Data = append(out.Data, buf[:n]...)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collect samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(out.Data)%channels != 0 {
		return nil, ErrMalformedBuffer
	}
	return out, nil
}
