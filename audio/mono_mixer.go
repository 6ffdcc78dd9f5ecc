// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// MonoMixer downmixes a multi-channel source to mono by averaging the
// channels of each frame. Mono sources pass through untouched.
type MonoMixer struct {
	src     Source
	scratch []float32
}

func NewMonoMixer(src Source) *MonoMixer {
	return &MonoMixer{
		src:     src,
		scratch: make([]float32, 4096),
	}
}

func (m *MonoMixer) SampleRate() int { return m.src.SampleRate() }
func (m *MonoMixer) Channels() int   { return 1 }
func (m *MonoMixer) BufSize() int    { return m.src.BufSize() }

func (m *MonoMixer) Close() error {
	if err := m.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// ReadSamples fills dst with mono samples; each output sample is the
// mean of one source frame. Returns the number of frames written.
func (m *MonoMixer) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := m.src.Channels()
	if channels == 1 {
		return m.src.ReadSamples(dst)
	}

	needed := len(dst) * channels
	if cap(m.scratch) < needed {
		m.scratch = make([]float32, needed)
	}

	n, err := m.src.ReadSamples(m.scratch[:needed])
	if n == 0 {
		return 0, err
	}
	frames := n / channels
	gain := float32(1.0) / float32(channels)

	switch channels {
	case 2:
		for f := 0; f < frames; f++ {
			dst[f] = (m.scratch[2*f] + m.scratch[2*f+1]) * 0.5
		}
	default:
		for f := 0; f < frames; f++ {
			sum := float32(0)
			base := f * channels
			for c := 0; c < channels; c++ {
				sum += m.scratch[base+c]
			}
			dst[f] = sum * gain
		}
	}

	return frames, err
}
