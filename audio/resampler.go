// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"duomux/utils"
)

// Resampler converts src to a target sample rate using Catmull-Rom cubic
// interpolation over a four-frame sliding window. Channel count is
// preserved. A one-pole low-pass is applied when downsampling to tame
// aliasing.
type Resampler struct {
	src      Source
	srcRate  float64
	dstRate  float64
	step     float64 // source frames consumed per output frame
	channels int

	// Sliding window of four frames: win[0]=t-1, win[1]=t0, win[2]=t+1,
	// win[3]=t+2. Interpolation happens between win[1] and win[2].
	win    [4][]float32
	filled [4]bool
	primed bool

	pos    float64 // fractional position inside [win[1], win[2])
	srcBuf []float32
	eof    bool

	lpState []float32
	lpAlpha float32
	useLP   bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()
	step := float64(src.SampleRate()) / float64(dstRate)

	r := &Resampler{
		src:      src,
		srcRate:  float64(src.SampleRate()),
		dstRate:  float64(dstRate),
		step:     step,
		channels: channels,
		srcBuf:   make([]float32, 4096),
		useLP:    step > 1.0,
		lpAlpha:  0.5,
		lpState:  make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}
	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// prime fills the initial four-frame window. Short streams duplicate the
// last valid frame into the remaining slots.
func (r *Resampler) prime() error {
	for i := 0; i < 4; i++ {
		n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
		if n > 0 {
			copy(r.win[i], r.srcBuf[:n])
			r.filled[i] = true
			if i == 0 && r.useLP {
				copy(r.lpState, r.srcBuf[:n])
			}
		}
		if err == io.EOF {
			r.eof = true
			if i == 0 {
				return io.EOF
			}
			for j := i; j < 4; j++ {
				copy(r.win[j], r.win[i-1])
				r.filled[j] = true
			}
			break
		} else if err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	r.primed = true
	return nil
}

// advance shifts the window one source frame forward.
func (r *Resampler) advance() error {
	if r.eof {
		return io.EOF
	}

	copy(r.win[0], r.win[1])
	copy(r.win[1], r.win[2])
	copy(r.win[2], r.win[3])
	r.filled[0], r.filled[1], r.filled[2] = r.filled[1], r.filled[2], r.filled[3]

	n, err := r.src.ReadSamples(r.srcBuf[:r.channels])
	if n > 0 {
		copy(r.win[3], r.srcBuf[:n])
		r.filled[3] = true

		if r.useLP {
			for c := 0; c < r.channels; c++ {
				r.win[3][c] = r.lpAlpha*r.win[3][c] + (1-r.lpAlpha)*r.lpState[c]
				r.lpState[c] = r.win[3][c]
			}
		}
	} else {
		r.filled[3] = false
	}

	if err == io.EOF {
		r.eof = true
		if !r.filled[3] {
			return io.EOF
		}
	} else if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces dst samples at the target rate. dst length must be
// a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	written := 0
	framesWanted := len(dst) / r.channels

	for written < framesWanted {
		for r.pos >= 1.0 {
			r.pos -= 1.0
			if err := r.advance(); err != nil {
				if err == io.EOF {
					if written == 0 {
						return 0, io.EOF
					}
					return written * r.channels, io.EOF
				}
				return written * r.channels, err
			}
		}

		if !r.filled[1] || !r.filled[2] {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		frac := float32(r.pos)
		for c := 0; c < r.channels; c++ {
			y0 := r.win[1][c]
			if r.filled[0] {
				y0 = r.win[0][c]
			}
			y3 := r.win[2][c]
			if r.filled[3] {
				y3 = r.win[3][c]
			}
			dst[written*r.channels+c] = utils.CubicInterpolate(y0, r.win[1][c], r.win[2][c], y3, frac)
		}

		written++
		r.pos += r.step
	}

	return written * r.channels, nil
}
