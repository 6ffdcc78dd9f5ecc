// SPDX-License-Identifier: EPL-2.0

package stretch

import (
	"fmt"
	"math"
)

const (
	// Narration-tuned window defaults. A shorter sequence window than
	// music presets keeps transients in spoken material crisp.
	defaultSequenceMs = 40.0
	defaultOverlapMs  = 8.0
	defaultSearchMs   = 15.0

	identityEps = 1e-9
	tiny        = 1e-12
)

// Stretcher changes the playback duration of a mono stream while
// preserving pitch, using WSOLA: overlapping sequence windows are copied
// from the input at a rate set by the speed factor, each window aligned
// against the previous output by normalized cross-correlation and blended
// with a raised-cosine crossfade.
//
// A speed factor of 2.0 halves the duration, 0.5 doubles it. Frequency
// content is unchanged either way.
type Stretcher struct {
	sampleRate int
	speed      float64

	sequenceLen int
	overlapLen  int
	searchLen   int
	stepOut     int

	fadeIn  []float32
	fadeOut []float32
}

// New builds a stretcher for mono audio at sampleRate. speed must be
// positive and finite.
func New(sampleRate int, speed float64) (*Stretcher, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("stretch: sample rate must be positive: %d", sampleRate)
	}
	if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
		return nil, fmt.Errorf("%w: %f", ErrBadSpeed, speed)
	}

	s := &Stretcher{
		sampleRate: sampleRate,
		speed:      speed,
	}
	s.rebuild()
	return s, nil
}

// Speed returns the configured speed factor.
func (s *Stretcher) Speed() float64 { return s.speed }

// SampleRate returns the sample rate the windows were sized for.
func (s *Stretcher) SampleRate() int { return s.sampleRate }

func (s *Stretcher) rebuild() {
	rate := float64(s.sampleRate)

	s.sequenceLen = int(math.Round(defaultSequenceMs * 0.001 * rate))
	if s.sequenceLen < 32 {
		s.sequenceLen = 32
	}
	s.overlapLen = int(math.Round(defaultOverlapMs * 0.001 * rate))
	if s.overlapLen < 8 {
		s.overlapLen = 8
	}
	if s.overlapLen >= s.sequenceLen {
		s.overlapLen = s.sequenceLen / 4
	}
	s.stepOut = s.sequenceLen - s.overlapLen
	s.searchLen = int(math.Round(defaultSearchMs * 0.001 * rate))
	if s.searchLen < 1 {
		s.searchLen = 1
	}

	s.fadeIn = make([]float32, s.overlapLen)
	s.fadeOut = make([]float32, s.overlapLen)
	for i := 0; i < s.overlapLen; i++ {
		t := float64(i) / float64(s.overlapLen-1)
		in := 0.5 - 0.5*math.Cos(math.Pi*t)
		s.fadeIn[i] = float32(in)
		s.fadeOut[i] = float32(1 - in)
	}
}

// Process returns a new stream whose length is exactly
// round(len(input)/speed). The input is not modified.
func (s *Stretcher) Process(input []float32) ([]float32, error) {
	if len(input) == 0 {
		return nil, ErrEmptyStream
	}

	if math.Abs(s.speed-1) <= identityEps {
		out := make([]float32, len(input))
		copy(out, input)
		return out, nil
	}

	targetLen := int(math.Round(float64(len(input)) / s.speed))
	if targetLen < 1 {
		targetLen = 1
	}
	return s.stretch(input, targetLen), nil
}

// stretch runs the WSOLA loop: seed the output with the first sequence,
// then repeatedly pick the input window best correlated with the tail of
// the output and crossfade it in.
func (s *Stretcher) stretch(input []float32, targetLen int) []float32 {
	// The input is consumed at speed * stepOut samples per output hop.
	nominalInStep := float64(s.stepOut) * s.speed
	if nominalInStep < 1 {
		nominalInStep = 1
	}

	nHops := targetLen/s.stepOut + 4
	out := make([]float32, nHops*s.stepOut+s.sequenceLen+1)

	for i := 0; i < s.sequenceLen; i++ {
		out[i] = sampleZero(input, i)
	}
	outLen := s.sequenceLen
	prevStart := 0
	nextNominal := nominalInStep
	ref := make([]float32, s.overlapLen)

	for outLen < targetLen+s.sequenceLen {
		refStart := prevStart + s.stepOut
		for i := 0; i < s.overlapLen; i++ {
			ref[i] = sampleZero(input, refStart+i)
		}

		predicted := int(math.Round(nextNominal))
		candStart := s.bestOverlap(ref, input, predicted)

		outStart := outLen - s.overlapLen
		for i := 0; i < s.overlapLen; i++ {
			prev := out[outStart+i]
			next := sampleZero(input, candStart+i)
			out[outStart+i] = prev*s.fadeOut[i] + next*s.fadeIn[i]
		}
		writePos := outStart + s.overlapLen
		for i := s.overlapLen; i < s.sequenceLen; i++ {
			out[writePos+i-s.overlapLen] = sampleZero(input, candStart+i)
		}

		outLen = outStart + s.sequenceLen
		prevStart = candStart
		nextNominal += nominalInStep

		if prevStart > len(input)+s.sequenceLen && outLen >= targetLen {
			break
		}
	}

	if targetLen <= len(out) {
		return out[:targetLen]
	}
	padded := make([]float32, targetLen)
	copy(padded, out)
	return padded
}

// bestOverlap searches ±searchLen around the predicted input offset for
// the window with the highest normalized correlation against ref.
func (s *Stretcher) bestOverlap(ref, input []float32, predicted int) int {
	best := predicted
	bestScore := math.Inf(-1)

	refEnergy := tiny
	for _, v := range ref {
		refEnergy += float64(v) * float64(v)
	}

	for cand := predicted - s.searchLen; cand <= predicted+s.searchLen; cand++ {
		dot := 0.0
		candEnergy := tiny
		for i, rv := range ref {
			cv := float64(sampleZero(input, cand+i))
			dot += float64(rv) * cv
			candEnergy += cv * cv
		}
		score := dot / math.Sqrt(refEnergy*candEnergy)
		if score > bestScore {
			bestScore = score
			best = cand
		}
	}

	return best
}

func sampleZero(x []float32, idx int) float32 {
	if idx < 0 || idx >= len(x) {
		return 0
	}
	return x[idx]
}
