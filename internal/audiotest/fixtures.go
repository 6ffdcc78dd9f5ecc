// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"duomux/audio"
	"duomux/formats/wav"
)

// SineBuffer builds a mono sine buffer of the given frame count.
func SineBuffer(sampleRate, frames int, frequency float64) *audio.Buffer {
	data := make([]float32, frames)
	for i := range data {
		t := float64(i) / float64(sampleRate)
		data[i] = float32(0.8 * math.Sin(2*math.Pi*frequency*t))
	}
	return &audio.Buffer{Data: data, Rate: sampleRate, Channels: 1}
}

// WriteSineWAV writes a mono sine fixture file and returns its frame
// count.
func WriteSineWAV(path string, sampleRate, frames int, frequency float64) (int, error) {
	buf := SineBuffer(sampleRate, frames, frequency)
	if err := wav.WriteFile(path, buf); err != nil {
		return 0, err
	}
	return buf.Frames(), nil
}
