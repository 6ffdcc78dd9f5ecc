// SPDX-License-Identifier: EPL-2.0

package audio

// Interleave multiplexes two mono buffers of identical sample rate and
// frame count into one stereo buffer: channel 0 carries left, channel 1
// carries right. The inputs are not modified.
func Interleave(left, right *Buffer) (*Buffer, error) {
	if left.Channels != 1 || right.Channels != 1 {
		return nil, ErrNotMono
	}
	if left.Rate != right.Rate || left.Frames() != right.Frames() {
		return nil, ErrChannelMismatch
	}

	frames := left.Frames()
	out := &Buffer{
		Data:     make([]float32, frames*2),
		Rate:     left.Rate,
		Channels: 2,
	}
	for f := 0; f < frames; f++ {
		out.Data[2*f] = left.Data[f]
		out.Data[2*f+1] = right.Data[f]
	}
	return out, nil
}

// Deinterleave splits a stereo buffer back into its two mono channels.
// It is the exact inverse of Interleave.
func Deinterleave(st *Buffer) (left, right *Buffer, err error) {
	if st.Channels != 2 {
		return nil, nil, ErrNotStereo
	}
	if len(st.Data)%2 != 0 {
		return nil, nil, ErrMalformedBuffer
	}

	frames := st.Frames()
	left = &Buffer{Data: make([]float32, frames), Rate: st.Rate, Channels: 1}
	right = &Buffer{Data: make([]float32, frames), Rate: st.Rate, Channels: 1}
	for f := 0; f < frames; f++ {
		left.Data[f] = st.Data[2*f]
		right.Data[f] = st.Data[2*f+1]
	}
	return left, right, nil
}
