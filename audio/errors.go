// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize  = errors.New("dst size must be multiple of channels")
	ErrNotMono         = errors.New("stream must be mono")
	ErrNotStereo       = errors.New("stream must be stereo")
	ErrChannelMismatch = errors.New("streams differ in frame count or sample rate")
	ErrMalformedBuffer = errors.New("buffer length must be multiple of channels")
)
