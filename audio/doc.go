// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives the pipeline is
// built from.
//
// # Source Interface
//
// Source is the streaming abstraction every decoder and processor
// implements, so they chain freely:
//
//	src, _ := decoder.Decode(file)
//	resampled := audio.NewResampler(src, 44100)
//	mono := audio.NewMonoMixer(resampled)
//	buf, _ := audio.Collect(mono, mono.BufSize())
//
// Samples are interleaved float32 in [-1, 1]; ReadSamples returns io.EOF
// when the stream is finished.
//
// # Buffers
//
// Buffer holds a fully decoded stream with frame accounting. Frame
// counts are computed from the data actually present, so a buffer
// reloaded from disk always reports what the file holds. AppendSilence
// and TrimFrames implement the padding/trimming reconciliation needs,
// and Interleave/Deinterleave multiplex two mono buffers into one stereo
// buffer and back without loss.
//
// # Registry
//
// Registry maps file extensions to decoders; see the formats package for
// the decoders this module ships.
package audio
