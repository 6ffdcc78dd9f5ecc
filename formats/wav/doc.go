// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes WAV containers via go-audio/wav.
//
// Decoding adapts a go-audio decoder to the audio.Source interface;
// encoding quantizes an audio.Buffer to PCM 16-bit. WAV is also the
// module's scratch format: every intermediate stream a pipeline stage
// persists is a PCM16 WAV written by this package.
package wav
