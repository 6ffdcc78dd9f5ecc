// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 streams via hajimehoshi/go-mp3, adapting the
// decoder to the audio.Source interface.
package mp3
