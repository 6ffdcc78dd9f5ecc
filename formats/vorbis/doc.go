// Package vorbis decodes Ogg Vorbis streams via jfreymuth/oggvorbis.
package vorbis
