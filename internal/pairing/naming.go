package pairing

import (
	"path/filepath"
	"strconv"
	"strings"
)

// OutputName derives the output file name for a pair. The two modes use
// deliberately distinct policies:
//
//	prefix: {leftPrefix}{rightPrefix}{key}
//	suffix: {key}{rightLabel}-{leftLabel}
//
// where a label is the configured suffix without its leading separator.
// When speed differs from 1.0 a "-x{speed}" token is inserted before the
// extension so runs at different speeds never overwrite each other.
// outExt is the output container extension (with dot); it replaces the
// key's own extension.
func OutputName(mode Mode, key, left, right string, speed float64, outExt string) string {
	stem := strings.TrimSuffix(key, filepath.Ext(key))

	var base string
	switch mode {
	case ModeSuffix:
		base = stem + suffixLabel(right) + "-" + suffixLabel(left)
	default:
		base = left + right + stem
	}

	if speed != 1.0 {
		base += "-x" + strconv.FormatFloat(speed, 'g', -1, 64)
	}
	return base + outExt
}

// suffixLabel strips the leading separator and any extension from a
// configured suffix: "-ES" and "_ES.mp3" both become "ES".
func suffixLabel(suffix string) string {
	label := strings.TrimSuffix(suffix, filepath.Ext(suffix))
	return strings.TrimLeft(label, "-_. ")
}
