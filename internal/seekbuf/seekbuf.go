// SPDX-License-Identifier: EPL-2.0

// Package seekbuf adapts plain readers to io.ReadSeeker for decoders
// that need to seek (the go-audio family).
package seekbuf

import (
	"bytes"
	"fmt"
	"io"
)

// AsReadSeeker returns r itself when it already seeks, otherwise it
// drains r into memory and wraps the data in a bytes.Reader.
func AsReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering stream: %w", err)
	}
	return bytes.NewReader(data), nil
}
