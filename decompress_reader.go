// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import (
	"bytes"
	"io"
)

// DecompressFromReader buffers the whole stream from r, then decodes it like
// Decompress. When opts.MaxInputSize > 0, reading stops one byte past the cap
// and ErrInputTooLarge is returned instead of buffering an unbounded stream.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	var buf bytes.Buffer
	if opts.MaxInputSize > 0 {
		n, err := buf.ReadFrom(io.LimitReader(r, int64(opts.MaxInputSize)+1))
		if err != nil {
			return nil, err
		}
		if n > int64(opts.MaxInputSize) {
			return nil, ErrInputTooLarge
		}
	} else if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	return Decompress(buf.Bytes(), opts)
}
