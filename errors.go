// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrOutputFull is returned by the compressor when the destination buffer
	// cannot hold the next chunk.
	ErrOutputFull = errors.New("output buffer too small")
	// ErrEmptyInput reports an empty input where data was expected. No function in
	// this package returns it: Decompress reports an empty src with a non-zero
	// OutLen as ErrUnexpectedEOF.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past OutLen.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a match points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrUnexpectedEOF is returned when the stream ends before the end-of-stream symbol.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrCorrupt is returned for an invalid code-length table (over-subscribed
	// Kraft sum, no usable symbol) or an undecodable bit pattern.
	ErrCorrupt = errors.New("corrupt compressed stream")
	// ErrOptionsRequired is returned when Decompress is called with nil options (OutLen is required).
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrCompressInternal is returned when the compressor hits an internal invariant violation
	// (e.g. empty symbol histogram). Callers can use errors.Is(err, xpresshuff.ErrCompressInternal).
	ErrCompressInternal = errors.New("internal compressor error")
)
