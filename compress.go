// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// Compress compresses src into the Xpress-Huffman format. opts may be nil
// (uses the default chain cap). Empty input produces an empty stream.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	dst := make([]byte, maxCompressedLen(len(src)))
	n, err := CompressTo(dst, src, opts)
	if err != nil {
		return nil, err
	}

	return dst[:n:n], nil
}

// CompressTo compresses src into dst and returns the number of bytes written.
// Returns ErrOutputFull (and 0) when dst cannot hold the stream; dst contents
// are undefined in that case. Empty input writes nothing and returns 0.
func CompressTo(dst, src []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if len(src) == 0 {
		return 0, nil
	}

	dict := acquireDictionary(src, opts.MaxChainLength)
	defer releaseDictionary(dict)

	var (
		enc    huffmanEncoder
		counts [symbolCount]uint32
	)
	scratch := make([]byte, 0, lz77ScratchLen)
	outPos := 0
	pos := 0

	for {
		rem := len(src) - pos
		if rem == 0 {
			// Input ended exactly on a chunk boundary: the marker gets a
			// terminator chunk of its own.
			if outPos+minChunkOutput > len(dst) {
				return 0, ErrOutputFull
			}
			writeTerminatorChunk(dst[outPos:])
			outPos += minChunkOutput
			return outPos, nil
		}

		if outPos+minChunkOutput > len(dst) {
			return 0, ErrOutputFull
		}

		chunkLen := min(rem, chunkSize)
		endOfStream := rem < chunkSize

		scratch = lz77CompressChunk(src, pos, pos+chunkLen, endOfStream, dict, scratch[:0], &counts)
		if err := enc.build(&counts); err != nil {
			return 0, err
		}

		enc.packLengths(dst[outPos : outPos+lengthTableSize])
		bs := newOutputBitstream(dst[outPos+lengthTableSize:])
		if err := encodeChunk(scratch, &enc, bs); err != nil {
			return 0, err
		}

		done := bs.finish()
		if done == 0 {
			return 0, ErrOutputFull
		}

		outPos += lengthTableSize + done
		pos += chunkLen
		if endOfStream {
			return outPos, nil
		}
	}
}

// writeTerminatorChunk emits the 260-byte chunk whose table assigns a 1-bit
// code to the end-of-stream symbol only, followed by the minimal bitstream.
func writeTerminatorChunk(dst []byte) {
	clear(dst[:minChunkOutput])
	dst[streamEndByte] = streamEndNibble
}

// maxCompressedLen bounds the compressed size of n input bytes: every symbol
// code is under two bytes, plus the per-chunk table, word padding and a
// possible terminator chunk.
func maxCompressedLen(n int) int {
	chunks := (n + chunkSize - 1) / chunkSize
	return chunks*(minChunkOutput+16) + 2*n + minChunkOutput
}
