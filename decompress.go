// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// Decompress decompresses an Xpress-Huffman stream from src into a buffer of
// length opts.OutLen. Returns ErrOptionsRequired if opts is nil. An empty src
// with OutLen 0 yields an empty slice (the compressor emits nothing for empty
// input). On success the returned slice may be shorter than OutLen if the
// stream ended early; trailing bytes after the end-of-stream symbol are
// ignored.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressN(src, opts)
	return out, err
}

// DecompressN decompresses src and returns the decoded slice, the number of
// input bytes consumed (nRead), and an error. nRead is 0 on error. Use this
// when advancing over back-to-back compressed streams.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	if opts == nil || opts.OutLen < 0 {
		return nil, 0, ErrOptionsRequired
	}

	if len(src) == 0 {
		if opts.OutLen == 0 {
			return []byte{}, 0, nil
		}
		return nil, 0, ErrUnexpectedEOF
	}

	dst := make([]byte, opts.OutLen)
	outWritten, inConsumed, err := decompressCore(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst[:outWritten], inConsumed, nil
}

// decompressCore decodes chunks until the end-of-stream symbol. Each chunk is
// a 256-byte packed code-length table followed by its bitstream; a chunk's
// output ends at the 64 KiB boundary, matches may reach across it. Returns
// (bytes written, input bytes consumed, nil) on success.
func decompressCore(src, dst []byte) (outWritten, inConsumed int, err error) {
	var dec huffmanDecoder
	inPos := 0
	outPos := 0

	for {
		if inPos+minChunkOutput > len(src) {
			return 0, 0, ErrUnexpectedEOF
		}

		if err := dec.build(src[inPos : inPos+lengthTableSize]); err != nil {
			return 0, 0, err
		}

		r := newInputBitstream(src, inPos+lengthTableSize)
		chunkEnd := outPos + chunkSize

		for {
			sym, err := dec.decodeSymbol(r)
			if err != nil {
				return 0, 0, err
			}

			if sym < streamEnd {
				if outPos >= len(dst) {
					return 0, 0, ErrOutputOverrun
				}
				dst[outPos] = byte(sym)
				outPos++
			} else if sym == streamEnd && (r.exhausted() || outPos == len(dst)) {
				// End of stream: the input is spent, or the expected output
				// is complete (for callers with an exact OutLen and trailing
				// input, e.g. back-to-back streams). Otherwise 256 is a
				// genuine offset-1 length-3 match.
				return outPos, r.cursor, nil
			} else {
				offset, length, err := readMatch(r, sym)
				if err != nil {
					return 0, 0, err
				}

				if err := copyMatch(dst, outPos, offset, length); err != nil {
					return 0, 0, err
				}
				outPos += length
			}

			if outPos >= chunkEnd {
				if outPos > chunkEnd {
					return 0, 0, ErrCorrupt
				}
				break // next chunk, next table
			}
		}

		inPos = r.cursor
	}
}

// readMatch expands a match symbol into its (offset, length) pair: the length
// overflow bytes when the 4-bit field saturates, then the low offset bits.
func readMatch(r *inputBitstream, sym int) (offset, length int, err error) {
	hb := uint(sym>>4) & 0xF
	length = sym & lenFieldMax

	if length == lenFieldMax {
		b, err := r.readRawByte()
		if err != nil {
			return 0, 0, err
		}

		if b < 0xFF {
			length = int(b) + lenFieldMax
		} else {
			w, err := r.readRawUint16()
			if err != nil {
				return 0, 0, err
			}

			if w != 0 {
				length = int(w)
			} else {
				d, err := r.readRawUint32()
				if err != nil {
					return 0, 0, err
				}
				length = int(d)
			}
		}
	}

	offset = 1<<hb | int(r.readBits(hb))
	return offset, length + minMatchLen, nil
}

// copyMatch copies length bytes from dst[outPos-offset:] to dst[outPos:],
// advancing in strides of up to offset bytes. The stride source window
// [outPos-offset, outPos) is always fully written, so overlapping matches
// (offset < length, where earlier stride output feeds later strides) come out
// right without a special case; a non-overlapping match is a single stride.
func copyMatch(dst []byte, outPos, offset, length int) error {
	if offset > outPos {
		return ErrLookBehindUnderrun
	}

	end := outPos + length
	if end > len(dst) {
		return ErrOutputOverrun
	}

	for outPos < end {
		outPos += copy(dst[outPos:end], dst[outPos-offset:outPos])
	}

	return nil
}

// huffmanDecoder holds canonical per-length decode tables built from a
// chunk's packed lengths: codes of one length are consecutive values, so a
// code maps to a symbol by its distance from the first code of its length.
type huffmanDecoder struct {
	count [maxCodeLen + 1]uint16 // codes per length
	first [maxCodeLen + 1]uint16 // first code value per length
	index [maxCodeLen + 1]uint16 // position in syms of that first code
	syms  [symbolCount]uint16    // symbols in (length, symbol) order
}

// build unpacks the nibble table and derives the decode tables. Rejects
// tables whose code set over-subscribes the codespace or is empty; unused
// codespace is tolerated.
func (d *huffmanDecoder) build(table []byte) error {
	var lengths [symbolCount]uint8
	clear(d.count[:])

	for i, b := range table[:lengthTableSize] {
		lengths[2*i] = b & 0xF
		lengths[2*i+1] = b >> 4
		d.count[b&0xF]++
		d.count[b>>4]++
	}
	d.count[0] = 0

	kraft := uint32(0)
	for l := 1; l <= maxCodeLen; l++ {
		kraft += uint32(d.count[l]) << (maxCodeLen - l)
	}
	if kraft == 0 || kraft > 1<<maxCodeLen {
		return ErrCorrupt
	}

	code := uint16(0)
	pos := uint16(0)
	for l := 1; l <= maxCodeLen; l++ {
		code <<= 1
		d.first[l] = code
		d.index[l] = pos
		code += d.count[l]
		pos += d.count[l]
	}

	for s, l := range lengths {
		if l > 0 {
			d.syms[d.index[l]] = uint16(s)
			d.index[l]++
		}
	}

	// index was used as a fill cursor; restore it to the first position.
	for l := 1; l <= maxCodeLen; l++ {
		d.index[l] -= d.count[l]
	}

	return nil
}

// decodeSymbol reads bits MSB-first until they form a code of some length.
func (d *huffmanDecoder) decodeSymbol(r *inputBitstream) (int, error) {
	code := uint16(0)
	for l := 1; l <= maxCodeLen; l++ {
		code = code<<1 | uint16(r.readBits(1))
		if diff := code - d.first[l]; diff < d.count[l] {
			return int(d.syms[d.index[l]+diff]), nil
		}
	}

	return 0, ErrCorrupt
}
