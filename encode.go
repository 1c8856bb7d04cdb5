// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import (
	"encoding/binary"
	"math/bits"
)

// The encode pass re-reads the intermediate stream and rewrites it through
// the Huffman code: for a literal, just its code; for a match, the match
// symbol's code, then the length overflow bytes when the length field
// saturates, then the low bits of the offset as raw bits. The overflow bytes
// here are what the decoder reads back:
//
//	15 <= length-3 < 0x10E   one byte holding length-3-15
//	length-3 <= 0xFFFF       0xFF + uint16 holding length-3
//	otherwise                0xFF + 0x0000 + uint32 holding length-3
//
// The single-byte form is rebased by the symbol's 15 already-known units,
// unlike the intermediate record.

// encodeChunk returns ErrOutputFull as soon as any write no longer fits.
func encodeChunk(buf []byte, enc *huffmanEncoder, bs *outputBitstream) error {
	pos := 0
	for pos+4 <= len(buf) {
		mask := binary.LittleEndian.Uint32(buf[pos:])
		pos += 4

		for i := 0; i < 32 && pos < len(buf); i++ {
			if mask&(1<<i) == 0 {
				if !enc.encodeSymbol(int(buf[pos]), bs) {
					return ErrOutputFull
				}
				pos++
				continue
			}

			offset := int(binary.LittleEndian.Uint16(buf[pos:]))
			lenM3 := int(buf[pos+2])
			pos += 3
			if lenM3 == 0xFF {
				lenM3 = int(binary.LittleEndian.Uint16(buf[pos:]))
				pos += 2
				if lenM3 == 0 {
					lenM3 = int(binary.LittleEndian.Uint32(buf[pos:]))
					pos += 4
				}
			}

			// The end-of-stream record has offset 0; it encodes like a match
			// with no extra offset bits.
			hb := bits.Len32(uint32(offset)|1) - 1
			if !enc.encodeSymbol(matchSymBase|hb<<4|min(lenFieldMax, lenM3), bs) {
				return ErrOutputFull
			}

			if lenM3 >= lenFieldMax {
				switch {
				case lenM3 < 0xFF+lenFieldMax:
					if !bs.writeRawByte(byte(lenM3 - lenFieldMax)) {
						return ErrOutputFull
					}
				case lenM3 <= 0xFFFF:
					if !bs.writeRawByte(0xFF) || !bs.writeRawUint16(uint16(lenM3)) {
						return ErrOutputFull
					}
				default:
					if !bs.writeRawByte(0xFF) || !bs.writeRawUint16(0) || !bs.writeRawUint32(uint32(lenM3)) {
						return ErrOutputFull
					}
				}
			}

			if !bs.writeBits(uint32(offset)&(1<<hb-1), uint(hb)) {
				return ErrOutputFull
			}
		}
	}

	return nil
}
