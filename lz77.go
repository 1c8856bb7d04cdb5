// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import (
	"encoding/binary"
	"math/bits"
)

// The LZ77 pass walks one chunk and emits an intermediate stream of 32-item
// fragments. Each fragment starts with a 32-bit LE mask whose bit i (LSB
// first) marks item i: 0 = one literal byte, 1 = a match record. A match
// record is a 16-bit LE offset followed by the length field for length-3:
//
//	length-3 <  0xFF    one byte
//	length-3 <= 0xFFFF  0xFF + uint16
//	otherwise           0xFF + 0x0000 + uint32
//
// On the input's final chunk the end-of-stream marker is appended as a match
// record with offset 0 and length byte 0. The pass also fills the symbol
// histogram that drives Huffman construction for the chunk.

// matchSymbol packs an offset and length-3 into the match symbol
// (high bit position of offset << 4, capped length field).
func matchSymbol(offset, lenM3 int) int {
	return matchSymBase | (bits.Len32(uint32(offset))-1)<<4 | min(lenFieldMax, lenM3)
}

// appendMatchRecord appends the offset and length field of one match.
func appendMatchRecord(buf []byte, offset, lenM3 int) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, uint16(offset))
	switch {
	case lenM3 < 0xFF:
		buf = append(buf, byte(lenM3))
	case lenM3 <= 0xFFFF:
		buf = append(buf, 0xFF)
		buf = binary.LittleEndian.AppendUint16(buf, uint16(lenM3))
	default:
		buf = append(buf, 0xFF, 0x00, 0x00)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(lenM3))
	}
	return buf
}

// lz77CompressChunk encodes in[chunkStart:chunkEnd] into buf (appended, so
// pass it with length 0) and counts every emitted symbol. endOfStream marks
// the input's final data chunk, which additionally carries the end-of-stream
// record. Matches never extend past chunkEnd.
func lz77CompressChunk(in []byte, chunkStart, chunkEnd int, endOfStream bool, d *dictionary, buf []byte, counts *[symbolCount]uint32) []byte {
	clear(counts[:])

	var (
		maskIdx int
		mask    uint32
		items   int
	)

	pos := chunkStart
	for pos < chunkEnd {
		maskIdx = len(buf)
		buf = append(buf, 0, 0, 0, 0)
		mask = 0

		for items = 0; items < 32 && pos < chunkEnd; items++ {
			d.fill(pos)
			if length, offset := d.find(pos, chunkEnd); length > 0 {
				lenM3 := length - minMatchLen
				buf = appendMatchRecord(buf, offset, lenM3)
				mask |= 1 << items
				counts[matchSymbol(offset, lenM3)]++
				pos += length
			} else {
				b := in[pos]
				buf = append(buf, b)
				counts[b]++
				pos++
			}
		}

		binary.LittleEndian.PutUint32(buf[maskIdx:], mask)
	}

	if endOfStream {
		if items == 32 || pos == chunkStart {
			// The last fragment is full (or the chunk was empty): the marker
			// needs a fragment of its own.
			buf = binary.LittleEndian.AppendUint32(buf, 1)
		} else {
			mask |= 1 << items
			binary.LittleEndian.PutUint32(buf[maskIdx:], mask)
		}
		buf = append(buf, 0, 0, 0)
		counts[streamEnd]++
	}

	return buf
}
