// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// Xpress-Huffman format constants: chunk and window geometry, symbol alphabet,
// per-chunk layout bounds.

// Chunk and match window geometry.
const (
	chunkSize   = 0x10000 // bytes of input per chunk, each with its own Huffman table
	maxOffset   = 0xFFFF  // farthest a match may reach back
	minMatchLen = 3       // shortest match the format can express
)

// Symbol alphabet: 0..255 literals, 256 end-of-stream, 256..511 match symbols
// packing (high bit of offset << 4 | min(15, length-3)).
const (
	symbolCount  = 0x200
	streamEnd    = 0x100
	maxCodeLen   = 15 // cap on Huffman code length (4-bit lengths in the table)
	lenFieldMax  = 0xF
	matchSymBase = 0x100
)

// Per-chunk output layout.
const (
	lengthTableSize = symbolCount / 2           // 512 lengths packed two per byte
	minChunkOutput  = lengthTableSize + 4       // table + minimal (two-word) bitstream
	streamEndNibble = 0x01                      // length-1 low nibble for symbol 256
	streamEndByte   = streamEnd >> 1            // table byte holding that nibble
	lz77ScratchLen  = (chunkSize/32)*36 + 4 + 7 // mask+literal worst case + length overflow + terminator
)
