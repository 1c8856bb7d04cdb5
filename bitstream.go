// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import "encoding/binary"

// The chunk bitstream is a sequence of 16-bit little-endian words carrying
// MSB-first Huffman bits, interleaved with raw bytes (length overflows) at a
// separate cursor. The writer keeps two pending word slots ahead of the raw
// cursor; the reader keeps a 32-bit lookahead. The lag on one side equals the
// lookahead on the other, which is what lets a one-pass reader find every raw
// insert at its cursor.

// outputBitstream accumulates MSB-first bits and flushes them as 16-bit LE
// words into slot0/slot1 while raw writes land at cursor. All writes report
// success; the first failed write poisons the stream so finish returns 0.
type outputBitstream struct {
	buf    []byte
	mask   uint32 // pending bits, MSB-aligned
	bits   uint   // number of pending bits, at most 16 between writes
	slot0  int    // next word slot to flush into
	slot1  int    // word slot after that, -1 when the buffer ran out
	cursor int    // raw write position, always past both slots
	failed bool
}

// newOutputBitstream requires room for the two initial word slots.
func newOutputBitstream(buf []byte) *outputBitstream {
	b := &outputBitstream{buf: buf, slot0: 0, slot1: 2, cursor: 4}
	if len(buf) < 4 {
		b.failed = true
	}
	return b
}

// writeBits appends the low n bits of x, most significant first. n <= 16.
func (b *outputBitstream) writeBits(x uint32, n uint) bool {
	if b.failed {
		return false
	}

	b.bits += n
	b.mask |= x << (32 - b.bits)
	if b.bits > 16 {
		if b.slot1 < 0 {
			b.failed = true
			return false
		}

		binary.LittleEndian.PutUint16(b.buf[b.slot0:], uint16(b.mask>>16))
		b.slot0 = b.slot1
		if b.cursor+2 <= len(b.buf) {
			b.slot1 = b.cursor
			b.cursor += 2
		} else {
			b.slot1 = -1
		}
		b.mask <<= 16
		b.bits -= 16
	}

	return true
}

// writeRawByte writes one byte at the raw cursor, bypassing bit alignment.
func (b *outputBitstream) writeRawByte(x byte) bool {
	if b.failed || b.cursor >= len(b.buf) {
		b.failed = true
		return false
	}

	b.buf[b.cursor] = x
	b.cursor++
	return true
}

// writeRawUint16 writes a little-endian uint16 at the raw cursor.
func (b *outputBitstream) writeRawUint16(x uint16) bool {
	if b.failed || b.cursor+2 > len(b.buf) {
		b.failed = true
		return false
	}

	binary.LittleEndian.PutUint16(b.buf[b.cursor:], x)
	b.cursor += 2
	return true
}

// writeRawUint32 writes a little-endian uint32 at the raw cursor.
func (b *outputBitstream) writeRawUint32(x uint32) bool {
	if b.failed || b.cursor+4 > len(b.buf) {
		b.failed = true
		return false
	}

	binary.LittleEndian.PutUint32(b.buf[b.cursor:], x)
	b.cursor += 4
	return true
}

// finish zero-pads the pending bits into slot0, zeroes slot1 and returns the
// total byte count, or 0 if any write failed. Both trailing words must exist:
// they are the reader's final lookahead.
func (b *outputBitstream) finish() int {
	if b.failed || b.slot1 < 0 {
		return 0
	}

	binary.LittleEndian.PutUint16(b.buf[b.slot0:], uint16(b.mask>>16))
	binary.LittleEndian.PutUint16(b.buf[b.slot1:], 0)
	return b.cursor
}

// inputBitstream mirrors outputBitstream: a 32-bit MSB-aligned lookahead
// primed from two 16-bit LE words, refilled eagerly whenever fewer than 16
// bits remain. Bit reads past the end of input yield zeros (the writer's own
// padding is zero; anything else surfaces as a decode error downstream), raw
// reads report overrun explicitly.
type inputBitstream struct {
	src    []byte
	mask   uint32
	bits   uint
	cursor int
}

func newInputBitstream(src []byte, pos int) *inputBitstream {
	b := &inputBitstream{src: src, cursor: pos}
	b.refill()
	b.refill()
	return b
}

func (b *inputBitstream) refill() {
	if b.cursor+2 <= len(b.src) {
		w := binary.LittleEndian.Uint16(b.src[b.cursor:])
		b.mask |= uint32(w) << (16 - b.bits)
		b.cursor += 2
	}
	b.bits += 16
}

// readBits consumes and returns the next n bits, most significant first. n <= 16.
func (b *inputBitstream) readBits(n uint) uint32 {
	if n == 0 {
		return 0
	}

	x := b.mask >> (32 - n)
	b.mask <<= n
	b.bits -= n
	if b.bits < 16 {
		b.refill()
	}
	return x
}

// readRawByte reads one byte at the raw cursor.
func (b *inputBitstream) readRawByte() (byte, error) {
	if b.cursor >= len(b.src) {
		return 0, ErrInputOverrun
	}

	x := b.src[b.cursor]
	b.cursor++
	return x, nil
}

// readRawUint16 reads a little-endian uint16 at the raw cursor.
func (b *inputBitstream) readRawUint16() (uint16, error) {
	if b.cursor+2 > len(b.src) {
		return 0, ErrInputOverrun
	}

	x := binary.LittleEndian.Uint16(b.src[b.cursor:])
	b.cursor += 2
	return x, nil
}

// readRawUint32 reads a little-endian uint32 at the raw cursor.
func (b *inputBitstream) readRawUint32() (uint32, error) {
	if b.cursor+4 > len(b.src) {
		return 0, ErrInputOverrun
	}

	x := binary.LittleEndian.Uint32(b.src[b.cursor:])
	b.cursor += 4
	return x, nil
}

// exhausted reports that no meaningful input remains: the cursor is at the
// end and every buffered bit is zero padding. This is what distinguishes the
// end-of-stream symbol from a genuine offset-1 length-3 match.
func (b *inputBitstream) exhausted() bool {
	return b.cursor >= len(b.src) && b.mask == 0
}
