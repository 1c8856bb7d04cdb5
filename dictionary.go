// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// dictionary is the sliding-window match finder. Positions are linked into
// per-prefix hash chains in decreasing-position order; chains persist across
// chunks so matches can reach into the previous chunk, bounded by maxOffset.

const (
	dictHashBits          = 15
	dictHashSize          = 1 << dictHashBits
	dictLinkRing          = 2 * chunkSize // link slots; a slot is reused only 128 KiB later
	dictLinkMask          = dictLinkRing - 1
	defaultMaxChainLength = 1024
)

// dictionary fields: input view, hash chain heads and links, fill cursor.
// Heads and links store position+1 so the zero value means "empty"
// (chain walks stop at 0 without a sentinel fill).
type dictionary struct {
	input    []byte
	filled   int // next position to insert
	maxChain int

	heads [dictHashSize]int32
	links [dictLinkRing]int32
}

// hashPrefix hashes the 3-byte prefix at p into a chain bucket.
func hashPrefix(p []byte) uint32 {
	k := uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
	return (k * 0x9E3779B1) >> (32 - dictHashBits)
}

// reset prepares the dictionary for a new input.
func (d *dictionary) reset(input []byte, maxChain int) {
	d.input = input
	d.filled = 0
	if maxChain <= 0 {
		maxChain = defaultMaxChainLength
	}
	d.maxChain = maxChain
	clear(d.heads[:])
	clear(d.links[:])
}

// fill links every position before pos into its prefix chain. The LZ77 pass
// calls this with its read position before each probe, so chains hold exactly
// the positions behind it. Positions with fewer than 3 bytes of input left
// have no prefix and are skipped.
func (d *dictionary) fill(pos int) {
	last := min(pos, len(d.input)-minMatchLen+1)
	for p := d.filled; p < last; p++ {
		h := hashPrefix(d.input[p:])
		d.links[p&dictLinkMask] = d.heads[h]
		d.heads[h] = int32(p + 1)
	}
	if pos > d.filled {
		d.filled = pos
	}
}

// find returns the best match for pos, clamped to chunkEnd: the longest
// prefix of input[pos:chunkEnd] occurring within the last maxOffset bytes,
// preferring the lowest offset among equal lengths. Returns (0, 0) when no
// match of at least minMatchLen exists. fill(pos) must have been called, so
// every chain entry is behind pos.
func (d *dictionary) find(pos, chunkEnd int) (length, offset int) {
	maxLen := chunkEnd - pos
	if maxLen < minMatchLen {
		return 0, 0
	}

	in := d.input
	cand := int(d.heads[hashPrefix(in[pos:])]) - 1
	bestLen := 0

	for chain := d.maxChain; cand >= 0 && chain > 0; chain-- {
		if pos-cand > maxOffset {
			break
		}

		l := 0
		for l < maxLen && in[cand+l] == in[pos+l] {
			l++
		}

		// Strictly longer only: chains are newest-first, so the first match
		// of a given length already has the lowest offset.
		if l > bestLen {
			bestLen = l
			offset = pos - cand
			if bestLen == maxLen {
				break
			}
		}

		cand = int(d.links[cand&dictLinkMask]) - 1
	}

	if bestLen < minMatchLen {
		return 0, 0
	}
	return bestLen, offset
}
