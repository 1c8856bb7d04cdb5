// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

import (
	"container/heap"
	"sort"
)

// huffmanEncoder builds length-limited canonical codes over the 512-symbol
// alphabet and emits them MSB-first. Codes never exceed maxCodeLen bits so
// the 4-bit packed length table can always represent them.
type huffmanEncoder struct {
	codes   [symbolCount]uint16
	lengths [symbolCount]uint8
}

// build derives code lengths from the chunk's symbol histogram and assigns
// canonical codes. A symbol gets a zero length iff its count is zero. When
// plain Huffman construction exceeds maxCodeLen (skewed histograms), the
// smallest counts are boosted and the tree rebuilt until it fits; equal
// weights give a balanced tree of depth 9, so this always converges.
func (e *huffmanEncoder) build(counts *[symbolCount]uint32) error {
	clear(e.codes[:])
	clear(e.lengths[:])

	var used []int
	for s, c := range counts {
		if c > 0 {
			used = append(used, s)
		}
	}

	switch len(used) {
	case 0:
		return ErrCompressInternal
	case 1:
		// The decoder tolerates the unused half of the codespace.
		e.lengths[used[0]] = 1
	default:
		for boost := uint32(0); ; boost = max(1, boost<<1) {
			if e.treeLengths(used, counts, boost) <= maxCodeLen {
				break
			}
		}
	}

	e.assignCanonicalCodes(used)

	// Never let the end-of-stream symbol take the all-zero code: a stream
	// ending in a genuine symbol-256 match would then be indistinguishable
	// from its own zero padding. Extra bits keep the code set valid (unused
	// codespace is allowed) and the marker visible.
	for len(used) > 1 && e.lengths[streamEnd] > 0 && e.codes[streamEnd] == 0 && e.lengths[streamEnd] < maxCodeLen {
		e.lengths[streamEnd]++
		e.assignCanonicalCodes(used)
	}

	return nil
}

// encodeSymbol appends the canonical bit pattern for sym into the bitstream.
func (e *huffmanEncoder) encodeSymbol(sym int, bs *outputBitstream) bool {
	return bs.writeBits(uint32(e.codes[sym]), uint(e.lengths[sym]))
}

// packLengths writes the 256-byte code-length table: low nibble = even
// symbol, high nibble = odd symbol.
func (e *huffmanEncoder) packLengths(dst []byte) {
	for i := 0; i < lengthTableSize; i++ {
		dst[i] = e.lengths[2*i] | e.lengths[2*i+1]<<4
	}
}

// huffNode is a tree node in the construction pool. Leaves have left == -1.
type huffNode struct {
	weight uint32
	depth  uint8 // subtree height, first merge tie-break
	order  int32 // lowest contained symbol, second tie-break
	left   int32
	right  int32
}

type huffHeap struct {
	pool  []huffNode
	order []int32 // heap of pool indices
}

func (h *huffHeap) Len() int      { return len(h.order) }
func (h *huffHeap) Swap(i, j int) { h.order[i], h.order[j] = h.order[j], h.order[i] }

func (h *huffHeap) Less(i, j int) bool {
	a, b := &h.pool[h.order[i]], &h.pool[h.order[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.depth != b.depth {
		return a.depth < b.depth
	}
	return a.order < b.order
}

func (h *huffHeap) Push(x any) { h.order = append(h.order, x.(int32)) }

func (h *huffHeap) Pop() any {
	last := len(h.order) - 1
	x := h.order[last]
	h.order = h.order[:last]
	return x
}

// treeLengths runs one Huffman construction over the used symbols with every
// count raised to at least boost, stores the resulting depths as code lengths
// and returns the deepest one.
func (e *huffmanEncoder) treeLengths(used []int, counts *[symbolCount]uint32, boost uint32) int {
	pool := make([]huffNode, 0, 2*len(used)-1)
	for _, s := range used {
		pool = append(pool, huffNode{
			weight: max(counts[s], boost),
			order:  int32(s),
			left:   -1,
			right:  -1,
		})
	}

	h := &huffHeap{pool: pool, order: make([]int32, len(pool))}
	for i := range h.order {
		h.order[i] = int32(i)
	}
	heap.Init(h)

	for h.Len() > 1 {
		a := heap.Pop(h).(int32)
		b := heap.Pop(h).(int32)
		h.pool = append(h.pool, huffNode{
			weight: h.pool[a].weight + h.pool[b].weight,
			depth:  max(h.pool[a].depth, h.pool[b].depth) + 1,
			order:  min(h.pool[a].order, h.pool[b].order),
			left:   a,
			right:  b,
		})
		heap.Push(h, int32(len(h.pool)-1))
	}

	root := h.order[0]
	maxDepth := 0
	e.walkDepths(h.pool, root, 0, &maxDepth)
	return maxDepth
}

// walkDepths records each leaf's depth as its code length.
func (e *huffmanEncoder) walkDepths(pool []huffNode, idx int32, depth int, maxDepth *int) {
	n := &pool[idx]
	if n.left < 0 {
		e.lengths[n.order] = uint8(depth)
		if depth > *maxDepth {
			*maxDepth = depth
		}
		return
	}

	e.walkDepths(pool, n.left, depth+1, maxDepth)
	e.walkDepths(pool, n.right, depth+1, maxDepth)
}

// assignCanonicalCodes assigns consecutive code values in (length, symbol)
// order, left-shifting when the length steps up. Same ordering on both sides
// of the wire.
func (e *huffmanEncoder) assignCanonicalCodes(used []int) {
	sorted := append([]int(nil), used...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if e.lengths[a] != e.lengths[b] {
			return e.lengths[a] < e.lengths[b]
		}
		return a < b
	})

	code := uint16(0)
	curLen := e.lengths[sorted[0]]
	for _, s := range sorted {
		if e.lengths[s] > curLen {
			code <<= e.lengths[s] - curLen
			curLen = e.lengths[s]
		}
		e.codes[s] = code
		code++
	}
}
