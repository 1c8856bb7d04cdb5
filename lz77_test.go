package xpresshuff

import (
	"bytes"
	"testing"
)

func TestLZ77_IntermediateLayout(t *testing.T) {
	in := []byte("abcabcabc")
	d := acquireDictionary(in, 0)
	defer releaseDictionary(d)

	var counts [symbolCount]uint32
	buf := lz77CompressChunk(in, 0, len(in), true, d, nil, &counts)

	// Three literals, then a length-6 offset-3 match, then the end-of-stream
	// record: mask bits 3 and 4 set, 13 bytes total.
	want := []byte{
		0x18, 0x00, 0x00, 0x00, // mask
		'a', 'b', 'c',
		0x03, 0x00, // match offset
		0x03,             // length-3
		0x00, 0x00, 0x00, // end-of-stream record
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("intermediate stream\n got % x\nwant % x", buf, want)
	}

	for s, c := range counts {
		want := uint32(0)
		switch s {
		case 'a', 'b', 'c':
			want = 1
		case 0x113: // offset high bit 1, length field 3
			want = 1
		case streamEnd:
			want = 1
		}
		if c != want {
			t.Fatalf("counts[%#x] = %d, want %d", s, c, want)
		}
	}
}

func TestLZ77_FullFragmentGetsFreshTerminatorMask(t *testing.T) {
	// 32 distinct bytes fill one fragment exactly; the end-of-stream record
	// then needs a mask word of its own with only bit 0 set.
	in := make([]byte, 32)
	for i := range in {
		in[i] = byte(i * 5)
	}

	d := acquireDictionary(in, 0)
	defer releaseDictionary(d)

	var counts [symbolCount]uint32
	buf := lz77CompressChunk(in, 0, len(in), true, d, nil, &counts)

	want := append([]byte{0x00, 0x00, 0x00, 0x00}, in...)
	want = append(want, 0x01, 0x00, 0x00, 0x00)
	want = append(want, 0x00, 0x00, 0x00)
	if !bytes.Equal(buf, want) {
		t.Fatalf("intermediate stream\n got % x\nwant % x", buf, want)
	}

	if counts[streamEnd] != 1 {
		t.Fatalf("counts[streamEnd] = %d, want 1", counts[streamEnd])
	}
}

func TestLZ77_LengthOverflowRecord(t *testing.T) {
	// A 299-byte run yields length-3 = 296, which no longer fits the single
	// length byte and takes the 0xFF + uint16 form.
	in := append([]byte{'X'}, bytes.Repeat([]byte{'A'}, 300)...)
	d := acquireDictionary(in, 0)
	defer releaseDictionary(d)

	var counts [symbolCount]uint32
	buf := lz77CompressChunk(in, 0, len(in), true, d, nil, &counts)

	want := []byte{
		0x0C, 0x00, 0x00, 0x00, // mask: items 2 and 3 are records
		'X', 'A',
		0x01, 0x00, // match offset 1
		0xFF, 0x28, 0x01, // length-3 = 296 as escape + uint16
		0x00, 0x00, 0x00, // end-of-stream record
	}
	if !bytes.Equal(buf, want) {
		t.Fatalf("intermediate stream\n got % x\nwant % x", buf, want)
	}

	// Length field saturates at 15 in the symbol; offset 1 has high bit 0.
	if counts[matchSymBase|lenFieldMax] != 1 {
		t.Fatalf("counts[%#x] = %d, want 1", matchSymBase|lenFieldMax, counts[matchSymBase|lenFieldMax])
	}
}

func TestLZ77_NonFinalChunkHasNoTerminator(t *testing.T) {
	in := []byte("no terminator here")
	d := acquireDictionary(in, 0)
	defer releaseDictionary(d)

	var counts [symbolCount]uint32
	buf := lz77CompressChunk(in, 0, len(in), false, d, nil, &counts)

	if counts[streamEnd] != 0 {
		t.Fatalf("counts[streamEnd] = %d, want 0 on a non-final chunk", counts[streamEnd])
	}
	if len(buf) != 4+len(in) {
		t.Fatalf("intermediate length = %d, want %d (mask + literals)", len(buf), 4+len(in))
	}
}
