package xpresshuff

import (
	"bytes"
	"errors"
	"testing"
)

// goldenSingleLiteral returns the canonical 260-byte stream for the input
// "A": two 1-bit codes ('A' then end-of-stream) behind an otherwise empty
// length table.
func goldenSingleLiteral() []byte {
	stream := make([]byte, 260)
	stream[0x41/2] = 0x10
	stream[streamEndByte] = streamEndNibble
	stream[257] = 0x40 // bits "01": literal 'A', then stream end
	return stream
}

func TestDecompress_GoldenSingleLiteral(t *testing.T) {
	out, err := Decompress(goldenSingleLiteral(), DefaultDecompressOptions(1))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}

	if !bytes.Equal(out, []byte{'A'}) {
		t.Fatalf("decoded % x, want \"A\"", out)
	}
}

func TestDecompress_OptionsRequired(t *testing.T) {
	if _, err := Decompress([]byte{0x01}, nil); !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("nil options: err = %v, want ErrOptionsRequired", err)
	}

	if _, err := Decompress([]byte{0x01}, &DecompressOptions{OutLen: -1}); !errors.Is(err, ErrOptionsRequired) {
		t.Fatalf("negative OutLen: err = %v, want ErrOptionsRequired", err)
	}
}

func TestDecompress_EmptyInput(t *testing.T) {
	out, err := Decompress(nil, DefaultDecompressOptions(0))
	if err != nil || len(out) != 0 {
		t.Fatalf("empty stream with OutLen 0 = (%d bytes, %v), want (0, nil)", len(out), err)
	}

	if _, err := Decompress(nil, DefaultDecompressOptions(8)); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("empty stream with data expected: err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestDecompress_TruncatedStream(t *testing.T) {
	if _, err := Decompress(make([]byte, 100), DefaultDecompressOptions(1)); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("input below one chunk header: err = %v, want ErrUnexpectedEOF", err)
	}

	// Drop the last 260 bytes: one byte of the 261-byte final chunk remains,
	// too short for its table, so the decoder runs out of input mid-stream.
	data := bytes.Repeat([]byte{0xAB}, chunkSize+100)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	firstChunk := cmp[:len(cmp)-260]
	if _, err := Decompress(firstChunk, DefaultDecompressOptions(len(data))); !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("stream cut inside final chunk: err = %v, want ErrUnexpectedEOF", err)
	}
}

func TestDecompress_CorruptTable(t *testing.T) {
	// All-zero table: no symbol has a code.
	empty := make([]byte, 260)
	if _, err := Decompress(empty, DefaultDecompressOptions(4)); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("empty table: err = %v, want ErrCorrupt", err)
	}

	// Four 1-bit codes over-subscribe the codespace.
	over := make([]byte, 260)
	over[0] = 0x11
	over[1] = 0x11
	if _, err := Decompress(over, DefaultDecompressOptions(4)); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("over-subscribed table: err = %v, want ErrCorrupt", err)
	}
}

func TestDecompress_LookBehindUnderrun(t *testing.T) {
	// Flip the golden stream's first bit: the decoder sees symbol 256 with
	// input remaining and output incomplete, i.e. an offset-1 match with
	// nothing behind it.
	stream := goldenSingleLiteral()
	stream[257] = 0xC0

	if _, err := Decompress(stream, DefaultDecompressOptions(1)); !errors.Is(err, ErrLookBehindUnderrun) {
		t.Fatalf("err = %v, want ErrLookBehindUnderrun", err)
	}
}

func TestDecompress_OutputOverrun(t *testing.T) {
	data := make([]byte, 1000)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	if _, err := Decompress(cmp, DefaultDecompressOptions(10)); !errors.Is(err, ErrOutputOverrun) {
		t.Fatalf("err = %v, want ErrOutputOverrun", err)
	}
}

func TestDecompress_GenuineSymbol256Match(t *testing.T) {
	// "xaaaa": the offset-1 length-3 match encodes to symbol 256 exactly
	// like the end-of-stream marker; only input exhaustion or a complete output
	// separates them.
	data := []byte("xaaaa")
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(cmp, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("decoded %q, want %q", out, data)
	}
}
