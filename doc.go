// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/xpresshuff

/*
Package xpresshuff implements Microsoft Xpress-Huffman compression and
decompression (the LZ77+Huffman variant used by Windows hibernation files,
WIM images and certain RPC payloads).

The stream is a concatenation of 64 KiB chunks. Each chunk carries a 256-byte
packed code-length table (512 symbols, two 4-bit lengths per byte) followed by
a bitstream of canonical Huffman codes interleaved with raw offset bits and
length overflow bytes; the final chunk is terminated by the end-of-stream
symbol (256). Matches reach up to 65535 bytes back, across chunk boundaries.

# Compress

Options may be nil (default hash-chain cap):

	out, err := xpresshuff.Compress(data, nil)

To compress into a caller-owned buffer (returns ErrOutputFull if dst cannot
hold the stream):

	n, err := xpresshuff.CompressTo(dst, data, nil)

# Decompress

OutLen is required (use DecompressOptions). From a byte slice:

	out, err := xpresshuff.Decompress(compressed, xpresshuff.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed (e.g. for back-to-back streams):

	out, nRead, err := xpresshuff.DecompressN(compressed, xpresshuff.DefaultDecompressOptions(expectedLen))
	// advance: compressed = compressed[nRead:]

From an io.Reader:

	out, err := xpresshuff.DecompressFromReader(r, xpresshuff.DefaultDecompressOptions(expectedLen))
*/
package xpresshuff
