// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/xpresshuff

package xpresshuff

// DecompressOptions configures decompression.
// OutLen is required (expected decompressed size); MaxInputSize limits reads when using DecompressFromReader.
type DecompressOptions struct {
	// OutLen is the expected decompressed size (required for buffer allocation and safety).
	OutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length and no input limit.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// MaxChainLength caps how many dictionary candidates are examined per
	// position (0 = default). Higher values trade speed for ratio; output is
	// deterministic for a fixed value.
	MaxChainLength int
}

// DefaultCompressOptions returns options with the default chain cap.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{MaxChainLength: defaultMaxChainLength}
}
