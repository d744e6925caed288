// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import "fmt"

// CompressOptions configures compression for both codecs.
type CompressOptions struct {
	// Lookahead enables lazy matching: before emitting a match the encoder checks
	// whether the match starting one byte later is longer, and if so emits a literal first.
	// Roughly halves compression speed for a better ratio.
	Lookahead bool
}

// DefaultCompressOptions returns options with lookahead enabled.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Lookahead: true}
}

// DecompressOptions configures decompression.
// Both limits are optional; zero means no limit.
type DecompressOptions struct {
	// MaxOutLen rejects streams whose declared size is larger, before the output is allocated.
	MaxOutLen int
	// MaxInputSize limits how many bytes DecompressFromReader may read.
	MaxInputSize int
}

// DefaultDecompressOptions returns options without limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// checkDeclaredSize applies MaxOutLen to a size read from a stream header.
func (o *DecompressOptions) checkDeclaredSize(size int) error {
	if o != nil && o.MaxOutLen > 0 && size > o.MaxOutLen {
		return fmt.Errorf("%w: declared=%d max=%d", ErrOutputTooLarge, size, o.MaxOutLen)
	}

	return nil
}
