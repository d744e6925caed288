// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import "io"

// DecompressFromReader reads the whole stream, detects its format and decompresses it.
// If opts.MaxInputSize > 0 and the stream is longer, it returns ErrInputTooLarge
// without reading past the limit.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, Format, error) {
	if r == nil {
		return nil, FormatUnknown, ErrNilReader
	}

	if opts != nil && opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, FormatUnknown, err
	}

	if opts != nil && opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, FormatUnknown, ErrInputTooLarge
	}

	return DecompressAuto(src, opts)
}
