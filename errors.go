// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrInputTooShort is returned when the input cannot hold the stream header.
	ErrInputTooShort = errors.New("input too short for header")
	// ErrInvalidHeader is returned when the header type byte or magic does not match the codec.
	ErrInvalidHeader = errors.New("invalid stream header")
	// ErrInputOverrun is returned when the decoder reads past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when a back-reference would write past the declared size.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrSourceTooLarge is returned when the input size does not fit the header size field.
	ErrSourceTooLarge = errors.New("source too large for stream header")
	// ErrOutputTooLarge is returned when the declared size exceeds DecompressOptions.MaxOutLen.
	ErrOutputTooLarge = errors.New("declared size exceeds MaxOutLen")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
	// ErrDestinationSize is returned by the Into variants when dst is shorter than the declared size.
	ErrDestinationSize = errors.New("destination shorter than declared size")
	// ErrNilReader is returned when DecompressFromReader is called with a nil reader.
	ErrNilReader = errors.New("reader is nil")
	// ErrUnknownFormat is returned when a stream header matches no supported codec.
	ErrUnknownFormat = errors.New("unknown compression format")
)
