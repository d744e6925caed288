// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import (
	"bytes"
	"fmt"
)

// Format identifies one of the supported stream framings.
type Format uint8

const (
	// FormatUnknown is returned by Detect when no header matches.
	FormatUnknown Format = iota
	// FormatLZ10 is the compact-offset framing (LZ77 type 0x10): runs of 3..18 bytes.
	FormatLZ10
	// FormatYaz0 is the extended-length framing with a "Yaz0" header: runs of 3..273 bytes.
	FormatYaz0
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case FormatLZ10:
		return "lz10"
	case FormatYaz0:
		return "yaz0"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// ParseFormat parses a format name as returned by Format.String.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "lz10", "lz77":
		return FormatLZ10, nil
	case "yaz0":
		return FormatYaz0, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Codec is the compress/decompress contract shared by both framings.
// Implementations are safe for concurrent use.
type Codec interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// LZ10Codec implements Codec with the LZ10 framing.
type LZ10Codec struct {
	compress   CompressOptions
	decompress DecompressOptions
}

// Yaz0Codec implements Codec with the Yaz0 framing.
type Yaz0Codec struct {
	compress   CompressOptions
	decompress DecompressOptions
}

// NewLZ10Codec returns an LZ10 codec. Nil options mean defaults.
func NewLZ10Codec(copts *CompressOptions, dopts *DecompressOptions) *LZ10Codec {
	c := &LZ10Codec{}
	c.compress, c.decompress = resolveOptions(copts, dopts)
	return c
}

// NewYaz0Codec returns a Yaz0 codec. Nil options mean defaults.
func NewYaz0Codec(copts *CompressOptions, dopts *DecompressOptions) *Yaz0Codec {
	c := &Yaz0Codec{}
	c.compress, c.decompress = resolveOptions(copts, dopts)
	return c
}

// Compress implements Codec.
func (c *LZ10Codec) Compress(src []byte) ([]byte, error) {
	return CompressLZ10(src, &c.compress)
}

// Decompress implements Codec.
func (c *LZ10Codec) Decompress(src []byte) ([]byte, error) {
	return DecompressLZ10(src, &c.decompress)
}

// Compress implements Codec.
func (c *Yaz0Codec) Compress(src []byte) ([]byte, error) {
	return CompressYaz0(src, &c.compress)
}

// Decompress implements Codec.
func (c *Yaz0Codec) Decompress(src []byte) ([]byte, error) {
	return DecompressYaz0(src, &c.decompress)
}

// NewCodec returns the codec for format. Nil options mean defaults.
func NewCodec(format Format, copts *CompressOptions, dopts *DecompressOptions) (Codec, error) {
	switch format {
	case FormatLZ10:
		return NewLZ10Codec(copts, dopts), nil
	case FormatYaz0:
		return NewYaz0Codec(copts, dopts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// resolveOptions copies caller options so codecs never alias caller memory.
func resolveOptions(copts *CompressOptions, dopts *DecompressOptions) (CompressOptions, DecompressOptions) {
	if copts == nil {
		copts = DefaultCompressOptions()
	}
	if dopts == nil {
		dopts = DefaultDecompressOptions()
	}

	return *copts, *dopts
}

// Detect reports the format of a compressed stream from its header.
// A Yaz0 magic takes precedence; otherwise a 0x10 type byte means LZ10.
// The LZ10 check is weak by nature (one byte), so callers that know the
// format from context should prefer it.
func Detect(src []byte) Format {
	switch {
	case len(src) >= len(yaz0Magic) && bytes.Equal(src[:len(yaz0Magic)], yaz0Magic[:]):
		return FormatYaz0
	case len(src) >= lz10HeaderSize && src[0] == lz10Type:
		return FormatLZ10
	default:
		return FormatUnknown
	}
}

// DeclaredSize returns the detected format and the uncompressed size stored in the header.
func DeclaredSize(src []byte) (Format, int, error) {
	switch format := Detect(src); format {
	case FormatLZ10:
		size, err := lz10DeclaredSize(src)
		return format, size, err
	case FormatYaz0:
		size, err := yaz0DeclaredSize(src)
		return format, size, err
	default:
		return FormatUnknown, 0, ErrUnknownFormat
	}
}

// Compress compresses src with the given format. opts may be nil (lookahead enabled).
func Compress(src []byte, format Format, opts *CompressOptions) ([]byte, error) {
	switch format {
	case FormatLZ10:
		return CompressLZ10(src, opts)
	case FormatYaz0:
		return CompressYaz0(src, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// DecompressAuto detects the format of src and decompresses it. opts may be nil.
func DecompressAuto(src []byte, opts *DecompressOptions) ([]byte, Format, error) {
	format := Detect(src)
	switch format {
	case FormatLZ10:
		out, err := DecompressLZ10(src, opts)
		return out, format, err
	case FormatYaz0:
		out, err := DecompressYaz0(src, opts)
		return out, format, err
	default:
		return nil, FormatUnknown, ErrUnknownFormat
	}
}
