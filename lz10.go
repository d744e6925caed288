// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import (
	"encoding/binary"
	"fmt"
)

// lz10Writer frames tokens for LZ10: flag bit 1 marks a back-reference.
type lz10Writer struct {
	blockWriter
}

func (w *lz10Writer) literal(b byte) {
	w.token1(false, b)
}

// backRef writes [(length-3)<<4 | offset>>8, offset&0xFF].
func (w *lz10Writer) backRef(offset, length int) {
	w.token2(true,
		tokenByte((length-lz10MinRun)<<4|offset>>8),
		tokenByte(offset),
	)
}

// CompressLZ10 compresses src into an LZ10 stream. opts may be nil (lookahead enabled).
// Returns ErrSourceTooLarge if len(src) does not fit the 24-bit size field.
func CompressLZ10(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if len(src) > lz10MaxSize {
		return nil, fmt.Errorf("%w: lz10 size=%d max=%d", ErrSourceTooLarge, len(src), lz10MaxSize)
	}

	var header [lz10HeaderSize]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(src))<<8|lz10Type) //nolint:gosec // G115: bounded by lz10MaxSize

	w := &lz10Writer{blockWriter: newBlockWriter(header[:], len(src), lz10MaxBlock)}
	parse(src, lz10MinRun, lz10MaxRun, opts.Lookahead, w)

	return w.finish(), nil
}

// DecompressLZ10 decompresses an LZ10 stream. opts may be nil.
// Trailing bytes after the last block (e.g. alignment padding) are ignored.
func DecompressLZ10(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressLZ10N(src, opts)
	return out, err
}

// DecompressLZ10N is like DecompressLZ10 but also returns the number of input
// bytes consumed, header included. nRead is 0 on error.
func DecompressLZ10N(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	size, err := lz10DeclaredSize(src)
	if err != nil {
		return nil, 0, err
	}

	if err := opts.checkDeclaredSize(size); err != nil {
		return nil, 0, err
	}

	dst := make([]byte, size)
	nRead, err := decodeLZ10(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst, nRead, nil
}

// DecompressLZ10Into decompresses src into caller-managed memory and returns
// dst[:size]. dst must be at least the declared size.
func DecompressLZ10Into(src, dst []byte) ([]byte, error) {
	size, err := lz10DeclaredSize(src)
	if err != nil {
		return nil, err
	}

	if len(dst) < size {
		return nil, fmt.Errorf("%w: declared=%d dst=%d", ErrDestinationSize, size, len(dst))
	}

	if _, err := decodeLZ10(src, dst[:size]); err != nil {
		return nil, err
	}

	return dst[:size], nil
}

// lz10DeclaredSize validates the LZ10 header and returns the uncompressed size.
func lz10DeclaredSize(src []byte) (int, error) {
	if len(src) < lz10HeaderSize {
		return 0, ErrInputTooShort
	}

	if src[0] != lz10Type {
		return 0, fmt.Errorf("%w: lz10 type byte 0x%02x", ErrInvalidHeader, src[0])
	}

	return int(binary.LittleEndian.Uint32(src) >> 8), nil
}

// decodeLZ10 fills dst from the blocks following the header and returns the
// input offset just past the last token read. It stops as soon as dst is full,
// even in the middle of a block.
func decodeLZ10(src, dst []byte) (int, error) {
	inPos := lz10HeaderSize
	outPos := 0

	for outPos < len(dst) {
		flags, err := readCompressedByte(src, &inPos)
		if err != nil {
			return 0, err
		}

		for bit := 0; bit < flagBits && outPos < len(dst); bit++ {
			if flags&0x80 == 0 {
				b, err := readCompressedByte(src, &inPos)
				if err != nil {
					return 0, err
				}

				dst[outPos] = b
				outPos++
			} else {
				nibble, offset, err := readTokenPair(src, &inPos)
				if err != nil {
					return 0, err
				}

				outPos, err = expandBackRef(dst, outPos, offset, nibble+lz10MinRun)
				if err != nil {
					return 0, err
				}
			}

			flags <<= 1
		}
	}

	return inPos, nil
}
