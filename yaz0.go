// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import (
	"encoding/binary"
	"fmt"
	"math"
)

// yaz0Writer frames tokens for Yaz0: flag bit 1 marks a literal, the opposite of LZ10.
type yaz0Writer struct {
	blockWriter
}

func (w *yaz0Writer) literal(b byte) {
	w.token1(true, b)
}

// backRef writes the 2-byte form for runs up to 17 bytes and the 3-byte form
// otherwise. A zero top nibble in the first byte marks the 3-byte form.
func (w *yaz0Writer) backRef(offset, length int) {
	if length <= yaz0MaxShortRun {
		w.token2(false,
			tokenByte((length-2)<<4|offset>>8),
			tokenByte(offset),
		)
		return
	}

	w.token3(false,
		tokenByte(offset>>8&0x0F),
		tokenByte(offset),
		tokenByte(length-yaz0LongRunBase),
	)
}

// CompressYaz0 compresses src into a Yaz0 stream. opts may be nil (lookahead enabled).
// Returns ErrSourceTooLarge if len(src) does not fit the 32-bit size field.
func CompressYaz0(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	if uint64(len(src)) > yaz0MaxSize {
		return nil, fmt.Errorf("%w: yaz0 size=%d max=%d", ErrSourceTooLarge, len(src), uint64(yaz0MaxSize))
	}

	var header [yaz0HeaderSize]byte
	copy(header[:], yaz0Magic[:])
	binary.BigEndian.PutUint32(header[4:], uint32(len(src))) //nolint:gosec // G115: bounded by yaz0MaxSize

	w := &yaz0Writer{blockWriter: newBlockWriter(header[:], len(src), yaz0MaxBlock)}
	parse(src, yaz0MinRun, yaz0MaxRun, opts.Lookahead, w)

	return w.finish(), nil
}

// DecompressYaz0 decompresses a Yaz0 stream. opts may be nil.
// Trailing bytes after the last block are ignored.
func DecompressYaz0(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := DecompressYaz0N(src, opts)
	return out, err
}

// DecompressYaz0N is like DecompressYaz0 but also returns the number of input
// bytes consumed, header included. nRead is 0 on error.
func DecompressYaz0N(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	size, err := yaz0DeclaredSize(src)
	if err != nil {
		return nil, 0, err
	}

	if err := opts.checkDeclaredSize(size); err != nil {
		return nil, 0, err
	}

	dst := make([]byte, size)
	nRead, err := decodeYaz0(src, dst)
	if err != nil {
		return nil, 0, err
	}

	return dst, nRead, nil
}

// DecompressYaz0Into decompresses src into caller-managed memory and returns
// dst[:size]. dst must be at least the declared size.
func DecompressYaz0Into(src, dst []byte) ([]byte, error) {
	size, err := yaz0DeclaredSize(src)
	if err != nil {
		return nil, err
	}

	if len(dst) < size {
		return nil, fmt.Errorf("%w: declared=%d dst=%d", ErrDestinationSize, size, len(dst))
	}

	if _, err := decodeYaz0(src, dst[:size]); err != nil {
		return nil, err
	}

	return dst[:size], nil
}

// yaz0DeclaredSize validates the magic and returns the uncompressed size.
// The eight reserved header bytes are not checked; some tools store alignment there.
func yaz0DeclaredSize(src []byte) (int, error) {
	if len(src) < yaz0HeaderSize {
		return 0, ErrInputTooShort
	}

	if [4]byte(src[:4]) != yaz0Magic {
		return 0, fmt.Errorf("%w: yaz0 magic %q", ErrInvalidHeader, src[:4])
	}

	size := binary.BigEndian.Uint32(src[4:])
	if uint64(size) > math.MaxInt {
		return 0, fmt.Errorf("%w: declared=%d", ErrOutputTooLarge, size)
	}

	return int(size), nil
}

// decodeYaz0 fills dst from the blocks following the header and returns the
// input offset just past the last token read.
func decodeYaz0(src, dst []byte) (int, error) {
	inPos := yaz0HeaderSize
	outPos := 0

	for outPos < len(dst) {
		flags, err := readCompressedByte(src, &inPos)
		if err != nil {
			return 0, err
		}

		for bit := 0; bit < flagBits && outPos < len(dst); bit++ {
			if flags&0x80 != 0 {
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

				length := nibble + 2
				if nibble == 0 {
					n, err := readCompressedByte(src, &inPos)
					if err != nil {
						return 0, err
					}
					length = int(n) + yaz0LongRunBase
				}

				outPos, err = expandBackRef(dst, outPos, offset, length)
				if err != nil {
					return 0, err
				}
			}

			flags <<= 1
		}
	}

	return inPos, nil
}
