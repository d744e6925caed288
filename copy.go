// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import "fmt"

// expandBackRef resolves a back-reference token at dst[outPos:] and returns the
// new output position. offset is the raw 12-bit field; the source starts
// offset+1 bytes behind outPos. Overlapping runs (offset+1 < length) repeat the
// last offset+1 bytes, so they are copied forward one byte at a time.
func expandBackRef(dst []byte, outPos, offset, length int) (int, error) {
	from := outPos - offset - 1
	if from < 0 {
		return 0, fmt.Errorf("%w: output=%d offset=%d", ErrLookBehindUnderrun, outPos, offset)
	}

	end := outPos + length
	if end > len(dst) {
		return 0, fmt.Errorf("%w: output=%d length=%d size=%d", ErrOutputOverrun, outPos, length, len(dst))
	}

	if offset+1 >= length {
		copy(dst[outPos:end], dst[from:from+length])
		return end, nil
	}

	for i := outPos; i < end; i++ {
		dst[i] = dst[i-offset-1]
	}

	return end, nil
}

// readTokenPair reads the two bytes shared by every back-reference token and
// splits them into the high nibble and the 12-bit offset.
func readTokenPair(src []byte, inPos *int) (nibble, offset int, err error) {
	if *inPos+2 > len(src) {
		return 0, 0, ErrInputOverrun
	}

	a, b := src[*inPos], src[*inPos+1]
	*inPos += 2

	return int(a >> 4), int(a&0x0F)<<8 | int(b), nil
}

// readCompressedByte reads one byte from src at *inPos and advances *inPos.
func readCompressedByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrInputOverrun
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}
