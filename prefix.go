// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// prefixLanes selects how many bytes commonPrefixLen compares per step.
type prefixLanes int

const (
	lanesScalar prefixLanes = iota // 4-byte unrolled byte compares
	lanesWord                      // one 64-bit word per step
	lanesWide                      // four 64-bit words per step
)

// wideLaneBytes is the chunk size of the wide path.
const wideLaneBytes = 32

// activeLanes is chosen once at startup; every path returns identical results.
var activeLanes = detectLanes()

// detectLanes picks the widest comparison the CPU handles well.
func detectLanes() prefixLanes {
	switch {
	case bits.UintSize != 64:
		return lanesScalar
	case cpu.X86.HasAVX2, cpu.ARM64.HasASIMD:
		return lanesWide
	default:
		return lanesWord
	}
}

// commonPrefixLen returns the number of leading bytes a and b have in common,
// bounded by the shorter of the two.
func commonPrefixLen(a, b []byte) int {
	switch activeLanes {
	case lanesWide:
		return prefixWide(a, b)
	case lanesWord:
		return prefixWord(a, b)
	default:
		return prefixScalar(a, b)
	}
}

// prefixScalar compares byte by byte, four per iteration.
func prefixScalar(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		if a[i] != b[i] {
			return i
		}
		if a[i+1] != b[i+1] {
			return i + 1
		}
		if a[i+2] != b[i+2] {
			return i + 2
		}
		if a[i+3] != b[i+3] {
			return i + 3
		}
	}

	for ; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}

// prefixWord compares 8 bytes at a time; the first differing byte is the
// lowest set byte of the XOR when both words are loaded little-endian.
func prefixWord(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	i := 0
	for ; i+8 <= n; i += 8 {
		diff := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		if diff != 0 {
			return i + bits.TrailingZeros64(diff)>>3
		}
	}

	return i + prefixScalar(a[i:], b[i:])
}

// prefixWide checks 32-byte chunks with a single branch and narrows down
// with prefixWord once a chunk differs.
func prefixWide(a, b []byte) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	i := 0
	for ; i+wideLaneBytes <= n; i += wideLaneBytes {
		d0 := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		d1 := binary.LittleEndian.Uint64(a[i+8:]) ^ binary.LittleEndian.Uint64(b[i+8:])
		d2 := binary.LittleEndian.Uint64(a[i+16:]) ^ binary.LittleEndian.Uint64(b[i+16:])
		d3 := binary.LittleEndian.Uint64(a[i+24:]) ^ binary.LittleEndian.Uint64(b[i+24:])
		if d0|d1|d2|d3 != 0 {
			return i + prefixWord(a[i:i+wideLaneBytes], b[i:i+wideLaneBytes])
		}
	}

	return i + prefixWord(a[i:], b[i:])
}
