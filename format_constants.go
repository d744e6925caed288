// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

// Window and hash parameters shared by both codecs.
const (
	windowSize = 0x1000         // back-reference window (12-bit offsets)
	windowMask = windowSize - 1 // mask for link table slots
	keyBytes   = 3              // bytes hashed per indexed position
	hashBits   = 15             // bits in the rolling hash
	hashSize   = 1 << hashBits  // number of hash chain heads
	hashMask   = hashSize - 1   // mask for the rolling hash
	hashShift  = 5              // shift applied per byte fed into the hash
	noPosition = -1             // empty head/link slot
	flagBits   = 8              // tokens described by one flag byte
)

// LZ10 (Nintendo LZ77 type 0x10) format constants.
const (
	lz10Type       = 0x10     // low byte of the header
	lz10HeaderSize = 4        // u32 little-endian header
	lz10MaxSize    = 0xFFFFFF // declared size is 24 bits
	lz10MinRun     = 3
	lz10MaxRun     = 18
	lz10MaxBlock   = 1 + flagBits*2 // flag byte plus eight 2-byte tokens
)

// Yaz0 format constants.
const (
	yaz0HeaderSize  = 16
	yaz0MaxSize     = 0xFFFFFFFF // declared size is 32 bits
	yaz0MinRun      = 3
	yaz0MaxShortRun = 17  // longest run encoded with the 2-byte token
	yaz0LongRunBase = 18  // bias of the third byte in the 3-byte token
	yaz0MaxRun      = 273 // yaz0LongRunBase + 255
	yaz0MaxBlock    = 1 + flagBits*3
)

// yaz0Magic is the 4-byte tag opening every Yaz0 stream.
var yaz0Magic = [4]byte{'Y', 'a', 'z', '0'}
