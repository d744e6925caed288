// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

// tokenByte packs a token fragment to one byte as required by the bit layouts.
// Callers pass values whose low 8 bits are the serialized representation.
func tokenByte(v int) byte {
	// #nosec G115 -- tokens intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
