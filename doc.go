// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

/*
Package nitrolz implements the LZ10 (Nintendo LZ77 type 0x10) and Yaz0
compression formats over complete in-memory buffers.

Both formats share one encoder: a hash-chain match finder over a 4096-byte
window with optional one-byte lazy lookahead. They differ only in framing:

  - LZ10: 4-byte little-endian header (size<<8 | 0x10); back-references of
    3..18 bytes in 2-byte tokens; flag bit 1 = back-reference.
  - Yaz0: 16-byte header ("Yaz0", big-endian size, 8 zero bytes); back-references
    of 3..17 bytes in 2-byte tokens and 18..273 bytes in 3-byte tokens;
    flag bit 1 = literal.

Flags are read MSB-first, one flag byte per eight tokens. Decoding stops
exactly at the size declared in the header; trailing bytes are ignored.

# Compress

Options may be nil (lookahead enabled):

	out, err := nitrolz.CompressLZ10(data, nil)
	out, err := nitrolz.CompressYaz0(data, &nitrolz.CompressOptions{Lookahead: false})

# Decompress

	out, err := nitrolz.DecompressLZ10(compressed, nil)
	out, err := nitrolz.DecompressYaz0(compressed, &nitrolz.DecompressOptions{MaxOutLen: 64 << 20})

When the format is not known up front:

	out, format, err := nitrolz.DecompressAuto(compressed, nil)

To get the number of input bytes consumed, or to reuse caller-managed memory:

	out, nRead, err := nitrolz.DecompressYaz0N(compressed, nil)
	out, err := nitrolz.DecompressLZ10Into(compressed, dst)

# Codec

LZ10Codec and Yaz0Codec implement the two-method Codec interface, so archive
loaders can hold either:

	codec, err := nitrolz.NewCodec(nitrolz.FormatYaz0, nil, nil)
	packed, err := codec.Compress(data)
*/
package nitrolz
