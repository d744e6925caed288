// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import "slices"

// blockWriter frames tokens into blocks of one flag byte followed by up to
// eight tokens. Flag bits are filled MSB-first; what a set bit means is up to
// the codec.
type blockWriter struct {
	out      []byte // stream so far, header included
	flagPos  int    // index of the open block's flag byte, -1 if none is open
	flags    byte   // flag bits of the open block
	count    int    // tokens in the open block
	maxBlock int    // largest possible block, reserved when a block opens
}

// newBlockWriter starts a stream with the given header. capHint seeds the
// output capacity; append grows it by doubling afterwards.
func newBlockWriter(header []byte, capHint, maxBlock int) blockWriter {
	out := make([]byte, 0, len(header)+capHint)
	out = append(out, header...)

	return blockWriter{out: out, flagPos: -1, maxBlock: maxBlock}
}

// begin opens a block if needed and shifts in the flag bit for the next token.
func (w *blockWriter) begin(flag bool) {
	if w.flagPos < 0 {
		w.out = slices.Grow(w.out, w.maxBlock)
		w.flagPos = len(w.out)
		w.out = append(w.out, 0)
	}

	w.flags <<= 1
	if flag {
		w.flags |= 1
	}
}

// end closes the token and flushes the block once it holds eight.
func (w *blockWriter) end() {
	w.count++
	if w.count == flagBits {
		w.out[w.flagPos] = w.flags
		w.flagPos = -1
		w.flags = 0
		w.count = 0
	}
}

// token1 writes a one-byte token.
func (w *blockWriter) token1(flag bool, b0 byte) {
	w.begin(flag)
	w.out = append(w.out, b0)
	w.end()
}

// token2 writes a two-byte token.
func (w *blockWriter) token2(flag bool, b0, b1 byte) {
	w.begin(flag)
	w.out = append(w.out, b0, b1)
	w.end()
}

// token3 writes a three-byte token.
func (w *blockWriter) token3(flag bool, b0, b1, b2 byte) {
	w.begin(flag)
	w.out = append(w.out, b0, b1, b2)
	w.end()
}

// finish flushes a partial block, zero bits shifted into the unused low positions.
func (w *blockWriter) finish() []byte {
	if w.flagPos >= 0 {
		w.out[w.flagPos] = w.flags << (flagBits - w.count)
		w.flagPos = -1
		w.flags = 0
		w.count = 0
	}

	return w.out
}
