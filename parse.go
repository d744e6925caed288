// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

// tokenWriter receives the parser's decisions in stream order.
type tokenWriter interface {
	// literal emits one raw byte.
	literal(b byte)
	// backRef emits a copy of length bytes starting offset+1 bytes back.
	backRef(offset, length int)
}

// parse runs the greedy parse over src, optionally with one byte of lazy
// lookahead, and feeds every token to w.
//
// With lookahead, a match accepted at position p is held back when the match
// at p+1 is strictly longer: a literal is emitted for p and the later match
// is carried into the next iteration instead of being searched again.
func parse(src []byte, minRun, maxRun int, lookahead bool, w tokenWriter) {
	finder := acquireMatchFinder(src, minRun, maxRun)
	defer releaseMatchFinder(finder)

	var (
		pending    match // match found one byte ahead by the previous iteration
		hasPending bool
	)

	pos := 0
	for pos < len(src) {
		current, ok := pending, hasPending
		hasPending = false
		if !ok {
			current, ok = finder.findLongestMatch()
		}

		if ok && lookahead {
			finder.advance(1)
			if current.length < maxRun {
				if next, found := finder.findLongestMatch(); found && next.length > current.length {
					pending, hasPending = next, true
					ok = false
				}
			}
		}

		if ok {
			w.backRef(pos-current.pos-1, current.length)
			pos += current.length
		} else {
			w.literal(src[pos])
			pos++
		}

		finder.advance(pos - finder.pos)
	}
}
