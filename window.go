// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

// match is a back-reference candidate: the source position it copies from and its length.
type match struct {
	pos    int
	length int
}

// matchFinder indexes a source buffer with hash chains over 3-byte sequences
// and answers longest-match queries at its cursor.
//
// head maps a 15-bit hash to the newest indexed position with that hash.
// link maps position&windowMask to the previous position in the same chain.
// Links are overwritten, never removed: entries older than the window are
// filtered while walking a chain.
type matchFinder struct {
	src    []byte // borrowed source, never retained past release
	minRun int    // shortest match worth reporting
	maxRun int    // longest match the codec can encode
	pos    int    // cursor; all queries are relative to it
	hash   uint32 // rolling hash of src[pos:pos+3]

	head [hashSize]int
	link [windowSize]int
}

// reset prepares the finder for a new source and indexes position 0.
func (f *matchFinder) reset(src []byte, minRun, maxRun int) {
	f.src = src
	f.minRun = minRun
	f.maxRun = maxRun
	f.pos = 0
	f.hash = 0

	for i := range f.head {
		f.head[i] = noPosition
	}
	for i := range f.link {
		f.link[i] = noPosition
	}

	// Prime the hash with the first two bytes; index() feeds the third.
	for i := 0; i < keyBytes-1 && i < len(src); i++ {
		f.hash = (f.hash<<hashShift ^ uint32(src[i])) & hashMask
	}
	f.index(0)
}

// index adds position p to its hash chain. Positions without three bytes
// left are never indexed, so their link slots hold only stale entries.
func (f *matchFinder) index(p int) {
	if p+keyBytes > len(f.src) {
		return
	}

	f.hash = (f.hash<<hashShift ^ uint32(f.src[p+keyBytes-1])) & hashMask
	f.link[p&windowMask] = f.head[f.hash]
	f.head[f.hash] = p
}

// advance moves the cursor forward by n bytes, indexing every position it passes.
func (f *matchFinder) advance(n int) {
	end := min(f.pos+n, len(f.src))
	for p := f.pos + 1; p <= end; p++ {
		f.index(p)
	}
	f.pos = end
}

// findLongestMatch returns the longest earlier occurrence of the bytes at the
// cursor, or false when nothing of at least minRun bytes lies in the window.
func (f *matchFinder) findLongestMatch() (match, bool) {
	maxLen := min(f.maxRun, len(f.src)-f.pos)
	if maxLen < f.minRun {
		return match{}, false
	}

	target := f.src[f.pos : f.pos+maxLen]
	minPos := f.pos - min(f.pos, windowSize)
	best := match{pos: noPosition, length: f.minRun - 1}

	// The cursor heads its own chain; its link is the newest earlier candidate.
	candidate := f.link[f.pos&windowMask]
	for candidate >= minPos {
		n := commonPrefixLen(target, f.src[candidate:candidate+maxLen])
		if n > best.length {
			best = match{pos: candidate, length: n}
			if n >= maxLen {
				break
			}
		}

		// A slot reused by a newer position breaks monotonic order; stop there.
		next := f.link[candidate&windowMask]
		if next >= candidate {
			break
		}
		candidate = next
	}

	if best.length < f.minRun {
		return match{}, false
	}

	return best, true
}
