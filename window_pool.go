// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/nitrolz

package nitrolz

import "sync"

// matchFinderPool is a pool of match finders; their tables are too large to allocate per call.
var matchFinderPool = sync.Pool{
	New: func() any {
		return &matchFinder{}
	},
}

// acquireMatchFinder returns a finder reset over src with the given run bounds.
func acquireMatchFinder(src []byte, minRun, maxRun int) *matchFinder {
	f := matchFinderPool.Get().(*matchFinder)
	f.reset(src, minRun, maxRun)
	return f
}

// releaseMatchFinder drops the source reference and returns the finder to the pool.
func releaseMatchFinder(f *matchFinder) {
	if f == nil {
		return
	}

	f.src = nil
	matchFinderPool.Put(f)
}
