// Package spmat is a sparse, coordinate-keyed 2D matrix library for Go.
//
// It is organized under two subpackages:
//
//	axis/   — slice-descriptor resolution: turn index or slice expressions
//	          (optionally negative, optionally stepped) into concrete
//	          (start, stop, step, len) iteration ranges.
//	sparse/ — the matrix itself: map-backed float64 storage with implicit
//	          zeros, high-water-mark shape tracking, O(1) transpose, and
//	          slice-driven bulk read/write (dense blocks and COO triples).
//
// Quick example:
//
//	m := sparse.New()
//	_ = m.Set(1, 2, 3.5)          // shape grows to (2, 3)
//	m.Transpose()                 // O(1): flips orientation, not storage
//	v, _ := m.Get(2, 1)           // 3.5
//	block, _ := m.ReadDense(axis.All(), axis.Span(0, 2))
//	_ = block
//
// The library is single-owner by design: no internal locking, no
// background work. Callers needing concurrent access must serialize it.
package spmat
