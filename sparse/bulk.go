package sparse

import (
	"fmt"

	"github.com/katalvlaran/spmat/axis"
)

// SetCOO ingests entries from three parallel slices in coordinate form:
// rows[i], cols[i] receives vals[i] for each i, in input order.
//
// All three slices must have the same length; a mismatch fails with
// ErrShapeMismatch naming the lengths, before any write. Repeated
// coordinates follow map-overwrite semantics: the last occurrence in input
// order wins. A negative index surfaces ErrOutOfBounds mid-ingestion;
// writes applied before the failure remain (no rollback).
// Complexity: O(n) in the input length.
func (m *Matrix) SetCOO(rows, cols []int, vals []float64) error {
	if m == nil {
		return fmt.Errorf("Matrix.SetCOO: %w", ErrNilMatrix)
	}
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return fmt.Errorf("Matrix.SetCOO: rows, cols, vals lengths (%d, %d, %d) differ: %w",
			len(rows), len(cols), len(vals), ErrShapeMismatch)
	}

	for i := range vals {
		if err := m.Set(rows[i], cols[i], vals[i]); err != nil {
			return fmt.Errorf("Matrix.SetCOO: entry %d: %w", i, err)
		}
	}

	return nil
}

// ReadDense extracts the dense sub-block addressed by the two axis specs.
//
// Both specs resolve against the current Shape; the result has the resolved
// row count by column count, filled in row-major order over the resolved
// grid. Absent cells within bounds read 0; a bare out-of-range index
// surfaces ErrOutOfBounds from Get. Slice specs clamp, so they never fail
// on an empty or small matrix — the block is simply smaller or empty.
// Complexity: O(len(rows)*len(cols)) over the resolved window.
func (m *Matrix) ReadDense(rowSpec, colSpec axis.Spec) ([][]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("Matrix.ReadDense: %w", ErrNilMatrix)
	}
	rows, cols := m.Shape()
	rr, cr, err := axis.ResolvePair(rowSpec, colSpec, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("Matrix.ReadDense: %w", err)
	}

	out := make([][]float64, rr.Len)
	r := rr.Start
	for i := 0; i < rr.Len; i++ {
		out[i] = make([]float64, cr.Len)
		c := cr.Start
		for j := 0; j < cr.Len; j++ {
			v, err := m.Get(r, c)
			if err != nil {
				return nil, fmt.Errorf("Matrix.ReadDense: %w", err)
			}
			out[i][j] = v
			c += cr.Step
		}
		r += rr.Step
	}

	return out, nil
}

// WriteDense assigns the dense block over the window addressed by the two
// axis specs.
//
// The block must be rectangular (ErrRagged otherwise) and its dimensions
// must exactly equal the resolved window (ErrShapeMismatch naming got and
// want shapes). Both checks precede any mutation; the writes then apply in
// row-major order over the resolved grid.
// Complexity: O(len(rows)*len(cols)) over the resolved window.
func (m *Matrix) WriteDense(rowSpec, colSpec axis.Spec, block [][]float64) error {
	if m == nil {
		return fmt.Errorf("Matrix.WriteDense: %w", ErrNilMatrix)
	}
	rows, cols := m.Shape()
	rr, cr, err := axis.ResolvePair(rowSpec, colSpec, rows, cols)
	if err != nil {
		return fmt.Errorf("Matrix.WriteDense: %w", err)
	}

	blockCols := 0
	if len(block) > 0 {
		blockCols = len(block[0])
	}
	for i, row := range block {
		if len(row) != blockCols {
			return fmt.Errorf("Matrix.WriteDense: row %d has %d columns, row 0 has %d: %w",
				i, len(row), blockCols, ErrRagged)
		}
	}
	if len(block) != rr.Len || (rr.Len > 0 && blockCols != cr.Len) {
		return fmt.Errorf("Matrix.WriteDense: block shape (%d, %d) does not match window (%d, %d): %w",
			len(block), blockCols, rr.Len, cr.Len, ErrShapeMismatch)
	}

	r := rr.Start
	for i := 0; i < rr.Len; i++ {
		c := cr.Start
		for j := 0; j < cr.Len; j++ {
			if err := m.Set(r, c, block[i][j]); err != nil {
				return fmt.Errorf("Matrix.WriteDense: %w", err)
			}
			c += cr.Step
		}
		r += rr.Step
	}

	return nil
}

// ReadCOO extracts the explicitly written entries within the window
// addressed by the two axis specs, as three parallel slices in coordinate
// form.
//
// The resolved grid is probed in row-major order with Lookup, so cells that
// were never written are skipped while cells explicitly set to zero are
// reported. Coordinates in the output are external (caller-orientation)
// indices. The output length equals the count of present cells in the
// window, never the window size.
// Complexity: O(len(rows)*len(cols)) over the resolved window.
func (m *Matrix) ReadCOO(rowSpec, colSpec axis.Spec) (outRows, outCols []int, outVals []float64, err error) {
	if m == nil {
		return nil, nil, nil, fmt.Errorf("Matrix.ReadCOO: %w", ErrNilMatrix)
	}
	rows, cols := m.Shape()
	rr, cr, err := axis.ResolvePair(rowSpec, colSpec, rows, cols)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("Matrix.ReadCOO: %w", err)
	}

	r := rr.Start
	for i := 0; i < rr.Len; i++ {
		c := cr.Start
		for j := 0; j < cr.Len; j++ {
			if v, ok := m.Lookup(r, c); ok {
				outRows = append(outRows, r)
				outCols = append(outCols, c)
				outVals = append(outVals, v)
			}
			c += cr.Step
		}
		r += rr.Step
	}

	return outRows, outCols, outVals, nil
}
