package sparse_test

import (
	"testing"

	"github.com/katalvlaran/spmat/axis"
	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seeded returns a matrix with an established (rows, cols) extent, so that
// slice windows in the tests resolve against a known shape.
func seeded(t *testing.T, rows, cols int) *sparse.Matrix {
	t.Helper()
	m := sparse.New()
	require.NoError(t, m.Set(rows-1, cols-1, 0))

	return m
}

// TestSetCOO_LastWriteWins verifies repeated coordinates resolve to the
// value of the last occurrence in input order.
func TestSetCOO_LastWriteWins(t *testing.T) {
	m := sparse.New()
	err := m.SetCOO(
		[]int{0, 1, 0},
		[]int{0, 1, 0},
		[]float64{1.0, 2.0, 7.5},
	)
	require.NoError(t, err)

	v, err := m.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v, "last occurrence in ingestion order must win")
	assert.Equal(t, 2, m.Len())
}

// TestSetCOO_LengthMismatch verifies the parallel-slice arity check fires
// before any write.
func TestSetCOO_LengthMismatch(t *testing.T) {
	m := sparse.New()
	err := m.SetCOO([]int{0, 1}, []int{0}, []float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "(2, 1, 2)")
	assert.Zero(t, m.Len(), "mismatch must be detected before mutation")
}

// TestSetCOO_PartialWrites verifies that a mid-ingestion failure leaves the
// earlier writes in place (no rollback).
func TestSetCOO_PartialWrites(t *testing.T) {
	m := sparse.New()
	err := m.SetCOO([]int{0, -1, 2}, []int{0, 0, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, sparse.ErrOutOfBounds)

	v, getErr := m.Get(0, 0)
	require.NoError(t, getErr)
	assert.Equal(t, 1.0, v, "entries before the failing one must remain")
	assert.Equal(t, 1, m.Len(), "entries after the failing one must not apply")
}

// TestWriteDense_ReadDense_RoundTrip verifies a written block reads back
// exactly over the identical slice specs, for plain, negative and stepped
// windows.
func TestWriteDense_ReadDense_RoundTrip(t *testing.T) {
	cases := []struct {
		name             string
		rowSpec, colSpec axis.Spec
		block            [][]float64
	}{
		{
			"plain span",
			axis.Span(1, 3), axis.Span(0, 2),
			[][]float64{{1, 2}, {3, 4}},
		},
		{
			"negative bounds",
			axis.Span(-4, -1), axis.Span(-2, 5),
			[][]float64{{5, 6}, {7, 8}, {9, 10}},
		},
		{
			"stepped window",
			axis.Stepped(0, 5, 2), axis.Stepped(1, 5, 3),
			[][]float64{{1, 2}, {3, 4}, {5, 6}},
		},
		{
			"reversed rows",
			axis.All().By(-2), axis.Span(0, 2),
			[][]float64{{1, 2}, {3, 4}, {5, 6}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := seeded(t, 5, 5)
			require.NoError(t, m.WriteDense(tc.rowSpec, tc.colSpec, tc.block))

			got, err := m.ReadDense(tc.rowSpec, tc.colSpec)
			require.NoError(t, err)
			assert.Equal(t, tc.block, got)
		})
	}
}

// TestWriteDense_ShapeMismatch verifies a block whose dimensions differ
// from the resolved window is rejected before mutation.
func TestWriteDense_ShapeMismatch(t *testing.T) {
	m := seeded(t, 4, 4)
	err := m.WriteDense(axis.Span(0, 2), axis.Span(0, 2), [][]float64{{1, 2}})
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "(1, 2)")
	assert.Contains(t, err.Error(), "(2, 2)")
	assert.Equal(t, 1, m.Len(), "only the seed entry may exist after a rejected write")
}

// TestWriteDense_Ragged verifies ragged blocks are rejected before any
// shape comparison or write.
func TestWriteDense_Ragged(t *testing.T) {
	m := seeded(t, 4, 4)
	err := m.WriteDense(axis.Span(0, 2), axis.Span(0, 2), [][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, sparse.ErrRagged)
	assert.Equal(t, 1, m.Len())
}

// TestReadDense_BareIndexOutOfRange verifies an out-of-range bare index
// surfaces the store's bounds error rather than clamping.
func TestReadDense_BareIndexOutOfRange(t *testing.T) {
	m := seeded(t, 2, 3)
	_, err := m.ReadDense(axis.At(5), axis.All())
	require.ErrorIs(t, err, sparse.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "axis 0 with size 2")
}

// TestReadDense_AbsentCellsReadZero verifies dense extraction fills holes
// with zeros over the requested window.
func TestReadDense_AbsentCellsReadZero(t *testing.T) {
	m := sparse.New()
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(2, 2, 5))

	got, err := m.ReadDense(axis.All(), axis.All())
	require.NoError(t, err)
	want := [][]float64{
		{1, 0, 0},
		{0, 0, 0},
		{0, 0, 5},
	}
	assert.Equal(t, want, got)
}

// TestReadDense_EmptyMatrix verifies slicing an empty matrix yields an
// empty block, never an error.
func TestReadDense_EmptyMatrix(t *testing.T) {
	m := sparse.New()
	got, err := m.ReadDense(axis.All(), axis.All())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestReadCOO_PresentEntriesOnly verifies sparse extraction reports exactly
// the written cells inside the window, in row-major grid order.
func TestReadCOO_PresentEntriesOnly(t *testing.T) {
	m := seeded(t, 6, 6)
	require.NoError(t, m.Set(1, 1, 1.5))
	require.NoError(t, m.Set(1, 3, 0)) // explicit zero still counts as present
	require.NoError(t, m.Set(4, 2, -2))
	require.NoError(t, m.Set(5, 5, 9)) // outside the window below

	rows, cols, vals, err := m.ReadCOO(axis.Span(0, 5), axis.Span(0, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 4}, rows)
	assert.Equal(t, []int{1, 3, 2}, cols)
	assert.Equal(t, []float64{1.5, 0, -2}, vals)
}

// TestReadCOO_EmptyWindow verifies a window with no written cells yields
// three empty slices.
func TestReadCOO_EmptyWindow(t *testing.T) {
	m := seeded(t, 6, 6)
	rows, cols, vals, err := m.ReadCOO(axis.Span(0, 3), axis.Span(0, 3))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, cols)
	assert.Empty(t, vals)
}

// TestBulk_TransposedWindow verifies bulk operations observe the
// transposed orientation end to end.
func TestBulk_TransposedWindow(t *testing.T) {
	m := sparse.New()
	require.NoError(t, m.Set(0, 2, 3)) // shape (1, 3)
	m.Transpose()                      // shape (3, 1)

	got, err := m.ReadDense(axis.All(), axis.All())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0}, {0}, {3}}, got)

	rows, cols, vals, err := m.ReadCOO(axis.All(), axis.All())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, rows, "coordinates must be reported in the caller's orientation")
	assert.Equal(t, []int{0}, cols)
	assert.Equal(t, []float64{3}, vals)
}

// TestBulk_NilReceiver verifies the nil-receiver guard on every bulk entry
// point.
func TestBulk_NilReceiver(t *testing.T) {
	var m *sparse.Matrix
	assert.ErrorIs(t, m.SetCOO(nil, nil, nil), sparse.ErrNilMatrix)
	_, err := m.ReadDense(axis.All(), axis.All())
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
	assert.ErrorIs(t, m.WriteDense(axis.All(), axis.All(), nil), sparse.ErrNilMatrix)
	_, _, _, err = m.ReadCOO(axis.All(), axis.All())
	assert.ErrorIs(t, err, sparse.ErrNilMatrix)
}
