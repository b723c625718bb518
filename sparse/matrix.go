package sparse

import "fmt"

// cell is the storage key: a fixed-size comparable coordinate pair, kept in
// the matrix's canonical (insertion) orientation.
type cell struct {
	r, c int
}

// Matrix is a sparse 2D matrix of float64 values keyed by coordinate.
//
// entries holds only explicitly written cells; every other coordinate reads
// as zero. maxRow/maxCol are high-water marks over the physical storage
// axes: the largest indices ever written, in post-swap coordinates, so they
// stay consistent with the transposed flag's interpretation regardless of
// when Transpose is called. They only grow (there is no delete).
type Matrix struct {
	entries    map[cell]float64
	maxRow     int
	maxCol     int
	transposed bool
}

// New returns an empty Matrix. Shape of a fresh matrix is (0, 0).
func New() *Matrix {
	return &Matrix{entries: make(map[cell]float64)}
}

// orient maps an external (row, col) coordinate onto the storage key.
// Every public access path composes through this single swap so that point,
// bulk, dense and sparse operations agree on orientation.
// Complexity: O(1).
func (m *Matrix) orient(row, col int) cell {
	if m.transposed {
		return cell{r: col, c: row}
	}

	return cell{r: row, c: col}
}

// boundsErrorf wraps ErrOutOfBounds with the method, offending index, its
// external axis number and the known size of that axis.
func boundsErrorf(method string, index, axisN, size int) error {
	return fmt.Errorf("Matrix.%s: index %d is out of bounds for axis %d with size %d: %w",
		method, index, axisN, size, ErrOutOfBounds)
}

// Set inserts or overwrites the value at the external coordinate
// (row, col). Writing at any non-negative coordinate is legal and grows the
// high-water marks as needed; negative indices fail with ErrOutOfBounds.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if row < 0 || col < 0 {
		rows, cols := m.Shape()
		if row < 0 {
			return boundsErrorf("Set", row, 0, rows)
		}

		return boundsErrorf("Set", col, 1, cols)
	}

	// Marks are updated in the same (post-swap) coordinate space as the
	// stored key, so they always describe the physical storage axes.
	k := m.orient(row, col)
	if k.r > m.maxRow {
		m.maxRow = k.r
	}
	if k.c > m.maxCol {
		m.maxCol = k.c
	}
	m.entries[k] = v

	return nil
}

// Get returns the value at the external coordinate (row, col).
//
// A stored cell returns its value. An absent cell first passes an advisory
// bounds check: an index beyond the high-water mark of its axis fails with
// ErrOutOfBounds naming the axis and its known size; within bounds the
// implicit zero is returned. "Legitimately zero" is therefore not an error.
// Complexity: O(1).
func (m *Matrix) Get(row, col int) (float64, error) {
	if row < 0 || col < 0 {
		rows, cols := m.Shape()
		if row < 0 {
			return 0, boundsErrorf("Get", row, 0, rows)
		}

		return 0, boundsErrorf("Get", col, 1, cols)
	}

	k := m.orient(row, col)
	if v, ok := m.entries[k]; ok {
		return v, nil
	}

	// Bounds are checked in storage space; the reported axis number is
	// translated back to the caller's orientation.
	if k.r > m.maxRow {
		axisN := 0
		if m.transposed {
			axisN = 1
		}

		return 0, boundsErrorf("Get", k.r, axisN, m.maxRow+1)
	}
	if k.c > m.maxCol {
		axisN := 1
		if m.transposed {
			axisN = 0
		}

		return 0, boundsErrorf("Get", k.c, axisN, m.maxCol+1)
	}

	return 0, nil
}

// Lookup reports the value at (row, col) and whether the cell was
// explicitly written. It performs no bounds check: any absent coordinate
// yields (0, false). This is how sparse extraction distinguishes "never
// written" from "present and zero".
// Complexity: O(1).
func (m *Matrix) Lookup(row, col int) (float64, bool) {
	v, ok := m.entries[m.orient(row, col)]

	return v, ok
}

// Shape returns the matrix extent as (rows, cols): high-water marks plus
// one, swapped when transposed. An empty matrix reports (0, 0) regardless
// of orientation.
// Complexity: O(1).
func (m *Matrix) Shape() (rows, cols int) {
	if len(m.entries) == 0 {
		return 0, 0
	}
	if m.transposed {
		return m.maxCol + 1, m.maxRow + 1
	}

	return m.maxRow + 1, m.maxCol + 1
}

// Transpose flips the orientation flag. Entries and high-water marks are
// untouched, so the operation is O(1) regardless of entry count; calling it
// twice restores the original orientation.
func (m *Matrix) Transpose() {
	m.transposed = !m.transposed
}

// Len returns the number of explicitly written cells.
// Complexity: O(1).
func (m *Matrix) Len() int {
	return len(m.entries)
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(n) in the number of explicit entries.
func (m *Matrix) Clone() *Matrix {
	entries := make(map[cell]float64, len(m.entries))
	for k, v := range m.entries {
		entries[k] = v
	}

	return &Matrix{
		entries:    entries,
		maxRow:     m.maxRow,
		maxCol:     m.maxCol,
		transposed: m.transposed,
	}
}

// String implements fmt.Stringer for debugging. It reports the shape and
// entry count, not the entries themselves (map order is not stable).
func (m *Matrix) String() string {
	rows, cols := m.Shape()

	return fmt.Sprintf("sparse.Matrix(%dx%d, %d entries)", rows, cols, len(m.entries))
}
