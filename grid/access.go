// SPDX-License-Identifier: MIT

// Package grid - element access.
//
// Two policies live side by side:
//   - Clamped (At, Value): out-of-range indices snap to the nearest valid
//     row/column and never fail. This is the historical behaviour callers rely on.
//   - Checked (Get, Set): out-of-range indices return ErrOutOfRange.
//
// Both go through a single offset helper per policy so bounds semantics never drift.

package grid

// clamp pins k into [0, n-1]. n must be > 0, which every constructor guarantees.
func clamp(k, n int) int {
	if k >= n {
		return n - 1
	}
	if k < 0 {
		return 0
	}

	return k
}

// clampedOffset maps (row, col) to a row-major offset after clamping both indices.
func (g *Grid[T]) clampedOffset(row, col int) int {
	return clamp(row, g.r)*g.c + clamp(col, g.c)
}

// checkedOffset maps (row, col) to a row-major offset or returns ErrOutOfRange.
func (g *Grid[T]) checkedOffset(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, ErrOutOfRange
	}

	return row*g.c + col, nil
}

// At returns a pointer to the element at (row, col), usable for both reads and writes.
// MAIN DESCRIPTION:
//   - Clamped access: row >= Rows() reads row Rows()-1, col >= Cols() reads
//     column Cols()-1, and negative indices read index 0.
//
// Behavior highlights:
//   - Never panics and never reports an error.
//   - At(5,1) and At(2,1) on a 3×3 grid return the same pointer.
//
// Notes:
//   - The pointer stays valid until the next Assign that reallocates the buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) At(row, col int) *T {
	return &g.data[g.clampedOffset(row, col)]
}

// Value returns a copy of the element at (row, col) using the same clamping as At.
func (g *Grid[T]) Value(row, col int) T {
	return g.data[g.clampedOffset(row, col)]
}

// InBounds reports whether (row, col) addresses an element without clamping.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.r && col >= 0 && col < g.c
}

// Get returns the element at (row, col) or ErrOutOfRange.
// The error is wrapped with the method name and coordinates.
func (g *Grid[T]) Get(row, col int) (T, error) {
	off, err := g.checkedOffset(row, col)
	if err != nil {
		var zero T
		return zero, gridErrorf(ctxGet, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange, leaving the grid untouched.
func (g *Grid[T]) Set(row, col int, v T) error {
	off, err := g.checkedOffset(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}
