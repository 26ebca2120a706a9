// SPDX-License-Identifier: MIT

// Package grid - row and column concatenation.
//
// The receiver's size in the non-growing dimension is authoritative:
//   - AppendRows keeps g.Cols(); other may be wider (extra columns are dropped)
//     but not narrower.
//   - AppendCols keeps g.Rows(); other may be taller (extra rows are dropped)
//     but not shorter.
//
// A too-small operand returns ErrDimensionMismatch rather than inventing values.

package grid

// AppendRows returns a new (g.Rows()+other.Rows())×g.Cols() Grid holding g's rows
// followed by other's rows.
//
// Errors:
//   - ErrNilGrid when other is nil.
//   - ErrDimensionMismatch when other.Cols() < g.Cols().
//
// Complexity: O((r1+r2)*c).
func (g *Grid[T]) AppendRows(other *Grid[T]) (*Grid[T], error) {
	if other == nil {
		return nil, gridErrorf(ctxAppendRows, g.r, g.c, ErrNilGrid)
	}
	if other.c < g.c {
		return nil, shapeErrorf(ctxAppendRows, g.r, g.c, other.r, other.c, ErrDimensionMismatch)
	}

	out := &Grid[T]{r: g.r + other.r, c: g.c, data: make([]T, (g.r+other.r)*g.c)}
	copy(out.data, g.data) // receiver rows are contiguous and already the right width
	base := len(g.data)
	for i := 0; i < other.r; i++ {
		src := i * other.c
		copy(out.data[base+i*g.c:base+(i+1)*g.c], other.data[src:src+g.c])
	}

	return out, nil
}

// AppendCols returns a new g.Rows()×(g.Cols()+other.Cols()) Grid where each row
// holds g's row followed by the matching row of other.
//
// Errors:
//   - ErrNilGrid when other is nil.
//   - ErrDimensionMismatch when other.Rows() < g.Rows().
//
// Complexity: O(r*(c1+c2)).
func (g *Grid[T]) AppendCols(other *Grid[T]) (*Grid[T], error) {
	if other == nil {
		return nil, gridErrorf(ctxAppendCols, g.r, g.c, ErrNilGrid)
	}
	if other.r < g.r {
		return nil, shapeErrorf(ctxAppendCols, g.r, g.c, other.r, other.c, ErrDimensionMismatch)
	}

	w := g.c + other.c
	out := &Grid[T]{r: g.r, c: w, data: make([]T, g.r*w)}
	for i := 0; i < g.r; i++ {
		dst := out.data[i*w : (i+1)*w]
		copy(dst[:g.c], g.data[i*g.c:(i+1)*g.c])
		copy(dst[g.c:], other.data[i*other.c:(i+1)*other.c])
	}

	return out, nil
}
