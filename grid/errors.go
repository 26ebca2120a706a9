// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Public operations return these sentinels (optionally wrapped with method and
// coordinate context via %w); tests MUST match them with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrNonRectangular indicates that an input [][]T has rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Only the checked accessors (Get/Set) report it; At clamps instead.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrDimensionMismatch indicates that an appended grid is too small in the
	// non-authoritative dimension (columns for AppendRows, rows for AppendCols).
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNilGrid indicates that a nil *Grid was passed as an argument.
	ErrNilGrid = errors.New("grid: nil grid")
)

// Method tags used in error wrappers.
const (
	ctxGet        = "Get"
	ctxSet        = "Set"
	ctxAssign     = "Assign"
	ctxAppendRows = "AppendRows"
	ctxAppendCols = "AppendCols"
)

// gridErrorf wraps err with a uniform "Grid.<method>(row,col)" prefix.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// shapeErrorf wraps err with both operand shapes, e.g. "Grid.AppendRows(2x3,1x2)".
func shapeErrorf(method string, r1, c1, r2, c2 int, err error) error {
	return fmt.Errorf("Grid.%s(%dx%d,%dx%d): %w", method, r1, c1, r2, c2, err)
}
