// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"github.com/katalvlaran/lvlgrid/grid"
	"gonum.org/v1/gonum/mat"
)

// ToMat copies g into a new gonum *mat.Dense of the same shape.
// Complexity: O(r*c).
func ToMat(g *grid.Grid[float64]) *mat.Dense {
	r, c := g.Shape()
	data := make([]float64, r*c) // mat.NewDense adopts this slice; it is ours alone
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = g.Value(i, j)
		}
	}

	return mat.NewDense(r, c, data)
}

// FromMat copies any gonum matrix into a new Grid[float64].
//
// Errors:
//   - grid.ErrNilGrid when m is nil.
//   - grid.ErrInvalidDimensions when m has no rows or no columns.
//
// Complexity: O(r*c) calls to m.At.
func FromMat(m mat.Matrix) (*grid.Grid[float64], error) {
	if m == nil {
		return nil, fmt.Errorf("converters.FromMat: %w", grid.ErrNilGrid)
	}
	r, c := m.Dims()
	g, err := grid.New[float64](r, c)
	if err != nil {
		return nil, fmt.Errorf("converters.FromMat: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			*g.At(i, j) = m.At(i, j)
		}
	}

	return g, nil
}
