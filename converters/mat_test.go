package converters_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlgrid/converters"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestToMat checks shape, values and storage independence.
func TestToMat(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	m := converters.ToMat(g)
	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, m.At(1, 2))

	m.Set(0, 0, -1)
	require.Equal(t, 1.0, g.Value(0, 0))
}

// TestFromMat reads a transposed view back, exercising the generic mat.Matrix path.
func TestFromMat(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	g, err := converters.FromMat(d.T())
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]float64{{1, 4}, {2, 5}, {3, 6}}, g.ToRows()))

	_, err = converters.FromMat(nil)
	require.ErrorIs(t, err, grid.ErrNilGrid)

	_, err = converters.FromMat(&mat.Dense{}) // empty receiver, 0×0
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestRoundTripThroughGonum multiplies via gonum and checks the Grid result.
func TestRoundTripThroughGonum(t *testing.T) {
	a, err := grid.FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var prod mat.Dense
	prod.Mul(converters.ToMat(a), converters.ToMat(a))

	out, err := converters.FromMat(&prod)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff([][]float64{{7, 10}, {15, 22}}, out.ToRows()))
}
