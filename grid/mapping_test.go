package grid_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestMapIdentity checks that identity mapping yields an equal but distinct grid.
func TestMapIdentity(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	out := g.Map(func(v int) int { return v })
	require.True(t, grid.Equal(g, out))
	require.NotSame(t, g, out)

	*out.At(0, 0) = 50
	require.Equal(t, 1, g.Value(0, 0))
}

// TestMapFreshResults guards against a shared result buffer across calls.
func TestMapFreshResults(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	double := g.Map(func(v int) int { return v * 2 })
	square := g.Map(func(v int) int { return v * v })

	require.Empty(t, cmp.Diff([][]int{{2, 4}, {6, 8}}, double.ToRows()))
	require.Empty(t, cmp.Diff([][]int{{1, 4}, {9, 16}}, square.ToRows()))
	require.Empty(t, cmp.Diff([][]int{{1, 2}, {3, 4}}, g.ToRows()))
}

// TestMapOrder verifies f runs once per element in row-major order.
func TestMapOrder(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	var seen []int
	g.Map(func(v int) int {
		seen = append(seen, v)
		return v
	})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, seen)
}

// TestTransform maps across element types.
func TestTransform(t *testing.T) {
	g, err := grid.FromRows([][]int{{1, 22}, {333, 4}})
	require.NoError(t, err)

	s := grid.Transform(g, strconv.Itoa)
	require.Equal(t, 2, s.Rows())
	require.Equal(t, 2, s.Cols())
	require.Empty(t, cmp.Diff([][]string{{"1", "22"}, {"333", "4"}}, s.ToRows()))
}
