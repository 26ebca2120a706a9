package grid_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestFormat covers the default layout and every option.
func TestFormat(t *testing.T) {
	ints, err := grid.FromRows([][]int{{1, 2}, {30, 4}})
	require.NoError(t, err)

	cases := []struct {
		name  string
		width int
		opts  []grid.FormatOption
		want  string
	}{
		{"NoWidth", 0, nil, "\n1 2 \n30 4 \n"},
		{"RightAligned", 3, nil, "\n  1   2 \n 30   4 \n"},
		{"NarrowerThanValue", 1, nil, "\n1 2 \n30 4 \n"},
		{"LeftAligned", 3, []grid.FormatOption{grid.WithAlign(grid.AlignLeft)}, "\n1   2   \n30  4   \n"},
		{"Separator", 2, []grid.FormatOption{grid.WithSeparator("|")}, "\n 1| 2|\n30| 4|\n"},
		{"NoLeadingNewline", 0, []grid.FormatOption{grid.WithoutLeadingNewline()}, "1 2 \n30 4 \n"},
		{"Verb", 0, []grid.FormatOption{grid.WithVerb("%03d")}, "\n001 002 \n030 004 \n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, grid.Format(ints, tc.width, tc.opts...))
		})
	}
}

// TestFormatWideRunes checks padding is measured in display cells.
func TestFormatWideRunes(t *testing.T) {
	g, err := grid.FromRows([][]string{{"日本", "a"}})
	require.NoError(t, err)

	require.Equal(t, "\n 日本     a \n", grid.Format(g, 5))
}

// TestFprintAndString checks the writer variant and fmt.Stringer.
func TestFprintAndString(t *testing.T) {
	g, err := grid.FromRows([][]float64{{1.5, 2}, {3, 4.3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := grid.Fprint(&buf, g, 4, grid.WithVerb("%.1f"))
	require.NoError(t, err)
	want := "\n 1.5  2.0 \n 3.0  4.3 \n"
	require.Equal(t, want, buf.String())
	require.Equal(t, len(want), n)

	require.Equal(t, "\n1.5 2 \n3 4.3 \n", g.String())
}

// TestFormatOptionPanics verifies nonsensical option values panic at construction.
func TestFormatOptionPanics(t *testing.T) {
	require.Panics(t, func() { grid.WithVerb("") })
	require.Panics(t, func() { grid.WithAlign(grid.Alignment(9)) })
}
