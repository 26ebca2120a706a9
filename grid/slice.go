// SPDX-License-Identifier: MIT

package grid

// Slice copies the rectangle with top-left corner (i, j) and bottom-right corner
// (m, n), both inclusive, into a new Grid.
// MAIN DESCRIPTION:
//   - Copy-based sub-grid extraction; the result never aliases the receiver.
//
// Implementation:
//   - Stage 1: clamp the start corner into range.
//   - Stage 2: if the row range is inverted (i > m) or m is past the last row,
//     force m to Rows()-1; same rule for columns with j, n and Cols()-1.
//   - Stage 3: allocate (m-i+1)×(n-j+1) and copy each row segment.
//
// Behavior highlights:
//   - Never fails: invalid ranges degrade to "through the last row/column".
//   - Every call allocates; two results held at once are independent.
//
// Complexity:
//   - Time O(h*w) of the result, Space O(h*w).
func (g *Grid[T]) Slice(i, j, m, n int) *Grid[T] {
	i, j = clamp(i, g.r), clamp(j, g.c)
	if i > m || m >= g.r {
		m = g.r - 1
	}
	if j > n || n >= g.c {
		n = g.c - 1
	}

	h, w := m-i+1, n-j+1
	out := &Grid[T]{r: h, c: w, data: make([]T, h*w)}
	for ii := 0; ii < h; ii++ {
		src := (i+ii)*g.c + j // start of the segment in the source row
		copy(out.data[ii*w:(ii+1)*w], g.data[src:src+w])
	}

	return out
}
