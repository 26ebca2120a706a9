// SPDX-License-Identifier: MIT

package grid

// Map returns a new Grid of the same shape with f applied to every element.
// MAIN DESCRIPTION:
//   - Pure element-wise transform; the receiver is not modified.
//
// Behavior highlights:
//   - f is called exactly once per element, in row-major order.
//   - Each call allocates its own result, so results of repeated calls are
//     independent of each other.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
func (g *Grid[T]) Map(f func(T) T) *Grid[T] {
	return Transform(g, f)
}

// Transform is Map across element types: it builds a Grid[U] of g's shape where
// every element is f applied to the corresponding element of g.
// It is a function rather than a method because methods cannot declare type parameters.
func Transform[T, U any](g *Grid[T], f func(T) U) *Grid[U] {
	out := &Grid[U]{r: g.r, c: g.c, data: make([]U, len(g.data))}
	for k, v := range g.data {
		out.data[k] = f(v)
	}

	return out
}
