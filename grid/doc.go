// SPDX-License-Identifier: MIT

// Package grid provides Grid[T], a generic fixed-size two-dimensional container.
//
// What & Why:
//
//	A Grid owns a single contiguous row-major buffer of rows*cols elements of any
//	type T. It offers clamped element access (out-of-range indices snap to the
//	last valid row/column), strict checked access, copy-based sub-grid
//	extraction, row/column concatenation, element-wise mapping and a
//	width-aligned text rendering.
//
// Ownership:
//
//	Every operation that returns a new Grid allocates fresh storage. Results
//	never alias the receiver or each other, so holding two results of Map or
//	Slice at the same time is always safe.
//
// Complexity:
//
//	Rows/Cols/At/Get/Set run in O(1). Clone, Slice, Map, Assign and the Append
//	family are O(r*c) in the size of the result.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation; synchronize externally.
package grid
