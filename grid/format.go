// SPDX-License-Identifier: MIT

// Package grid - text rendering.
//
// Layout (defaults):
//
//	"\n" then, for every row, each element padded to width followed by " ", then "\n".
//
// Width counts terminal display cells, not bytes or runes, so wide (CJK, emoji)
// elements stay aligned. Elements wider than the field are written in full.
// The output is a presentation aid; there is no parser for it.

package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Format renders g as text with every element padded to width display cells.
// A width <= 0 disables padding. See the package-level layout note and FormatOption.
// Complexity: O(r*c) element renderings.
func Format[T any](g *Grid[T], width int, opts ...FormatOption) string {
	var b strings.Builder
	writeGrid(&b, g, width, gatherFormatOptions(opts...))

	return b.String()
}

// Fprint writes Format(g, width, opts...) to w and returns the bytes written.
func Fprint[T any](w io.Writer, g *Grid[T], width int, opts ...FormatOption) (int, error) {
	return io.WriteString(w, Format(g, width, opts...))
}

// String renders the grid with default options and no field width.
func (g *Grid[T]) String() string {
	return Format(g, 0)
}

// writeGrid is the single rendering loop shared by Format and Fprint.
func writeGrid[T any](b *strings.Builder, g *Grid[T], width int, o formatOptions) {
	if o.leadingNewline {
		b.WriteByte('\n')
	}
	for i := 0; i < g.r; i++ {
		base := i * g.c
		for j := 0; j < g.c; j++ {
			b.WriteString(pad(fmt.Sprintf(o.verb, g.data[base+j]), width, o.align))
			b.WriteString(o.sep)
		}
		b.WriteByte('\n')
	}
}

// pad fills s with spaces up to width display cells on the side chosen by align.
func pad(s string, width int, align Alignment) string {
	if width <= 0 {
		return s
	}
	if align == AlignLeft {
		return runewidth.FillRight(s, width)
	}

	return runewidth.FillLeft(s, width)
}
