// SPDX-License-Identifier: MIT

// Package grid: functional configuration for text rendering (Format, Fprint).
// This file defines:
//   - FormatOption / formatOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions, the single resolver used by every rendering entry point.

package grid

// Alignment selects on which side of a cell the padding goes.
type Alignment int

const (
	// AlignRight pads on the left, like a stream field width.
	AlignRight Alignment = iota
	// AlignLeft pads on the right.
	AlignLeft
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAlign right-justifies every element within the field width.
	DefaultAlign = AlignRight

	// DefaultSeparator is written after every element, including the last one of a row.
	DefaultSeparator = " "

	// DefaultVerb is the fmt verb used to render a single element.
	DefaultVerb = "%v"

	// DefaultLeadingNewline emits a blank line before the first row.
	DefaultLeadingNewline = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicAlignInvalid = "grid: WithAlign: unknown alignment"
	panicVerbEmpty    = "grid: WithVerb: verb must not be empty"
)

// FormatOption mutates rendering options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type FormatOption func(*formatOptions)

// formatOptions stores the effective rendering configuration.
type formatOptions struct {
	align          Alignment
	sep            string
	verb           string
	leadingNewline bool
}

// WithAlign sets the padding side. Panics on values other than AlignRight/AlignLeft.
func WithAlign(a Alignment) FormatOption {
	if a != AlignRight && a != AlignLeft {
		panic(panicAlignInvalid)
	}

	return func(o *formatOptions) { o.align = a }
}

// WithSeparator sets the string written after every element. An empty separator is allowed.
func WithSeparator(sep string) FormatOption {
	return func(o *formatOptions) { o.sep = sep }
}

// WithVerb sets the fmt verb used per element, e.g. "%.2f" or "%q".
// Panics when verb is empty.
func WithVerb(verb string) FormatOption {
	if verb == "" {
		panic(panicVerbEmpty)
	}

	return func(o *formatOptions) { o.verb = verb }
}

// WithoutLeadingNewline suppresses the blank line before the first row.
func WithoutLeadingNewline() FormatOption {
	return func(o *formatOptions) { o.leadingNewline = false }
}

// gatherFormatOptions applies user setters on top of the defaults (last-writer-wins).
func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := formatOptions{
		align:          DefaultAlign,
		sep:            DefaultSeparator,
		verb:           DefaultVerb,
		leadingNewline: DefaultLeadingNewline,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
