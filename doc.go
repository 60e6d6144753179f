// Package sformat renders template strings containing {...}
// replacement fields against a variadic argument list.
//
// The central entry points are [Format], [Write], and [MustFormat]:
//
//	s, err := sformat.Format("{} scored {:>5.1f}%", "ada", 97.25)
//	// "ada scored  97.2%"
//
// # Replacement Fields
//
// A field is an optional argument position followed by an optional
// colon-prefixed format spec:
//
//	{}        next argument, default rendering
//	{2}       third argument (positions are zero-based)
//	{:>8}     pad to 8 cells, right-aligned
//	{1:#06x}  second argument, hex with 0x prefix, zero-padded
//
// Fields without a position consume arguments left to right through an
// auto-advancing index. Explicit positions never advance that index,
// so both addressing modes can appear in one template.
//
// # Format Spec
//
// The spec follows the order fill, align, sign, '#', '0', width,
// precision, conversion:
//
//	[fill]["<" | ">" | "^" | "="] ["+" | "-" | " "] ["#"] ["0"]
//	[width] ["." precision] [conversion]
//
// A fill character is recognized only when immediately followed by an
// alignment symbol. "=" places fill between the sign and the digits
// and is valid only for numbers. "0" before the width is shorthand for
// fill "0" with "=" alignment. Width and precision may each be a digit
// run or a nested {N} reference naming another argument to supply the
// value at render time.
//
// Conversions: d, b, o, x, X for integers; e, E, f, F, g, G for
// floats; % multiplies by 100 and appends a percent sign; c renders an
// integer codepoint as its character; s selects string rendering; ?
// selects the debug form. An unrecognized conversion letter falls back
// to the generic rendering rather than failing. Width is a minimum
// measured in terminal display cells, never a cause of truncation.
// For strings, precision is a starting rune offset rather than a
// maximum length.
//
// # Composite Values
//
// Map arguments render through the pretty-printer, also available
// directly as [Pretty], [Dump], and [Fdump]:
//
//	sformat.Pretty(m)                          // {a = 1, b = 2,}
//	sformat.Pretty(m, sformat.WithIndent(2))   // one entry per line
//
// A composite containing itself renders "(self)" at the point of
// recursion. Entry order follows Go map iteration order and is not
// stable.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrMalformedField] — unmatched delimiter or unexpected character
//   - [ErrInvalidSpec] — options that conflict with the argument's kind
//   - [ErrTypeMismatch] — conversion letter with no meaning for the argument
//   - [ErrRange] — argument position or codepoint out of range
//   - [ErrArgument] — width/precision reference naming a non-numeric argument
//
// Any error aborts the whole Format call; there is no partial output.
package sformat
