// Package events defines the replayable event stream produced from a terminal
// capture.
//
// # Event Stream
//
// An event stream is an ordered sequence of (text, offset) pairs:
//
//   - text: one chunk of terminal output, escaped with Quote so it can be
//     embedded verbatim inside a single-quoted string literal
//   - offset: cumulative elapsed milliseconds since the start of the session
//
// The stream preserves capture order, and offsets are monotonically
// non-decreasing: the offset of each event is the running sum of the delays
// that preceded it, starting at 0.
//
// # Serialization
//
// A stream serializes as a JSON array of two-element arrays, preserving order
// and exact offsets:
//
//	[["'$ ls\u000d\u000a'", 0], ["'README.md\u000d\u000a'", 500]]
//
// This is the shape handed to rendering consumers, which combine it with the
// terminal dimensions recorded elsewhere.
//
// # Quoting
//
// Quote keeps printable ASCII as-is, escapes the single quote and backslash,
// and turns every other character into \uXXXX escapes (a surrogate pair for
// characters above the Basic Multilingual Plane). Unquote reverses the
// transform exactly.
package events
