// Package capture decodes recorded terminal sessions into a replayable event
// stream. See doc.go for docs.
package capture

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Decode errors. Each of them aborts the whole decode; no partial event
// stream is returned alongside an error.
var (
	// ErrTruncated means a declared byte count or payload length extends past
	// the end of the available data.
	ErrTruncated = errors.New("truncated capture")

	// ErrMalformedTiming means a timing-log line did not parse as
	// "<float seconds> <int byte count>".
	ErrMalformedTiming = errors.New("malformed timing entry")

	// ErrMalformedHeader means a ttyrec record header was expected but fewer
	// than 12 bytes remain.
	ErrMalformedHeader = errors.New("malformed record header")
)

// decodeText converts raw payload bytes to a string, substituting U+FFFD for
// every byte that is not part of a valid UTF-8 sequence. Decoding never fails.
func decodeText(p []byte) string {
	if utf8.Valid(p) {
		return string(p)
	}
	var b strings.Builder
	b.Grow(len(p))
	for len(p) > 0 {
		r, size := utf8.DecodeRune(p)
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.Write(p[:size])
		}
		p = p[size:]
	}
	return b.String()
}
