package events

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Quote escapes text for embedding inside a single-quoted string literal and
// wraps it in single quotes. Printable ASCII passes through unchanged; the
// single quote and backslash get a backslash prefix; every other character
// becomes \uXXXX escapes (two of them, a surrogate pair, above the Basic
// Multilingual Plane). The transform is pure and reversed exactly by Unquote.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\'':
			b.WriteString(`\'`)
		case r == '\\':
			b.WriteString(`\\`)
		case r >= 0x20 && r <= 0x7e:
			b.WriteRune(r)
		default:
			for _, u := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&b, `\u%04x`, u)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Unquote reverses Quote. It returns an error if the input is not a
// single-quoted literal of the exact form Quote produces.
func Unquote(q string) (string, error) {
	if len(q) < 2 || q[0] != '\'' || q[len(q)-1] != '\'' {
		return "", fmt.Errorf("not a single-quoted literal: %q", q)
	}
	body := q[1 : len(q)-1]

	var b strings.Builder
	var units []uint16 // pending UTF-16 units, so surrogate pairs decode together
	flush := func() {
		for _, r := range utf16.Decode(units) {
			b.WriteRune(r)
		}
		units = units[:0]
	}

	for i := 0; i < len(body); {
		if body[i] != '\\' {
			flush()
			b.WriteByte(body[i])
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", fmt.Errorf("dangling escape at end of literal %q", q)
		}
		switch body[i+1] {
		case '\'', '\\':
			flush()
			b.WriteByte(body[i+1])
			i += 2
		case 'u':
			if i+6 > len(body) {
				return "", fmt.Errorf("short \\u escape at index %d of %q", i, q)
			}
			v, err := strconv.ParseUint(body[i+2:i+6], 16, 16)
			if err != nil {
				return "", fmt.Errorf("bad \\u escape at index %d of %q: %w", i, q, err)
			}
			units = append(units, uint16(v))
			i += 6
		default:
			return "", fmt.Errorf("unknown escape \\%c at index %d of %q", body[i+1], i, q)
		}
	}
	flush()
	return b.String(), nil
}
