package capture

import (
	"bytes"
	"encoding/binary"
)

// Format represents the detected capture format
type Format string

const (
	FormatUnknown Format = "unknown"
	FormatTiming  Format = "timing"
	FormatTTYRec  Format = "ttyrec"
)

// Detect classifies a capture from its contents. It is a cheap heuristic for
// the "auto" conversion mode, not a validation pass: a positive result only
// means the data looks like the format, decoding can still fail later.
func Detect(data []byte) Format {
	if looksLikeTTYRec(data) {
		return FormatTTYRec
	}
	if looksLikeTiming(data) {
		return FormatTiming
	}
	return FormatUnknown
}

// looksLikeTTYRec checks whether data starts with a plausible ttyrec record
// header: non-negative seconds, microseconds below one second, and a payload
// length that fits inside the buffer.
func looksLikeTTYRec(data []byte) bool {
	if len(data) < recordHeaderSize {
		return false
	}
	secs := int32(binary.LittleEndian.Uint32(data))
	usecs := int32(binary.LittleEndian.Uint32(data[4:]))
	length := int32(binary.LittleEndian.Uint32(data[8:]))
	if secs < 0 || usecs < 0 || usecs >= 1000000 {
		return false
	}
	return length >= 0 && int64(length) <= int64(len(data)-recordHeaderSize)
}

// looksLikeTiming checks whether the first line of data parses as a timing
// entry.
func looksLikeTiming(data []byte) bool {
	line := data
	if i := bytes.IndexByte(data, '\n'); i != -1 {
		line = data[:i]
	}
	_, _, err := parseTimingLine(string(line))
	return err == nil
}
