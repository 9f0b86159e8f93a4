package capture

import (
	"encoding/binary"
	"fmt"
	"math"

	"termcast/pkg/events"
)

// recordHeaderSize is the fixed ttyrec record header: three int32 fields.
const recordHeaderSize = 12

// DecodeTTYRec decodes a ttyrec capture: back-to-back records of three
// little-endian int32s (seconds, microseconds, payload length) followed by
// that many payload bytes. The first record establishes the time origin and
// lands at offset 0; every later record advances the offset by the difference
// between its absolute timestamp and the previous one.
func DecodeTTYRec(data []byte) (events.Stream, error) {
	var (
		stream  events.Stream
		offset  int64
		prevAbs int64
		first   = true
	)
	for pos := 0; pos < len(data); {
		if len(data)-pos < recordHeaderSize {
			return nil, fmt.Errorf("record at offset %d: %w: %d bytes remain, want %d",
				pos, ErrMalformedHeader, len(data)-pos, recordHeaderSize)
		}
		secs := int32(binary.LittleEndian.Uint32(data[pos:]))
		usecs := int32(binary.LittleEndian.Uint32(data[pos+4:]))
		length := int32(binary.LittleEndian.Uint32(data[pos+8:]))
		if length < 0 || int64(length) > int64(len(data)-pos-recordHeaderSize) {
			return nil, fmt.Errorf("record at offset %d: %w: payload of %d bytes extends past end of capture",
				pos, ErrTruncated, length)
		}
		pos += recordHeaderSize
		payload := data[pos : pos+int(length)]
		pos += int(length)

		abs := absMillis(secs, usecs)
		if first {
			first = false
		} else {
			offset += abs - prevAbs
		}
		prevAbs = abs

		stream = append(stream, events.Event{
			Text:         events.Quote(decodeText(payload)),
			OffsetMillis: offset,
		})
	}
	return stream, nil
}

// absMillis converts a record timestamp to milliseconds, ceiling the combined
// value the same way the timing-log delay conversion does.
func absMillis(secs, usecs int32) int64 {
	return int64(math.Ceil(float64(secs)*1000 + float64(usecs)/1000))
}
