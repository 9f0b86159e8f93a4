package capture

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"termcast/pkg/events"
)

// DecodeTiming reads a script-style timing log together with its raw output
// stream and produces one event per timing line, in file order. The first
// line of the output stream is the capture header and is discarded.
func DecodeTiming(timing io.Reader, output io.Reader) (events.Stream, error) {
	out := bufio.NewReader(output)
	if err := discardHeaderLine(out); err != nil {
		return nil, err
	}

	var (
		stream events.Stream
		offset int64
	)
	scanner := bufio.NewScanner(timing)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		delay, count, err := parseTimingLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("timing line %d: %w", lineNo, err)
		}
		chunk := make([]byte, count)
		if _, err := io.ReadFull(out, chunk); err != nil {
			return nil, fmt.Errorf("timing line %d: %w: %d bytes declared but output exhausted", lineNo, ErrTruncated, count)
		}
		offset += delay
		stream = append(stream, events.Event{
			Text:         events.Quote(decodeText(chunk)),
			OffsetMillis: offset,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading timing log: %w", err)
	}
	return stream, nil
}

// parseTimingLine parses one "delay_seconds byte_count" line. The delay is
// converted to milliseconds by ceiling, so sub-millisecond delays still
// advance the offset.
func parseTimingLine(line string) (delayMillis int64, byteCount int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: want \"<seconds> <bytes>\", got %q", ErrMalformedTiming, line)
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || seconds < 0 {
		return 0, 0, fmt.Errorf("%w: bad delay %q", ErrMalformedTiming, fields[0])
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		return 0, 0, fmt.Errorf("%w: bad byte count %q", ErrMalformedTiming, fields[1])
	}
	return int64(math.Ceil(seconds * 1000)), count, nil
}

// discardHeaderLine drops the "Script started on ..." line that script(1)
// writes before any session bytes.
func discardHeaderLine(r *bufio.Reader) error {
	if _, err := r.ReadString('\n'); err != nil && err != io.EOF {
		return fmt.Errorf("discarding capture header: %w", err)
	}
	return nil
}
