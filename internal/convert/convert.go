// Package convert wires capture files to the decoders and writes the
// resulting event stream as JSON.
package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"termcast/pkg/capture"
	"termcast/pkg/events"
)

// Timing decodes a timing-log capture: the timing file plus its paired raw
// output file.
func Timing(timingPath, outputPath string) (events.Stream, error) {
	timing, err := os.Open(timingPath)
	if err != nil {
		return nil, fmt.Errorf("opening timing log: %w", err)
	}
	defer timing.Close()

	output, err := os.Open(outputPath)
	if err != nil {
		return nil, fmt.Errorf("opening raw output: %w", err)
	}
	defer output.Close()

	return capture.DecodeTiming(timing, output)
}

// TTYRec decodes a ttyrec capture file.
func TTYRec(path string) (events.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ttyrec capture: %w", err)
	}
	return capture.DecodeTTYRec(data)
}

// Capture decodes the single-file capture at path, sniffing the format from
// the file contents when format is capture.FormatUnknown. Timing captures
// cannot be decoded from a single file: the caller must pair them with their
// raw output via Timing.
func Capture(path string, format capture.Format) (events.Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture: %w", err)
	}
	if format == capture.FormatUnknown {
		format = capture.Detect(data)
	}
	switch format {
	case capture.FormatTTYRec:
		return capture.DecodeTTYRec(data)
	case capture.FormatTiming:
		return nil, fmt.Errorf("%s looks like a timing log, which needs a paired raw output file", path)
	default:
		return nil, fmt.Errorf("%s: unrecognized capture format", path)
	}
}

// WriteJSON writes the stream as a JSON array of [text, offsetMillis] pairs,
// followed by a newline.
func WriteJSON(w io.Writer, stream events.Stream) error {
	if err := json.NewEncoder(w).Encode(stream); err != nil {
		return fmt.Errorf("encoding event stream: %w", err)
	}
	return nil
}

// WriteFile writes the stream as JSON to the given path.
func WriteFile(path string, stream events.Stream) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteJSON(f, stream); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
