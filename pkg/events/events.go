// Package events defines the replayable event stream produced from a terminal
// capture. See doc.go for docs.
package events

import (
	"encoding/json"
	"fmt"
)

// Event is one chunk of terminal output. Text is the chunk quoted for literal
// embedding (see Quote); OffsetMillis is the elapsed session time in
// milliseconds when the chunk appeared.
type Event struct {
	Text         string
	OffsetMillis int64
}

// Stream is an ordered sequence of events. Insertion order is chronological
// order and offsets never decrease.
type Stream []Event

// MarshalJSON encodes the event as a two-element array: [text, offsetMillis].
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Text, e.OffsetMillis})
}

// UnmarshalJSON decodes the [text, offsetMillis] pair form.
func (e *Event) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [text, offset] pair, got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.Text); err != nil {
		return fmt.Errorf("event text: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.OffsetMillis); err != nil {
		return fmt.Errorf("event offset: %w", err)
	}
	return nil
}

// MarshalJSON encodes the stream as an array of [text, offsetMillis] pairs.
// An empty stream encodes as [] rather than null.
func (s Stream) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal([]Event(s))
}
