package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Record is one instruction/output pair. Records are immutable once written.
type Record struct {
	Instruction string `json:"instruction"`
	Output      string `json:"output"`
}

// Encode renders a record as a Store entry: two-space indented JSON with
// HTML escaping off, terminated by a single newline.
func Encode(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	// Encoder.Encode terminates the value with "\n", which is the entry separator.
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses Store contents back into records. The Store is a stream of
// concatenated JSON objects, not one document, so it is read value by value.
// Objects with keys other than instruction/output are rejected.
func Decode(data []byte) ([]Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []Record
	for {
		var r Record
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("failed to decode record %d: %w", len(records)+1, err)
		}
		records = append(records, r)
	}
}
