// Package export converts a Store into JSON Lines datasets.
package export

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"regexadder/internal/store"
)

// Format selects the per-line record shape.
type Format string

const (
	// FormatChat writes {"messages":[{"role":"user",...},{"role":"assistant",...}]}.
	FormatChat Format = "chat"
	// FormatAlpaca writes {"instruction":...,"output":...} on one line.
	FormatAlpaca Format = "alpaca"
)

// ValidFormats lists all supported export formats.
var ValidFormats = []Format{FormatChat, FormatAlpaca}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range ValidFormats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid export format: %s (valid: %v)", name, ValidFormats)
}

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatLine struct {
	Messages []Message `json:"messages"`
}

// Stats reports what an export did.
type Stats struct {
	Read       int
	Written    int
	Duplicates int
}

// Write encodes records to w, one JSON object per line. Records whose
// instruction and output both repeat an earlier record are skipped.
func Write(w io.Writer, records []store.Record, format Format) (Stats, error) {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	stats := Stats{Read: len(records)}
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		key := hashRecord(r)
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		var v any
		switch format {
		case FormatChat:
			v = chatLine{Messages: []Message{
				{Role: "user", Content: r.Instruction},
				{Role: "assistant", Content: r.Output},
			}}
		case FormatAlpaca:
			v = r
		default:
			return stats, fmt.Errorf("invalid export format: %s", format)
		}
		if err := enc.Encode(v); err != nil {
			return stats, fmt.Errorf("failed to write record %d: %w", stats.Written+1, err)
		}
		stats.Written++
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush export: %w", err)
	}
	return stats, nil
}

// FromStore decodes everything in r and writes it to w.
func FromStore(r store.Reader, w io.Writer, format Format) (Stats, error) {
	data, err := r.ReadAll()
	if err != nil {
		return Stats{}, err
	}
	records, err := store.Decode(data)
	if err != nil {
		return Stats{}, err
	}
	return Write(w, records, format)
}

func hashRecord(r store.Record) string {
	h := sha256.New()
	io.WriteString(h, r.Instruction)
	h.Write([]byte{0})
	io.WriteString(h, r.Output)
	return hex.EncodeToString(h.Sum(nil))
}
