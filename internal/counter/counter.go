// Package counter estimates how many records a Store file holds by pattern
// matching its raw text. The Store is not a single JSON document, so it is
// never parsed here.
package counter

import (
	"fmt"
	"os"
	"regexp"
)

// Pattern matches one serialized record, allowing any whitespace around the
// JSON punctuation. Values are matched lazily, so string contents containing
// `", "output": "` or `"}` can throw the count off.
var Pattern = regexp.MustCompile(`\{\s*"instruction"\s*:\s*".*?"\s*,\s*"output"\s*:\s*".*?"\s*\}`)

// Mode selects how the count is derived.
type Mode int

const (
	// ModeFragments counts the pieces left after splitting on Pattern.
	// For N back-to-back records that is N+1; an empty file gives 1.
	ModeFragments Mode = iota
	// ModeMatches counts Pattern matches: N records give N.
	ModeMatches
)

func (m Mode) String() string {
	switch m {
	case ModeFragments:
		return "fragments"
	case ModeMatches:
		return "matches"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Fragments splits data on Pattern and returns the number of pieces.
func Fragments(data string) int {
	return len(Pattern.Split(data, -1))
}

// Matches returns the number of non-overlapping Pattern matches in data.
func Matches(data string) int {
	return len(Pattern.FindAllStringIndex(data, -1))
}

// Count applies mode to data.
func Count(data string, mode Mode) int {
	if mode == ModeMatches {
		return Matches(data)
	}
	return Fragments(data)
}

// CountFile reads path in one bulk read and counts it.
func CountFile(path string, mode Mode) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count prompts: %w", err)
	}
	return Count(string(data), mode), nil
}
