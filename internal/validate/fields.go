// Package validate holds the field acceptance table used to gate every
// answer the prompt collector reads from the terminal.
package validate

import (
	"fmt"
	"regexp"
)

// Field is one entry of the acceptance table. The set of fields is closed:
// the only values are the package-level vars below.
type Field struct {
	name    string
	pattern *regexp.Regexp
}

var (
	// Menu accepts exactly "1" (create) or "2" (cancel).
	Menu = Field{name: "menu", pattern: regexp.MustCompile(`^[12]$`)}

	// UserPrompt accepts any text, including the empty string.
	UserPrompt = Field{name: "user_prompt", pattern: regexp.MustCompile(`^[\s\S]*$`)}

	// UserOutput accepts any text, including the empty string.
	UserOutput = Field{name: "user_output", pattern: regexp.MustCompile(`^[\s\S]*$`)}

	// Confirm accepts "y" or "n" in either case.
	Confirm = Field{name: "isAccept", pattern: regexp.MustCompile(`(?i)^[yn]$`)}
)

var table = []Field{Menu, UserPrompt, UserOutput, Confirm}

// Name returns the wire name of the field.
func (f Field) Name() string { return f.name }

// Pattern returns the source of the acceptance pattern.
func (f Field) Pattern() string { return f.pattern.String() }

// Accept reports whether input is acceptable for the field.
func (f Field) Accept(input string) bool {
	return f.pattern.MatchString(input)
}

func (f Field) String() string { return f.name }

// Fields returns the acceptance table in prompt order.
func Fields() []Field {
	out := make([]Field, len(table))
	copy(out, table)
	return out
}

// Lookup resolves a field by its wire name.
func Lookup(name string) (Field, bool) {
	for _, f := range table {
		if f.name == name {
			return f, true
		}
	}
	return Field{}, false
}

// MustLookup is Lookup for callers that only ever pass known names.
// An unknown name is a programming error and panics.
func MustLookup(name string) Field {
	f, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("validate: unknown field %q", name))
	}
	return f
}

// Check validates input against the field registered under name.
func Check(name, input string) bool {
	return MustLookup(name).Accept(input)
}
