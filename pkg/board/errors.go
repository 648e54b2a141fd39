package board

import (
	"errors"
	"fmt"
)

// Board errors.
var (
	ErrNotFound    = errors.New("image not found")
	ErrParse       = errors.New("malformed board file")
	ErrUnencodable = errors.New("entry cannot be written to a board file")
)

// ParseError reports a line of the text format that could not be parsed.
// It unwraps to ErrParse.
type ParseError struct {
	Line   int    // 1-based line number.
	Text   string // Raw line content.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// EncodeError reports an entry the text format cannot represent.
// It unwraps to ErrUnencodable.
type EncodeError struct {
	Category string // Key of the category holding the entry.
	Item     string // Item key; meaningful only when IsItem is set.
	IsItem   bool   // The item line is at fault rather than the header.
	Reason   string
}

func (e *EncodeError) Error() string {
	if !e.IsItem {
		return fmt.Sprintf("category %q: %s", e.Category, e.Reason)
	}
	return fmt.Sprintf("item %q in category %q: %s", e.Item, e.Category, e.Reason)
}

func (e *EncodeError) Unwrap() error {
	return ErrUnencodable
}
