package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Text format markers.
const (
	itemPrefix = ">"
	fieldSep   = " "
)

// maxLineSize bounds a single line of the text format.
const maxLineSize = 1 << 20

// Decode parses the text format into a new board at home.
//
// Each category is a header line "<image> <name>", followed by zero or more
// item lines ">image text" that belong to the most recent header. Fields are
// split on the first space, so names and texts may contain spaces. Blank
// lines are ignored. Any other malformed line fails the whole decode with a
// *ParseError.
func Decode(r io.Reader, opts ...Option) (*Board, error) {
	b := New(opts...)

	var current *Category
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		isItem := strings.HasPrefix(line, itemPrefix)
		key, value, ok := strings.Cut(strings.TrimPrefix(line, itemPrefix), fieldSep)
		switch {
		case !ok:
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "missing separator"}
		case key == "":
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "empty image location"}
		case isItem && current == nil:
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "item before any category"}
		case isItem:
			current.AddItem(key, value)
		default:
			current = b.addCategory(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}
	return b, nil
}

// Encode writes the categories of b in the text format. The cursor is not
// written. Every entry is checked before anything is written; an entry the
// format cannot represent fails the encode with an *EncodeError.
func Encode(w io.Writer, b *Board) error {
	if err := checkBoard(b); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	err := b.Walk(func(imageLoc string, cat *Category) error {
		if _, err := fmt.Fprintf(bw, "%s%s%s\n", imageLoc, fieldSep, cat.Name()); err != nil {
			return err
		}
		for _, item := range cat.items.keys {
			text, _ := cat.items.get(item)
			if _, err := fmt.Fprintf(bw, "%s%s%s%s\n", itemPrefix, item, fieldSep, text); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing board: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing board: %w", err)
	}
	return nil
}

// CheckCategory reports whether a category header with this key and name
// can be written and read back unchanged.
func CheckCategory(imageLoc, name string) error {
	if reason := entryProblem(imageLoc, name); reason != "" {
		return &EncodeError{Category: imageLoc, Reason: reason}
	}
	if strings.HasPrefix(imageLoc, itemPrefix) {
		return &EncodeError{Category: imageLoc, Reason: "category image starts with " + strconv.Quote(itemPrefix)}
	}
	return nil
}

// CheckItem reports whether an item line with this key and text can be
// written and read back unchanged.
func CheckItem(imageLoc, text string) error {
	if reason := entryProblem(imageLoc, text); reason != "" {
		return &EncodeError{Item: imageLoc, IsItem: true, Reason: reason}
	}
	return nil
}

// entryProblem describes why key and value cannot form one line, or
// returns the empty string.
func entryProblem(key, value string) string {
	switch {
	case strings.TrimSpace(key) == "":
		return "empty image location"
	case strings.Contains(key, fieldSep):
		return "image location contains a space"
	case strings.ContainsAny(key, "\r\n"):
		return "image location contains a line break"
	case strings.ContainsAny(value, "\r\n"):
		return "text contains a line break"
	case len(itemPrefix)+len(key)+len(fieldSep)+len(value) >= maxLineSize:
		return "line too long"
	}
	return ""
}

func checkBoard(b *Board) error {
	return b.Walk(func(imageLoc string, cat *Category) error {
		if err := CheckCategory(imageLoc, cat.Name()); err != nil {
			return err
		}
		for _, item := range cat.items.keys {
			text, _ := cat.items.get(item)
			if err := CheckItem(item, text); err != nil {
				var eerr *EncodeError
				if errors.As(err, &eerr) {
					eerr.Category = imageLoc
				}
				return err
			}
		}
		return nil
	})
}
