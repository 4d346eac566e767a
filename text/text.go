// Package text provides the cursor-addressed input abstraction consumed by
// the recognizers in package parse. A Text hands out immutable Cursor values;
// reading at the same cursor always yields the same rune and successor
// cursor, which is what makes backtracking safe.
package text

import (
	"errors"
	"unicode/utf8"
)

// ErrEndOfText reports a read at or past the end of the input.
var ErrEndOfText = errors.New("end of text")

// A Cursor is an immutable position in a Text. Cursors are plain values:
// copying one is cheap and a failed parse attempt can never disturb the
// cursor a sibling branch starts from. The zero value is the start of any
// text.
type Cursor struct {
	offset int
}

// At returns a cursor positioned at the given byte offset.
func At(offset int) Cursor {
	return Cursor{offset: offset}
}

// Offset returns the byte offset of the cursor.
func (c Cursor) Offset() int {
	return c.offset
}

// Text is a source of input runes addressed by cursor.
type Text interface {
	// StartCursor returns the cursor for the first rune of the input.
	StartCursor() Cursor

	// ReadAt returns the rune at the cursor and a cursor advanced past it.
	// It returns ErrEndOfText when the cursor is at or past the end of the
	// input. Reading twice at the same cursor yields the same result.
	ReadAt(cur Cursor) (rune, Cursor, error)
}

// StringText is the in-memory string-backed Text. Runes are decoded from
// UTF-8 at the cursor's byte offset, so cursors advance by rune width.
type StringText struct {
	s string
}

// NewStringText wraps s in a StringText.
func NewStringText(s string) *StringText {
	return &StringText{s: s}
}

func (t *StringText) StartCursor() Cursor {
	return Cursor{}
}

func (t *StringText) ReadAt(cur Cursor) (rune, Cursor, error) {
	if cur.offset >= len(t.s) {
		return 0, cur, ErrEndOfText
	}
	r, size := utf8.DecodeRuneInString(t.s[cur.offset:])
	return r, Cursor{offset: cur.offset + size}, nil
}
