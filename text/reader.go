package text

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// BytesText is a Text backed by a byte slice. It exists alongside
// StringText to keep the Text interface honest: recognizers only ever see
// cursors, so new backing stores need no changes anywhere else.
type BytesText struct {
	data []byte
}

// NewBytesText wraps data in a BytesText. The slice must not be modified
// while a parse is in progress.
func NewBytesText(data []byte) *BytesText {
	return &BytesText{data: data}
}

func (t *BytesText) StartCursor() Cursor {
	return Cursor{}
}

func (t *BytesText) ReadAt(cur Cursor) (rune, Cursor, error) {
	if cur.offset >= len(t.data) {
		return 0, cur, ErrEndOfText
	}
	r, size := utf8.DecodeRune(t.data[cur.offset:])
	return r, Cursor{offset: cur.offset + size}, nil
}

// FromReader reads r to exhaustion and returns a Text over its contents.
func FromReader(r io.Reader) (Text, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return NewBytesText(data), nil
}
