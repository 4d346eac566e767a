// Package parse implements backtracking parser combinators over the
// cursor-addressed inputs of package text.
//
// Every recognizer implements the single-method Parser interface. A failed
// recognition is one of two kinds: ErrNoMatch when input was present but
// rejected, ErrEndOfText when the input was exhausted at the attempted read.
// Cursors are immutable values, so a failed branch never disturbs the
// position a sibling branch starts from; Alternative backtracks simply by
// handing each branch the same cursor it was given.
//
// Recognizer graphs are built once and are safe to share between concurrent
// parses, each running over its own Text and cursor chain.
package parse

import (
	"errors"

	"github.com/jmikkola/parsercombinator/text"
)

// ErrNoMatch reports input that was available but did not satisfy the
// recognizer.
var ErrNoMatch = errors.New("no match")

// ErrEndOfText is text.ErrEndOfText, re-exported so callers can classify
// failures without importing package text.
var ErrEndOfText = text.ErrEndOfText

// A Parser recognizes input at a cursor position. On success it returns the
// produced value and the cursor advanced past the consumed input. On failure
// it returns an error matching ErrNoMatch or ErrEndOfText and leaves the
// value and cursor meaningless.
type Parser interface {
	Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error)
}

// Parse runs p against t from the start of the input and returns the
// produced value. The final cursor is discarded; compose p with End to
// require full consumption.
func Parse(t text.Text, p Parser) (any, error) {
	value, _, err := p.Recognize(t, t.StartCursor())
	if err != nil {
		return nil, err
	}
	return value, nil
}

// ParseString wraps s in the default string-backed text and parses it.
func ParseString(s string, p Parser) (any, error) {
	return Parse(text.NewStringText(s), p)
}
