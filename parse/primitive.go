package parse

import (
	"errors"
	"fmt"

	"github.com/jmikkola/parsercombinator/text"
)

type charParser struct {
	ch rune
}

// Char matches exactly the rune ch and produces it.
func Char(ch rune) Parser {
	return charParser{ch: ch}
}

func (p charParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	ch, next, err := t.ReadAt(cur)
	if err != nil {
		return nil, cur, err
	}
	if ch != p.ch {
		return nil, cur, ErrNoMatch
	}
	return ch, next, nil
}

type predicateParser struct {
	pred func(rune) bool
}

// Predicate matches any rune accepted by pred and produces it.
func Predicate(pred func(rune) bool) Parser {
	return predicateParser{pred: pred}
}

func (p predicateParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	ch, next, err := t.ReadAt(cur)
	if err != nil {
		return nil, cur, err
	}
	if !p.pred(ch) {
		return nil, cur, ErrNoMatch
	}
	return ch, next, nil
}

type rangeParser struct {
	lo, hi rune
}

// Range matches any rune in the inclusive range [lo, hi] and produces it.
// It panics if lo > hi.
func Range(lo, hi rune) Parser {
	if lo > hi {
		panic(fmt.Sprintf("parse.Range: lo %q > hi %q", lo, hi))
	}
	return rangeParser{lo: lo, hi: hi}
}

func (p rangeParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	ch, next, err := t.ReadAt(cur)
	if err != nil {
		return nil, cur, err
	}
	if ch < p.lo || ch > p.hi {
		return nil, cur, ErrNoMatch
	}
	return ch, next, nil
}

type endParser struct{}

// End matches only the end of the input and produces an empty string. It is
// the one recognizer that treats exhaustion as success; when a rune is still
// available it fails with ErrNoMatch.
func End() Parser {
	return endParser{}
}

func (endParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	_, _, err := t.ReadAt(cur)
	if errors.Is(err, ErrEndOfText) {
		return "", cur, nil
	}
	if err != nil {
		return nil, cur, err
	}
	return nil, cur, ErrNoMatch
}

type epsilonParser struct{}

// Epsilon always succeeds, consumes nothing, and produces nil. It is the
// zero of Alternative: Optional(p) is Alternative(p, Epsilon()).
func Epsilon() Parser {
	return epsilonParser{}
}

func (epsilonParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	return nil, cur, nil
}
