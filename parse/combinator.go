package parse

import (
	"errors"

	"github.com/jmikkola/parsercombinator/text"
)

// retryable reports whether err is one of the two recognition failure
// kinds. Alternative and Many treat only these as "try something else";
// anything else is a defect in a recognizer and propagates.
func retryable(err error) bool {
	return errors.Is(err, ErrNoMatch) || errors.Is(err, ErrEndOfText)
}

type sequenceParser struct {
	parsers []Parser
}

// Sequence applies parsers in order, threading the cursor forward, and
// produces the ordered slice of their results. The first child failure is
// returned unchanged and nothing is consumed as far as the caller can tell,
// since the caller still holds its own cursor.
func Sequence(parsers ...Parser) Parser {
	return sequenceParser{parsers: parsers}
}

func (p sequenceParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	results := make([]any, 0, len(p.parsers))
	for _, child := range p.parsers {
		result, next, err := child.Recognize(t, cur)
		if err != nil {
			return nil, cur, err
		}
		results = append(results, result)
		cur = next
	}
	return results, cur, nil
}

type alternativeParser struct {
	parsers []Parser
}

// Alternative tries parsers in order, every branch starting from the same
// cursor, and returns the first success. Earlier branches win ties. When all
// branches fail, with either failure kind, it fails with ErrNoMatch.
func Alternative(parsers ...Parser) Parser {
	return alternativeParser{parsers: parsers}
}

func (p alternativeParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	for _, child := range p.parsers {
		result, next, err := child.Recognize(t, cur)
		if err == nil {
			return result, next, nil
		}
		if !retryable(err) {
			return nil, cur, err
		}
	}
	return nil, cur, ErrNoMatch
}

type manyParser struct {
	parser Parser
}

// Many applies parser zero or more times, producing the slice of collected
// results and the cursor after the last success. It stops on the first
// failure of either kind and never fails itself. The caller must not hand it
// a recognizer that can succeed without consuming input; Many does not
// detect zero-width loops.
func Many(parser Parser) Parser {
	return manyParser{parser: parser}
}

func (p manyParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	results := []any{}
	for {
		result, next, err := p.parser.Recognize(t, cur)
		if err != nil {
			if retryable(err) {
				return results, cur, nil
			}
			return nil, cur, err
		}
		results = append(results, result)
		cur = next
	}
}

type applyParser struct {
	parser Parser
	fn     func(any) any
}

// Apply runs parser and maps its result through fn, leaving the cursor
// untouched. Failures propagate unchanged. This is the sole mechanism for
// shaping raw rune sequences into typed values.
func Apply(parser Parser, fn func(any) any) Parser {
	return applyParser{parser: parser, fn: fn}
}

func (p applyParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	result, next, err := p.parser.Recognize(t, cur)
	if err != nil {
		return nil, cur, err
	}
	return p.fn(result), next, nil
}
