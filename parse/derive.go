package parse

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/jmikkola/parsercombinator/text"
)

// String matches the literal string s rune by rune and produces s.
func String(s string) Parser {
	chars := make([]Parser, 0, len(s))
	for _, ch := range s {
		chars = append(chars, Char(ch))
	}
	return Join(Sequence(chars...))
}

// Optional matches zero or one occurrence of p, producing p's value or nil.
func Optional(p Parser) Parser {
	return Alternative(p, Epsilon())
}

// Many1 matches one or more occurrences of p, producing the slice of
// results. It fails if and only if p fails on the first attempt, with that
// attempt's failure kind.
func Many1(p Parser) Parser {
	seq := Sequence(p, Many(p))
	return Apply(seq, func(v any) any {
		parts := v.([]any)
		rest := parts[1].([]any)
		results := make([]any, 0, 1+len(rest))
		results = append(results, parts[0])
		return append(results, rest...)
	})
}

// SeparatedBy1 matches one or more occurrences of p separated by sep,
// producing the flattened slice of p's results. Separator results are
// discarded. A trailing separator with no following p is left unconsumed.
func SeparatedBy1(p, sep Parser) Parser {
	seq := Sequence(p, Many(Sequence(sep, p)))
	return Apply(seq, func(v any) any {
		parts := v.([]any)
		pairs := parts[1].([]any)
		results := make([]any, 0, 1+len(pairs))
		results = append(results, parts[0])
		for _, pair := range pairs {
			results = append(results, pair.([]any)[1])
		}
		return results
	})
}

// OneOf matches any single rune of chars and produces it. Order determines
// try order, which only matters if the runes are not distinct.
func OneOf(chars string) Parser {
	parsers := make([]Parser, 0, len(chars))
	for _, ch := range chars {
		parsers = append(parsers, Char(ch))
	}
	return Alternative(parsers...)
}

// Join collapses p's result into a single string. Runes and strings are
// concatenated, slices are joined element-wise, nil is skipped.
func Join(p Parser) Parser {
	return Apply(p, func(v any) any {
		var sb strings.Builder
		writeJoined(&sb, v)
		return sb.String()
	})
}

func writeJoined(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
	case rune:
		sb.WriteRune(x)
	case string:
		sb.WriteString(x)
	case []any:
		for _, item := range x {
			writeJoined(sb, item)
		}
	default:
		fmt.Fprintf(sb, "%v", x)
	}
}

// Digit matches a single decimal digit rune.
func Digit() Parser {
	return Predicate(unicode.IsDigit)
}

// Letter matches a single letter rune.
func Letter() Parser {
	return Predicate(unicode.IsLetter)
}

// Whitespace matches a single whitespace rune.
func Whitespace() Parser {
	return Predicate(unicode.IsSpace)
}

// Digits1 matches one or more digits and produces them as one string.
func Digits1() Parser {
	return Join(Many1(Digit()))
}

// Letters1 matches one or more letters and produces them as one string.
func Letters1() Parser {
	return Join(Many1(Letter()))
}

// Spaces1 matches one or more whitespace runes and produces them as one
// string.
func Spaces1() Parser {
	return Join(Many1(Whitespace()))
}

type lazyParser struct {
	once  sync.Once
	build func() Parser
	p     Parser
}

// Lazy defers building a parser until it is first used, so recursive
// grammars can reference rules that are not constructed yet. The build
// function runs once.
func Lazy(build func() Parser) Parser {
	return &lazyParser{build: build}
}

func (l *lazyParser) Recognize(t text.Text, cur text.Cursor) (any, text.Cursor, error) {
	l.once.Do(func() {
		l.p = l.build()
	})
	return l.p.Recognize(t, cur)
}
