package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jmikkola/parsercombinator/parse"
)

// Named recognizers available to the match and check commands.
var rules = map[string]func() parse.Parser{
	"digit":   parse.Digit,
	"digits":  parse.Digits1,
	"letter":  parse.Letter,
	"letters": parse.Letters1,
	"spaces":  parse.Spaces1,
	"bool": func() parse.Parser {
		return parse.Alternative(parse.String("true"), parse.String("false"))
	},
	"integer": func() parse.Parser {
		return parse.Join(parse.Sequence(
			parse.Optional(parse.Char('-')),
			parse.Digits1(),
		))
	},
	"word": func() parse.Parser {
		return parse.Join(parse.Many1(parse.Alternative(
			parse.Letter(),
			parse.Char('_'),
		)))
	},
	"intlist": func() parse.Parser {
		return parse.SeparatedBy1(parse.Digits1(), parse.Char(','))
	},
}

func lookupRule(name string) (parse.Parser, error) {
	build, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule %q (available: %s)",
			name, strings.Join(ruleNames(), ", "))
	}
	return build(), nil
}

func ruleNames() []string {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatValue renders a recognizer result for display: runes as characters,
// slices space-separated in brackets.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case rune:
		return string(x)
	case []any:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			parts = append(parts, formatValue(item))
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprint(x)
	}
}
