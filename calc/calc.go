// Package calc evaluates integer arithmetic expressions. It is a worked
// client of package parse: the grammar below is built entirely from the
// exported combinators, with no extra parsing machinery.
//
//	expr   = term { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = integer | "(" expr ")" .
//
// Operators are left-associative and whitespace is allowed between tokens.
package calc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jmikkola/parsercombinator/parse"
)

// ErrDivideByZero reports division by zero during evaluation.
var ErrDivideByZero = errors.New("division by zero")

type node interface {
	eval() (int64, error)
}

type literal int64

func (l literal) eval() (int64, error) {
	return int64(l), nil
}

type binary struct {
	op       rune
	lhs, rhs node
}

func (b binary) eval() (int64, error) {
	lhs, err := b.lhs.eval()
	if err != nil {
		return 0, err
	}
	rhs, err := b.rhs.eval()
	if err != nil {
		return 0, err
	}

	switch b.op {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	case '*':
		return lhs * rhs, nil
	case '/':
		if rhs == 0 {
			return 0, ErrDivideByZero
		}
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("unknown operator %q", b.op)
}

var grammar = buildGrammar()

func buildGrammar() parse.Parser {
	var expr parse.Parser

	factor := parse.Alternative(
		integerLiteral(),
		parenthesized(parse.Lazy(func() parse.Parser { return expr })),
	)
	term := operatorChain(factor, "*/")
	expr = operatorChain(term, "+-")

	full := parse.Sequence(expr, parse.End())
	return parse.Apply(full, func(v any) any {
		return v.([]any)[0]
	})
}

// integerLiteral matches an optionally negated run of ASCII digits,
// surrounded by optional whitespace. Out-of-range literals saturate at the
// int64 bounds.
func integerLiteral() parse.Parser {
	digits := parse.Join(parse.Many1(parse.Range('0', '9')))
	seq := parse.Sequence(parse.Optional(parse.Char('-')), digits)
	return spaced(parse.Apply(seq, func(v any) any {
		parts := v.([]any)
		n, _ := strconv.ParseInt(parts[1].(string), 10, 64)
		if parts[0] != nil {
			n = -n
		}
		return node(literal(n))
	}))
}

func parenthesized(inner parse.Parser) parse.Parser {
	seq := parse.Sequence(spaced(parse.Char('(')), inner, spaced(parse.Char(')')))
	return parse.Apply(seq, func(v any) any {
		return v.([]any)[1]
	})
}

// operatorChain matches operand { op operand } and folds the results into a
// left-associative tree of binary nodes.
func operatorChain(operand parse.Parser, ops string) parse.Parser {
	tail := parse.Many(parse.Sequence(spaced(parse.OneOf(ops)), operand))
	seq := parse.Sequence(operand, tail)
	return parse.Apply(seq, func(v any) any {
		parts := v.([]any)
		lhs := parts[0].(node)
		for _, pv := range parts[1].([]any) {
			pair := pv.([]any)
			lhs = binary{op: pair[0].(rune), lhs: lhs, rhs: pair[1].(node)}
		}
		return lhs
	})
}

// spaced allows whitespace around p, producing only p's value.
func spaced(p parse.Parser) parse.Parser {
	ws := parse.Many(parse.Whitespace())
	seq := parse.Sequence(ws, p, ws)
	return parse.Apply(seq, func(v any) any {
		return v.([]any)[1]
	})
}

// Eval parses input as an arithmetic expression and evaluates it. The whole
// input must be consumed.
func Eval(input string) (int64, error) {
	result, err := parse.ParseString(input, grammar)
	if err != nil {
		return 0, fmt.Errorf("parse expression: %w", err)
	}
	return result.(node).eval()
}
