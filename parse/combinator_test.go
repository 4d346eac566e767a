package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jmikkola/parsercombinator/text"
)

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func TestSequence(t *testing.T) {
	got, err := ParseString("abc", Sequence(Char('a'), Char('b'), Char('c')))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	want := []any{'a', 'b', 'c'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("value = %v, want %v", got, want)
	}
}

func TestSequenceShortCircuit(t *testing.T) {
	// The failure kind of the first failing child comes back unchanged.
	p := Sequence(Char('a'), Char('z'))
	if _, err := ParseString("ab", p); !errors.Is(err, ErrNoMatch) {
		t.Errorf("rejected second child = %v, want ErrNoMatch", err)
	}
	if _, err := ParseString("a", p); !errors.Is(err, ErrEndOfText) {
		t.Errorf("exhausted second child = %v, want ErrEndOfText", err)
	}
}

func TestSequenceConsumesExactPrefix(t *testing.T) {
	st := text.NewStringText("abcd")
	_, next, err := Sequence(Char('a'), Char('b')).Recognize(st, st.StartCursor())
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if next.Offset() != 2 {
		t.Errorf("cursor at offset %d, want 2", next.Offset())
	}
}

func TestAlternative(t *testing.T) {
	p := Alternative(Char('a'), Char('b'), Char('c'))

	got, err := ParseString("bcd", p)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if got != 'b' {
		t.Errorf("value = %q, want %q", got, 'b')
	}

	// Sequencing the same alternative twice picks a branch per position.
	got, err = ParseString("abc", Sequence(p, p))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	want := []any{'a', 'b'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("value = %v, want %v", got, want)
	}
}

func TestAlternativeRestartsFromOriginalCursor(t *testing.T) {
	// The first branch consumes 'a' before failing on 'b'; the second branch
	// must still see the input from the start.
	p := Alternative(
		Sequence(Char('a'), Char('b')),
		Sequence(Char('a'), Char('c')),
	)

	got, err := ParseString("ac", p)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	want := []any{'a', 'c'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("value = %v, want %v", got, want)
	}
}

func TestAlternativeOrderBreaksTies(t *testing.T) {
	first := Apply(Char('a'), func(any) any { return "first" })
	second := Apply(Char('a'), func(any) any { return "second" })

	got, err := ParseString("a", Alternative(first, second))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if got != "first" {
		t.Errorf("value = %v, want first branch to win", got)
	}
}

func TestAlternativeAllBranchesFail(t *testing.T) {
	if _, err := ParseString("x", Alternative(Char('a'), Char('b'))); !errors.Is(err, ErrNoMatch) {
		t.Errorf("rejected input = %v, want ErrNoMatch", err)
	}

	// Even exhaustion in every branch collapses to ErrNoMatch.
	if _, err := ParseString("", Alternative(Char('a'), Char('b'))); !errors.Is(err, ErrNoMatch) {
		t.Errorf("empty input = %v, want ErrNoMatch", err)
	}
}

func TestMany(t *testing.T) {
	p := Many(Predicate(isDigit))

	tests := []struct {
		input string
		want  []any
	}{
		{"123xyz", []any{'1', '2', '3'}},
		{"asdf", []any{}},
		{"", []any{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseString(tt.input, p)
			if err != nil {
				t.Fatalf("ParseString: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestManyStopsAtLastSuccess(t *testing.T) {
	st := text.NewStringText("123xyz")
	_, next, err := Many(Predicate(isDigit)).Recognize(st, st.StartCursor())
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}
	if next.Offset() != 3 {
		t.Errorf("cursor at offset %d, want 3", next.Offset())
	}
}

func TestApply(t *testing.T) {
	double := func(v any) any { return string(v.(rune)) + string(v.(rune)) }

	got, err := ParseString("a", Apply(Char('a'), double))
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	if got != "aa" {
		t.Errorf("value = %v, want %q", got, "aa")
	}
}

func TestApplyPropagatesFailure(t *testing.T) {
	called := false
	p := Apply(Char('a'), func(v any) any {
		called = true
		return v
	})

	if _, err := ParseString("z", p); !errors.Is(err, ErrNoMatch) {
		t.Errorf("rejected input = %v, want ErrNoMatch", err)
	}
	if _, err := ParseString("", p); !errors.Is(err, ErrEndOfText) {
		t.Errorf("empty input = %v, want ErrEndOfText", err)
	}
	if called {
		t.Error("transformation ran on a failed parse")
	}
}

func TestRecognizeIsDeterministic(t *testing.T) {
	p := Sequence(Many(Predicate(isDigit)), Char('x'))
	st := text.NewStringText("12x")
	start := st.StartCursor()

	v1, c1, err1 := p.Recognize(st, start)
	v2, c2, err2 := p.Recognize(st, start)
	if err1 != nil || err2 != nil {
		t.Fatalf("Recognize: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(v1, v2) || c1 != c2 {
		t.Errorf("repeated parse gave (%v, %d), want (%v, %d)",
			v2, c2.Offset(), v1, c1.Offset())
	}
}
