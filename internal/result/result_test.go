package result

import "testing"

func TestOutcomeStringsAreDistinct(t *testing.T) {
	names := map[string]bool{}
	for _, o := range []Outcome{NoMatch, Match, Invalid} {
		s := o.String()
		if s == "" || s == "unknown" {
			t.Fatalf("Outcome(%d).String() = %q, want a distinct name", int(o), s)
		}
		if names[s] {
			t.Fatalf("two outcomes share the string %q", s)
		}
		names[s] = true
	}
}

func TestUnknownOutcomeStringFallsBack(t *testing.T) {
	if got := Outcome(99).String(); got != "unknown" {
		t.Fatalf("String() for an out-of-range Outcome = %q, want %q", got, "unknown")
	}
}
