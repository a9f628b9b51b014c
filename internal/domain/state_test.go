package domain

import "testing"

func TestParseState(t *testing.T) {
	for _, raw := range []string{"new", "active", "resolved", "closed", "removed"} {
		state, ok := ParseState(raw)
		if !ok {
			t.Fatalf("ParseState(%q): expected valid", raw)
		}
		if string(state) != raw {
			t.Fatalf("ParseState(%q): got %q", raw, state)
		}
	}

	if _, ok := ParseState("archived"); ok {
		t.Fatalf("ParseState accepted an unknown state")
	}
	if _, ok := ParseState(""); ok {
		t.Fatalf("ParseState accepted the empty string")
	}
}

func TestResponseString(t *testing.T) {
	if ResponseConflict.String() != "Conflict" {
		t.Fatalf("unexpected string for Conflict: %q", ResponseConflict.String())
	}
	if Response(99).String() != "Unknown" {
		t.Fatalf("out-of-range Response should stringify as Unknown")
	}
}
