package utils

import "testing"

func TestRandomToken(t *testing.T) {
	tok := RandomToken(12)
	if len(tok) != 12 {
		t.Fatalf("len = %d, want 12", len(tok))
	}
	for _, c := range tok {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("token %q contains non-hex rune %q", tok, c)
		}
	}
	if RandomToken(12) == tok {
		t.Error("two tokens collided")
	}
	if got := RandomToken(100); len(got) != 32 {
		t.Errorf("oversized request len = %d, want capped at 32", len(got))
	}
}
