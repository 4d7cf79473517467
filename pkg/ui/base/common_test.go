package base

import "testing"

func TestPadString(t *testing.T) {
	if got := PadString("ab", 5); got != "ab   " {
		t.Errorf("PadString() = %q", got)
	}
	if got := PadString("abcdef", 3); got != "abcdef" {
		t.Errorf("PadString() = %q", got)
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("abcdef", 5); got != "ab..." {
		t.Errorf("TruncateString() = %q", got)
	}
	if got := TruncateString("ab", 5); got != "ab" {
		t.Errorf("TruncateString() = %q", got)
	}
}
