package id

import (
	"regexp"
	"testing"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		s := NewID32()
		if !reHex32.MatchString(s) {
			t.Fatalf("NewID32() = %q, not 32-char lowercase hex", s)
		}
	}
}

func TestNewID32_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		s := NewID32()
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate id %q", s)
		}
		seen[s] = struct{}{}
	}
}
