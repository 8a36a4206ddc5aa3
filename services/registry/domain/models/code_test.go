package models

import (
	"strings"
	"testing"
)

func TestNewCode(t *testing.T) {
	t.Run("valid code", func(t *testing.T) {
		c, err := NewCode("TICKET-00142")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != "TICKET-00142" {
			t.Fatalf("expected %q, got %q", "TICKET-00142", c.String())
		}
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		c, err := NewCode("  abc123\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != "abc123" {
			t.Fatalf("expected %q, got %q", "abc123", c.String())
		}
	})

	t.Run("trimmed and untrimmed input produce the same code", func(t *testing.T) {
		a, _ := NewCode("xyz")
		b, _ := NewCode("  xyz  ")
		if a != b {
			t.Fatalf("expected equal codes, got %q and %q", a, b)
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		if _, err := NewCode(""); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("whitespace only returns error", func(t *testing.T) {
		if _, err := NewCode("   \t \n "); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("at QR capacity is valid", func(t *testing.T) {
		s := strings.Repeat("x", maxCodeLength)
		if _, err := NewCode(s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("over QR capacity returns error", func(t *testing.T) {
		s := strings.Repeat("x", maxCodeLength+1)
		if _, err := NewCode(s); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
