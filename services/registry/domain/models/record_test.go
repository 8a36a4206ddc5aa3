package models

import (
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	t.Run("captures creation instant once in UTC", func(t *testing.T) {
		before := time.Now().UTC()
		rec := NewRecord("abc", "Alice")
		after := time.Now().UTC()

		if rec.CreatedAt.Before(before) || rec.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v outside [%v, %v]", rec.CreatedAt, before, after)
		}
		if rec.CreatedAt.Location() != time.UTC {
			t.Fatalf("expected UTC, got %v", rec.CreatedAt.Location())
		}
	})

	t.Run("trims the name", func(t *testing.T) {
		rec := NewRecord("abc", "  Alice  ")
		if rec.Name != "Alice" {
			t.Fatalf("expected %q, got %q", "Alice", rec.Name)
		}
	})

	t.Run("blank name falls back to default", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			rec := NewRecord("abc", raw)
			if rec.Name != DefaultName {
				t.Fatalf("name %q: expected %q, got %q", raw, DefaultName, rec.Name)
			}
		}
	})
}

func TestRecord_Rename(t *testing.T) {
	t.Run("replaces the name", func(t *testing.T) {
		rec := NewRecord("abc", "Alice")
		if !rec.Rename("Bob") {
			t.Fatal("expected rename to succeed")
		}
		if rec.Name != "Bob" {
			t.Fatalf("expected %q, got %q", "Bob", rec.Name)
		}
	})

	t.Run("trims the new name", func(t *testing.T) {
		rec := NewRecord("abc", "Alice")
		rec.Rename("  Bob  ")
		if rec.Name != "Bob" {
			t.Fatalf("expected %q, got %q", "Bob", rec.Name)
		}
	})

	t.Run("blank name is rejected and record is unchanged", func(t *testing.T) {
		rec := NewRecord("abc", "Alice")
		if rec.Rename("   ") {
			t.Fatal("expected rename to fail")
		}
		if rec.Name != "Alice" {
			t.Fatalf("expected name unchanged, got %q", rec.Name)
		}
	})

	t.Run("does not touch CreatedAt", func(t *testing.T) {
		rec := NewRecord("abc", "Alice")
		created := rec.CreatedAt
		rec.Rename("Bob")
		if !rec.CreatedAt.Equal(created) {
			t.Fatalf("CreatedAt changed: %v → %v", created, rec.CreatedAt)
		}
	})
}

func TestResolveName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice", "Alice"},
		{"  Alice  ", "Alice"},
		{"", DefaultName},
		{"   ", DefaultName},
	}
	for _, tc := range cases {
		if got := ResolveName(tc.in); got != tc.want {
			t.Errorf("ResolveName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
