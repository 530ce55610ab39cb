package gen

import (
	"strings"
	"testing"
	"time"
)

func TestDeterministicWithSameSeed(t *testing.T) {
	a, b := New(99), New(99)

	for i := 0; i < 50; i++ {
		if x, y := a.FullName(), b.FullName(); x != y {
			t.Fatalf("Expected identical draws for one seed, got %q and %q", x, y)
		}
		if x, y := a.Amount(10, 500), b.Amount(10, 500); x != y {
			t.Fatalf("Expected identical amounts, got %v and %v", x, y)
		}
	}
}

func TestEmailsAreUnique(t *testing.T) {
	g := New(1)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		e := g.Email()
		if seen[e] {
			t.Fatalf("Duplicate email: %s", e)
		}
		seen[e] = true
	}
}

func TestSlugsAreUnique(t *testing.T) {
	g := New(1)
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		s := g.Slug("tenant")
		if seen[s] {
			t.Fatalf("Duplicate slug: %s", s)
		}
		if s != strings.ToLower(s) {
			t.Fatalf("Expected a lowercase slug, got %s", s)
		}
		seen[s] = true
	}
}

func TestBetweenBounds(t *testing.T) {
	g := New(2)
	for i := 0; i < 100; i++ {
		n := g.Between(3, 7)
		if n < 3 || n > 7 {
			t.Fatalf("Between(3, 7) returned %d", n)
		}
	}
}

func TestStayWindow(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	g := NewWithClock(4, func() time.Time { return now })

	for i := 0; i < 50; i++ {
		checkIn, checkOut, nights := g.StayWindow(7)
		if !checkIn.After(now) {
			t.Fatalf("Expected future check-in, got %s", checkIn)
		}
		if nights < 1 || nights > 7 {
			t.Fatalf("Expected 1-7 nights, got %d", nights)
		}
		if want := checkIn.AddDate(0, 0, nights); !checkOut.Equal(want) {
			t.Fatalf("Expected check-out %s, got %s", want, checkOut)
		}
	}
}

func TestBusinessDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 42, 7, 0, time.UTC)
	g := NewWithClock(5, func() time.Time { return now })

	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := g.BusinessDate(); !got.Equal(want) {
		t.Errorf("Expected business date %s, got %s", want, got)
	}
}

func TestCode(t *testing.T) {
	g := New(6)
	c := g.Code("DBK", 8)
	if len(c) != 11 {
		t.Errorf("Expected 11 characters, got %d (%s)", len(c), c)
	}
	if c[:3] != "DBK" {
		t.Errorf("Expected DBK prefix, got %s", c)
	}
}

func TestAmountGranularity(t *testing.T) {
	g := New(7)
	for i := 0; i < 100; i++ {
		a := g.Amount(80, 450)
		if a < 80 || a >= 450 {
			t.Fatalf("Amount out of range: %v", a)
		}
		cents := a * 100
		if cents != float64(int64(cents)) {
			t.Fatalf("Expected two-decimal granularity, got %v", a)
		}
	}
}
