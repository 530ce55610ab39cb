package idgen

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestVersionNibble(t *testing.T) {
	g := New(1)
	id := g.Next()

	if v := int(id.Version()); v != Version {
		t.Errorf("Expected version %d, got %d", Version, v)
	}
	if s := id.String(); s[14] != '7' {
		t.Errorf("Expected '7' at the version position, got %q in %s", s[14], s)
	}
}

func TestSpacedCallsAreOrdered(t *testing.T) {
	g := New(1)

	var prev string
	for i := 0; i < 3; i++ {
		s := g.Next().String()
		if prev != "" && s <= prev {
			t.Fatalf("Expected %s > %s", s, prev)
		}
		prev = s
		time.Sleep(2 * time.Millisecond)
	}
}

func TestRapidCallsAreDistinct(t *testing.T) {
	g := New(1)

	seen := make(map[uuid.UUID]bool, 100)
	for i := 0; i < 100; i++ {
		id := g.Next()
		if seen[id] {
			t.Fatalf("Duplicate identifier: %s", id)
		}
		seen[id] = true
	}
}

func TestSameMillisecondOrdering(t *testing.T) {
	// Pinned clock: every call lands in the same millisecond, so ordering
	// must come from the counter alone.
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewWithClock(7, func() time.Time { return fixed })

	var prev string
	for i := 0; i < 500; i++ {
		s := g.Next().String()
		if prev != "" && s <= prev {
			t.Fatalf("Expected %s > %s within one millisecond", s, prev)
		}
		prev = s
	}
}

func TestBatchOrdering(t *testing.T) {
	// 1000 identifiers with a pause after every 10 must be strictly
	// increasing as one concatenated list.
	g := New(3)

	var prev string
	for i := 0; i < 1000; i++ {
		s := g.Next().String()
		if prev != "" && s <= prev {
			t.Fatalf("Identifier %d out of order: %s !> %s", i, s, prev)
		}
		prev = s
		if i%10 == 9 {
			time.Sleep(time.Millisecond)
		}
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	g := New(9)

	for i := 0; i < 50; i++ {
		id := g.Next()
		parsed, err := uuid.Parse(id.String())
		if err != nil {
			t.Fatalf("Failed to parse %s: %v", id, err)
		}
		if parsed != id {
			t.Fatalf("Round trip changed %s to %s", id, parsed)
		}
	}
}

func TestTimestampPrefix(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewWithClock(5, func() time.Time { return fixed })

	id := g.Next()
	ms := int64(0)
	for _, b := range id[:6] {
		ms = ms<<8 | int64(b)
	}
	if ms != fixed.UnixMilli() {
		t.Errorf("Expected timestamp prefix %d, got %d", fixed.UnixMilli(), ms)
	}
}

func TestSelfTest(t *testing.T) {
	if err := New(42).SelfTest(); err != nil {
		t.Errorf("Expected self-test to pass, got %v", err)
	}
}
