package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRound2HalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"10.015", "10.02"},
		{"0.125", "0.13"},
		{"-10.005", "-10.01"},
		{"100", "100"},
	}

	for _, c := range cases {
		in, _ := decimal.NewFromString(c.in)
		want, _ := decimal.NewFromString(c.want)
		if got := Round2(in); !got.Equal(want) {
			t.Errorf("Round2(%s): expected %s, got %s", c.in, c.want, got)
		}
	}
}

func TestCents(t *testing.T) {
	if got := Cents(18900); got.String() != "189" {
		t.Errorf("Expected 189, got %s", got)
	}
	if got := Cents(18901); got.String() != "189.01" {
		t.Errorf("Expected 189.01, got %s", got)
	}
}

func TestPct(t *testing.T) {
	base := Cents(12700_80) // 12700.80
	if got := Pct(base, 35); got.String() != "4445.28" {
		t.Errorf("Expected 4445.28, got %s", got)
	}
	if got := Pct(Cents(10000), 12); got.String() != "12" {
		t.Errorf("Expected 12, got %s", got)
	}
}

func TestNights(t *testing.T) {
	nightly := Cents(18900)
	if got := Nights(nightly, 60); got.String() != "11340" {
		t.Errorf("Expected 11340, got %s", got)
	}
	if got := Nights(Cents(9999), 3); got.String() != "299.97" {
		t.Errorf("Expected 299.97, got %s", got)
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(123.456); got.String() != "123.46" {
		t.Errorf("Expected 123.46, got %s", got)
	}
}
