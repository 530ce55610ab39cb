package pack

import (
	"testing"

	"github.com/lodgelab/roomseed/internal/loaders"
	"github.com/lodgelab/roomseed/internal/money"
)

func TestPackKindsExist(t *testing.T) {
	known := make(map[string]bool)
	for _, ld := range loaders.All() {
		known[ld.Kind] = true
	}

	for _, p := range Packs() {
		for _, kind := range p.Kinds {
			if !known[kind] {
				t.Errorf("Pack %s references unknown kind %s", p.Name, kind)
			}
		}
	}
}

func TestPackSequencesSatisfyDependencies(t *testing.T) {
	index := make(map[string][]string)
	for _, ld := range loaders.All() {
		index[ld.Kind] = ld.Needs
	}

	for _, p := range Packs() {
		produced := make(map[string]bool)
		for _, kind := range p.Kinds {
			for _, need := range index[kind] {
				if !produced[need] {
					t.Errorf("Pack %s runs %s before its prerequisite %s", p.Name, kind, need)
				}
			}
			produced[kind] = true
		}
	}
}

func TestFind(t *testing.T) {
	for _, name := range []string{"core", "bookings", "financial"} {
		if _, ok := Find(name); !ok {
			t.Errorf("Expected pack %s to exist", name)
		}
	}
	if _, ok := Find("all"); ok {
		t.Error("Expected Find not to know the 'all' meta pack")
	}
	if _, ok := Find("nope"); ok {
		t.Error("Expected unknown pack to be rejected")
	}
}

func TestCorePackStopsAtRates(t *testing.T) {
	p, _ := Find("core")
	if last := p.Kinds[len(p.Kinds)-1]; last != "rates" {
		t.Errorf("Expected core pack to end at rates, got %s", last)
	}
	for _, kind := range p.Kinds {
		if kind == "reservations" {
			t.Error("Core pack must not include reservations")
		}
	}
	if len(p.Injectors) != 0 {
		t.Errorf("Core pack must not carry injectors, got %d", len(p.Injectors))
	}
}

func TestLongStayAmounts(t *testing.T) {
	nightly := money.Cents(18900) // 189.00

	subtotal, tax, total, paid, balance := LongStayAmounts(nightly)

	if subtotal.String() != "11340" {
		t.Errorf("Expected subtotal 11340, got %s", subtotal)
	}
	if tax.String() != "1360.8" {
		t.Errorf("Expected tax 1360.8, got %s", tax)
	}
	if total.String() != "12700.8" {
		t.Errorf("Expected total 12700.8, got %s", total)
	}
	if paid.String() != "4445.28" {
		t.Errorf("Expected paid 4445.28, got %s", paid)
	}
	if balance.String() != "8255.52" {
		t.Errorf("Expected balance 8255.52, got %s", balance)
	}

	// Balance is 65% of total to the cent, and the folio reconciles.
	if want := money.Pct(total, 65); !balance.Equal(want) {
		t.Errorf("Expected balance %s (65%% of total), got %s", want, balance)
	}
	if !total.Sub(paid).Equal(balance) {
		t.Errorf("Folio does not reconcile: %s - %s != %s", total, paid, balance)
	}
}

func TestLongStayAmountsHalfCent(t *testing.T) {
	// 35% of this total lands on a half cent; the outstanding balance
	// still has to be exactly 65% of the total rounded to the cent.
	nightly := money.Cents(4307) // 43.07

	_, _, total, paid, balance := LongStayAmounts(nightly)

	if total.String() != "2894.3" {
		t.Fatalf("Expected total 2894.3, got %s", total)
	}
	if want := money.Pct(total, 65); !balance.Equal(want) {
		t.Errorf("Expected balance %s (65%% of total), got %s", want, balance)
	}
	if balance.String() != "1881.3" {
		t.Errorf("Expected balance 1881.3, got %s", balance)
	}
	if !total.Sub(paid).Equal(balance) {
		t.Errorf("Folio does not reconcile: %s - %s != %s", total, paid, balance)
	}
}

func TestLongStayAmountsOddRate(t *testing.T) {
	// A rate that forces rounding at every step.
	nightly := money.Cents(13337) // 133.37

	subtotal, tax, total, paid, balance := LongStayAmounts(nightly)

	if subtotal.String() != "8002.2" {
		t.Errorf("Expected subtotal 8002.2, got %s", subtotal)
	}
	if tax.String() != "960.26" {
		t.Errorf("Expected tax 960.26, got %s", tax)
	}
	if !total.Equal(subtotal.Add(tax)) {
		t.Errorf("Total %s is not subtotal + tax", total)
	}
	if !balance.Equal(total.Sub(paid)) {
		t.Errorf("Balance %s is not total - paid", balance)
	}
}
