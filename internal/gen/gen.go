package gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Generator is the single seeded random source behind every stochastic
// choice a loader makes. One instance per run; the seed is fixed unless
// the config says otherwise, so runs are reproducible.
type Generator struct {
	rand    *rand.Rand
	counter int
	now     func() time.Time
}

func New(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)),
		now:  time.Now,
	}
}

// NewWithClock pins the wall clock, for tests.
func NewWithClock(seed int64, now func() time.Time) *Generator {
	g := New(seed)
	g.now = now
	return g
}

// Rand exposes the underlying source for callers that need raw draws
// (registry picks, identifier tails).
func (g *Generator) Rand() *rand.Rand { return g.rand }

func (g *Generator) Intn(n int) int { return g.rand.Intn(n) }
func (g *Generator) Between(lo, hi int) int {
	return lo + g.rand.Intn(hi-lo+1)
}
func (g *Generator) Bool() bool          { return g.rand.Intn(2) == 1 }
func (g *Generator) Chance(pct int) bool { return g.rand.Intn(100) < pct }

// Pick returns a random element of choices.
func (g *Generator) Pick(choices []string) string {
	return choices[g.rand.Intn(len(choices))]
}

var (
	firstNames = []string{"John", "Jane", "Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Marco", "Nadia", "Omar", "Priya", "Sofia"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Chen", "Patel", "Kowalski", "Okafor"}
	cities     = []string{"Austin", "Denver", "Lisbon", "Marseille", "Osaka", "Portland", "Seville", "Tampere", "Valparaiso", "Wellington"}
	countries  = []string{"US", "CA", "GB", "FR", "ES", "PT", "DE", "JP", "NZ", "BR"}
	streets    = []string{"Main Street", "Harbor Road", "Oak Avenue", "Station Lane", "Market Square", "Hillcrest Drive"}
	domains    = []string{"example.com", "test.com", "demo.com", "mail.com"}
	words      = []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota", "kappa"}
)

func (g *Generator) FirstName() string { return g.Pick(firstNames) }
func (g *Generator) LastName() string  { return g.Pick(lastNames) }

func (g *Generator) FullName() string {
	return g.FirstName() + " " + g.LastName()
}

// Email is counter-suffixed so uniqueness constraints never trip inside a
// run.
func (g *Generator) Email() string {
	g.counter++
	return fmt.Sprintf("user%d_%d@%s", g.counter, g.rand.Intn(100000), g.Pick(domains))
}

// Slug is counter-suffixed like Email, for routing keys such as tenant
// subdomains that must stay unique when loaders run more than once in a
// process.
func (g *Generator) Slug(prefix string) string {
	g.counter++
	return fmt.Sprintf("%s%d-%s", prefix, g.counter, strings.ToLower(g.Code("", 4)))
}

func (g *Generator) Phone() string {
	return fmt.Sprintf("+1-%03d-%03d-%04d", g.rand.Intn(1000), g.rand.Intn(1000), g.rand.Intn(10000))
}

func (g *Generator) Address() string {
	return fmt.Sprintf("%d %s", g.rand.Intn(9999)+1, g.Pick(streets))
}

func (g *Generator) City() string    { return g.Pick(cities) }
func (g *Generator) Country() string { return g.Pick(countries) }

func (g *Generator) Word() string { return g.Pick(words) }

func (g *Generator) Sentence() string {
	sentences := []string{
		"Synthetic record generated for load testing.",
		"Reproducible fixture row, safe to delete.",
		"Placeholder text for description fields.",
		"Generated corpus entry for query exercises.",
	}
	return g.Pick(sentences)
}

// Code returns an uppercase reference like "RSV-4F9K2Q81", used for
// confirmation numbers, promo codes and statement references.
func (g *Generator) Code(prefix string, n int) string {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rand.Intn(len(alphabet))]
	}
	return prefix + string(b)
}

// Amount draws a value in [lo, hi) with two-decimal granularity, returned
// as a float for the money package to fix.
func (g *Generator) Amount(lo, hi float64) float64 {
	cents := int64(lo*100) + g.rand.Int63n(int64((hi-lo)*100))
	return float64(cents) / 100
}

// Now is the pipeline's wall clock.
func (g *Generator) Now() time.Time { return g.now() }

// PastDate returns a date up to maxDays in the past.
func (g *Generator) PastDate(maxDays int) time.Time {
	return g.now().AddDate(0, 0, -g.rand.Intn(maxDays+1))
}

// FutureDate returns a date between 1 and maxDays ahead.
func (g *Generator) FutureDate(maxDays int) time.Time {
	return g.now().AddDate(0, 0, 1+g.rand.Intn(maxDays))
}

// BusinessDate is the audit date for closure records: yesterday, at
// midnight UTC, independent of the wall-clock hour.
func (g *Generator) BusinessDate() time.Time {
	y, m, d := g.now().UTC().AddDate(0, 0, -1).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StayWindow returns a check-in up to 90 days out and a stay of 1..nights
// nights.
func (g *Generator) StayWindow(maxNights int) (checkIn, checkOut time.Time, nights int) {
	checkIn = g.FutureDate(90)
	nights = 1 + g.rand.Intn(maxNights)
	checkOut = checkIn.AddDate(0, 0, nights)
	return checkIn, checkOut, nights
}
