// Package pack runs curated slices of the loader plan for QA: small row
// counts, a cache reset per pack, and the anomaly injectors that plant
// invariant-breaking fixtures for consumers to detect.
package pack

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/lodgelab/roomseed/internal/config"
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/loaders"
	"github.com/lodgelab/roomseed/internal/pipeline"
)

// Injector plants a deterministic anomaly and reports how many rows it
// actually inserted.
type Injector struct {
	Name string
	Run  func(ctx context.Context, env *loader.Env) (int, error)
}

// Pack is one curated slice: loader kinds in dependency order, per-kind
// row counts, and the injectors that run after the loaders.
type Pack struct {
	Name      string
	Kinds     []string
	Counts    map[string]int
	Injectors []Injector
}

var foundationKinds = []string{
	"tenants", "users", "user_tenants", "properties",
	"guests", "room_types", "rooms", "rates",
}

var foundationCounts = map[string]int{
	"tenants":    2,
	"users":      6,
	"properties": 3,
	"guests":     30,
	"room_types": 6,
	"rooms":      24,
	"rates":      10,
}

func merged(extra map[string]int) map[string]int {
	m := make(map[string]int, len(foundationCounts)+len(extra))
	for k, v := range foundationCounts {
		m[k] = v
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

// Packs returns the curated packs in their canonical order. "all" runs
// these in sequence.
func Packs() []Pack {
	return []Pack{
		{
			Name:   "core",
			Kinds:  foundationKinds,
			Counts: foundationCounts,
		},
		{
			Name:   "bookings",
			Kinds:  append(append([]string{}, foundationKinds...), "reservations", "reservation_status_history"),
			Counts: merged(map[string]int{"reservations": 40}),
			Injectors: []Injector{
				{Name: "double_booking", Run: InjectDoubleBooking},
			},
		},
		{
			Name: "financial",
			Kinds: append(append([]string{}, foundationKinds...),
				"reservations", "payments", "invoices", "invoice_items",
				"folios", "charge_postings", "financial_closures"),
			Counts: merged(map[string]int{
				"reservations": 40,
				"payments":     40,
				"invoices":     30,
			}),
			Injectors: []Injector{
				{Name: "long_stay_folio", Run: InjectLongStayFolio},
			},
		},
	}
}

// Find resolves a pack by name; it does not know "all", the runner does.
func Find(name string) (Pack, bool) {
	for _, p := range Packs() {
		if p.Name == name {
			return p, true
		}
	}
	return Pack{}, false
}

// Run executes one named pack, or every pack in sequence for "all". Each
// pack starts from a clean identity cache so foreign keys never leak
// across packs; row triggers stay suppressed for the whole sequence and
// come back on every exit path.
func Run(ctx context.Context, cfg *config.Config, env *loader.Env, name string, truncate bool) error {
	if err := env.IDs.SelfTest(); err != nil {
		return fmt.Errorf("identifier self-test failed: %w", err)
	}

	if truncate {
		color.Yellow("Truncating schema %s (preserving %d catalog tables)...", cfg.Schema, len(cfg.Preserve))
		if err := env.Session.TruncateSchema(ctx, cfg.Schema, cfg.Preserve); err != nil {
			return err
		}
	}

	var selected []Pack
	if name == "all" {
		selected = Packs()
	} else {
		p, ok := Find(name)
		if !ok {
			return fmt.Errorf("unknown pack: %s (choose core, bookings, financial or all)", name)
		}
		selected = []Pack{p}
	}

	err := pipeline.WithTriggersDisabled(ctx, env.Session, func() error {
		for _, p := range selected {
			if err := runOne(ctx, env, p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return pipeline.Summary(ctx, env.Session)
}

func runOne(ctx context.Context, env *loader.Env, p Pack) error {
	pipeline.Banner("Pack: " + p.Name)
	env.Cache.Reset()

	for _, ld := range loaders.ByKind(p.Kinds...) {
		count := ld.Count
		if n, ok := p.Counts[ld.Kind]; ok {
			count = n
		}
		if _, err := loader.Run(ctx, env, ld, count); err != nil {
			return err
		}
	}

	for _, inj := range p.Injectors {
		n, err := inj.Run(ctx, env)
		if err != nil {
			return fmt.Errorf("injector %s: %w", inj.Name, err)
		}
		color.Green("  Injected %d rows (%s)", n, inj.Name)
	}
	return nil
}
