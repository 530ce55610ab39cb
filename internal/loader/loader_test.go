package loader

import (
	"context"
	"testing"

	"github.com/lodgelab/roomseed/internal/gen"
	"github.com/lodgelab/roomseed/internal/idgen"
	"github.com/lodgelab/roomseed/internal/registry"
)

func testEnv() *Env {
	g := gen.New(99)
	// No Session: the skip path must decide before any database use.
	return &Env{
		Gen:   g,
		IDs:   idgen.New(99),
		Cache: registry.New(g.Rand()),
	}
}

func TestRunSkipsWhenPrerequisiteIsEmpty(t *testing.T) {
	env := testEnv()
	built := false

	ld := &Loader{
		Kind:  "rooms",
		Table: "rooms",
		Needs: []string{"room_types"},
		Rows: func(b *Build) error {
			built = true
			return nil
		},
	}

	n, err := Run(context.Background(), env, ld, 10)

	if err != nil {
		t.Fatalf("Expected a clean skip, got %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 rows from a skipped loader, got %d", n)
	}
	if built {
		t.Error("Expected the row builder not to run on a skip")
	}
	if env.Cache.Count("rooms") != 0 {
		t.Error("Expected no cache contributions from a skipped loader")
	}
}

func TestRunSkipsWhenAnyPrerequisiteIsEmpty(t *testing.T) {
	env := testEnv()
	env.Cache.Put("users", registry.Record{"id": "u1"})

	ld := &Loader{
		Kind:  "user_tenants",
		Table: "user_tenants",
		Needs: []string{"users", "tenants"},
		Rows: func(b *Build) error {
			t.Fatal("Row builder must not run with a missing prerequisite")
			return nil
		},
	}

	n, err := Run(context.Background(), env, ld, 5)
	if err != nil || n != 0 {
		t.Fatalf("Expected (0, nil), got (%d, %v)", n, err)
	}
}

func TestRunRowlessLoaderStillSharesNothing(t *testing.T) {
	env := testEnv()

	ld := &Loader{
		Kind:  "noop",
		Table: "noop",
		Rows:  func(b *Build) error { return nil },
	}

	n, err := Run(context.Background(), env, ld, 0)
	if err != nil {
		t.Fatalf("Expected a loader with no rows to succeed, got %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 rows, got %d", n)
	}
}
