package registry

import (
	"math/rand"
	"testing"
)

func newTestRegistry() *Registry {
	return New(rand.New(rand.NewSource(1)))
}

func TestPutAndCount(t *testing.T) {
	r := newTestRegistry()

	if r.Count("tenants") != 0 {
		t.Errorf("Expected empty registry, got %d", r.Count("tenants"))
	}

	r.Put("tenants", Record{"id": "a", "tenant_id": "a"})
	r.Put("tenants", Record{"id": "b", "tenant_id": "b"})

	if r.Count("tenants") != 2 {
		t.Errorf("Expected 2 tenants, got %d", r.Count("tenants"))
	}
}

func TestPickEmptyReturnsNil(t *testing.T) {
	r := newTestRegistry()

	if rec := r.Pick("guests"); rec != nil {
		t.Errorf("Expected nil from empty kind, got %v", rec)
	}
	if rec := r.PickBy("guests", func(Record) bool { return true }); rec != nil {
		t.Errorf("Expected nil from empty PickBy, got %v", rec)
	}
}

func TestPickReturnsExistingRecord(t *testing.T) {
	r := newTestRegistry()
	r.Put("rooms", Record{"id": "r1", "tenant_id": "t1"})

	for i := 0; i < 10; i++ {
		rec := r.Pick("rooms")
		if rec == nil || rec["id"] != "r1" {
			t.Fatalf("Expected the inserted record, got %v", rec)
		}
	}
}

func TestPickByPredicate(t *testing.T) {
	r := newTestRegistry()
	r.Put("guests", Record{"id": "g1", "tenant_id": "t1"})
	r.Put("guests", Record{"id": "g2", "tenant_id": "t2"})
	r.Put("guests", Record{"id": "g3", "tenant_id": "t1"})

	for i := 0; i < 20; i++ {
		rec := r.PickBy("guests", func(rec Record) bool { return rec["tenant_id"] == "t1" })
		if rec == nil {
			t.Fatal("Expected a match for tenant t1")
		}
		if rec["tenant_id"] != "t1" {
			t.Fatalf("Predicate violated: got %v", rec)
		}
	}

	if rec := r.PickBy("guests", func(rec Record) bool { return rec["tenant_id"] == "t9" }); rec != nil {
		t.Errorf("Expected nil for unmatched predicate, got %v", rec)
	}
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	r := newTestRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.Put("rates", Record{"id": id})
	}

	all := r.All("rates")
	if len(all) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(all))
	}
	for i, id := range []string{"a", "b", "c"} {
		if all[i]["id"] != id {
			t.Errorf("Expected %s at position %d, got %v", id, i, all[i]["id"])
		}
	}
}

func TestReset(t *testing.T) {
	r := newTestRegistry()
	r.Put("tenants", Record{"id": "a"})
	r.Put("rooms", Record{"id": "b"})

	r.Reset()

	if r.Count("tenants") != 0 || r.Count("rooms") != 0 {
		t.Errorf("Expected empty registry after reset, got %d tenants, %d rooms",
			r.Count("tenants"), r.Count("rooms"))
	}
	if rec := r.Pick("tenants"); rec != nil {
		t.Errorf("Expected nil after reset, got %v", rec)
	}
}
