// Package loaders holds the per-table row recipes, grouped by business
// domain. Each loader is a descriptor run by the generic driver; the only
// logic here is which values go in which columns and which fields get
// shared through the identity cache.
package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/registry"
)

// Group is one domain's slice of the full plan.
type Group struct {
	Name    string
	Loaders []*loader.Loader
}

// Plan returns the full dependency-ordered loader plan. The order within
// and across groups is a total order over the foreign-key edges between
// kinds; plan_test verifies it stays that way.
func Plan() []Group {
	return []Group{
		{"Core Business", append(core(), reservations(), reservationStatusHistory())},
		{"Financial", financial()},
		{"Channel Management", channel()},
		{"Guest Management", guestManagement()},
		{"Revenue & Pricing", revenue()},
		{"Analytics & Reporting", analytics()},
		{"Staff Operations", staff()},
		{"Marketing & Sales", marketing()},
		{"Mobile & Digital", mobile()},
		{"Compliance & Legal", compliance()},
		{"Integrations", integrations()},
		{"Smart Rooms", smartRooms()},
	}
}

// All flattens the plan in execution order.
func All() []*loader.Loader {
	var out []*loader.Loader
	for _, g := range Plan() {
		out = append(out, g.Loaders...)
	}
	return out
}

// ByKind indexes the plan for pack construction. Unknown kinds are a
// programming error and panic at startup.
func ByKind(kinds ...string) []*loader.Loader {
	index := make(map[string]*loader.Loader)
	for _, ld := range All() {
		index[ld.Kind] = ld
	}
	out := make([]*loader.Loader, 0, len(kinds))
	for _, k := range kinds {
		ld, ok := index[k]
		if !ok {
			panic("unknown loader kind: " + k)
		}
		out = append(out, ld)
	}
	return out
}

// tenantOf scopes a PickBy to records of the same tenant.
func tenantOf(rec registry.Record) func(registry.Record) bool {
	tenant := rec["tenant_id"]
	return func(other registry.Record) bool {
		return other["tenant_id"] == tenant
	}
}

// propertyOf scopes a PickBy to records of the same property.
func propertyOf(rec registry.Record) func(registry.Record) bool {
	property := rec["property_id"]
	return func(other registry.Record) bool {
		return other["property_id"] == property
	}
}
