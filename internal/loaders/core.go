package loaders

import (
	"fmt"

	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
	"github.com/lodgelab/roomseed/internal/registry"
)

// core is the foundation chain every other domain hangs off:
// tenants → users → user_tenants → properties → guests → room_types →
// rooms → rates.
func core() []*loader.Loader {
	return []*loader.Loader{
		tenants(),
		users(),
		userTenants(),
		properties(),
		guests(),
		roomTypes(),
		rooms(),
		rates(),
	}
}

func tenants() *loader.Loader {
	return &loader.Loader{
		Kind:  "tenants",
		Table: "tenants",
		Count: 5,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				id := b.IDs.Next().String()
				name := fmt.Sprintf("%s Hospitality %d", b.Gen.LastName(), i+1)
				b.Emit(loader.Row{
					"id":         id,
					"name":       name,
					"subdomain":  b.Gen.Slug("tenant"),
					"plan":       b.Gen.Pick([]string{"STARTER", "GROWTH", "ENTERPRISE"}),
					"is_active":  true,
					"created_at": b.Gen.Now(),
				})
				b.Share(registry.Record{"id": id, "tenant_id": id, "name": name})
			}
			return nil
		},
	}
}

func users() *loader.Loader {
	return &loader.Loader{
		Kind:  "users",
		Table: "users",
		Needs: []string{"tenants"},
		Count: 20,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				tenant := b.Cache.Pick("tenants")
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":         id,
					"email":      b.Gen.Email(),
					"full_name":  b.Gen.FullName(),
					"role":       b.Gen.Pick([]string{"ADMIN", "MANAGER", "FRONT_DESK", "HOUSEKEEPING"}),
					"is_active":  b.Gen.Chance(90),
					"created_at": b.Gen.Now(),
				})
				b.Share(registry.Record{"id": id, "tenant_id": tenant["id"]})
			}
			return nil
		},
	}
}

func userTenants() *loader.Loader {
	return &loader.Loader{
		Kind:  "user_tenants",
		Table: "user_tenants",
		Needs: []string{"users", "tenants"},
		Rows: func(b *loader.Build) error {
			// One association per user, under the tenant the user was
			// generated for.
			for _, user := range b.Cache.All("users") {
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":         id,
					"user_id":    user["id"],
					"tenant_id":  user["tenant_id"],
					"role":       b.Gen.Pick([]string{"OWNER", "MEMBER"}),
					"created_at": b.Gen.Now(),
				})
				b.Share(registry.Record{"id": id, "tenant_id": user["tenant_id"], "user_id": user["id"]})
			}
			return nil
		},
	}
}

func properties() *loader.Loader {
	return &loader.Loader{
		Kind:  "properties",
		Table: "properties",
		Needs: []string{"tenants"},
		Count: 10,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				tenant := b.Cache.Pick("tenants")
				id := b.IDs.Next().String()
				city := b.Gen.City()
				b.Emit(loader.Row{
					"id":          id,
					"tenant_id":   tenant["id"],
					"name":        fmt.Sprintf("%s %s", city, b.Gen.Pick([]string{"Grand Hotel", "Plaza", "Suites", "Resort", "Inn"})),
					"address":     b.Gen.Address(),
					"city":        city,
					"country":     b.Gen.Country(),
					"timezone":    b.Gen.Pick([]string{"UTC", "America/Chicago", "Europe/Lisbon", "Asia/Tokyo"}),
					"star_rating": b.Gen.Between(2, 5),
					"amenities":   []string{"wifi", "parking", "pool"},
					"is_active":   true,
					"created_at":  b.Gen.Now(),
				})
				b.Share(registry.Record{"id": id, "tenant_id": tenant["id"], "city": city})
			}
			return nil
		},
	}
}

func guests() *loader.Loader {
	return &loader.Loader{
		Kind:  "guests",
		Table: "guests",
		Needs: []string{"tenants"},
		Count: 200,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				tenant := b.Cache.Pick("tenants")
				id := b.IDs.Next().String()
				first, last := b.Gen.FirstName(), b.Gen.LastName()
				b.Emit(loader.Row{
					"id":          id,
					"tenant_id":   tenant["id"],
					"first_name":  first,
					"last_name":   last,
					"email":       b.Gen.Email(),
					"phone":       b.Gen.Phone(),
					"nationality": b.Gen.Country(),
					"vip_status":  b.Gen.Chance(10),
					"created_at":  b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": tenant["id"],
					"first_name": first, "last_name": last,
				})
			}
			return nil
		},
	}
}

func roomTypes() *loader.Loader {
	return &loader.Loader{
		Kind:  "room_types",
		Table: "room_types",
		Needs: []string{"properties"},
		Count: 30,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				property := b.Cache.Pick("properties")
				id := b.IDs.Next().String()
				baseRate := money.FromFloat(b.Gen.Amount(80, 450))
				b.Emit(loader.Row{
					"id":          id,
					"tenant_id":   property["tenant_id"],
					"property_id": property["id"],
					"name":        b.Gen.Pick([]string{"Standard Queen", "Deluxe King", "Twin", "Junior Suite", "Penthouse"}),
					"max_guests":  b.Gen.Between(1, 4),
					"base_rate":   baseRate,
					"created_at":  b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": property["tenant_id"],
					"property_id": property["id"], "base_rate": baseRate,
				})
			}
			return nil
		},
	}
}

func rooms() *loader.Loader {
	return &loader.Loader{
		Kind:  "rooms",
		Table: "rooms",
		Needs: []string{"room_types"},
		Count: 300,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				roomType := b.Cache.Pick("room_types")
				id := b.IDs.Next().String()
				number := fmt.Sprintf("%d%02d", b.Gen.Between(1, 9), b.Gen.Between(0, 30))
				b.Emit(loader.Row{
					"id":           id,
					"tenant_id":    roomType["tenant_id"],
					"property_id":  roomType["property_id"],
					"room_type_id": roomType["id"],
					"room_number":  number,
					"floor":        b.Gen.Between(1, 9),
					"status":       b.Gen.Pick([]string{"AVAILABLE", "OCCUPIED", "MAINTENANCE"}),
					"created_at":   b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": roomType["tenant_id"],
					"property_id": roomType["property_id"], "room_type_id": roomType["id"],
					"room_number": number,
				})
			}
			return nil
		},
	}
}

func rates() *loader.Loader {
	return &loader.Loader{
		Kind:  "rates",
		Table: "rates",
		Needs: []string{"room_types"},
		Count: 60,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				roomType := b.Cache.Pick("room_types")
				id := b.IDs.Next().String()
				nightly := money.FromFloat(b.Gen.Amount(70, 500))
				b.Emit(loader.Row{
					"id":           id,
					"tenant_id":    roomType["tenant_id"],
					"property_id":  roomType["property_id"],
					"room_type_id": roomType["id"],
					"name":         b.Gen.Pick([]string{"BAR", "Advance Purchase", "Weekend Saver", "Corporate"}),
					"nightly_rate": nightly,
					"currency":     "USD",
					"valid_from":   b.Gen.PastDate(180),
					"valid_to":     b.Gen.FutureDate(365),
					"created_at":   b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": roomType["tenant_id"],
					"property_id": roomType["property_id"], "room_type_id": roomType["id"],
					"nightly_rate": nightly,
				})
			}
			return nil
		},
	}
}
