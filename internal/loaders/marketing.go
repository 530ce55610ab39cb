package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
	"github.com/lodgelab/roomseed/internal/registry"
)

func marketing() []*loader.Loader {
	return []*loader.Loader{
		campaigns(),
		promoCodes(),
		groupBookings(),
		groupRoomBlocks(),
	}
}

func campaigns() *loader.Loader {
	return &loader.Loader{
		Kind:  "campaigns",
		Table: "campaigns",
		Needs: []string{"properties"},
		Count: 12,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				property := b.Cache.Pick("properties")
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":          id,
					"tenant_id":   property["tenant_id"],
					"property_id": property["id"],
					"name":        b.Gen.Pick([]string{"Summer Escape", "Flash Sale", "Loyalty Double Points", "Winter Warmer"}),
					"channel":     b.Gen.Pick([]string{"EMAIL", "SOCIAL", "PAID_SEARCH"}),
					"budget":      money.FromFloat(b.Gen.Amount(500, 15000)),
					"starts_on":   b.Gen.PastDate(30),
					"ends_on":     b.Gen.FutureDate(60),
					"is_active":   b.Gen.Chance(70),
					"created_at":  b.Gen.Now(),
				})
				b.Share(registry.Record{"id": id, "tenant_id": property["tenant_id"]})
			}
			return nil
		},
	}
}

func promoCodes() *loader.Loader {
	return &loader.Loader{
		Kind:  "promo_codes",
		Table: "promo_codes",
		Needs: []string{"campaigns"},
		Count: 30,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				campaign := b.Cache.Pick("campaigns")
				b.Emit(loader.Row{
					"id":           b.IDs.Next().String(),
					"tenant_id":    campaign["tenant_id"],
					"campaign_id":  campaign["id"],
					"code":         b.Gen.Code("PRM", 6),
					"discount_pct": b.Gen.Between(5, 30),
					"max_uses":     b.Gen.Between(10, 500),
					"expires_at":   b.Gen.FutureDate(120),
					"created_at":   b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func groupBookings() *loader.Loader {
	return &loader.Loader{
		Kind:  "group_bookings",
		Table: "group_bookings",
		Needs: []string{"properties", "companies"},
		Count: 15,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				property := b.Cache.Pick("properties")
				company := b.Cache.PickBy("companies", tenantOf(property))
				if company == nil {
					company = b.Cache.Pick("companies")
				}
				id := b.IDs.Next().String()
				arrival := b.Gen.FutureDate(180)
				b.Emit(loader.Row{
					"id":           id,
					"tenant_id":    property["tenant_id"],
					"property_id":  property["id"],
					"company_id":   company["id"],
					"name":         b.Gen.Pick([]string{"Annual Sales Kickoff", "Regional Conference", "Wedding Block", "Sports Team"}),
					"arrival_date": arrival,
					"nights":       b.Gen.Between(1, 5),
					"rooms_needed": b.Gen.Between(5, 40),
					"status":       b.Gen.Pick([]string{"TENTATIVE", "DEFINITE", "CANCELLED"}),
					"created_at":   b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": property["tenant_id"],
					"property_id": property["id"], "arrival_date": arrival,
				})
			}
			return nil
		},
	}
}

func groupRoomBlocks() *loader.Loader {
	return &loader.Loader{
		Kind:  "group_room_blocks",
		Table: "group_room_blocks",
		Needs: []string{"group_bookings", "room_types"},
		Rows: func(b *loader.Build) error {
			// 1-2 room-type blocks per group booking.
			for _, booking := range b.Cache.All("group_bookings") {
				n := b.Gen.Between(1, 2)
				for j := 0; j < n; j++ {
					roomType := b.Cache.PickBy("room_types", propertyOf(booking))
					if roomType == nil {
						roomType = b.Cache.Pick("room_types")
					}
					b.Emit(loader.Row{
						"id":               b.IDs.Next().String(),
						"tenant_id":        booking["tenant_id"],
						"group_booking_id": booking["id"],
						"room_type_id":     roomType["id"],
						"rooms_blocked":    b.Gen.Between(2, 20),
						"rooms_picked_up":  b.Gen.Between(0, 10),
						"block_rate":       money.FromFloat(b.Gen.Amount(70, 300)),
						"created_at":       b.Gen.Now(),
					})
				}
			}
			return nil
		},
	}
}
