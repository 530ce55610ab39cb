package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/registry"
)

func channel() []*loader.Loader {
	return []*loader.Loader{
		otaConfigurations(),
		otaRatePlans(),
		otaInventorySync(),
		otaReservationsQueue(),
	}
}

func otaConfigurations() *loader.Loader {
	return &loader.Loader{
		Kind:  "ota_configurations",
		Table: "ota_configurations",
		Needs: []string{"properties"},
		Rows: func(b *loader.Build) error {
			// Two channels per property.
			for _, property := range b.Cache.All("properties") {
				for _, ch := range []string{"booking_com", "expedia"} {
					id := b.IDs.Next().String()
					b.Emit(loader.Row{
						"id":          id,
						"tenant_id":   property["tenant_id"],
						"property_id": property["id"],
						"channel":     ch,
						"hotel_code":  b.Gen.Code("HTL", 6),
						"credentials": map[string]any{"api_key": b.Gen.Code("KEY", 16)},
						"is_active":   b.Gen.Chance(90),
						"created_at":  b.Gen.Now(),
					})
					b.Share(registry.Record{
						"id": id, "tenant_id": property["tenant_id"],
						"property_id": property["id"], "channel": ch,
					})
				}
			}
			return nil
		},
	}
}

func otaRatePlans() *loader.Loader {
	return &loader.Loader{
		Kind:  "ota_rate_plans",
		Table: "ota_rate_plans",
		Needs: []string{"ota_configurations", "rates"},
		Count: 40,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				cfg := b.Cache.Pick("ota_configurations")
				rate := b.Cache.PickBy("rates", propertyOf(cfg))
				if rate == nil {
					rate = b.Cache.Pick("rates")
				}
				b.Emit(loader.Row{
					"id":               b.IDs.Next().String(),
					"tenant_id":        cfg["tenant_id"],
					"configuration_id": cfg["id"],
					"rate_id":          rate["id"],
					"channel_code":     b.Gen.Code("RP", 6),
					"markup_pct":       b.Gen.Between(0, 20),
					"is_active":        true,
					"created_at":       b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func otaInventorySync() *loader.Loader {
	return &loader.Loader{
		Kind:  "ota_inventory_sync",
		Table: "ota_inventory_sync",
		Needs: []string{"ota_configurations"},
		Count: 50,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				cfg := b.Cache.Pick("ota_configurations")
				b.Emit(loader.Row{
					"id":               b.IDs.Next().String(),
					"tenant_id":        cfg["tenant_id"],
					"configuration_id": cfg["id"],
					"sync_date":        b.Gen.FutureDate(30),
					"rooms_available":  b.Gen.Between(0, 40),
					"status":           b.Gen.Pick([]string{"SYNCED", "SYNCED", "PENDING", "FAILED"}),
					"synced_at":        b.Gen.PastDate(2),
					"created_at":       b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func otaReservationsQueue() *loader.Loader {
	return &loader.Loader{
		Kind:  "ota_reservations_queue",
		Table: "ota_reservations_queue",
		Needs: []string{"ota_configurations"},
		Count: 30,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				cfg := b.Cache.Pick("ota_configurations")
				b.Emit(loader.Row{
					"id":               b.IDs.Next().String(),
					"tenant_id":        cfg["tenant_id"],
					"configuration_id": cfg["id"],
					"channel_booking":  b.Gen.Code("OTA", 10),
					"payload":          map[string]any{"channel": cfg["channel"], "rooms": b.Gen.Between(1, 3)},
					"status":           b.Gen.Pick([]string{"QUEUED", "PROCESSED", "FAILED"}),
					"received_at":      b.Gen.PastDate(5),
					"created_at":       b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
