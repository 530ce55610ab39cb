package loaders

import (
	"github.com/shopspring/decimal"

	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
	"github.com/lodgelab/roomseed/internal/registry"
)

// nightlyRateFor resolves the nightly rate for a room: a published rate of
// the same room type when one exists, the room type's base rate otherwise.
func nightlyRateFor(b *loader.Build, room registry.Record) decimal.Decimal {
	rate := b.Cache.PickBy("rates", func(r registry.Record) bool {
		return r["room_type_id"] == room["room_type_id"]
	})
	if rate != nil {
		return rate["nightly_rate"].(decimal.Decimal)
	}
	roomType := b.Cache.PickBy("room_types", func(r registry.Record) bool {
		return r["id"] == room["room_type_id"]
	})
	if roomType != nil {
		return roomType["base_rate"].(decimal.Decimal)
	}
	return money.Cents(18900)
}

func reservations() *loader.Loader {
	return &loader.Loader{
		Kind:  "reservations",
		Table: "reservations",
		Needs: []string{"rooms", "guests"},
		Count: 400,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				room := b.Cache.Pick("rooms")
				// Guests of the room's tenant first; any guest when the
				// tenant has none.
				guest := b.Cache.PickBy("guests", tenantOf(room))
				if guest == nil {
					guest = b.Cache.Pick("guests")
				}

				checkIn, checkOut, nights := b.Gen.StayWindow(7)
				nightly := nightlyRateFor(b, room)
				total := money.Nights(nightly, nights)
				tax := money.Pct(total, 10)
				status := b.Gen.Pick([]string{"CONFIRMED", "CONFIRMED", "CHECKED_IN", "CHECKED_OUT", "CANCELLED"})

				id := b.IDs.Next().String()
				confirmation := b.Gen.Code("RSV", 9)
				b.Emit(loader.Row{
					"id":                  id,
					"tenant_id":           room["tenant_id"],
					"property_id":         room["property_id"],
					"guest_id":            guest["id"],
					"room_id":             room["id"],
					"room_number":         room["room_number"],
					"confirmation_number": confirmation,
					"check_in_date":       checkIn,
					"check_out_date":      checkOut,
					"adults":              b.Gen.Between(1, 3),
					"children":            b.Gen.Between(0, 2),
					"nightly_rate":        nightly,
					"total_amount":        total,
					"tax_amount":          tax,
					"currency":            "USD",
					"status":              status,
					"source":              b.Gen.Pick([]string{"DIRECT", "OTA", "PHONE", "WALK_IN"}),
					"metadata":            map[string]any{"generated": true},
					"created_at":          b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": room["tenant_id"],
					"property_id": room["property_id"], "guest_id": guest["id"],
					"room_id": room["id"], "room_number": room["room_number"],
					"check_in_date": checkIn, "check_out_date": checkOut,
					"nights": nights, "nightly_rate": nightly,
					"total_amount": total, "status": status,
					"confirmation_number": confirmation,
				})
			}
			return nil
		},
	}
}

func reservationStatusHistory() *loader.Loader {
	return &loader.Loader{
		Kind:  "reservation_status_history",
		Table: "reservation_status_history",
		Needs: []string{"reservations"},
		Rows: func(b *loader.Build) error {
			// One creation entry per reservation, plus the transition into
			// its current state when it moved past CONFIRMED.
			for _, res := range b.Cache.All("reservations") {
				b.Emit(loader.Row{
					"id":             b.IDs.Next().String(),
					"tenant_id":      res["tenant_id"],
					"reservation_id": res["id"],
					"old_status":     nil,
					"new_status":     "CONFIRMED",
					"changed_by":     "system",
					"changed_at":     b.Gen.PastDate(30),
				})
				if res["status"] != "CONFIRMED" {
					b.Emit(loader.Row{
						"id":             b.IDs.Next().String(),
						"tenant_id":      res["tenant_id"],
						"reservation_id": res["id"],
						"old_status":     "CONFIRMED",
						"new_status":     res["status"],
						"changed_by":     "system",
						"changed_at":     b.Gen.PastDate(7),
					})
				}
			}
			return nil
		},
	}
}
