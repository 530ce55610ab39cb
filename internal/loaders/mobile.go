package loaders

import (
	"fmt"

	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/registry"
)

func mobile() []*loader.Loader {
	return []*loader.Loader{
		mobileCheckIns(),
		digitalRegistrationCards(),
		contactlessRequests(),
	}
}

func mobileCheckIns() *loader.Loader {
	return &loader.Loader{
		Kind:  "mobile_check_ins",
		Table: "mobile_check_ins",
		Needs: []string{"reservations"},
		Count: 120,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				res := b.Cache.Pick("reservations")
				id := b.IDs.Next().String()
				status := b.Gen.Pick([]string{"STARTED", "COMPLETED", "COMPLETED", "ABANDONED"})
				b.Emit(loader.Row{
					"id":             id,
					"tenant_id":      res["tenant_id"],
					"reservation_id": res["id"],
					"device_type":    b.Gen.Pick([]string{"IOS", "ANDROID", "WEB"}),
					"app_version":    fmt.Sprintf("%d.%d.%d", b.Gen.Between(2, 5), b.Gen.Between(0, 9), b.Gen.Between(0, 20)),
					"status":         status,
					"checked_in_at":  b.Gen.PastDate(14),
					"created_at":     b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": res["tenant_id"],
					"reservation_id": res["id"], "guest_id": res["guest_id"],
					"status": status,
				})
			}
			return nil
		},
	}
}

func digitalRegistrationCards() *loader.Loader {
	return &loader.Loader{
		Kind:  "digital_registration_cards",
		Table: "digital_registration_cards",
		Needs: []string{"mobile_check_ins"},
		Rows: func(b *loader.Build) error {
			// One signed card per completed mobile check-in; started and
			// abandoned check-ins stay cardless.
			for _, checkIn := range b.Cache.All("mobile_check_ins") {
				if checkIn["status"] != "COMPLETED" {
					continue
				}
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":          id,
					"tenant_id":   checkIn["tenant_id"],
					"check_in_id": checkIn["id"],
					"guest_id":    checkIn["guest_id"],
					"signature":   b.Gen.Code("SIG", 24),
					"id_document": b.Gen.Pick([]string{"PASSPORT", "DRIVERS_LICENSE", "NATIONAL_ID"}),
					"signed_at":   b.Gen.PastDate(14),
					"created_at":  b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": checkIn["tenant_id"],
					"reservation_id": checkIn["reservation_id"],
				})
			}
			return nil
		},
	}
}

func contactlessRequests() *loader.Loader {
	return &loader.Loader{
		Kind:  "contactless_requests",
		Table: "contactless_requests",
		Needs: []string{"digital_registration_cards"},
		Count: 80,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				card := b.Cache.Pick("digital_registration_cards")
				b.Emit(loader.Row{
					"id":             b.IDs.Next().String(),
					"tenant_id":      card["tenant_id"],
					"reservation_id": card["reservation_id"],
					"request_type":   b.Gen.Pick([]string{"ROOM_SERVICE", "EXTRA_TOWELS", "LATE_CHECKOUT", "DIGITAL_KEY"}),
					"note":           b.Gen.Sentence(),
					"status":         b.Gen.Pick([]string{"OPEN", "IN_PROGRESS", "FULFILLED"}),
					"requested_at":   b.Gen.PastDate(7),
					"created_at":     b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
