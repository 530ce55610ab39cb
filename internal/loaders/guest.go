package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
	"github.com/lodgelab/roomseed/internal/registry"
)

func guestManagement() []*loader.Loader {
	return []*loader.Loader{
		guestPreferences(),
		guestFeedback(),
		loyaltyMembers(),
		loyaltyTransactions(),
	}
}

func guestPreferences() *loader.Loader {
	return &loader.Loader{
		Kind:  "guest_preferences",
		Table: "guest_preferences",
		Needs: []string{"guests"},
		Count: 100,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				guest := b.Cache.Pick("guests")
				b.Emit(loader.Row{
					"id":         b.IDs.Next().String(),
					"tenant_id":  guest["tenant_id"],
					"guest_id":   guest["id"],
					"category":   b.Gen.Pick([]string{"ROOM", "DINING", "HOUSEKEEPING"}),
					"preference": b.Gen.Pick([]string{"high floor", "quiet room", "extra pillows", "late checkout", "vegan breakfast"}),
					"created_at": b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func guestFeedback() *loader.Loader {
	return &loader.Loader{
		Kind:  "guest_feedback",
		Table: "guest_feedback",
		Needs: []string{"reservations"},
		Count: 80,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				res := b.Cache.Pick("reservations")
				b.Emit(loader.Row{
					"id":             b.IDs.Next().String(),
					"tenant_id":      res["tenant_id"],
					"reservation_id": res["id"],
					"guest_id":       res["guest_id"],
					"rating":         b.Gen.Between(1, 5),
					"comment":        b.Gen.Sentence(),
					"submitted_at":   b.Gen.PastDate(30),
					"created_at":     b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func loyaltyMembers() *loader.Loader {
	return &loader.Loader{
		Kind:  "loyalty_members",
		Table: "loyalty_members",
		Needs: []string{"guests"},
		Count: 60,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				guest := b.Cache.Pick("guests")
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":            id,
					"tenant_id":     guest["tenant_id"],
					"guest_id":      guest["id"],
					"member_number": b.Gen.Code("LOY", 8),
					"tier":          b.Gen.Pick([]string{"BRONZE", "SILVER", "GOLD", "PLATINUM"}),
					"points":        b.Gen.Between(0, 50000),
					"enrolled_at":   b.Gen.PastDate(720),
					"created_at":    b.Gen.Now(),
				})
				b.Share(registry.Record{"id": id, "tenant_id": guest["tenant_id"], "guest_id": guest["id"]})
			}
			return nil
		},
	}
}

func loyaltyTransactions() *loader.Loader {
	return &loader.Loader{
		Kind:  "loyalty_transactions",
		Table: "loyalty_transactions",
		Needs: []string{"loyalty_members"},
		Count: 150,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				member := b.Cache.Pick("loyalty_members")
				b.Emit(loader.Row{
					"id":          b.IDs.Next().String(),
					"tenant_id":   member["tenant_id"],
					"member_id":   member["id"],
					"kind":        b.Gen.Pick([]string{"EARN", "EARN", "REDEEM", "EXPIRE"}),
					"points":      b.Gen.Between(50, 5000),
					"description": b.Gen.Pick([]string{"Stay credit", "Promotion bonus", "Award night", "Annual expiry"}),
					"value":       money.FromFloat(b.Gen.Amount(5, 250)),
					"occurred_at": b.Gen.PastDate(365),
					"created_at":  b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
