package loaders

import "github.com/lodgelab/roomseed/internal/loader"

func compliance() []*loader.Loader {
	return []*loader.Loader{
		auditLogs(),
		guestConsents(),
	}
}

func auditLogs() *loader.Loader {
	return &loader.Loader{
		Kind:  "audit_logs",
		Table: "audit_logs",
		Needs: []string{"users"},
		Count: 200,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				user := b.Cache.Pick("users")
				entity := b.Gen.Pick([]string{"reservation", "guest", "rate", "folio"})
				b.Emit(loader.Row{
					"id":          b.IDs.Next().String(),
					"tenant_id":   user["tenant_id"],
					"actor_id":    user["id"],
					"action":      b.Gen.Pick([]string{"CREATE", "UPDATE", "DELETE", "EXPORT"}),
					"entity_type": entity,
					"entity_id":   b.IDs.Next().String(),
					"detail":      map[string]any{"entity": entity, "generated": true},
					"occurred_at": b.Gen.PastDate(90),
					"created_at":  b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func guestConsents() *loader.Loader {
	return &loader.Loader{
		Kind:  "guest_consents",
		Table: "guest_consents",
		Needs: []string{"guests"},
		Count: 150,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				guest := b.Cache.Pick("guests")
				granted := b.Gen.Chance(75)
				var revokedAt any
				if !granted {
					revokedAt = b.Gen.PastDate(60)
				}
				b.Emit(loader.Row{
					"id":         b.IDs.Next().String(),
					"tenant_id":  guest["tenant_id"],
					"guest_id":   guest["id"],
					"purpose":    b.Gen.Pick([]string{"MARKETING_EMAIL", "PROFILING", "THIRD_PARTY_SHARING"}),
					"granted":    granted,
					"granted_at": b.Gen.PastDate(365),
					"revoked_at": revokedAt,
					"created_at": b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
