package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/registry"
)

func integrations() []*loader.Loader {
	return []*loader.Loader{
		integrationConfigs(),
		webhookSubscriptions(),
		syncJobs(),
	}
}

func integrationConfigs() *loader.Loader {
	return &loader.Loader{
		Kind:  "integration_configs",
		Table: "integration_configs",
		Needs: []string{"tenants"},
		Rows: func(b *loader.Build) error {
			for _, tenant := range b.Cache.All("tenants") {
				for _, provider := range []string{"stripe", "mailchimp", "salesforce"} {
					id := b.IDs.Next().String()
					b.Emit(loader.Row{
						"id":         id,
						"tenant_id":  tenant["id"],
						"provider":   provider,
						"settings":   map[string]any{"mode": "sandbox", "region": b.Gen.Country()},
						"is_active":  b.Gen.Chance(80),
						"created_at": b.Gen.Now(),
					})
					b.Share(registry.Record{"id": id, "tenant_id": tenant["id"], "provider": provider})
				}
			}
			return nil
		},
	}
}

func webhookSubscriptions() *loader.Loader {
	return &loader.Loader{
		Kind:  "webhook_subscriptions",
		Table: "webhook_subscriptions",
		Needs: []string{"integration_configs"},
		Count: 30,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				cfg := b.Cache.Pick("integration_configs")
				b.Emit(loader.Row{
					"id":             b.IDs.Next().String(),
					"tenant_id":      cfg["tenant_id"],
					"integration_id": cfg["id"],
					"event":          b.Gen.Pick([]string{"reservation.created", "payment.captured", "guest.updated", "folio.closed"}),
					"target_url":     "https://hooks.example.com/" + b.Gen.Code("", 12),
					"secret":         b.Gen.Code("WHS", 20),
					"is_active":      b.Gen.Chance(85),
					"created_at":     b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func syncJobs() *loader.Loader {
	return &loader.Loader{
		Kind:  "sync_jobs",
		Table: "sync_jobs",
		Needs: []string{"integration_configs"},
		Count: 50,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				cfg := b.Cache.Pick("integration_configs")
				b.Emit(loader.Row{
					"id":             b.IDs.Next().String(),
					"tenant_id":      cfg["tenant_id"],
					"integration_id": cfg["id"],
					"direction":      b.Gen.Pick([]string{"PUSH", "PULL"}),
					"records_synced": b.Gen.Between(0, 5000),
					"status":         b.Gen.Pick([]string{"SUCCEEDED", "SUCCEEDED", "FAILED", "RUNNING"}),
					"started_at":     b.Gen.PastDate(7),
					"created_at":     b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
