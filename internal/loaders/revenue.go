package loaders

import (
	"github.com/shopspring/decimal"

	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
	"github.com/lodgelab/roomseed/internal/registry"
)

func revenue() []*loader.Loader {
	return []*loader.Loader{
		services(),
		ratePlans(),
		seasonalRates(),
		packages(),
		packageComponents(),
		packageBookings(),
	}
}

func ratePlans() *loader.Loader {
	return &loader.Loader{
		Kind:  "rate_plans",
		Table: "rate_plans",
		Needs: []string{"rates"},
		Count: 30,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				rate := b.Cache.Pick("rates")
				base := rate["nightly_rate"].(decimal.Decimal)
				pct := int64(b.Gen.Between(85, 120))
				b.Emit(loader.Row{
					"id":                  b.IDs.Next().String(),
					"tenant_id":           rate["tenant_id"],
					"property_id":         rate["property_id"],
					"rate_id":             rate["id"],
					"name":                b.Gen.Pick([]string{"Flexible", "Non-Refundable", "Long Stay", "Member"}),
					"code":                b.Gen.Code("RP", 6),
					"nightly_rate":        money.Pct(base, pct),
					"min_stay":            b.Gen.Between(1, 3),
					"cancellation_policy": b.Gen.Pick([]string{"FREE_48H", "FREE_24H", "NON_REFUNDABLE"}),
					"includes_breakfast":  b.Gen.Chance(40),
					"is_active":           b.Gen.Chance(90),
					"created_at":          b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func services() *loader.Loader {
	return &loader.Loader{
		Kind:  "services",
		Table: "services",
		Needs: []string{"properties"},
		Count: 40,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				property := b.Cache.Pick("properties")
				id := b.IDs.Next().String()
				price := money.FromFloat(b.Gen.Amount(10, 200))
				b.Emit(loader.Row{
					"id":          id,
					"tenant_id":   property["tenant_id"],
					"property_id": property["id"],
					"name":        b.Gen.Pick([]string{"Airport Shuttle", "Breakfast Buffet", "Spa Session", "Laundry", "Late Checkout"}),
					"category":    b.Gen.Pick([]string{"TRANSPORT", "DINING", "WELLNESS", "CONVENIENCE"}),
					"price":       price,
					"currency":    "USD",
					"is_active":   true,
					"created_at":  b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": property["tenant_id"],
					"property_id": property["id"], "price": price,
				})
			}
			return nil
		},
	}
}

func seasonalRates() *loader.Loader {
	return &loader.Loader{
		Kind:  "seasonal_rates",
		Table: "seasonal_rates",
		Needs: []string{"rates"},
		Count: 40,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				rate := b.Cache.Pick("rates")
				base := rate["nightly_rate"].(decimal.Decimal)
				pct := int64(b.Gen.Between(110, 160))
				b.Emit(loader.Row{
					"id":           b.IDs.Next().String(),
					"tenant_id":    rate["tenant_id"],
					"rate_id":      rate["id"],
					"season":       b.Gen.Pick([]string{"SUMMER_PEAK", "WINTER_HOLIDAYS", "SHOULDER", "EVENT_WEEKEND"}),
					"nightly_rate": money.Pct(base, pct),
					"starts_on":    b.Gen.FutureDate(120),
					"ends_on":      b.Gen.FutureDate(240),
					"created_at":   b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func packages() *loader.Loader {
	return &loader.Loader{
		Kind:  "packages",
		Table: "packages",
		Needs: []string{"properties"},
		Count: 20,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				property := b.Cache.Pick("properties")
				id := b.IDs.Next().String()
				price := money.FromFloat(b.Gen.Amount(150, 900))
				b.Emit(loader.Row{
					"id":          id,
					"tenant_id":   property["tenant_id"],
					"property_id": property["id"],
					"name":        b.Gen.Pick([]string{"Romance Getaway", "Family Fun", "Business Traveller", "Wellness Weekend"}),
					"description": b.Gen.Sentence(),
					"price":       price,
					"currency":    "USD",
					"is_active":   b.Gen.Chance(85),
					"created_at":  b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": property["tenant_id"],
					"property_id": property["id"], "price": price,
				})
			}
			return nil
		},
	}
}

func packageComponents() *loader.Loader {
	return &loader.Loader{
		Kind:  "package_components",
		Table: "package_components",
		Needs: []string{"packages", "services"},
		Rows: func(b *loader.Build) error {
			// 2-3 components per package, drawn from the property's
			// services where possible.
			for _, pkg := range b.Cache.All("packages") {
				n := b.Gen.Between(2, 3)
				for j := 0; j < n; j++ {
					service := b.Cache.PickBy("services", propertyOf(pkg))
					if service == nil {
						service = b.Cache.Pick("services")
					}
					b.Emit(loader.Row{
						"id":         b.IDs.Next().String(),
						"tenant_id":  pkg["tenant_id"],
						"package_id": pkg["id"],
						"service_id": service["id"],
						"quantity":   b.Gen.Between(1, 2),
						"created_at": b.Gen.Now(),
					})
				}
			}
			return nil
		},
	}
}

func packageBookings() *loader.Loader {
	return &loader.Loader{
		Kind:  "package_bookings",
		Table: "package_bookings",
		Needs: []string{"packages", "reservations"},
		Count: 60,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				pkg := b.Cache.Pick("packages")
				res := b.Cache.PickBy("reservations", tenantOf(pkg))
				if res == nil {
					res = b.Cache.Pick("reservations")
				}
				b.Emit(loader.Row{
					"id":             b.IDs.Next().String(),
					"tenant_id":      pkg["tenant_id"],
					"package_id":     pkg["id"],
					"reservation_id": res["id"],
					"price":          pkg["price"],
					"currency":       "USD",
					"status":         b.Gen.Pick([]string{"BOOKED", "BOOKED", "CANCELLED"}),
					"created_at":     b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
