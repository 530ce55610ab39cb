package loaders

import (
	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
)

func analytics() []*loader.Loader {
	return []*loader.Loader{
		dailyOccupancy(),
		revenueBySegment(),
	}
}

func dailyOccupancy() *loader.Loader {
	return &loader.Loader{
		Kind:  "daily_occupancy",
		Table: "daily_occupancy",
		Needs: []string{"properties"},
		Rows: func(b *loader.Build) error {
			// 14 trailing days per property. Rates are plain ratios, not
			// currency, so float columns are fine here.
			for _, property := range b.Cache.All("properties") {
				for day := 1; day <= 14; day++ {
					total := b.Gen.Between(20, 60)
					occupied := b.Gen.Between(0, total)
					b.Emit(loader.Row{
						"id":             b.IDs.Next().String(),
						"tenant_id":      property["tenant_id"],
						"property_id":    property["id"],
						"snapshot_date":  b.Gen.Now().AddDate(0, 0, -day),
						"rooms_total":    total,
						"rooms_occupied": occupied,
						"occupancy_rate": float64(occupied) / float64(total),
						"adr":            money.FromFloat(b.Gen.Amount(90, 320)),
						"created_at":     b.Gen.Now(),
					})
				}
			}
			return nil
		},
	}
}

func revenueBySegment() *loader.Loader {
	return &loader.Loader{
		Kind:  "revenue_by_segment",
		Table: "revenue_by_segment",
		Needs: []string{"properties"},
		Rows: func(b *loader.Build) error {
			for _, property := range b.Cache.All("properties") {
				for _, segment := range []string{"TRANSIENT", "CORPORATE", "GROUP", "OTA"} {
					b.Emit(loader.Row{
						"id":            b.IDs.Next().String(),
						"tenant_id":     property["tenant_id"],
						"property_id":   property["id"],
						"segment":       segment,
						"business_date": b.Gen.BusinessDate(),
						"room_nights":   b.Gen.Between(0, 120),
						"revenue":       money.FromFloat(b.Gen.Amount(500, 25000)),
						"created_at":    b.Gen.Now(),
					})
				}
			}
			return nil
		},
	}
}
