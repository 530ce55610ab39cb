package loaders

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
	"github.com/lodgelab/roomseed/internal/registry"
)

func financial() []*loader.Loader {
	return []*loader.Loader{
		companies(),
		payments(),
		invoices(),
		invoiceItems(),
		folios(),
		chargePostings(),
		financialClosures(),
		commissionStatements(),
	}
}

func companies() *loader.Loader {
	return &loader.Loader{
		Kind:  "companies",
		Table: "companies",
		Needs: []string{"tenants"},
		Count: 15,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				tenant := b.Cache.Pick("tenants")
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":              id,
					"tenant_id":       tenant["id"],
					"name":            fmt.Sprintf("%s %s", b.Gen.LastName(), b.Gen.Pick([]string{"Travel", "Logistics", "Consulting", "Events"})),
					"billing_email":   b.Gen.Email(),
					"billing_address": b.Gen.Address(),
					"credit_limit":    money.FromFloat(b.Gen.Amount(5000, 50000)),
					"created_at":      b.Gen.Now(),
				})
				b.Share(registry.Record{"id": id, "tenant_id": tenant["id"]})
			}
			return nil
		},
	}
}

func payments() *loader.Loader {
	return &loader.Loader{
		Kind:  "payments",
		Table: "payments",
		Needs: []string{"reservations"},
		Count: 400,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				res := b.Cache.Pick("reservations")
				total := res["total_amount"].(decimal.Decimal)
				// Partial or full payment against the reservation total.
				amount := money.Pct(total, int64(b.Gen.Between(25, 100)))
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":             id,
					"tenant_id":      res["tenant_id"],
					"reservation_id": res["id"],
					"amount":         amount,
					"currency":       "USD",
					"method":         b.Gen.Pick([]string{"CARD", "CASH", "BANK_TRANSFER", "WALLET"}),
					"status":         b.Gen.Pick([]string{"CAPTURED", "CAPTURED", "PENDING", "REFUNDED"}),
					"reference":      b.Gen.Code("PAY", 10),
					"paid_at":        b.Gen.PastDate(30),
					"created_at":     b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": res["tenant_id"],
					"reservation_id": res["id"], "amount": amount,
				})
			}
			return nil
		},
	}
}

func invoices() *loader.Loader {
	return &loader.Loader{
		Kind:  "invoices",
		Table: "invoices",
		Needs: []string{"reservations"},
		Count: 300,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				res := b.Cache.Pick("reservations")
				subtotal := res["total_amount"].(decimal.Decimal)
				tax := money.Pct(subtotal, 10)
				id := b.IDs.Next().String()
				b.Emit(loader.Row{
					"id":             id,
					"tenant_id":      res["tenant_id"],
					"reservation_id": res["id"],
					"invoice_number": b.Gen.Code("INV", 8),
					"subtotal":       subtotal,
					"tax_amount":     tax,
					"total":          money.Round2(subtotal.Add(tax)),
					"currency":       "USD",
					"status":         b.Gen.Pick([]string{"DRAFT", "ISSUED", "PAID", "VOID"}),
					"issued_at":      b.Gen.PastDate(30),
					"created_at":     b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": res["tenant_id"],
					"reservation_id": res["id"], "subtotal": subtotal,
				})
			}
			return nil
		},
	}
}

func invoiceItems() *loader.Loader {
	return &loader.Loader{
		Kind:  "invoice_items",
		Table: "invoice_items",
		Needs: []string{"invoices"},
		Rows: func(b *loader.Build) error {
			// 1-3 line items per invoice summing to its subtotal: room
			// revenue first, optional incidentals carved out of it so the
			// invoice total stays consistent to the cent.
			for _, inv := range b.Cache.All("invoices") {
				subtotal := inv["subtotal"].(decimal.Decimal)
				remaining := subtotal
				extras := b.Gen.Between(0, 2)
				for j := 0; j < extras; j++ {
					part := money.Pct(subtotal, int64(b.Gen.Between(5, 15)))
					if part.GreaterThanOrEqual(remaining) {
						break
					}
					remaining = remaining.Sub(part)
					b.Emit(loader.Row{
						"id":          b.IDs.Next().String(),
						"tenant_id":   inv["tenant_id"],
						"invoice_id":  inv["id"],
						"description": b.Gen.Pick([]string{"Breakfast", "Minibar", "Parking", "Spa access"}),
						"quantity":    1,
						"unit_price":  part,
						"amount":      part,
						"created_at":  b.Gen.Now(),
					})
				}
				b.Emit(loader.Row{
					"id":          b.IDs.Next().String(),
					"tenant_id":   inv["tenant_id"],
					"invoice_id":  inv["id"],
					"description": "Room revenue",
					"quantity":    1,
					"unit_price":  remaining,
					"amount":      remaining,
					"created_at":  b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func folios() *loader.Loader {
	return &loader.Loader{
		Kind:  "folios",
		Table: "folios",
		Needs: []string{"reservations"},
		Rows: func(b *loader.Build) error {
			// One folio per non-cancelled reservation. Balance is always
			// charges − (payments + credits), to the cent.
			for _, res := range b.Cache.All("reservations") {
				if res["status"] == "CANCELLED" {
					continue
				}
				charges := res["total_amount"].(decimal.Decimal)
				paid := money.Pct(charges, int64(b.Gen.Between(0, 100)))
				credits := decimal.Zero
				if b.Gen.Chance(10) {
					credits = money.Pct(charges, 5)
				}
				balance := money.Round2(charges.Sub(paid.Add(credits)))
				id := b.IDs.Next().String()
				status := "OPEN"
				if balance.IsZero() {
					status = "CLOSED"
				}
				b.Emit(loader.Row{
					"id":             id,
					"tenant_id":      res["tenant_id"],
					"reservation_id": res["id"],
					"folio_number":   b.Gen.Code("FOL", 8),
					"total_charges":  charges,
					"total_payments": paid,
					"total_credits":  credits,
					"balance":        balance,
					"currency":       "USD",
					"status":         status,
					"created_at":     b.Gen.Now(),
				})
				b.Share(registry.Record{
					"id": id, "tenant_id": res["tenant_id"],
					"reservation_id": res["id"], "total_charges": charges,
					"balance": balance,
				})
			}
			return nil
		},
	}
}

func chargePostings() *loader.Loader {
	return &loader.Loader{
		Kind:  "charge_postings",
		Table: "charge_postings",
		Needs: []string{"folios"},
		Rows: func(b *loader.Build) error {
			// One room-revenue debit per folio covering its charges.
			for _, folio := range b.Cache.All("folios") {
				amount := folio["total_charges"].(decimal.Decimal)
				tax := money.Pct(amount, 10)
				b.Emit(loader.Row{
					"id":               b.IDs.Next().String(),
					"tenant_id":        folio["tenant_id"],
					"folio_id":         folio["id"],
					"transaction_type": "CHARGE",
					"posting_type":     "DEBIT",
					"description":      "Room revenue",
					"quantity":         1,
					"unit_price":       amount,
					"subtotal":         amount,
					"tax_amount":       tax,
					"total":            money.Round2(amount.Add(tax)),
					"currency":         "USD",
					"posted_at":        b.Gen.PastDate(30),
					"created_at":       b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

func financialClosures() *loader.Loader {
	return &loader.Loader{
		Kind:  "financial_closures",
		Table: "financial_closures",
		Needs: []string{"properties"},
		Rows: func(b *loader.Build) error {
			// A night-audit closure per property for the business date.
			for _, property := range b.Cache.All("properties") {
				revenue := money.FromFloat(b.Gen.Amount(2000, 40000))
				b.Emit(loader.Row{
					"id":            b.IDs.Next().String(),
					"tenant_id":     property["tenant_id"],
					"property_id":   property["id"],
					"business_date": b.Gen.BusinessDate(),
					"total_revenue": revenue,
					"room_revenue":  money.Pct(revenue, 80),
					"other_revenue": money.Pct(revenue, 20),
					"closed_by":     "night_audit",
					"status":        "CLOSED",
					"closed_at":     b.Gen.Now(),
					"created_at":    b.Gen.Now(),
				})
			}
			return nil
		},
	}
}

// commissionStatements skips cleanly when no companies exist, which is the
// normal case for packs that run without the financial foundation.
func commissionStatements() *loader.Loader {
	return &loader.Loader{
		Kind:  "commission_statements",
		Table: "commission_statements",
		Needs: []string{"companies"},
		Count: 20,
		Rows: func(b *loader.Build) error {
			for i := 0; i < b.Count; i++ {
				company := b.Cache.Pick("companies")
				gross := money.FromFloat(b.Gen.Amount(1000, 20000))
				ratePct := int64(b.Gen.Between(8, 15))
				b.Emit(loader.Row{
					"id":              b.IDs.Next().String(),
					"tenant_id":       company["tenant_id"],
					"company_id":      company["id"],
					"statement_ref":   b.Gen.Code("CST", 8),
					"period_start":    b.Gen.PastDate(60),
					"period_end":      b.Gen.PastDate(30),
					"gross_bookings":  gross,
					"commission_rate": ratePct,
					"commission_due":  money.Pct(gross, ratePct),
					"status":          b.Gen.Pick([]string{"DRAFT", "ISSUED", "SETTLED"}),
					"created_at":      b.Gen.Now(),
				})
			}
			return nil
		},
	}
}
