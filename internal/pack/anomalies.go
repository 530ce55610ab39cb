package pack

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/lodgelab/roomseed/internal/loader"
	"github.com/lodgelab/roomseed/internal/money"
	"github.com/lodgelab/roomseed/internal/registry"
)

// Scenario tags written into reservation metadata so consumers can find
// injected fixtures without date heuristics.
const (
	ScenarioDoubleBooking = "double_booking_pack"
	ScenarioLongStay      = "long_stay_pack"
)

const (
	longStayPastDays = 20
	longStayNights   = 60
	longStayTaxPct   = 12
	longStayPaidPct  = 35
)

// fallbackNightly is used when the cache has no published rate for the
// chosen room's type, so the folio arithmetic stays exact.
var fallbackNightly = money.Cents(18900)

// InjectDoubleBooking inserts two CONFIRMED reservations sharing room
// number and stay window, for overlap-detection consumers. Each row runs
// in its own insert so a confirmation-number collision only reduces the
// reported count.
func InjectDoubleBooking(ctx context.Context, env *loader.Env) (int, error) {
	room := env.Cache.Pick("rooms")
	if room == nil {
		color.Yellow("  Skipping double_booking: no rooms available")
		return 0, nil
	}

	sameTenant := func(r registry.Record) bool { return r["tenant_id"] == room["tenant_id"] }
	first := env.Cache.PickBy("guests", sameTenant)
	if first == nil {
		color.Yellow("  Skipping double_booking: no guests for the room's tenant")
		return 0, nil
	}
	second := env.Cache.PickBy("guests", func(r registry.Record) bool {
		return sameTenant(r) && r["id"] != first["id"]
	})
	if second == nil {
		color.Yellow("  Skipping double_booking: need two distinct guests")
		return 0, nil
	}

	checkIn := env.Gen.FutureDate(60)
	nights := env.Gen.Between(1, 3)
	checkOut := checkIn.AddDate(0, 0, nights)
	nightly := nightlyFor(env, room)
	conflictGroup := env.IDs.Next().String()

	inserted := 0
	for _, guest := range []registry.Record{first, second} {
		row := reservationRow(env, room, guest, checkIn, checkOut, nights, nightly)
		row["status"] = "CONFIRMED"
		row["confirmation_number"] = env.Gen.Code("DBK", 8)
		row["metadata"] = map[string]any{
			"scenario":       ScenarioDoubleBooking,
			"conflict_group": conflictGroup,
		}

		err := loader.InsertRows(ctx, env.Session, "reservations", []loader.Row{row})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				color.Yellow("  Confirmation number collision, dropping one conflict row")
				continue
			}
			return inserted, err
		}
		env.Cache.Put("reservations", reservationRecord(row, room, guest, nights, nightly))
		inserted++
	}
	return inserted, nil
}

// LongStayAmounts computes the fixture arithmetic for the extended-stay
// folio: subtotal = nightly × nights, 12% tax, 65% of the total still
// owing. The balance rounds to the cent; paid is the exact remainder so
// the folio reconciles even when 35% lands on a half cent.
func LongStayAmounts(nightly decimal.Decimal) (subtotal, tax, total, paid, balance decimal.Decimal) {
	subtotal = money.Nights(nightly, longStayNights)
	tax = money.Pct(subtotal, longStayTaxPct)
	total = money.Round2(subtotal.Add(tax))
	balance = money.Pct(total, 100-longStayPaidPct)
	paid = total.Sub(balance)
	return subtotal, tax, total, paid, balance
}

// InjectLongStayFolio inserts a 60-night CHECKED_IN reservation that
// started 20 days ago, its OPEN folio with partial payments, and the
// single room-revenue charge posting covering the stay.
func InjectLongStayFolio(ctx context.Context, env *loader.Env) (int, error) {
	room := env.Cache.Pick("rooms")
	if room == nil {
		color.Yellow("  Skipping long_stay_folio: no rooms available")
		return 0, nil
	}
	guest := env.Cache.PickBy("guests", func(r registry.Record) bool {
		return r["tenant_id"] == room["tenant_id"]
	})
	if guest == nil {
		color.Yellow("  Skipping long_stay_folio: no guests for the room's tenant")
		return 0, nil
	}

	checkIn := env.Gen.Now().AddDate(0, 0, -longStayPastDays)
	checkOut := checkIn.AddDate(0, 0, longStayNights)
	nightly := nightlyFor(env, room)
	subtotal, tax, total, paid, balance := LongStayAmounts(nightly)

	resRow := reservationRow(env, room, guest, checkIn, checkOut, longStayNights, nightly)
	resRow["status"] = "CHECKED_IN"
	resRow["total_amount"] = subtotal
	resRow["tax_amount"] = tax
	resRow["metadata"] = map[string]any{
		"scenario": ScenarioLongStay,
		"nights":   longStayNights,
	}
	if err := loader.InsertRows(ctx, env.Session, "reservations", []loader.Row{resRow}); err != nil {
		return 0, err
	}
	env.Cache.Put("reservations", reservationRecord(resRow, room, guest, longStayNights, nightly))

	folioID := env.IDs.Next().String()
	folioRow := loader.Row{
		"id":             folioID,
		"tenant_id":      room["tenant_id"],
		"reservation_id": resRow["id"],
		"folio_number":   env.Gen.Code("FOL", 8),
		"total_charges":  total,
		"total_payments": paid,
		"total_credits":  decimal.Zero,
		"balance":        balance,
		"currency":       "USD",
		"status":         "OPEN",
		"created_at":     env.Gen.Now(),
	}
	if err := loader.InsertRows(ctx, env.Session, "folios", []loader.Row{folioRow}); err != nil {
		return 1, err
	}
	env.Cache.Put("folios", registry.Record{
		"id": folioID, "tenant_id": room["tenant_id"],
		"reservation_id": resRow["id"], "total_charges": total,
		"balance": balance,
	})

	postingRow := loader.Row{
		"id":               env.IDs.Next().String(),
		"tenant_id":        room["tenant_id"],
		"folio_id":         folioID,
		"transaction_type": "CHARGE",
		"posting_type":     "DEBIT",
		"description":      "Room revenue, extended stay",
		"quantity":         longStayNights,
		"unit_price":       nightly,
		"subtotal":         subtotal,
		"tax_amount":       tax,
		"total":            total,
		"currency":         "USD",
		"posted_at":        env.Gen.Now(),
		"created_at":       env.Gen.Now(),
	}
	if err := loader.InsertRows(ctx, env.Session, "charge_postings", []loader.Row{postingRow}); err != nil {
		return 2, err
	}
	return 3, nil
}

func nightlyFor(env *loader.Env, room registry.Record) decimal.Decimal {
	rate := env.Cache.PickBy("rates", func(r registry.Record) bool {
		return r["room_type_id"] == room["room_type_id"]
	})
	if rate != nil {
		return rate["nightly_rate"].(decimal.Decimal)
	}
	return fallbackNightly
}

func reservationRow(env *loader.Env, room, guest registry.Record, checkIn, checkOut time.Time, nights int, nightly decimal.Decimal) loader.Row {
	total := money.Nights(nightly, nights)
	return loader.Row{
		"id":                  env.IDs.Next().String(),
		"tenant_id":           room["tenant_id"],
		"property_id":         room["property_id"],
		"guest_id":            guest["id"],
		"room_id":             room["id"],
		"room_number":         room["room_number"],
		"confirmation_number": env.Gen.Code("RSV", 9),
		"check_in_date":       checkIn,
		"check_out_date":      checkOut,
		"adults":              2,
		"children":            0,
		"nightly_rate":        nightly,
		"total_amount":        total,
		"tax_amount":          money.Pct(total, 10),
		"currency":            "USD",
		"status":              "CONFIRMED",
		"source":              "DIRECT",
		"metadata":            map[string]any{},
		"created_at":          env.Gen.Now(),
	}
}

func reservationRecord(row loader.Row, room, guest registry.Record, nights int, nightly decimal.Decimal) registry.Record {
	return registry.Record{
		"id": row["id"], "tenant_id": room["tenant_id"],
		"property_id": room["property_id"], "guest_id": guest["id"],
		"room_id": room["id"], "room_number": room["room_number"],
		"check_in_date": row["check_in_date"], "check_out_date": row["check_out_date"],
		"nights": nights, "nightly_rate": nightly,
		"total_amount": row["total_amount"], "status": row["status"],
		"confirmation_number": row["confirmation_number"],
	}
}
