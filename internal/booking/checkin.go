package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appdb "github.com/clubmesa/courtside/internal/db"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

// CheckinRequest carries the optional settlement details supplied at the desk.
type CheckinRequest struct {
	PlayersArrived  int64
	PaymentMethod   string
	ReferenceNumber string
	Timestamp       time.Time
	Actor           string
}

// CheckinResult reports the updated entity and whether the settlement ledger
// could be written. LedgerWarning is informational; the check-in itself has
// already committed when it is set.
type CheckinResult struct {
	Entity        Reservable
	PaymentStatus string
	LedgerWritten bool
	LedgerWarning string
}

// CheckinStatus is the read-side view of an entity's check-in state.
type CheckinStatus struct {
	IsCheckedIn    bool       `json:"isCheckedIn"`
	CheckedInAt    *time.Time `json:"checkedInAt"`
	IsPaid         bool       `json:"isPaid"`
	PlayersArrived *int64     `json:"playersArrived"`
	BookingStatus  string     `json:"bookingStatus"`
}

// CheckIn marks a booking or group as arrived, settling any pending payment
// if a method was supplied. The idempotency guard and the status flip run in
// one transaction; ledger writes happen after commit and never block the
// check-in.
func CheckIn(ctx context.Context, store *appdb.DB, clubID, entityID int64, req CheckinRequest) (*CheckinResult, error) {
	logger := zerolog.Ctx(ctx)

	if req.PaymentMethod != "" && !ValidPaymentMethod(req.PaymentMethod) {
		return nil, ValidationError{Field: "paymentMethod", Reason: "must be one of: CASH, TERMINAL, SPEI, ONLINE"}
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}

	result := &CheckinResult{}
	var settledPayment *dbgen.Payment

	err := store.RunInTx(ctx, func(txdb *appdb.DB) error {
		qtx := txdb.Queries

		entity, err := ResolveReservable(ctx, qtx, clubID, entityID)
		if err != nil {
			return err
		}
		if entity.CheckedIn() {
			return ErrAlreadyCheckedIn
		}

		paymentStatus := paymentStatusOf(entity)
		settleNow := paymentStatus == PaymentPending && req.PaymentMethod != ""
		if settleNow {
			payment, err := settlePayment(ctx, qtx, clubID, entity, req)
			if err != nil {
				return err
			}
			settledPayment = &payment
			paymentStatus = PaymentCompleted
		}

		switch entity.Kind {
		case KindGroup:
			group, err := qtx.MarkGroupCheckedIn(ctx, dbgen.MarkGroupCheckedInParams{
				Status:         StatusInProgress,
				PaymentStatus:  paymentStatus,
				CheckedInAt:    req.Timestamp,
				CheckedInBy:    toNullString(req.Actor),
				PlayersArrived: toNullInt64(req.PlayersArrived),
				ID:             entity.Group.ID,
				ClubID:         clubID,
			})
			if err != nil {
				return fmt.Errorf("failed to check in group: %w", err)
			}
			if _, err := qtx.UpdateGroupBookingStatuses(ctx, dbgen.UpdateGroupBookingStatusesParams{
				Status:        StatusInProgress,
				PaymentStatus: paymentStatus,
				GroupID:       group.ID,
			}); err != nil {
				return fmt.Errorf("failed to update group bookings: %w", err)
			}
			result.Entity = Reservable{Kind: KindGroup, Group: group}
		default:
			booking, err := qtx.MarkBookingCheckedIn(ctx, dbgen.MarkBookingCheckedInParams{
				Status:         StatusConfirmed,
				PaymentStatus:  paymentStatus,
				CheckedInAt:    req.Timestamp,
				CheckedInBy:    toNullString(req.Actor),
				PlayersArrived: toNullInt64(req.PlayersArrived),
				ID:             entity.Booking.ID,
				ClubID:         clubID,
			})
			if err != nil {
				return fmt.Errorf("failed to check in booking: %w", err)
			}
			result.Entity = Reservable{Kind: KindBooking, Booking: booking}
		}
		result.PaymentStatus = paymentStatus
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The customer is already standing at the desk: ledger failures are
	// reported, never propagated.
	if err := ensureLedgerEntry(ctx, store.Queries, clubID, result.Entity, settledPayment, req); err != nil {
		logger.Warn().Err(err).
			Int64("entity_id", result.Entity.ID()).
			Str("kind", string(result.Entity.Kind)).
			Msg("Failed to write ledger transaction")
		result.LedgerWarning = "ledger transaction could not be recorded"
	} else {
		result.LedgerWritten = true
	}

	return result, nil
}

// settlePayment completes the entity's pending Payment row, creating one when
// no pending row exists yet.
func settlePayment(ctx context.Context, q *dbgen.Queries, clubID int64, entity Reservable, req CheckinRequest) (dbgen.Payment, error) {
	var existing dbgen.Payment
	var err error
	if entity.Kind == KindGroup {
		existing, err = q.GetPaymentForGroup(ctx, entity.Group.ID)
	} else {
		existing, err = q.GetPaymentForBooking(ctx, entity.Booking.ID)
	}

	reference := paymentReference(req.PaymentMethod, req.ReferenceNumber, entity.ID())

	switch {
	case err == nil:
		return q.CompletePayment(ctx, dbgen.CompletePaymentParams{
			Method:    req.PaymentMethod,
			Reference: toNullString(reference),
			ID:        existing.ID,
		})
	case errors.Is(err, sql.ErrNoRows):
		params := dbgen.CreatePaymentParams{
			ClubID:      clubID,
			Method:      req.PaymentMethod,
			Status:      PaymentCompleted,
			AmountCents: entity.PriceCents(),
			Reference:   toNullString(reference),
		}
		if entity.Kind == KindGroup {
			params.GroupID = sql.NullInt64{Int64: entity.Group.ID, Valid: true}
		} else {
			params.BookingID = sql.NullInt64{Int64: entity.Booking.ID, Valid: true}
		}
		return q.CreatePayment(ctx, params)
	default:
		return dbgen.Payment{}, fmt.Errorf("payment lookup failed: %w", err)
	}
}

// ensureLedgerEntry writes the income Transaction for a settled payment,
// including the repair path where an earlier payment completed without a
// ledger row. Checks for an existing Transaction first so repeat calls never
// duplicate entries.
func ensureLedgerEntry(ctx context.Context, q *dbgen.Queries, clubID int64, entity Reservable, settled *dbgen.Payment, req CheckinRequest) error {
	var count int64
	var err error
	if entity.Kind == KindGroup {
		count, err = q.CountTransactionsForGroup(ctx, entity.Group.ID)
	} else {
		count, err = q.CountTransactionsForBooking(ctx, entity.Booking.ID)
	}
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	payment := settled
	if payment == nil {
		// Backfill path: the payment settled earlier without a ledger row.
		var found dbgen.Payment
		if entity.Kind == KindGroup {
			found, err = q.GetPaymentForGroup(ctx, entity.Group.ID)
		} else {
			found, err = q.GetPaymentForBooking(ctx, entity.Booking.ID)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		if found.Status != PaymentCompleted {
			return nil
		}
		payment = &found
	}

	// Reuse the reference recorded at settlement so the ledger row matches
	// the Payment even when backfilling from a later request.
	reference := paymentReference(payment.Method, req.ReferenceNumber, entity.ID())
	if payment.Reference.Valid && payment.Reference.String != "" {
		reference = payment.Reference.String
	}

	params := dbgen.CreateTransactionParams{
		ClubID:      clubID,
		Type:        TransactionIncome,
		AmountCents: payment.AmountCents,
		Method:      payment.Method,
		Reference:   reference,
	}
	if entity.Kind == KindGroup {
		params.GroupID = sql.NullInt64{Int64: entity.Group.ID, Valid: true}
	} else {
		params.BookingID = sql.NullInt64{Int64: entity.Booking.ID, Valid: true}
	}
	_, err = q.CreateTransaction(ctx, params)
	return err
}

func paymentReference(method, reference string, entityID int64) string {
	if reference != "" {
		return fmt.Sprintf("%s-%s", method, reference)
	}
	return fmt.Sprintf("%s-%d", method, entityID)
}

func paymentStatusOf(entity Reservable) string {
	if entity.Kind == KindGroup {
		return entity.Group.PaymentStatus
	}
	return entity.Booking.PaymentStatus
}

// GetCheckinStatus returns the check-in view for a booking or group.
func GetCheckinStatus(ctx context.Context, q *dbgen.Queries, clubID, entityID int64) (*CheckinStatus, error) {
	entity, err := ResolveReservable(ctx, q, clubID, entityID)
	if err != nil {
		return nil, err
	}

	status := &CheckinStatus{IsCheckedIn: entity.CheckedIn()}
	switch entity.Kind {
	case KindGroup:
		status.BookingStatus = entity.Group.Status
		status.IsPaid = entity.Group.PaymentStatus == PaymentCompleted
		if entity.Group.CheckedInAt.Valid {
			at := entity.Group.CheckedInAt.Time
			status.CheckedInAt = &at
		}
		if entity.Group.PlayersArrived.Valid {
			n := entity.Group.PlayersArrived.Int64
			status.PlayersArrived = &n
		}
	default:
		status.BookingStatus = entity.Booking.Status
		status.IsPaid = entity.Booking.PaymentStatus == PaymentCompleted
		if entity.Booking.CheckedInAt.Valid {
			at := entity.Booking.CheckedInAt.Time
			status.CheckedInAt = &at
		}
		if entity.Booking.PlayersArrived.Valid {
			n := entity.Booking.PlayersArrived.Int64
			status.PlayersArrived = &n
		}
	}
	return status, nil
}

func toNullInt64(value int64) sql.NullInt64 {
	if value <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: value, Valid: true}
}
