package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	appdb "github.com/clubmesa/courtside/internal/db"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
	"github.com/clubmesa/courtside/internal/paylink"
)

// GroupRequest carries a validated multi-court reservation request.
type GroupRequest struct {
	ClubID              int64
	Name                string
	Type                string
	CourtIDs            []int64
	MultiCourtCount     int64
	Date                string
	StartTime           string
	DurationMinutes     int64
	PlayerName          string
	PlayerPhone         string
	PlayerEmail         string
	TotalPlayers        int64
	PlayersPerCourt     int64
	SplitPaymentEnabled bool
	SplitPaymentCount   int64
	Notes               string
	PaymentMethod       string
	PaymentType         string
}

// AllocationResult is the outcome of a committed group reservation plus its
// best-effort side effects. Warnings report non-fatal post-commit failures;
// they never invalidate the reservation itself.
type AllocationResult struct {
	Group              dbgen.BookingGroup
	Bookings           []dbgen.Booking
	SplitPayments      []dbgen.SplitPayment
	TotalPriceCents    int64
	AutoSelectedCourts int64
	PaymentLink        string
	StatsUpdated       bool
	Warnings           []string
}

// Allocator orchestrates group reservation creation: validation, court
// selection, pricing, and the atomic commit of group, bookings, and payment
// rows.
type Allocator struct {
	Store *appdb.DB
	Links paylink.Generator // optional; nil disables hosted payment links

	// now allows tests to pin the clock; nil uses time.Now.
	now func() time.Time
}

// NewAllocator returns an Allocator bound to the given store.
func NewAllocator(store *appdb.DB, links paylink.Generator) *Allocator {
	return &Allocator{Store: store, Links: links}
}

func (a *Allocator) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

// CreateGroupReservation validates the request, selects courts, prices the
// slot, and commits the reservation atomically. The first failing pre-check
// wins and no partial rows are ever left behind.
func (a *Allocator) CreateGroupReservation(ctx context.Context, req GroupRequest) (*AllocationResult, error) {
	logger := zerolog.Ctx(ctx)
	q := a.Store.Queries

	if err := validateGroupRequest(req); err != nil {
		return nil, err
	}

	endTime, err := AddMinutes(req.StartTime, req.DurationMinutes)
	if err != nil {
		return nil, ValidationError{Field: "duration", Reason: err.Error()}
	}

	if err := a.checkDateBounds(req.Date); err != nil {
		return nil, err
	}
	if err := a.checkOperatingHours(ctx, q, req.ClubID, req.Date, endTime); err != nil {
		return nil, err
	}

	requiredCourts := RequiredCourts(req.TotalPlayers, req.PlayersPerCourt)
	requestedCourts := req.MultiCourtCount
	if int64(len(req.CourtIDs)) > requestedCourts {
		requestedCourts = int64(len(req.CourtIDs))
	}
	if requestedCourts == 0 {
		requestedCourts = requiredCourts
	}

	selection, err := SelectCourts(ctx, q, SelectionRequest{
		ClubID:         req.ClubID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        endTime,
		ManualCourtIDs: req.CourtIDs,
		RequestedCount: requestedCourts,
		RequiredCount:  requiredCourts,
	})
	if err != nil {
		return nil, err
	}

	result := &AllocationResult{AutoSelectedCourts: selection.AutoSelected}

	err = a.Store.RunInTx(ctx, func(txdb *appdb.DB) error {
		qtx := txdb.Queries

		// Availability was computed in a separate read phase; re-check every
		// selected court inside the transaction to close the race window.
		var unavailable []string
		for _, courtID := range selection.CourtIDs {
			conflicts, err := FindConflicts(ctx, qtx, req.ClubID, courtID, req.Date, req.StartTime, endTime, 0)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				court, courtErr := qtx.GetCourt(ctx, dbgen.GetCourtParams{ID: courtID, ClubID: req.ClubID})
				if courtErr != nil {
					unavailable = append(unavailable, fmt.Sprintf("court %d", courtID))
					continue
				}
				unavailable = append(unavailable, court.Name)
			}
		}
		if len(unavailable) > 0 {
			return CourtsUnavailableError{Courts: unavailable}
		}

		prices := make(map[int64]int64, len(selection.CourtIDs))
		var totalPrice int64
		for _, courtID := range selection.CourtIDs {
			price, err := ResolvePrice(ctx, qtx, req.ClubID, req.Date, req.StartTime, req.DurationMinutes)
			if err != nil {
				return err
			}
			prices[courtID] = price
			totalPrice += price
		}

		group, err := qtx.CreateBookingGroup(ctx, dbgen.CreateBookingGroupParams{
			ClubID:              req.ClubID,
			Name:                req.Name,
			Type:                req.Type,
			Date:                req.Date,
			StartTime:           req.StartTime,
			EndTime:             endTime,
			DurationMinutes:     req.DurationMinutes,
			Status:              StatusPending,
			PaymentStatus:       PaymentPending,
			PriceCents:          totalPrice,
			PlayerName:          req.PlayerName,
			PlayerPhone:         req.PlayerPhone,
			PlayerEmail:         toNullString(req.PlayerEmail),
			TotalPlayers:        req.TotalPlayers,
			PlayersPerCourt:     req.PlayersPerCourt,
			SplitPaymentEnabled: req.SplitPaymentEnabled,
			SplitPaymentCount:   req.SplitPaymentCount,
			Notes:               toNullString(req.Notes),
		})
		if err != nil {
			return fmt.Errorf("failed to create booking group: %w", err)
		}

		bookings := make([]dbgen.Booking, 0, len(selection.CourtIDs))
		for _, courtID := range selection.CourtIDs {
			created, err := qtx.CreateBooking(ctx, dbgen.CreateBookingParams{
				ClubID:          req.ClubID,
				CourtID:         sql.NullInt64{Int64: courtID, Valid: true},
				GroupID:         sql.NullInt64{Int64: group.ID, Valid: true},
				Date:            req.Date,
				StartTime:       req.StartTime,
				EndTime:         endTime,
				DurationMinutes: req.DurationMinutes,
				Status:          StatusPending,
				PaymentStatus:   PaymentPending,
				PriceCents:      prices[courtID],
				PlayerName:      req.PlayerName,
				PlayerPhone:     req.PlayerPhone,
				PlayerEmail:     toNullString(req.PlayerEmail),
				// Each court's booking records the per-court headcount, not a
				// fraction of the group total.
				TotalPlayers: req.PlayersPerCourt,
				Notes:        toNullString(req.Notes),
			})
			if err != nil {
				return fmt.Errorf("failed to create booking: %w", err)
			}
			bookings = append(bookings, created)
		}

		var splits []dbgen.SplitPayment
		if req.SplitPaymentEnabled {
			share := ceilDiv(totalPrice, req.SplitPaymentCount)
			for i := int64(0); i < req.SplitPaymentCount; i++ {
				params := dbgen.CreateSplitPaymentParams{
					GroupID:     group.ID,
					PlayerName:  fmt.Sprintf("Player %d", i+1),
					AmountCents: share,
					Status:      PaymentPending,
				}
				if i == 0 {
					params.PlayerName = req.PlayerName
					params.PlayerPhone = toNullString(req.PlayerPhone)
					params.PlayerEmail = toNullString(req.PlayerEmail)
				}
				split, err := qtx.CreateSplitPayment(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to create split payment: %w", err)
				}
				splits = append(splits, split)
			}
		} else if req.PaymentType == PaymentTypeOnsite {
			method := req.PaymentMethod
			if method == "" {
				method = MethodCash
			}
			if _, err := qtx.CreatePayment(ctx, dbgen.CreatePaymentParams{
				ClubID:      req.ClubID,
				GroupID:     sql.NullInt64{Int64: group.ID, Valid: true},
				Method:      method,
				Status:      PaymentPending,
				AmountCents: totalPrice,
			}); err != nil {
				return fmt.Errorf("failed to create payment: %w", err)
			}
		}

		result.Group = group
		result.Bookings = bookings
		result.SplitPayments = splits
		result.TotalPriceCents = totalPrice
		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.PaymentType == PaymentTypeOnline && a.Links != nil {
		link, err := a.Links.CheckoutLink(ctx, paylink.Checkout{
			GroupID:     result.Group.ID,
			AmountCents: result.TotalPriceCents,
			PayerName:   req.PlayerName,
		})
		if err != nil {
			logger.Warn().Err(err).Int64("group_id", result.Group.ID).Msg("Failed to generate payment link")
			result.Warnings = append(result.Warnings, "payment link generation failed")
		} else {
			result.PaymentLink = link
		}
	}

	// Post-commit best effort: failures here never invalidate the committed
	// reservation.
	updated, err := q.RecordPlayerBooking(ctx, dbgen.RecordPlayerBookingParams{
		SpentCents:    result.TotalPriceCents,
		LastBookingAt: a.clock().UTC(),
		ClubID:        req.ClubID,
		Phone:         req.PlayerPhone,
	})
	if err != nil {
		logger.Warn().Err(err).Str("phone", req.PlayerPhone).Msg("Failed to update player stats")
		result.Warnings = append(result.Warnings, "player stats update failed")
	} else {
		result.StatsUpdated = updated > 0
	}

	return result, nil
}

func (a *Allocator) checkDateBounds(date string) error {
	requested, err := ParseDate(date)
	if err != nil {
		return ValidationError{Field: "date", Reason: err.Error()}
	}

	today, err := ParseDate(FormatDate(a.clock()))
	if err != nil {
		return err
	}
	if requested.Before(today) {
		return ValidationError{Field: "date", Reason: "cannot book a past date"}
	}
	if requested.After(today.AddDate(0, 0, MaxAdvanceBookingDays)) {
		return ValidationError{Field: "date", Reason: fmt.Sprintf("cannot book more than %d days ahead", MaxAdvanceBookingDays)}
	}
	return nil
}

func (a *Allocator) checkOperatingHours(ctx context.Context, q *dbgen.Queries, clubID int64, date, endTime string) error {
	dayOfWeek, err := WeekdayOf(date)
	if err != nil {
		return ValidationError{Field: "date", Reason: err.Error()}
	}

	hours, err := q.GetClubHours(ctx, dbgen.GetClubHoursParams{ClubID: clubID, DayOfWeek: dayOfWeek})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No configured hours means no closing-time restriction.
			return nil
		}
		return fmt.Errorf("operating hours lookup failed: %w", err)
	}
	if hours.IsClosed {
		return ValidationError{Field: "date", Reason: "the club is closed on the requested day"}
	}
	if endTime > hours.ClosesAt {
		return ValidationError{
			Field:  "duration",
			Reason: fmt.Sprintf("booking ends at %s but the club closes at %s", endTime, hours.ClosesAt),
		}
	}
	return nil
}

func validateGroupRequest(req GroupRequest) error {
	switch {
	case req.ClubID <= 0:
		return ValidationError{Field: "club_id", Reason: "must be a positive integer"}
	case strings.TrimSpace(req.Name) == "":
		return ValidationError{Field: "name", Reason: "is required"}
	case strings.TrimSpace(req.PlayerName) == "":
		return ValidationError{Field: "playerName", Reason: "is required"}
	case strings.TrimSpace(req.PlayerPhone) == "":
		return ValidationError{Field: "playerPhone", Reason: "is required"}
	case req.TotalPlayers <= 0:
		return ValidationError{Field: "totalPlayers", Reason: "must be a positive integer"}
	case req.PlayersPerCourt <= 0:
		return ValidationError{Field: "playersPerCourt", Reason: "must be a positive integer"}
	case req.DurationMinutes <= 0:
		return ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	case req.MultiCourtCount < 0:
		return ValidationError{Field: "multiCourtCount", Reason: "must be 0 or greater"}
	}

	if _, err := ParseClock(req.StartTime); err != nil {
		return ValidationError{Field: "startTime", Reason: err.Error()}
	}
	if _, err := ParseDate(req.Date); err != nil {
		return ValidationError{Field: "date", Reason: err.Error()}
	}

	if req.SplitPaymentEnabled && req.SplitPaymentCount < 2 {
		return ValidationError{Field: "splitPaymentCount", Reason: "must be at least 2 when split payments are enabled"}
	}
	if req.PaymentMethod != "" && !ValidPaymentMethod(req.PaymentMethod) {
		return ValidationError{Field: "paymentMethod", Reason: "must be one of: CASH, TERMINAL, SPEI, ONLINE"}
	}
	if req.PaymentType != "" && req.PaymentType != PaymentTypeOnsite && req.PaymentType != PaymentTypeOnline {
		return ValidationError{Field: "paymentType", Reason: "must be onsite or online"}
	}

	for _, courtID := range req.CourtIDs {
		if courtID <= 0 {
			return ValidationError{Field: "courtIds", Reason: "must contain only positive integers"}
		}
	}

	return nil
}

func ceilDiv(total, parts int64) int64 {
	if parts <= 0 {
		return total
	}
	return (total + parts - 1) / parts
}

func toNullString(value string) sql.NullString {
	value = strings.TrimSpace(value)
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
