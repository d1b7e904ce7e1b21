package booking

import (
	"context"
	"database/sql"
	"errors"

	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

// ReservableKind distinguishes the two entities a booking ID can resolve to.
type ReservableKind string

const (
	KindBooking ReservableKind = "booking"
	KindGroup   ReservableKind = "group"
)

// Reservable is either a single booking or a booking group, resolved from one
// ID space so callers can check in either through the same endpoint.
type Reservable struct {
	Kind    ReservableKind
	Booking dbgen.Booking
	Group   dbgen.BookingGroup
}

// ID returns the underlying entity's row ID.
func (r Reservable) ID() int64 {
	if r.Kind == KindGroup {
		return r.Group.ID
	}
	return r.Booking.ID
}

// CheckedIn reports whether the entity has already been checked in.
func (r Reservable) CheckedIn() bool {
	if r.Kind == KindGroup {
		return r.Group.CheckedIn
	}
	return r.Booking.CheckedIn
}

// PriceCents returns the entity's total price.
func (r Reservable) PriceCents() int64 {
	if r.Kind == KindGroup {
		return r.Group.PriceCents
	}
	return r.Booking.PriceCents
}

// ResolveReservable looks up id first as a single booking and then as a
// booking group. Group member bookings resolve as single bookings since the
// bookings table is checked first; callers that want the whole group pass the
// group's own ID. Returns ErrNotFound when neither table has the row.
func ResolveReservable(ctx context.Context, q *dbgen.Queries, clubID, id int64) (Reservable, error) {
	b, err := q.GetBooking(ctx, dbgen.GetBookingParams{ID: id, ClubID: clubID})
	if err == nil {
		return Reservable{Kind: KindBooking, Booking: b}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Reservable{}, err
	}

	g, err := q.GetBookingGroup(ctx, dbgen.GetBookingGroupParams{ID: id, ClubID: clubID})
	if err == nil {
		return Reservable{Kind: KindGroup, Group: g}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Reservable{}, err
	}
	return Reservable{}, ErrNotFound
}
