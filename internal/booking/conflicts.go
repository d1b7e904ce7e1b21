package booking

import (
	"context"
	"fmt"

	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

// Overlaps reports whether two same-day [start,end) intervals overlap.
// Boundaries are exclusive on one side so back-to-back slots never conflict.
// Times compare lexicographically, which matches chronological order for
// zero-padded HH:MM strings.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	// a starts during b, a ends during b, or a contains b.
	if bStart <= aStart && aStart < bEnd {
		return true
	}
	if bStart < aEnd && aEnd <= bEnd {
		return true
	}
	if aStart <= bStart && bEnd <= aEnd {
		return true
	}
	return false
}

// FindConflicts returns the non-cancelled bookings on the given court and
// date whose intervals overlap the requested window. excludeBookingID skips
// one booking so an entity never conflicts with itself; pass 0 to exclude
// nothing. Pure read, no side effects.
func FindConflicts(ctx context.Context, q *dbgen.Queries, clubID, courtID int64, date, startTime, endTime string, excludeBookingID int64) ([]dbgen.Booking, error) {
	if endTime <= startTime {
		return nil, ValidationError{Field: "end_time", Reason: "must be after start_time"}
	}

	conflicts, err := q.ListConflictingBookings(ctx, dbgen.ListConflictingBookingsParams{
		ClubID:           clubID,
		CourtID:          courtID,
		Date:             date,
		ExcludeBookingID: excludeBookingID,
		StartTime:        startTime,
		EndTime:          endTime,
	})
	if err != nil {
		return nil, fmt.Errorf("conflict check failed: %w", err)
	}
	return conflicts, nil
}
