package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	appdb "github.com/clubmesa/courtside/internal/db"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
	"github.com/clubmesa/courtside/internal/testutil"
)

// testDay is a fixed Saturday so day-of-week-dependent fixtures are stable.
const (
	testDay     = "2026-03-07"
	testDayOfWk = 6
)

// testNow is a morning before testDay, used to pin the allocator clock.
var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	db     *appdb.DB
	q      *dbgen.Queries
	clubID int64
	courts []dbgen.Court
}

func newFixture(t *testing.T, courtCount int) *fixture {
	t.Helper()

	database := testutil.NewTestDB(t)
	ctx := context.Background()
	q := database.Queries

	club, err := q.CreateClub(ctx, dbgen.CreateClubParams{
		Name:     "Mesa Padel Club",
		Slug:     "mesa-padel",
		Timezone: "UTC",
	})
	if err != nil {
		t.Fatalf("seed club: %v", err)
	}

	f := &fixture{db: database, q: q, clubID: club.ID}
	for i := 0; i < courtCount; i++ {
		court, err := q.CreateCourt(ctx, dbgen.CreateCourtParams{
			ClubID:       club.ID,
			Name:         fmt.Sprintf("Court %d", i+1),
			DisplayOrder: int64(i + 1),
			IsActive:     true,
		})
		if err != nil {
			t.Fatalf("seed court: %v", err)
		}
		f.courts = append(f.courts, court)
	}
	return f
}

func (f *fixture) seedDefaultPricing(t *testing.T, pricePerHourCents int64) {
	t.Helper()
	_, err := f.q.CreatePricingRule(context.Background(), dbgen.CreatePricingRuleParams{
		ClubID:            f.clubID,
		StartsAt:          "06:00",
		EndsAt:            "23:00",
		PricePerHourCents: pricePerHourCents,
		CreatedAt:         testNow,
	})
	if err != nil {
		t.Fatalf("seed pricing rule: %v", err)
	}
}

func (f *fixture) seedHours(t *testing.T, dayOfWeek int64, opensAt, closesAt string, closed bool) {
	t.Helper()
	_, err := f.q.UpsertClubHours(context.Background(), dbgen.UpsertClubHoursParams{
		ClubID:    f.clubID,
		DayOfWeek: dayOfWeek,
		OpensAt:   opensAt,
		ClosesAt:  closesAt,
		IsClosed:  closed,
	})
	if err != nil {
		t.Fatalf("seed club hours: %v", err)
	}
}

func (f *fixture) seedBooking(t *testing.T, courtID int64, date, startTime, endTime, status string) dbgen.Booking {
	t.Helper()
	start, err := ParseClock(startTime)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	end, err := ParseClock(endTime)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}
	created, err := f.q.CreateBooking(context.Background(), dbgen.CreateBookingParams{
		ClubID:          f.clubID,
		CourtID:         sql.NullInt64{Int64: courtID, Valid: true},
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		DurationMinutes: end - start,
		Status:          status,
		PaymentStatus:   PaymentPending,
		PriceCents:      40000,
		PlayerName:      "Ana Reyes",
		PlayerPhone:     "+5215512345678",
		TotalPlayers:    4,
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return created
}

func (f *fixture) allocator() *Allocator {
	a := NewAllocator(f.db, nil)
	a.now = func() time.Time { return testNow }
	return a
}

func asValidation(err error, target *ValidationError) bool {
	return errors.As(err, target)
}

func groupRequest(clubID int64) GroupRequest {
	return GroupRequest{
		ClubID:          clubID,
		Name:            "Saturday Social",
		Type:            "SOCIAL",
		Date:            testDay,
		StartTime:       "10:00",
		DurationMinutes: 90,
		PlayerName:      "Ana Reyes",
		PlayerPhone:     "+5215512345678",
		PlayerEmail:     "ana@example.com",
		TotalPlayers:    4,
		PlayersPerCourt: 4,
		PaymentType:     PaymentTypeOnsite,
		PaymentMethod:   MethodCash,
	}
}
