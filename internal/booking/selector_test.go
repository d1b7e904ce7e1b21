package booking

import (
	"context"
	"errors"
	"testing"

	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

func TestRequiredCourts(t *testing.T) {
	cases := []struct {
		total, perCourt, want int64
	}{
		{4, 4, 1},
		{5, 4, 2},
		{8, 4, 2},
		{10, 4, 3},
		{1, 4, 1},
		{12, 4, 3},
	}
	for _, tc := range cases {
		if got := RequiredCourts(tc.total, tc.perCourt); got != tc.want {
			t.Errorf("RequiredCourts(%d, %d) = %d, want %d", tc.total, tc.perCourt, got, tc.want)
		}
	}
}

func TestSelectCourts_CountMismatchFailsFast(t *testing.T) {
	f := newFixture(t, 3)

	_, err := SelectCourts(context.Background(), f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		RequestedCount: 2,
		RequiredCount:  3,
	})
	var mismatch CourtCountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected CourtCountMismatchError, got %v", err)
	}
	if mismatch.Requested != 2 || mismatch.Required != 3 {
		t.Errorf("got %+v, want requested 2 required 3", mismatch)
	}
}

func TestSelectCourts_ManualSufficient(t *testing.T) {
	f := newFixture(t, 3)
	// Occupy a non-selected court; manual selection must not care.
	f.seedBooking(t, f.courts[2].ID, testDay, "10:00", "11:00", StatusConfirmed)

	sel, err := SelectCourts(context.Background(), f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		ManualCourtIDs: []int64{f.courts[0].ID, f.courts[1].ID},
		RequestedCount: 2,
		RequiredCount:  2,
	})
	if err != nil {
		t.Fatalf("select courts: %v", err)
	}
	if len(sel.CourtIDs) != 2 || sel.AutoSelected != 0 {
		t.Errorf("got %d courts, %d auto-selected; want 2 manual only", len(sel.CourtIDs), sel.AutoSelected)
	}
}

func TestSelectCourts_AutoSelectsInDisplayOrder(t *testing.T) {
	f := newFixture(t, 4)

	sel, err := SelectCourts(context.Background(), f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		RequestedCount: 2,
		RequiredCount:  2,
	})
	if err != nil {
		t.Fatalf("select courts: %v", err)
	}
	if sel.AutoSelected != 2 {
		t.Errorf("auto-selected %d, want 2", sel.AutoSelected)
	}
	want := []int64{f.courts[0].ID, f.courts[1].ID}
	for i, id := range want {
		if sel.CourtIDs[i] != id {
			t.Errorf("court %d = %d, want %d (display order)", i, sel.CourtIDs[i], id)
		}
	}
}

func TestSelectCourts_SkipsConflictedCourts(t *testing.T) {
	f := newFixture(t, 3)
	f.seedBooking(t, f.courts[0].ID, testDay, "10:00", "11:00", StatusConfirmed)

	sel, err := SelectCourts(context.Background(), f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		RequestedCount: 2,
		RequiredCount:  2,
	})
	if err != nil {
		t.Fatalf("select courts: %v", err)
	}
	for _, id := range sel.CourtIDs {
		if id == f.courts[0].ID {
			t.Errorf("conflicted court %d was selected", id)
		}
	}
	if len(sel.Conflicted) != 1 || sel.Conflicted[0] != f.courts[0].ID {
		t.Errorf("conflicted = %v, want [%d]", sel.Conflicted, f.courts[0].ID)
	}
}

func TestSelectCourts_TopsUpManualSelection(t *testing.T) {
	f := newFixture(t, 3)

	sel, err := SelectCourts(context.Background(), f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		ManualCourtIDs: []int64{f.courts[1].ID},
		RequestedCount: 2,
		RequiredCount:  2,
	})
	if err != nil {
		t.Fatalf("select courts: %v", err)
	}
	if len(sel.CourtIDs) != 2 || sel.AutoSelected != 1 {
		t.Fatalf("got %d courts, %d auto; want 2 courts, 1 auto", len(sel.CourtIDs), sel.AutoSelected)
	}
	if sel.CourtIDs[0] != f.courts[1].ID {
		t.Errorf("manual court should lead the selection")
	}
	// Top-up must not re-pick the manually chosen court.
	if sel.CourtIDs[1] == f.courts[1].ID {
		t.Errorf("manual court selected twice")
	}
}

func TestSelectCourts_InsufficientAvailability(t *testing.T) {
	f := newFixture(t, 3)
	for _, court := range f.courts[:2] {
		f.seedBooking(t, court.ID, testDay, "10:00", "11:00", StatusConfirmed)
	}

	_, err := SelectCourts(context.Background(), f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		RequestedCount: 3,
		RequiredCount:  3,
	})
	var insufficient InsufficientAvailabilityError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientAvailabilityError, got %v", err)
	}
	if insufficient.Required != 3 || insufficient.Available != 1 {
		t.Errorf("got %+v, want required 3 available 1", insufficient)
	}
}

func TestSelectCourts_UnknownManualCourt(t *testing.T) {
	f := newFixture(t, 1)

	_, err := SelectCourts(context.Background(), f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		ManualCourtIDs: []int64{9999},
		RequestedCount: 1,
		RequiredCount:  1,
	})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown court, got %v", err)
	}
}

func TestSelectCourts_InactiveManualCourt(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()
	if _, err := f.q.DeactivateCourt(ctx, dbgen.DeactivateCourtParams{ID: f.courts[0].ID, ClubID: f.clubID}); err != nil {
		t.Fatalf("deactivate court: %v", err)
	}

	_, err := SelectCourts(ctx, f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		ManualCourtIDs: []int64{f.courts[0].ID},
		RequestedCount: 1,
		RequiredCount:  1,
	})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for inactive court, got %v", err)
	}
}

func TestSelectCourts_CrossTenantManualCourt(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	other, err := f.q.CreateClub(ctx, dbgen.CreateClubParams{
		Name: "Other Club", Slug: "other-club", Timezone: "UTC",
	})
	if err != nil {
		t.Fatalf("seed other club: %v", err)
	}
	foreign, err := f.q.CreateCourt(ctx, dbgen.CreateCourtParams{
		ClubID: other.ID, Name: "Foreign Court", DisplayOrder: 1, IsActive: true,
	})
	if err != nil {
		t.Fatalf("seed foreign court: %v", err)
	}

	_, err = SelectCourts(ctx, f.q, SelectionRequest{
		ClubID:         f.clubID,
		Date:           testDay,
		StartTime:      "10:00",
		EndTime:        "11:00",
		ManualCourtIDs: []int64{foreign.ID},
		RequestedCount: 1,
		RequiredCount:  1,
	})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for another club's court, got %v", err)
	}
}
