package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

// SelectionRequest describes one slot for which courts must be found.
type SelectionRequest struct {
	ClubID         int64
	Date           string
	StartTime      string
	EndTime        string
	ManualCourtIDs []int64
	// RequestedCount is how many courts the caller asked for; it must be at
	// least RequiredCount, which the player/court ratio demands.
	RequestedCount int64
	RequiredCount  int64
}

// Selection is the outcome of court selection for a slot.
type Selection struct {
	CourtIDs     []int64
	AutoSelected int64
	Available    int64
	Conflicted   []int64
}

// RequiredCourts computes ceil(totalPlayers / playersPerCourt).
func RequiredCourts(totalPlayers, playersPerCourt int64) int64 {
	if playersPerCourt <= 0 {
		return 0
	}
	return (totalPlayers + playersPerCourt - 1) / playersPerCourt
}

// SelectCourts validates manually chosen courts and tops the set up to the
// requested count from the club's active courts in display order. Selection
// is deterministic; no availability data is touched when the caller requests
// fewer courts than the required count.
func SelectCourts(ctx context.Context, q *dbgen.Queries, req SelectionRequest) (*Selection, error) {
	if req.RequestedCount < req.RequiredCount {
		return nil, CourtCountMismatchError{Requested: req.RequestedCount, Required: req.RequiredCount}
	}

	manual := dedupeCourtIDs(req.ManualCourtIDs)
	for _, courtID := range manual {
		court, err := q.GetCourt(ctx, dbgen.GetCourtParams{ID: courtID, ClubID: req.ClubID})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ValidationError{Field: "court_ids", Reason: fmt.Sprintf("court %d does not exist", courtID)}
			}
			return nil, fmt.Errorf("court lookup failed: %w", err)
		}
		if !court.IsActive {
			return nil, ValidationError{Field: "court_ids", Reason: fmt.Sprintf("court %d is not active", courtID)}
		}
	}

	if int64(len(manual)) >= req.RequestedCount {
		return &Selection{CourtIDs: manual}, nil
	}

	courts, err := q.ListActiveCourts(ctx, req.ClubID)
	if err != nil {
		return nil, fmt.Errorf("court listing failed: %w", err)
	}

	manualSet := make(map[int64]struct{}, len(manual))
	for _, courtID := range manual {
		manualSet[courtID] = struct{}{}
	}

	var available []int64
	var conflicted []int64
	for _, court := range courts {
		conflicts, err := FindConflicts(ctx, q, req.ClubID, court.ID, req.Date, req.StartTime, req.EndTime, 0)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			conflicted = append(conflicted, court.ID)
			continue
		}
		available = append(available, court.ID)
	}

	final := append([]int64{}, manual...)
	var autoSelected int64
	needed := req.RequestedCount - int64(len(manual))
	for _, courtID := range available {
		if needed == 0 {
			break
		}
		if _, ok := manualSet[courtID]; ok {
			continue
		}
		final = append(final, courtID)
		autoSelected++
		needed--
	}

	if int64(len(final)) < req.RequiredCount {
		return nil, InsufficientAvailabilityError{
			Required:  req.RequiredCount,
			Available: int64(len(available)),
		}
	}

	return &Selection{
		CourtIDs:     final,
		AutoSelected: autoSelected,
		Available:    int64(len(available)),
		Conflicted:   conflicted,
	}, nil
}

func dedupeCourtIDs(courtIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(courtIDs))
	deduped := make([]int64, 0, len(courtIDs))
	for _, courtID := range courtIDs {
		if _, ok := seen[courtID]; ok {
			continue
		}
		seen[courtID] = struct{}{}
		deduped = append(deduped, courtID)
	}
	return deduped
}
