package booking

import (
	"context"
	"fmt"
	"math"

	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

// ResolvePrice computes the price in cents for one court over the requested
// slot. Candidate rules cover the start time and are either day-specific or
// club defaults (null day of week); day-specific rules win, then the most
// recently created. No matching rule is fatal for the request.
func ResolvePrice(ctx context.Context, q *dbgen.Queries, clubID int64, date, startTime string, durationMinutes int64) (int64, error) {
	dayOfWeek, err := WeekdayOf(date)
	if err != nil {
		return 0, err
	}
	if _, err := ParseClock(startTime); err != nil {
		return 0, err
	}
	if durationMinutes <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}

	rules, err := q.ListPricingRulesForSlot(ctx, dbgen.ListPricingRulesForSlotParams{
		ClubID:    clubID,
		DayOfWeek: dayOfWeek,
		StartTime: startTime,
	})
	if err != nil {
		return 0, fmt.Errorf("pricing lookup failed: %w", err)
	}
	if len(rules) == 0 {
		return 0, ErrNoPricingConfigured
	}

	rule := rules[0]
	price := math.Round(float64(rule.PricePerHourCents) * float64(durationMinutes) / 60)
	return int64(price), nil
}
