package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clubmesa/courtside/internal/booking"
	"github.com/clubmesa/courtside/internal/db"
	dbgen "github.com/clubmesa/courtside/internal/db/generated"
)

// RegisterCompletionJob registers the sweep that moves finished groups from
// IN_PROGRESS to COMPLETED once their end time has passed.
func RegisterCompletionJob(database *db.DB) error {
	if database == nil {
		return fmt.Errorf("completion job requires database")
	}

	jobName := "group_completion_sweep"
	cronExpr := "*/10 * * * *"
	jobLogger := log.With().
		Str("component", "group_completion_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Logger()

	_, err := AddJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		ctx = jobLogger.WithContext(ctx)

		now := time.Now().UTC()
		completed, err := SweepFinishedGroups(ctx, database, now)
		if err != nil {
			jobLogger.Error().Err(err).Msg("Group completion sweep failed")
			return
		}
		if completed > 0 {
			jobLogger.Info().Int("completed", completed).Msg("Groups marked completed")
		}
	})
	return err
}

// SweepFinishedGroups completes every IN_PROGRESS group whose slot ended at
// or before now. Returns how many groups transitioned.
func SweepFinishedGroups(ctx context.Context, database *db.DB, now time.Time) (int, error) {
	groups, err := database.Queries.ListFinishedInProgressGroups(ctx, dbgen.ListFinishedInProgressGroupsParams{
		Date:    booking.FormatDate(now),
		EndTime: booking.FormatClockTime(now),
	})
	if err != nil {
		return 0, fmt.Errorf("list finished groups: %w", err)
	}

	var completed int
	for _, group := range groups {
		err := database.RunInTx(ctx, func(txdb *db.DB) error {
			if _, err := txdb.Queries.UpdateGroupStatus(ctx, dbgen.UpdateGroupStatusParams{
				Status: booking.StatusCompleted,
				ID:     group.ID,
			}); err != nil {
				return err
			}
			_, err := txdb.Queries.UpdateGroupBookingStatuses(ctx, dbgen.UpdateGroupBookingStatusesParams{
				Status:        booking.StatusCompleted,
				PaymentStatus: group.PaymentStatus,
				GroupID:       group.ID,
			})
			return err
		})
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Int64("group_id", group.ID).Msg("Failed to complete group")
			continue
		}
		completed++
	}
	return completed, nil
}
