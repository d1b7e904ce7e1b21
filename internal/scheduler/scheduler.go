// Package scheduler owns the process-wide cron runner for background sweeps.
package scheduler

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrNotInitialized = errors.New("scheduler not initialized")

var (
	runner   gocron.Scheduler
	initOnce sync.Once
	initErr  error
	stopOnce sync.Once
	stopErr  error
)

// Init creates the process-wide scheduler. Jobs registered afterwards do not
// run until Start is called.
func Init() error {
	initOnce.Do(func() {
		runner, initErr = gocron.NewScheduler(
			gocron.WithGlobalJobOptions(
				gocron.WithEventListeners(
					gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
						log.Error().
							Str("job_id", jobID.String()).
							Str("job_name", jobName).
							Interface("panic", recoverData).
							Msg("Scheduled job panicked")
					}),
				),
			),
		)
		if initErr == nil {
			log.Info().Msg("Scheduler initialized")
		}
	})
	return initErr
}

// Start begins running registered jobs.
func Start() error {
	if runner == nil {
		return ErrNotInitialized
	}
	log.Info().Msg("Scheduler starting")
	runner.Start()
	return nil
}

// Stop shuts the scheduler down and waits for running jobs to finish.
func Stop() error {
	if runner == nil {
		return ErrNotInitialized
	}
	stopOnce.Do(func() {
		log.Info().Msg("Scheduler stopping")
		stopErr = runner.Shutdown()
	})
	return stopErr
}

// AddJob registers a named cron job.
func AddJob(name, cronExpr string, task func()) (gocron.Job, error) {
	if runner == nil {
		return nil, ErrNotInitialized
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("job name is required")
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, errors.New("cron expression is required")
	}

	jobLogger := log.With().Str("job_name", name).Str("cron", cronExpr).Logger()
	job, err := runner.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			jobLogger.Debug().Msg("Job started")
			task()
			jobLogger.Debug().Msg("Job finished")
		}),
		gocron.WithName(name),
	)
	if err != nil {
		jobLogger.Error().Err(err).Msg("Failed to register job")
		return nil, err
	}
	jobLogger.Info().Msg("Job registered")
	return job, nil
}
