package contract

//go:generate mockgen -source=jobs.go -destination=../../../mocks/jobs_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/google/uuid"
)

// JobHandler runs a fired job. Each call happens on its own goroutine.
type JobHandler interface {
	HandleJob(ctx context.Context, job entity.Job)
}

// JobScheduler is the single job queue for recurring daily triggers and
// one-shot delayed jobs.
type JobScheduler interface {
	// ScheduleRecurring installs a daily job at job.Hour:job.Minute in the
	// scheduler's reference zone.
	ScheduleRecurring(job entity.Job, h JobHandler) (uuid.UUID, error)
	// ScheduleOnce runs the job once at job.RunAt, or right away if it is in the past.
	ScheduleOnce(job entity.Job, h JobHandler) (uuid.UUID, error)
	// CancelRecurring removes every recurring job. One-shot jobs are kept.
	CancelRecurring()
}
