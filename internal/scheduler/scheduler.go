package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

const (
	tagRecurring = "recurring"
	tagOnce      = "once"
)

// JobInfo describes a queued job for the ops endpoint.
type JobInfo struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Tags    []string  `json:"tags"`
	NextRun time.Time `json:"next_run"`
}

// Scheduler is the process-wide job queue. Recurring daily triggers and
// one-shot delayed jobs share one gocron scheduler.
type Scheduler struct {
	cron   gocron.Scheduler
	clock  clockwork.Clock
	log    *zap.SugaredLogger
	ctx    context.Context
	cancel context.CancelFunc
}

type options struct {
	clock  clockwork.Clock
	locker gocron.Locker
}

type Option func(*options)

// WithClock replaces the wall clock, tests pass a clockwork fake.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLocker makes every job take a distributed lock before running.
func WithLocker(locker gocron.Locker) Option {
	return func(o *options) {
		o.locker = locker
	}
}

func New(loc *time.Location, log *zap.SugaredLogger, opts ...Option) (*Scheduler, error) {
	o := &options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(o)
	}

	schedOpts := []gocron.SchedulerOption{
		gocron.WithLocation(loc),
		gocron.WithClock(o.clock),
		gocron.WithLogger(newLogger(log)),
	}
	if o.locker != nil {
		schedOpts = append(schedOpts, gocron.WithDistributedLocker(o.locker))
	}

	cron, err := gocron.NewScheduler(schedOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron,
		clock:  o.clock,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

var _ contract.JobScheduler = (*Scheduler)(nil)

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("Scheduler started")
}

// Shutdown cancels the context of running jobs and stops the scheduler.
func (s *Scheduler) Shutdown() error {
	s.cancel()
	if err := s.cron.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	s.log.Info("Scheduler stopped")
	return nil
}

func (s *Scheduler) ScheduleRecurring(job entity.Job, h contract.JobHandler) (uuid.UUID, error) {
	at := gocron.NewAtTimes(gocron.NewAtTime(uint(job.Hour), uint(job.Minute), 0))

	j, err := s.cron.NewJob(
		gocron.DailyJob(1, at),
		gocron.NewTask(s.task(h), job),
		gocron.WithName(job.Name()),
		gocron.WithTags(tagRecurring, chatTag(job.ChatID)),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to schedule %s: %w", job.Name(), err)
	}

	return j.ID(), nil
}

func (s *Scheduler) ScheduleOnce(job entity.Job, h contract.JobHandler) (uuid.UUID, error) {
	start := gocron.OneTimeJobStartImmediately()
	if job.RunAt.After(s.clock.Now()) {
		start = gocron.OneTimeJobStartDateTime(job.RunAt)
	}

	j, err := s.cron.NewJob(
		gocron.OneTimeJob(start),
		gocron.NewTask(s.task(h), job),
		gocron.WithName(job.Name()),
		gocron.WithTags(tagOnce, chatTag(job.ChatID)),
		gocron.WithLimitedRuns(1),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to schedule %s: %w", job.Name(), err)
	}

	return j.ID(), nil
}

func (s *Scheduler) CancelRecurring() {
	s.cron.RemoveByTags(tagRecurring)
}

// Jobs lists queued jobs ordered by next run. Jobs that have no further run
// are left out.
func (s *Scheduler) Jobs() []JobInfo {
	jobs := s.cron.Jobs()
	infos := make([]JobInfo, 0, len(jobs))
	for _, j := range jobs {
		next, err := j.NextRun()
		if err != nil || next.IsZero() {
			s.log.Debugw("job without next run skipped", "job", j.Name(), "error", err)
			continue
		}
		infos = append(infos, JobInfo{
			ID:      j.ID(),
			Name:    j.Name(),
			Tags:    j.Tags(),
			NextRun: next,
		})
	}

	sort.Slice(infos, func(i, k int) bool {
		return infos[i].NextRun.Before(infos[k].NextRun)
	})
	return infos
}

// task hands the job record back to its handler; gocron runs it on its own goroutine.
func (s *Scheduler) task(h contract.JobHandler) func(entity.Job) {
	return func(job entity.Job) {
		h.HandleJob(s.ctx, job)
	}
}

func chatTag(chatID int64) string {
	return "chat:" + strconv.FormatInt(chatID, 10)
}
