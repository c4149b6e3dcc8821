package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"go.uber.org/zap"
)

// Registry owns the recurring prompt triggers. Every resync replaces the
// whole set, so the installed triggers always mirror the last schedule list.
type Registry struct {
	mu       sync.Mutex
	jobs     contract.JobScheduler
	source   contract.ScheduleSource
	handler  contract.JobHandler
	triggers map[int64]entity.Trigger
	log      *zap.SugaredLogger
}

func NewRegistry(jobs contract.JobScheduler, source contract.ScheduleSource, handler contract.JobHandler, log *zap.SugaredLogger) *Registry {
	return &Registry{
		jobs:     jobs,
		source:   source,
		handler:  handler,
		triggers: make(map[int64]entity.Trigger),
		log:      log,
	}
}

var _ contract.TriggerRegistry = (*Registry)(nil)

// Resync cancels every recurring trigger and installs one per enabled
// schedule. A malformed daily time only skips that chat.
func (r *Registry) Resync(_ context.Context, schedules []entity.ChatSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs.CancelRecurring()
	r.triggers = make(map[int64]entity.Trigger, len(schedules))

	for _, s := range schedules {
		if !s.Enabled() {
			continue
		}
		if _, dup := r.triggers[s.ChatID]; dup {
			r.log.Warnw("duplicate schedule ignored", "chat_id", s.ChatID, "daily_time", s.DailyTime)
			continue
		}

		hour, minute, err := entity.ParseDailyTime(s.DailyTime)
		if err != nil {
			r.log.Warnw("skipping chat with malformed daily time", "chat_id", s.ChatID, "daily_time", s.DailyTime, "error", err)
			continue
		}

		job := entity.Job{Kind: entity.JobPrompt, ChatID: s.ChatID, Hour: hour, Minute: minute}
		id, err := r.jobs.ScheduleRecurring(job, r.handler)
		if err != nil {
			r.log.Errorw("failed to install trigger", "chat_id", s.ChatID, "error", err)
			continue
		}

		r.triggers[s.ChatID] = entity.Trigger{ChatID: s.ChatID, Hour: hour, Minute: minute, JobID: id}
	}

	r.log.Infow("schedule resynced", "triggers", len(r.triggers))
	return nil
}

// Reload reads every schedule from the source and resyncs with the full list.
func (r *Registry) Reload(ctx context.Context) error {
	schedules, err := r.source.ListSchedules(ctx)
	if err != nil {
		return fmt.Errorf("failed to list schedules: %w", err)
	}

	return r.Resync(ctx, schedules)
}

// Triggers returns the installed triggers ordered by chat id.
func (r *Registry) Triggers() []entity.Trigger {
	r.mu.Lock()
	defer r.mu.Unlock()

	triggers := make([]entity.Trigger, 0, len(r.triggers))
	for _, t := range r.triggers {
		triggers = append(triggers, t)
	}
	sort.Slice(triggers, func(i, j int) bool {
		return triggers[i].ChatID < triggers[j].ChatID
	})
	return triggers
}
