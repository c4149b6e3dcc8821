package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Dispatcher runs fired jobs: the daily prompt, the follow-up reminder pass
// and cleanup of service notices.
type Dispatcher struct {
	dm        contract.DataManager
	store     contract.ParticipantStore
	messenger contract.Messenger
	calendar  contract.Calendar
	jobs      contract.JobScheduler
	alerter   contract.Alerter
	composer  *Composer
	clock     clockwork.Clock
	cfg       Config
	log       *zap.SugaredLogger
}

func newDispatcher(deps Dependencies, cfg Config) *Dispatcher {
	return &Dispatcher{
		dm:        deps.DataManager,
		store:     deps.Store,
		messenger: deps.Messenger,
		calendar:  deps.Calendar,
		jobs:      deps.Jobs,
		alerter:   deps.Alerter,
		composer:  NewComposer(deps.Messenger, deps.Log),
		clock:     deps.Clock,
		cfg:       cfg,
		log:       deps.Log,
	}
}

var (
	_ contract.JobHandler       = (*Dispatcher)(nil)
	_ contract.CleanupScheduler = (*Dispatcher)(nil)
)

func (d *Dispatcher) HandleJob(ctx context.Context, job entity.Job) {
	switch job.Kind {
	case entity.JobPrompt:
		d.firePrompt(ctx, job.ChatID)
	case entity.JobFollowUp:
		d.fireFollowUp(ctx, job.PendingCheck())
	case entity.JobCleanup:
		d.cleanup(ctx, job)
	default:
		d.log.Warnw("unknown job kind", "job", job.Name(), "kind", job.Kind)
	}
}

func (d *Dispatcher) now() time.Time {
	return d.clock.Now().In(d.cfg.Location)
}

func (d *Dispatcher) firePrompt(ctx context.Context, chatID int64) {
	now := d.now()
	if !d.calendar.IsWorkday(now) {
		d.log.Debugw("not a workday, prompt skipped", "chat_id", chatID, "date", now.Format(entity.ReportDateLayout))
		return
	}

	msgID, err := d.messenger.Send(ctx, chatID, domain.DailyText, entity.FormatPlain)
	if err != nil {
		d.log.Errorw("failed to send daily prompt", "chat_id", chatID, "error", err)
		d.alerter.Alert(ctx, fmt.Sprintf("daily prompt to chat %d failed: %v", chatID, err))
		return
	}

	check := entity.PendingCheck{
		ChatID:          chatID,
		ReportDate:      now.Format(entity.ReportDateLayout),
		PromptMessageID: msgID,
		RunAt:           now.Add(d.cfg.FollowUpDelay),
	}

	if err := d.dm.PendingCheck().Save(ctx, &check); err != nil {
		d.log.Errorw("failed to persist pending check", "chat_id", chatID, "error", err)
	}

	if _, err := d.jobs.ScheduleOnce(entity.FollowUpJob(check), d); err != nil {
		d.log.Errorw("failed to schedule follow-up", "chat_id", chatID, "error", err)
		d.alerter.Alert(ctx, fmt.Sprintf("follow-up for chat %d was not scheduled: %v", chatID, err))
		d.dropPending(ctx, check)
		return
	}

	d.log.Infow("daily prompt sent", "chat_id", chatID, "message_id", msgID, "follow_up_at", check.RunAt)
}

func (d *Dispatcher) fireFollowUp(ctx context.Context, check entity.PendingCheck) {
	defer d.dropPending(ctx, check)

	pending, err := d.nonReporters(ctx, check.ChatID, check.ReportDate)
	if err != nil {
		d.log.Errorw("failed to load non-reporters", "chat_id", check.ChatID, "error", err)
		d.alerter.Alert(ctx, fmt.Sprintf("reminder pass for chat %d failed: %v", check.ChatID, err))
		return
	}

	if len(pending) == 0 {
		d.log.Infow("all reported", "chat_id", check.ChatID, "date", check.ReportDate)
		return
	}

	d.log.Infow("sending reminders", "chat_id", check.ChatID, "date", check.ReportDate, "non_reporters", len(pending))

	for i, batch := range splitBatches(pending, d.cfg.MaxMentions) {
		if i > 0 && !d.pause(ctx) {
			d.log.Warnw("reminder pass interrupted", "chat_id", check.ChatID, "sent_batches", i)
			return
		}

		text := d.composer.Compose(ctx, check.ChatID, batch)
		if _, err := d.messenger.Send(ctx, check.ChatID, text, entity.FormatHTML); err != nil {
			d.log.Errorw("failed to send reminder batch", "chat_id", check.ChatID, "batch", i, "error", err)
			d.alerter.Alert(ctx, fmt.Sprintf("reminder batch %d for chat %d failed: %v", i, check.ChatID, err))
		}
	}
}

// nonReporters returns active participants without a report on date, by user id.
func (d *Dispatcher) nonReporters(ctx context.Context, chatID int64, date string) ([]entity.ParticipantRef, error) {
	active, err := d.store.ActiveParticipants(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active participants: %w", err)
	}

	reporters, err := d.store.ReportersOn(ctx, chatID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get reporters: %w", err)
	}

	pending := make([]entity.ParticipantRef, 0, len(active))
	for _, p := range active {
		if _, ok := reporters[p.UserID]; !ok {
			pending = append(pending, p)
		}
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].UserID < pending[j].UserID
	})
	return pending, nil
}

// pause waits between reminder batches. It reports false when ctx ends first.
func (d *Dispatcher) pause(ctx context.Context) bool {
	if d.cfg.BatchPause <= 0 {
		return ctx.Err() == nil
	}

	select {
	case <-ctx.Done():
		return false
	case <-d.clock.After(d.cfg.BatchPause):
		return true
	}
}

func splitBatches(refs []entity.ParticipantRef, size int) [][]entity.ParticipantRef {
	if size <= 0 {
		size = domain.DefaultMaxMentions
	}

	batches := make([][]entity.ParticipantRef, 0, (len(refs)+size-1)/size)
	for start := 0; start < len(refs); start += size {
		end := min(start+size, len(refs))
		batches = append(batches, refs[start:end])
	}
	return batches
}

func (d *Dispatcher) cleanup(ctx context.Context, job entity.Job) {
	if err := d.messenger.Delete(ctx, job.ChatID, job.MessageID); err != nil {
		// the message may already be gone or the bot lost its rights
		d.log.Debugw("failed to delete service message", "chat_id", job.ChatID, "message_id", job.MessageID, "error", err)
	}
}

// ScheduleCleanup deletes a service notice after the cleanup delay.
func (d *Dispatcher) ScheduleCleanup(_ context.Context, chatID int64, messageID int) error {
	job := entity.Job{
		Kind:      entity.JobCleanup,
		ChatID:    chatID,
		MessageID: messageID,
		RunAt:     d.clock.Now().Add(d.cfg.CleanupDelay),
	}

	if _, err := d.jobs.ScheduleOnce(job, d); err != nil {
		return fmt.Errorf("failed to schedule cleanup: %w", err)
	}
	return nil
}

func (d *Dispatcher) dropPending(ctx context.Context, check entity.PendingCheck) {
	if err := d.dm.PendingCheck().Delete(ctx, check.ChatID, check.ReportDate); err != nil {
		d.log.Errorw("failed to delete pending check", "chat_id", check.ChatID, "date", check.ReportDate, "error", err)
	}
}

// RestorePending requeues today's follow-ups persisted before a restart.
// Rows that are already due run right away; rows from earlier days are
// dropped without a reminder.
func (d *Dispatcher) RestorePending(ctx context.Context) (int, error) {
	checks, err := d.dm.PendingCheck().List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending checks: %w", err)
	}

	today := d.now().Format(entity.ReportDateLayout)
	restored := 0
	for _, check := range checks {
		if check.ReportDate != today {
			d.log.Infow("stale follow-up dropped", "chat_id", check.ChatID, "date", check.ReportDate)
			d.dropPending(ctx, *check)
			continue
		}

		if _, err := d.jobs.ScheduleOnce(entity.FollowUpJob(*check), d); err != nil {
			d.log.Errorw("failed to restore follow-up", "chat_id", check.ChatID, "date", check.ReportDate, "error", err)
			continue
		}
		restored++
	}

	return restored, nil
}
