package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

type StandupService interface {
	ActivateChat(ctx context.Context, chat *entity.Chat, admins []*entity.Participant) (int, error)
	SyncAdmins(ctx context.Context, chatID int64, admins []*entity.Participant) error
	SetDailyTime(ctx context.Context, chatID int64, dailyTime string) error
	ExcludeParticipant(ctx context.Context, chatID int64, ref string) (int64, error)
	IncludeParticipant(ctx context.Context, chatID int64, ref string) (*entity.Participant, error)
	AddParticipant(ctx context.Context, p *entity.Participant) error
	ListParticipants(ctx context.Context, chatID int64, activeOnly bool) ([]*entity.Participant, error)
	RecordReport(ctx context.Context, author *entity.Participant, report *entity.Report) error
	ChatsForUser(ctx context.Context, userID int64) ([]*entity.Chat, error)
	IsRecordedAdmin(ctx context.Context, chatID, userID int64) (bool, error)
	ReportsOn(ctx context.Context, chatID int64, date string) ([]*entity.ReportView, error)
	Today() string
}

// ScheduleReloader is called after a chat's daily time changes; it must
// resync the registry with the full schedule list.
type ScheduleReloader interface {
	Reload(ctx context.Context) error
}

// TriggerRegistry exposes the active triggers to the ops endpoints.
type TriggerRegistry interface {
	ScheduleReloader
	Triggers() []entity.Trigger
}

// Calendar answers whether a date is a working day.
type Calendar interface {
	IsWorkday(date time.Time) bool
}

// CleanupScheduler deletes service notices after a delay.
type CleanupScheduler interface {
	ScheduleCleanup(ctx context.Context, chatID int64, messageID int) error
}

// Alerter reports operator-visible failures outside the chat.
type Alerter interface {
	Alert(ctx context.Context, text string)
}
