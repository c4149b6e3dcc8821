package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Chat() ChatRepo
	Participant() ParticipantRepo
	Report() ReportRepo
	PendingCheck() PendingCheckRepo
}

// ChatRepo defines the contract for chat repository
type ChatRepo interface {
	ScheduleSource
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, chatID int64) (*entity.Chat, error)
	SetDailyTime(ctx context.Context, chatID int64, dailyTime string) error
}

// ScheduleSource is read in bulk by the schedule registry at resync time.
type ScheduleSource interface {
	ListSchedules(ctx context.Context) ([]entity.ChatSchedule, error)
}

// ParticipantRepo defines the contract for participant repository
type ParticipantRepo interface {
	Create(ctx context.Context, p *entity.Participant) error
	Upsert(ctx context.Context, p *entity.Participant) error
	GetByChatAndUserID(ctx context.Context, chatID, userID int64) (*entity.Participant, error)
	GetByChatAndUsername(ctx context.Context, chatID int64, username string) (*entity.Participant, error)
	ListByChat(ctx context.Context, chatID int64, activeOnly bool) ([]*entity.Participant, error)
	SetActive(ctx context.Context, chatID, userID int64, active bool) error
	MarkAdmin(ctx context.Context, chatID, userID int64, username string) error
	ListChatsForUser(ctx context.Context, userID int64) ([]*entity.Chat, error)
	IsActiveAdmin(ctx context.Context, chatID, userID int64) (bool, error)
}

// ReportRepo defines the contract for daily report repository
type ReportRepo interface {
	Upsert(ctx context.Context, report *entity.Report) error
	ReportersOn(ctx context.Context, chatID int64, date string) (map[int64]struct{}, error)
	ListByDate(ctx context.Context, chatID int64, date string) ([]*entity.ReportView, error)
}

// PendingCheckRepo keeps scheduled follow-ups across restarts
type PendingCheckRepo interface {
	Save(ctx context.Context, check *entity.PendingCheck) error
	Delete(ctx context.Context, chatID int64, reportDate string) error
	List(ctx context.Context) ([]*entity.PendingCheck, error)
}

// ParticipantStore is the narrow read side the reminder pass depends on.
type ParticipantStore interface {
	ActiveParticipants(ctx context.Context, chatID int64) ([]entity.ParticipantRef, error)
	ReportersOn(ctx context.Context, chatID int64, date string) (map[int64]struct{}, error)
}
