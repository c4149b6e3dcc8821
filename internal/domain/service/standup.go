package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

type standupService struct {
	dm       contract.DataManager
	reloader contract.ScheduleReloader
	clock    clockwork.Clock
	cfg      Config
	log      *zap.SugaredLogger
}

func newStandup(dm contract.DataManager, reloader contract.ScheduleReloader, clock clockwork.Clock, cfg Config, log *zap.SugaredLogger) *standupService {
	return &standupService{
		dm:       dm,
		reloader: reloader,
		clock:    clock,
		cfg:      cfg,
		log:      log,
	}
}

var _ contract.StandupService = (*standupService)(nil)

// ActivateChat registers the chat and adds its administrators as active
// participants. Existing participants are left as they are.
func (s *standupService) ActivateChat(ctx context.Context, chat *entity.Chat, admins []*entity.Participant) (int, error) {
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		if err := dm.Chat().Create(ctx, chat); err != nil {
			return err
		}

		for _, admin := range admins {
			p := *admin
			p.ChatID = chat.ChatID
			p.Active = true
			p.IsAdmin = true
			if err := dm.Participant().Create(ctx, &p); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to activate chat: %w", err)
	}

	s.log.Infow("chat activated", "chat_id", chat.ChatID, "admins", len(admins))
	return len(admins), nil
}

// SyncAdmins flags current chat administrators. New ones are stored inactive.
func (s *standupService) SyncAdmins(ctx context.Context, chatID int64, admins []*entity.Participant) error {
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		for _, admin := range admins {
			if err := dm.Participant().MarkAdmin(ctx, chatID, admin.UserID, admin.Username); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sync admins: %w", err)
	}
	return nil
}

// SetDailyTime stores the normalized "HH:MM" time and reloads the schedule.
func (s *standupService) SetDailyTime(ctx context.Context, chatID int64, dailyTime string) error {
	hour, minute, err := entity.ParseDailyTime(dailyTime)
	if err != nil {
		return err
	}

	normalized := fmt.Sprintf("%02d:%02d", hour, minute)
	if err := s.dm.Chat().SetDailyTime(ctx, chatID, normalized); err != nil {
		return fmt.Errorf("failed to set daily time: %w", err)
	}

	s.log.Infow("daily time updated", "chat_id", chatID, "daily_time", normalized)

	if err := s.reloader.Reload(ctx); err != nil {
		return fmt.Errorf("failed to reload schedule: %w", err)
	}
	return nil
}

func (s *standupService) ExcludeParticipant(ctx context.Context, chatID int64, ref string) (int64, error) {
	p, err := s.findParticipant(ctx, chatID, ref)
	if err != nil {
		return 0, err
	}

	if err := s.dm.Participant().SetActive(ctx, chatID, p.UserID, false); err != nil {
		return 0, fmt.Errorf("failed to exclude participant: %w", err)
	}

	s.log.Infow("participant excluded", "chat_id", chatID, "user_id", p.UserID)
	return p.UserID, nil
}

// IncludeParticipant reactivates a known participant. It returns
// entity.ErrNotFound when the chat has no such participant yet.
func (s *standupService) IncludeParticipant(ctx context.Context, chatID int64, ref string) (*entity.Participant, error) {
	p, err := s.findParticipant(ctx, chatID, ref)
	if err != nil {
		return nil, err
	}

	if err := s.dm.Participant().SetActive(ctx, chatID, p.UserID, true); err != nil {
		return nil, fmt.Errorf("failed to include participant: %w", err)
	}

	p.Active = true
	s.log.Infow("participant included", "chat_id", chatID, "user_id", p.UserID)
	return p, nil
}

// AddParticipant stores a participant found outside the database as active.
func (s *standupService) AddParticipant(ctx context.Context, p *entity.Participant) error {
	p.Active = true
	if err := s.dm.Participant().Upsert(ctx, p); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}

	s.log.Infow("participant added", "chat_id", p.ChatID, "user_id", p.UserID)
	return nil
}

func (s *standupService) findParticipant(ctx context.Context, chatID int64, ref string) (*entity.Participant, error) {
	userID, username := ParseParticipantRef(ref)

	var (
		p   *entity.Participant
		err error
	)
	switch {
	case userID != 0:
		p, err = s.dm.Participant().GetByChatAndUserID(ctx, chatID, userID)
	case username != "":
		p, err = s.dm.Participant().GetByChatAndUsername(ctx, chatID, username)
	default:
		return nil, fmt.Errorf("empty participant reference: %w", entity.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("participant %q: %w", ref, entity.ErrNotFound)
	}

	return p, nil
}

// ParseParticipantRef splits "/exclude" style arguments into a user id or a
// username without the leading "@".
func ParseParticipantRef(ref string) (userID int64, username string) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil && id > 0 {
		return id, ""
	}
	return 0, strings.TrimPrefix(ref, "@")
}

func (s *standupService) ListParticipants(ctx context.Context, chatID int64, activeOnly bool) ([]*entity.Participant, error) {
	return s.dm.Participant().ListByChat(ctx, chatID, activeOnly)
}

// RecordReport stores a reply to the prompt or a reminder. The author is
// added or reactivated so the next reminder pass counts them.
func (s *standupService) RecordReport(ctx context.Context, author *entity.Participant, report *entity.Report) error {
	if report.Date == "" {
		report.Date = s.Today()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = s.clock.Now().In(s.cfg.Location)
	}

	return s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		existing, err := dm.Participant().GetByChatAndUserID(ctx, report.ChatID, author.UserID)
		if err != nil {
			return fmt.Errorf("failed to get participant: %w", err)
		}

		switch {
		case existing == nil:
			p := *author
			p.ChatID = report.ChatID
			p.Active = true
			if err := dm.Participant().Create(ctx, &p); err != nil {
				return err
			}
			s.log.Infow("new participant from reply", "chat_id", report.ChatID, "user_id", author.UserID)
		case !existing.Active:
			if err := dm.Participant().SetActive(ctx, report.ChatID, author.UserID, true); err != nil {
				return err
			}
			s.log.Infow("participant reactivated by reply", "chat_id", report.ChatID, "user_id", author.UserID)
		}

		if err := dm.Report().Upsert(ctx, report); err != nil {
			return err
		}

		s.log.Infow("report saved", "chat_id", report.ChatID, "user_id", author.UserID, "date", report.Date)
		return nil
	})
}

func (s *standupService) ChatsForUser(ctx context.Context, userID int64) ([]*entity.Chat, error) {
	return s.dm.Participant().ListChatsForUser(ctx, userID)
}

func (s *standupService) IsRecordedAdmin(ctx context.Context, chatID, userID int64) (bool, error) {
	return s.dm.Participant().IsActiveAdmin(ctx, chatID, userID)
}

func (s *standupService) ReportsOn(ctx context.Context, chatID int64, date string) ([]*entity.ReportView, error) {
	return s.dm.Report().ListByDate(ctx, chatID, date)
}

// Today is the report date in the reference zone.
func (s *standupService) Today() string {
	return s.clock.Now().In(s.cfg.Location).Format(entity.ReportDateLayout)
}
