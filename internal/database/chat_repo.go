package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

type chatRepo struct {
	db dbConn
}

func newChatRepo(db dbConn) contract.ChatRepo {
	return &chatRepo{db: db}
}

// Create registers the chat. An existing chat keeps its daily time and only
// gets its title refreshed.
func (r *chatRepo) Create(ctx context.Context, chat *entity.Chat) error {
	query := `
		INSERT INTO chats (chat_id, chat_title, daily_time)
		VALUES (?, ?, NULL)
		ON CONFLICT(chat_id) DO UPDATE SET
			chat_title = excluded.chat_title,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, chat.ChatID, chat.Title); err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}

	return nil
}

func (r *chatRepo) GetByID(ctx context.Context, chatID int64) (*entity.Chat, error) {
	query := `
		SELECT chat_id, chat_title, daily_time, created_at, updated_at
		FROM chats
		WHERE chat_id = ?
	`

	chat := &entity.Chat{}
	var title, dailyTime sql.NullString
	err := r.db.QueryRowContext(ctx, query, chatID).Scan(
		&chat.ChatID,
		&title,
		&dailyTime,
		&chat.CreatedAt,
		&chat.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat: %w", err)
	}

	chat.Title = title.String
	chat.DailyTime = dailyTime.String
	return chat, nil
}

func (r *chatRepo) SetDailyTime(ctx context.Context, chatID int64, dailyTime string) error {
	query := `
		UPDATE chats SET
			daily_time = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE chat_id = ?
	`

	var value any
	if dailyTime != "" {
		value = dailyTime
	}

	result, err := r.db.ExecContext(ctx, query, value, chatID)
	if err != nil {
		return fmt.Errorf("failed to set daily time: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("chat %d: %w", chatID, entity.ErrNotFound)
	}

	return nil
}

func (r *chatRepo) ListSchedules(ctx context.Context) ([]entity.ChatSchedule, error) {
	query := `
		SELECT chat_id, daily_time
		FROM chats
		WHERE daily_time IS NOT NULL AND daily_time != ''
		ORDER BY chat_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []entity.ChatSchedule
	for rows.Next() {
		var s entity.ChatSchedule
		if err := rows.Scan(&s.ChatID, &s.DailyTime); err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, s)
	}

	return schedules, rows.Err()
}
