package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

type participantRepo struct {
	db dbConn
}

func newParticipantRepo(db dbConn) contract.ParticipantRepo {
	return &participantRepo{db: db}
}

const participantColumns = `chat_id, user_id, username, active, is_admin`

// Create inserts the participant and leaves an existing row untouched.
func (r *participantRepo) Create(ctx context.Context, p *entity.Participant) error {
	query := `
		INSERT OR IGNORE INTO participants (chat_id, user_id, username, active, is_admin)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, p.ChatID, p.UserID, nullString(p.Username), p.Active, p.IsAdmin)
	if err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}

	return nil
}

// Upsert writes username and active flag; is_admin of an existing row is kept.
func (r *participantRepo) Upsert(ctx context.Context, p *entity.Participant) error {
	query := `
		INSERT INTO participants (chat_id, user_id, username, active, is_admin)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(chat_id, user_id) DO UPDATE SET
			username = COALESCE(excluded.username, participants.username),
			active = excluded.active
	`

	_, err := r.db.ExecContext(ctx, query, p.ChatID, p.UserID, nullString(p.Username), p.Active, p.IsAdmin)
	if err != nil {
		return fmt.Errorf("failed to upsert participant: %w", err)
	}

	return nil
}

func (r *participantRepo) GetByChatAndUserID(ctx context.Context, chatID, userID int64) (*entity.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE chat_id = ? AND user_id = ?`
	return r.getOne(ctx, query, chatID, userID)
}

func (r *participantRepo) GetByChatAndUsername(ctx context.Context, chatID int64, username string) (*entity.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE chat_id = ? AND username = ? COLLATE NOCASE`
	return r.getOne(ctx, query, chatID, username)
}

func (r *participantRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Participant, error) {
	p, err := scanParticipant(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

func (r *participantRepo) ListByChat(ctx context.Context, chatID int64, activeOnly bool) ([]*entity.Participant, error) {
	query := `SELECT ` + participantColumns + ` FROM participants WHERE chat_id = ?`
	if activeOnly {
		query += ` AND active = 1`
	}
	query += ` ORDER BY user_id ASC`

	rows, err := r.db.QueryContext(ctx, query, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*entity.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, rows.Err()
}

func (r *participantRepo) SetActive(ctx context.Context, chatID, userID int64, active bool) error {
	query := `UPDATE participants SET active = ? WHERE chat_id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, active, chatID, userID)
	if err != nil {
		return fmt.Errorf("failed to update participant status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("participant %d in chat %d: %w", userID, chatID, entity.ErrNotFound)
	}

	return nil
}

// MarkAdmin flags a chat administrator. New admins are stored inactive so
// they are not reminded until they reply or get included.
func (r *participantRepo) MarkAdmin(ctx context.Context, chatID, userID int64, username string) error {
	query := `
		INSERT INTO participants (chat_id, user_id, username, active, is_admin)
		VALUES (?, ?, ?, 0, 1)
		ON CONFLICT(chat_id, user_id) DO UPDATE SET
			username = excluded.username,
			is_admin = 1
	`

	if _, err := r.db.ExecContext(ctx, query, chatID, userID, nullString(username)); err != nil {
		return fmt.Errorf("failed to mark admin: %w", err)
	}

	return nil
}

func (r *participantRepo) ListChatsForUser(ctx context.Context, userID int64) ([]*entity.Chat, error) {
	query := `
		SELECT chats.chat_id, chats.chat_title
		FROM chats
		JOIN participants ON chats.chat_id = participants.chat_id
		WHERE participants.user_id = ? AND participants.active = 1
		ORDER BY chats.chat_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats for user: %w", err)
	}
	defer rows.Close()

	var chats []*entity.Chat
	for rows.Next() {
		chat := &entity.Chat{}
		var title sql.NullString
		if err := rows.Scan(&chat.ChatID, &title); err != nil {
			return nil, fmt.Errorf("failed to scan chat: %w", err)
		}
		chat.Title = title.String
		chats = append(chats, chat)
	}

	return chats, rows.Err()
}

func (r *participantRepo) IsActiveAdmin(ctx context.Context, chatID, userID int64) (bool, error) {
	query := `
		SELECT 1 FROM participants
		WHERE chat_id = ? AND user_id = ? AND active = 1 AND is_admin = 1
	`

	var one int
	err := r.db.QueryRowContext(ctx, query, chatID, userID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}

	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipant(row rowScanner) (*entity.Participant, error) {
	p := &entity.Participant{}
	var username sql.NullString
	if err := row.Scan(&p.ChatID, &p.UserID, &username, &p.Active, &p.IsAdmin); err != nil {
		return nil, err
	}
	p.Username = username.String
	return p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
