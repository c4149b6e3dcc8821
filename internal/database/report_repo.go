package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

type reportRepo struct {
	db dbConn
}

func newReportRepo(db dbConn) contract.ReportRepo {
	return &reportRepo{db: db}
}

// Upsert keeps one report per user and day; a later reply replaces it.
func (r *reportRepo) Upsert(ctx context.Context, report *entity.Report) error {
	query := `
		INSERT INTO daily_reports
			(chat_id, user_id, date, reply_to_message_id, message_id, text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(chat_id, user_id, date) DO UPDATE SET
			reply_to_message_id = excluded.reply_to_message_id,
			message_id = excluded.message_id,
			text = excluded.text,
			created_at = excluded.created_at
	`

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		report.ChatID,
		report.UserID,
		report.Date,
		report.ReplyToMessageID,
		report.MessageID,
		report.Text,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert report: %w", err)
	}

	return nil
}

func (r *reportRepo) ReportersOn(ctx context.Context, chatID int64, date string) (map[int64]struct{}, error) {
	query := `SELECT user_id FROM daily_reports WHERE chat_id = ? AND date = ?`

	rows, err := r.db.QueryContext(ctx, query, chatID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get reporters: %w", err)
	}
	defer rows.Close()

	reporters := make(map[int64]struct{})
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan reporter: %w", err)
		}
		reporters[userID] = struct{}{}
	}

	return reporters, rows.Err()
}

func (r *reportRepo) ListByDate(ctx context.Context, chatID int64, date string) ([]*entity.ReportView, error) {
	query := `
		SELECT daily_reports.user_id, participants.username, daily_reports.text
		FROM daily_reports
		LEFT JOIN participants ON
			daily_reports.chat_id = participants.chat_id AND daily_reports.user_id = participants.user_id
		WHERE daily_reports.chat_id = ? AND daily_reports.date = ?
		ORDER BY participants.username, daily_reports.user_id
	`

	rows, err := r.db.QueryContext(ctx, query, chatID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*entity.ReportView
	for rows.Next() {
		v := &entity.ReportView{}
		var username, text sql.NullString
		if err := rows.Scan(&v.UserID, &username, &text); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		v.Username = username.String
		v.Text = text.String
		reports = append(reports, v)
	}

	return reports, rows.Err()
}
