package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

type pendingCheckRepo struct {
	db dbConn
}

func newPendingCheckRepo(db dbConn) contract.PendingCheckRepo {
	return &pendingCheckRepo{db: db}
}

func (r *pendingCheckRepo) Save(ctx context.Context, check *entity.PendingCheck) error {
	query := `
		INSERT INTO pending_checks (chat_id, report_date, prompt_message_id, run_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(chat_id, report_date) DO UPDATE SET
			prompt_message_id = excluded.prompt_message_id,
			run_at = excluded.run_at
	`

	_, err := r.db.ExecContext(ctx, query, check.ChatID, check.ReportDate, check.PromptMessageID, check.RunAt.UTC().Unix())
	if err != nil {
		return fmt.Errorf("failed to save pending check: %w", err)
	}

	return nil
}

func (r *pendingCheckRepo) Delete(ctx context.Context, chatID int64, reportDate string) error {
	query := `DELETE FROM pending_checks WHERE chat_id = ? AND report_date = ?`

	if _, err := r.db.ExecContext(ctx, query, chatID, reportDate); err != nil {
		return fmt.Errorf("failed to delete pending check: %w", err)
	}

	return nil
}

func (r *pendingCheckRepo) List(ctx context.Context) ([]*entity.PendingCheck, error) {
	query := `
		SELECT chat_id, report_date, prompt_message_id, run_at
		FROM pending_checks
		ORDER BY run_at ASC, chat_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending checks: %w", err)
	}
	defer rows.Close()

	var checks []*entity.PendingCheck
	for rows.Next() {
		c := &entity.PendingCheck{}
		var runAt int64
		if err := rows.Scan(&c.ChatID, &c.ReportDate, &c.PromptMessageID, &runAt); err != nil {
			return nil, fmt.Errorf("failed to scan pending check: %w", err)
		}
		c.RunAt = time.Unix(runAt, 0).UTC()
		checks = append(checks, c)
	}

	return checks, rows.Err()
}
