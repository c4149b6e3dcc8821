package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db               *DB
	chatRepo         contract.ChatRepo
	participantRepo  contract.ParticipantRepo
	reportRepo       contract.ReportRepo
	pendingCheckRepo contract.PendingCheckRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		chatRepo:         newChatRepo(db),
		participantRepo:  newParticipantRepo(db),
		reportRepo:       newReportRepo(db),
		pendingCheckRepo: newPendingCheckRepo(db),
	}
}

func (i *instance) Chat() contract.ChatRepo {
	return i.chatRepo
}

func (i *instance) Participant() contract.ParticipantRepo {
	return i.participantRepo
}

func (i *instance) Report() contract.ReportRepo {
	return i.reportRepo
}

func (i *instance) PendingCheck() contract.PendingCheckRepo {
	return i.pendingCheckRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
