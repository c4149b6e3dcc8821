package database

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
)

type participantStore struct {
	dm contract.DataManager
}

// NewParticipantStore exposes the read side the reminder pass needs.
func NewParticipantStore(dm contract.DataManager) contract.ParticipantStore {
	return &participantStore{dm: dm}
}

func (s *participantStore) ActiveParticipants(ctx context.Context, chatID int64) ([]entity.ParticipantRef, error) {
	participants, err := s.dm.Participant().ListByChat(ctx, chatID, true)
	if err != nil {
		return nil, err
	}

	refs := make([]entity.ParticipantRef, 0, len(participants))
	for _, p := range participants {
		refs = append(refs, p.Ref())
	}
	return refs, nil
}

func (s *participantStore) ReportersOn(ctx context.Context, chatID int64, date string) (map[int64]struct{}, error) {
	return s.dm.Report().ReportersOn(ctx, chatID, date)
}
