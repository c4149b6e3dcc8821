package service

import (
	"context"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Config holds the scheduling knobs of the standup flow.
type Config struct {
	Location      *time.Location
	FollowUpDelay time.Duration
	CleanupDelay  time.Duration
	MaxMentions   int
	BatchPause    time.Duration
}

type Dependencies struct {
	DataManager contract.DataManager
	Store       contract.ParticipantStore
	Messenger   contract.Messenger
	Calendar    contract.Calendar
	Jobs        contract.JobScheduler
	Alerter     contract.Alerter
	Clock       clockwork.Clock
	Log         *zap.SugaredLogger
}

type Instance struct {
	Standup    contract.StandupService
	Registry   *Registry
	Dispatcher *Dispatcher
}

func NewInstance(deps Dependencies, cfg Config) *Instance {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Alerter == nil {
		deps.Alerter = nopAlerter{}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop().Sugar()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.MaxMentions <= 0 {
		cfg.MaxMentions = domain.DefaultMaxMentions
	}

	dispatcher := newDispatcher(deps, cfg)
	registry := NewRegistry(deps.Jobs, deps.DataManager.Chat(), dispatcher, deps.Log)

	return &Instance{
		Standup:    newStandup(deps.DataManager, registry, deps.Clock, cfg, deps.Log),
		Registry:   registry,
		Dispatcher: dispatcher,
	}
}

type nopAlerter struct{}

func (nopAlerter) Alert(context.Context, string) {}
