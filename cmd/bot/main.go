package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/standup-bot/internal/alert"
	"github.com/diegoclair/standup-bot/internal/calendar"
	"github.com/diegoclair/standup-bot/internal/config"
	"github.com/diegoclair/standup-bot/internal/database"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/service"
	"github.com/diegoclair/standup-bot/internal/handlers"
	"github.com/diegoclair/standup-bot/internal/logger"
	"github.com/diegoclair/standup-bot/internal/scheduler"
	"github.com/diegoclair/standup-bot/internal/telegram"
	"github.com/diegoclair/standup-bot/migrator/sqlite"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

const (
	jobLockTTL      = 5 * time.Minute
	shutdownTimeout = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl.Sugar()); err != nil {
		zl.Fatal("bot stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations completed successfully")

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to connect to telegram: %w", err)
	}
	log.Infow("authorized on telegram", "bot", bot.Self.UserName)

	messenger := telegram.New(bot, cfg.OutboundRatePerSec, log.Named("telegram"))

	var alerter contract.Alerter = alert.NewLogAlerter(log.Named("alert"))
	if cfg.SlackBotToken != "" {
		alerter = alert.NewSlackAlerter(slack.New(cfg.SlackBotToken), cfg.SlackAlertChannel, log.Named("alert"))
	}

	clock := clockwork.NewRealClock()
	schedOpts := []scheduler.Option{scheduler.WithClock(clock)}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		schedOpts = append(schedOpts, scheduler.WithLocker(scheduler.NewRedisLocker(rdb, clock, jobLockTTL)))
		log.Infow("distributed job lock enabled", "redis", cfg.RedisAddr)
	}

	sched, err := scheduler.New(loc, log.Named("scheduler"), schedOpts...)
	if err != nil {
		return err
	}

	dm := database.NewInstance(db)
	svc := service.NewInstance(service.Dependencies{
		DataManager: dm,
		Store:       database.NewParticipantStore(dm),
		Messenger:   messenger,
		Calendar:    calendar.New(loc, cfg.Weekend(), cfg.Holidays()),
		Jobs:        sched,
		Alerter:     alerter,
		Clock:       clock,
		Log:         log.Named("standup"),
	}, service.Config{
		Location:      loc,
		FollowUpDelay: cfg.FollowUpDelay,
		CleanupDelay:  cfg.CleanupDelay,
		MaxMentions:   cfg.MaxMentions,
		BatchPause:    cfg.ReminderBatchPause,
	})

	if err := svc.Registry.Reload(ctx); err != nil {
		return fmt.Errorf("failed to load schedules: %w", err)
	}
	restored, err := svc.Dispatcher.RestorePending(ctx)
	if err != nil {
		log.Errorw("failed to restore pending follow-ups", "error", err)
	}
	log.Infow("schedules loaded", "triggers", len(svc.Registry.Triggers()), "restored_follow_ups", restored)

	sched.Start()
	defer func() {
		if err := sched.Shutdown(); err != nil {
			log.Warnw("scheduler shutdown error", "error", err)
		}
	}()

	httpHandler := handlers.NewHTTPHandler(svc.Registry, sched, log.Named("http"))
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		log.Infow("Server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("http server error", "error", err)
		}
	}()

	tgHandler := handlers.NewTelegramHandler(
		svc.Standup,
		messenger,
		messenger,
		svc.Dispatcher,
		handlers.BotIdentity{ID: bot.Self.ID, Username: bot.Self.UserName},
		log.Named("handler"),
	)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	tgHandler.Run(ctx, bot.GetUpdatesChan(u))

	log.Info("shutdown signal received")
	bot.StopReceivingUpdates()

	shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Warnw("http server shutdown error", "error", err)
	}

	return nil
}
