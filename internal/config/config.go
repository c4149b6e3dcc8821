package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/standup-bot/internal/calendar"
	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BotToken     string `envconfig:"BOT_TOKEN" validate:"required"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./data/standup.db" validate:"required"`
	Timezone     string `envconfig:"TIMEZONE" default:"Europe/Moscow" validate:"required,timezone"`

	FollowUpDelay      time.Duration `envconfig:"FOLLOWUP_DELAY" default:"2h" validate:"gt=0"`
	CleanupDelay       time.Duration `envconfig:"CLEANUP_DELAY" default:"30m" validate:"gt=0"`
	MaxMentions        int           `envconfig:"MAX_MENTIONS_PER_MESSAGE" default:"50" validate:"gt=0"`
	ReminderBatchPause time.Duration `envconfig:"REMINDER_BATCH_PAUSE" default:"500ms" validate:"gte=0"`
	OutboundRatePerSec float64       `envconfig:"OUTBOUND_RATE_PER_SEC" default:"20" validate:"gte=0"`

	WeekendDays   []string `envconfig:"WEEKEND_DAYS" default:"6,7"`
	ExtraHolidays []string `envconfig:"EXTRA_HOLIDAYS"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	SlackBotToken     string `envconfig:"SLACK_BOT_TOKEN"`
	SlackAlertChannel string `envconfig:"SLACK_ALERT_CHANNEL" validate:"required_with=SlackBotToken"`
}

// Load reads .env (when present) and the environment, then validates the
// result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := domain.ParseWeekdays(c.WeekendDays); err != nil {
		return fmt.Errorf("invalid WEEKEND_DAYS: %w", err)
	}
	if _, err := calendar.ParseDates(c.ExtraHolidays); err != nil {
		return fmt.Errorf("invalid EXTRA_HOLIDAYS: %w", err)
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) Weekend() []time.Weekday {
	days, _ := domain.ParseWeekdays(c.WeekendDays)
	return days
}

func (c *Config) Holidays() []time.Time {
	dates, _ := calendar.ParseDates(c.ExtraHolidays)
	return dates
}
