package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Composer renders a batch of non-reporters into one HTML reminder.
type Composer struct {
	messenger contract.Messenger
	log       *zap.SugaredLogger
}

func NewComposer(messenger contract.Messenger, log *zap.SugaredLogger) *Composer {
	return &Composer{
		messenger: messenger,
		log:       log,
	}
}

// Compose never fails: a user whose name cannot be resolved is mentioned as "User <id>".
func (c *Composer) Compose(ctx context.Context, chatID int64, batch []entity.ParticipantRef) string {
	mentions := make([]string, 0, len(batch))
	for _, p := range batch {
		name := c.displayName(ctx, chatID, p)
		mentions = append(mentions, fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`,
			p.UserID, tgbotapi.EscapeText(tgbotapi.ModeHTML, name)))
	}

	return strings.Join(mentions, " ") + "\n" + domain.ReminderNag
}

func (c *Composer) displayName(ctx context.Context, chatID int64, p entity.ParticipantRef) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}

	name, err := c.messenger.LookupDisplayName(ctx, chatID, p.UserID)
	if err != nil || name == "" {
		c.log.Debugw("display name lookup failed", "chat_id", chatID, "user_id", p.UserID, "error", err)
		return fmt.Sprintf("User %d", p.UserID)
	}

	return name
}
