// Package telegram adapts the Telegram Bot API to the bot's outbound channel.
package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Messenger sends through the Bot API, paced by a shared limiter so reminder
// batches of several chats firing together stay under the flood limits.
type Messenger struct {
	client  contract.TelegramClient
	limiter *rate.Limiter
	log     *zap.SugaredLogger
}

var (
	_ contract.Messenger     = (*Messenger)(nil)
	_ contract.ChatDirectory = (*Messenger)(nil)
)

// New returns a Messenger allowing perSecond requests. perSecond <= 0
// disables pacing.
func New(client contract.TelegramClient, perSecond float64, log *zap.SugaredLogger) *Messenger {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &Messenger{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

func (m *Messenger) Send(ctx context.Context, chatID int64, text string, format entity.TextFormat) (int, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("failed to wait for send slot: %w", err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = string(format)

	sent, err := m.client.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("failed to send message to chat %d: %w", chatID, err)
	}

	m.log.Debugw("message sent", "chat_id", chatID, "message_id", sent.MessageID)
	return sent.MessageID, nil
}

func (m *Messenger) Delete(ctx context.Context, chatID int64, messageID int) error {
	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for send slot: %w", err)
	}

	if _, err := m.client.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("failed to delete message %d in chat %d: %w", messageID, chatID, err)
	}
	return nil
}

func (m *Messenger) LookupDisplayName(ctx context.Context, chatID, userID int64) (string, error) {
	member, err := m.member(ctx, chatID, userID)
	if err != nil {
		return "", err
	}

	if name := DisplayName(member.User); name != "" {
		return name, nil
	}
	return "", entity.ErrNotFound
}

func (m *Messenger) FindMember(ctx context.Context, chatID, userID int64) (*entity.Participant, error) {
	member, err := m.member(ctx, chatID, userID)
	if err != nil {
		return nil, err
	}
	if member.HasLeft() || member.WasKicked() {
		return nil, entity.ErrNotFound
	}

	return &entity.Participant{
		ChatID:   chatID,
		UserID:   member.User.ID,
		Username: ParticipantName(member.User),
		Active:   true,
		IsAdmin:  member.IsAdministrator() || member.IsCreator(),
	}, nil
}

// member maps a member without user data to entity.ErrNotFound.
func (m *Messenger) member(ctx context.Context, chatID, userID int64) (tgbotapi.ChatMember, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return tgbotapi.ChatMember{}, fmt.Errorf("failed to wait for send slot: %w", err)
	}

	member, err := m.client.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{ChatID: chatID, UserID: userID},
	})
	if err != nil {
		return tgbotapi.ChatMember{}, fmt.Errorf("failed to get member %d of chat %d: %w", userID, chatID, err)
	}
	if member.User == nil {
		return tgbotapi.ChatMember{}, entity.ErrNotFound
	}

	return member, nil
}

// Admins returns the chat's current administrators, bots excluded.
func (m *Messenger) Admins(ctx context.Context, chatID int64) ([]*entity.Participant, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for send slot: %w", err)
	}

	members, err := m.client.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get administrators of chat %d: %w", chatID, err)
	}

	admins := make([]*entity.Participant, 0, len(members))
	for _, member := range members {
		if member.User == nil || member.User.IsBot {
			continue
		}
		admins = append(admins, &entity.Participant{
			ChatID:   chatID,
			UserID:   member.User.ID,
			Username: ParticipantName(member.User),
			Active:   true,
			IsAdmin:  true,
		})
	}

	return admins, nil
}

// ParticipantName is the label stored for a user: the @username when set,
// otherwise the full name.
func ParticipantName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if u.UserName != "" {
		return u.UserName
	}
	return fullName(u)
}

// DisplayName is the name shown in a mention: the full name, or the username
// when the user has neither first nor last name.
func DisplayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if name := fullName(u); name != "" {
		return name
	}
	return u.UserName
}

func fullName(u *tgbotapi.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
