package contract

//go:generate mockgen -source=messenger.go -destination=../../../mocks/messenger_mock.go -package=mocks

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
)

// Messenger is the outbound channel to chats.
type Messenger interface {
	Send(ctx context.Context, chatID int64, text string, format entity.TextFormat) (int, error)
	// LookupDisplayName returns entity.ErrNotFound when the member has no usable name.
	LookupDisplayName(ctx context.Context, chatID, userID int64) (string, error)
	Delete(ctx context.Context, chatID int64, messageID int) error
}

// ChatDirectory reads chat membership for the command handlers.
type ChatDirectory interface {
	Admins(ctx context.Context, chatID int64) ([]*entity.Participant, error)
	// FindMember returns entity.ErrNotFound when the user is not in the chat.
	FindMember(ctx context.Context, chatID, userID int64) (*entity.Participant, error)
}

// TelegramClient defines the interface for Telegram Bot API operations.
// *tgbotapi.BotAPI satisfies it; tests use a mock.
type TelegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatAdministrators(config tgbotapi.ChatAdministratorsConfig) ([]tgbotapi.ChatMember, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// SlackClient defines the interface for Slack operations
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
