package test

import (
	"fmt"
	"testing"

	"github.com/diegoclair/standup-bot/internal/handlers"
	"github.com/diegoclair/standup-bot/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const (
	BotID       int64 = 777
	BotUsername       = "standup_bot"
	GroupID     int64 = -100123
	AdminID     int64 = 1
	MemberID    int64 = 2
)

type ServiceMocks struct {
	StandupServiceMock   *mocks.MockStandupService
	ChatDirectoryMock    *mocks.MockChatDirectory
	MessengerMock        *mocks.MockMessenger
	CleanupSchedulerMock *mocks.MockCleanupScheduler
	TriggerRegistryMock  *mocks.MockTriggerRegistry
}

func newServiceMocks(t *testing.T) (ServiceMocks, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	return ServiceMocks{
		StandupServiceMock:   mocks.NewMockStandupService(ctrl),
		ChatDirectoryMock:    mocks.NewMockChatDirectory(ctrl),
		MessengerMock:        mocks.NewMockMessenger(ctrl),
		CleanupSchedulerMock: mocks.NewMockCleanupScheduler(ctrl),
		TriggerRegistryMock:  mocks.NewMockTriggerRegistry(ctrl),
	}, ctrl
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.TelegramHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, ctrl = newServiceMocks(t)
	handler = handlers.NewTelegramHandler(
		m.StandupServiceMock,
		m.ChatDirectoryMock,
		m.MessengerMock,
		m.CleanupSchedulerMock,
		handlers.BotIdentity{ID: BotID, Username: BotUsername},
		zap.NewNop().Sugar(),
	)

	return
}

func GetHTTPHandlerTest(t *testing.T, jobs handlers.JobLister) (m ServiceMocks, handler *handlers.HTTPHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, ctrl = newServiceMocks(t)
	handler = handlers.NewHTTPHandler(m.TriggerRegistryMock, jobs, zap.NewNop().Sugar())

	return
}

// GroupMessage builds an update with a message from userID in the test group.
func GroupMessage(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 10,
			From:      &tgbotapi.User{ID: userID, UserName: fmt.Sprintf("user%d", userID)},
			Chat:      &tgbotapi.Chat{ID: GroupID, Type: "supergroup", Title: "Team"},
			Text:      text,
		},
	}
}

// PrivateMessage builds an update with a direct message from userID.
func PrivateMessage(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 10,
			From:      &tgbotapi.User{ID: userID},
			Chat:      &tgbotapi.Chat{ID: userID, Type: "private"},
			Text:      text,
		},
	}
}

// ReplyTo makes upd a reply to a message with parentText sent by parentFrom.
func ReplyTo(upd tgbotapi.Update, parentFrom int64, parentID int, parentText string) tgbotapi.Update {
	upd.Message.ReplyToMessage = &tgbotapi.Message{
		MessageID: parentID,
		From:      &tgbotapi.User{ID: parentFrom, IsBot: parentFrom == BotID},
		Chat:      upd.Message.Chat,
		Text:      parentText,
	}
	return upd
}
