package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain"
	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/diegoclair/standup-bot/internal/domain/service"
	tgcmd "github.com/diegoclair/standup-bot/internal/domain/telegram"
	"github.com/diegoclair/standup-bot/internal/telegram"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// BotIdentity is the bot's own account, used to match replies and command
// suffixes.
type BotIdentity struct {
	ID       int64
	Username string
}

type TelegramHandler struct {
	standup   contract.StandupService
	directory contract.ChatDirectory
	messenger contract.Messenger
	cleanup   contract.CleanupScheduler
	bot       BotIdentity
	log       *zap.SugaredLogger
}

func NewTelegramHandler(
	standup contract.StandupService,
	directory contract.ChatDirectory,
	messenger contract.Messenger,
	cleanup contract.CleanupScheduler,
	bot BotIdentity,
	log *zap.SugaredLogger,
) *TelegramHandler {
	return &TelegramHandler{
		standup:   standup,
		directory: directory,
		messenger: messenger,
		cleanup:   cleanup,
		bot:       bot,
		log:       log,
	}
}

// Run consumes updates until ctx is done or the channel is closed.
func (h *TelegramHandler) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			h.HandleUpdate(ctx, upd)
		}
	}
}

func (h *TelegramHandler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return
	}

	cmd, err := tgcmd.ParseCommand(msg.Text, h.bot.Username)
	switch {
	case err == nil:
		h.handleCommand(ctx, msg, cmd)
	case errors.Is(err, tgcmd.ErrNotCommand):
		h.handleReply(ctx, msg)
	default:
		h.log.Debugw("command ignored", "chat_id", msg.Chat.ID, "text", msg.Text, "reason", err)
	}
}

func (h *TelegramHandler) handleCommand(ctx context.Context, msg *tgbotapi.Message, cmd *tgcmd.Command) {
	h.log.Infow("command received", "command", cmd.Type, "chat_id", msg.Chat.ID, "user_id", msg.From.ID)

	switch cmd.Type {
	case tgcmd.CmdStart:
		h.handleStart(ctx, msg)
	case tgcmd.CmdSetTime:
		h.handleSetTime(ctx, msg, cmd)
	case tgcmd.CmdTestDaily:
		h.handleTestDaily(ctx, msg)
	case tgcmd.CmdExclude:
		h.handleExclude(ctx, msg, cmd)
	case tgcmd.CmdInclude:
		h.handleInclude(ctx, msg, cmd)
	case tgcmd.CmdListActive:
		h.handleList(ctx, msg, true)
	case tgcmd.CmdListAll:
		h.handleList(ctx, msg, false)
	case tgcmd.CmdMyChats:
		h.handleMyChats(ctx, msg)
	case tgcmd.CmdReport:
		h.handleReport(ctx, msg, cmd)
	case tgcmd.CmdHelp:
		h.reply(ctx, msg.Chat.ID, tgcmd.GetHelpText())
	}
}

func (h *TelegramHandler) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	admins, ok := h.requireAdmin(ctx, msg, tgcmd.TextStartNotAdmin)
	if !ok {
		return
	}

	added, err := h.standup.ActivateChat(ctx, &entity.Chat{ChatID: msg.Chat.ID, Title: msg.Chat.Title}, admins)
	if err != nil {
		h.fail(ctx, msg, "failed to activate chat", err)
		return
	}

	h.log.Infow("chat activated", "chat_id", msg.Chat.ID, "admins", added)
	h.reply(ctx, msg.Chat.ID, fmt.Sprintf(tgcmd.TextStarted, added))
}

func (h *TelegramHandler) handleSetTime(ctx context.Context, msg *tgbotapi.Message, cmd *tgcmd.Command) {
	if _, ok := h.requireAdmin(ctx, msg, tgcmd.TextSetTimeNotAdmin); !ok {
		return
	}

	value := cmd.Arg(0)
	if value == "" {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextSetTimeUsage)
		return
	}

	err := h.standup.SetDailyTime(ctx, msg.Chat.ID, value)
	switch {
	case errors.Is(err, entity.ErrInvalidDailyTime):
		h.reply(ctx, msg.Chat.ID, tgcmd.TextSetTimeInvalid)
		return
	case errors.Is(err, entity.ErrNotFound):
		h.reply(ctx, msg.Chat.ID, tgcmd.TextSetTimeNoChat)
		return
	case err != nil:
		h.fail(ctx, msg, "failed to set daily time", err)
		return
	}

	h.reply(ctx, msg.Chat.ID, fmt.Sprintf(tgcmd.TextTimeSet, value))
}

func (h *TelegramHandler) handleTestDaily(ctx context.Context, msg *tgbotapi.Message) {
	if _, ok := h.requireAdmin(ctx, msg, tgcmd.TextTestDailyNotAdmin); !ok {
		return
	}

	if _, err := h.messenger.Send(ctx, msg.Chat.ID, domain.DailyText, entity.FormatPlain); err != nil {
		h.log.Errorw("failed to send test daily", "chat_id", msg.Chat.ID, "error", err)
		return
	}
	h.log.Infow("test daily sent", "chat_id", msg.Chat.ID)
}

func (h *TelegramHandler) handleExclude(ctx context.Context, msg *tgbotapi.Message, cmd *tgcmd.Command) {
	if !h.requireSyncedAdmin(ctx, msg, tgcmd.TextExcludeNotAdmin) {
		return
	}

	ref := cmd.Arg(0)
	if ref == "" {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextExcludeUsage)
		return
	}

	userID, err := h.standup.ExcludeParticipant(ctx, msg.Chat.ID, ref)
	if errors.Is(err, entity.ErrNotFound) {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextUserNotFound)
		return
	}
	if err != nil {
		h.fail(ctx, msg, "failed to exclude participant", err)
		return
	}

	h.reply(ctx, msg.Chat.ID, fmt.Sprintf(tgcmd.TextExcluded, userID))
}

func (h *TelegramHandler) handleInclude(ctx context.Context, msg *tgbotapi.Message, cmd *tgcmd.Command) {
	if !h.requireSyncedAdmin(ctx, msg, tgcmd.TextIncludeNotAdmin) {
		return
	}

	ref := cmd.Arg(0)
	if ref == "" {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextIncludeUsage)
		return
	}

	p, err := h.standup.IncludeParticipant(ctx, msg.Chat.ID, ref)
	if err == nil {
		h.reply(ctx, msg.Chat.ID, fmt.Sprintf(tgcmd.TextIncluded, p.UserID))
		return
	}
	if !errors.Is(err, entity.ErrNotFound) {
		h.fail(ctx, msg, "failed to include participant", err)
		return
	}

	member, err := h.lookupMember(ctx, msg.Chat.ID, ref)
	if errors.Is(err, entity.ErrNotFound) {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextMemberNotFound)
		return
	}
	if err != nil {
		h.fail(ctx, msg, "failed to look up chat member", err)
		return
	}

	if err := h.standup.AddParticipant(ctx, member); err != nil {
		h.fail(ctx, msg, "failed to add participant", err)
		return
	}

	h.log.Infow("participant added", "chat_id", msg.Chat.ID, "user_id", member.UserID)
	h.reply(ctx, msg.Chat.ID, fmt.Sprintf(tgcmd.TextIncludedNew, participantLabel(member)))
}

// lookupMember resolves a participant the bot has not stored yet: by id
// through the member API, by username among the current administrators.
func (h *TelegramHandler) lookupMember(ctx context.Context, chatID int64, ref string) (*entity.Participant, error) {
	userID, username := service.ParseParticipantRef(ref)
	if userID > 0 {
		return h.directory.FindMember(ctx, chatID, userID)
	}

	admins, err := h.directory.Admins(ctx, chatID)
	if err != nil {
		return nil, err
	}
	for _, a := range admins {
		if strings.EqualFold(a.Username, username) {
			return a, nil
		}
	}
	return nil, entity.ErrNotFound
}

func (h *TelegramHandler) handleList(ctx context.Context, msg *tgbotapi.Message, activeOnly bool) {
	if !h.requireSyncedAdmin(ctx, msg, tgcmd.TextListNotAdmin) {
		return
	}

	participants, err := h.standup.ListParticipants(ctx, msg.Chat.ID, activeOnly)
	if err != nil {
		h.fail(ctx, msg, "failed to list participants", err)
		return
	}

	if len(participants) == 0 {
		if activeOnly {
			h.reply(ctx, msg.Chat.ID, tgcmd.TextActiveEmpty)
		} else {
			h.reply(ctx, msg.Chat.ID, tgcmd.TextAllEmpty)
		}
		return
	}

	var text strings.Builder
	if activeOnly {
		text.WriteString(tgcmd.TextActiveTitle)
	} else {
		text.WriteString(tgcmd.TextAllTitle)
	}
	for _, p := range participants {
		switch {
		case !activeOnly && p.Active:
			text.WriteString("✅ ")
		case !activeOnly:
			text.WriteString("❌ ")
		default:
			text.WriteString("• ")
		}
		text.WriteString(participantLine(p))
		text.WriteString("\n")
	}

	h.sendToDM(ctx, msg, text.String())
}

func (h *TelegramHandler) handleMyChats(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.Chat.IsPrivate() {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextPrivateOnly)
		return
	}

	chats, err := h.standup.ChatsForUser(ctx, msg.From.ID)
	if err != nil {
		h.fail(ctx, msg, "failed to list chats for user", err)
		return
	}
	if len(chats) == 0 {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextMyChatsEmpty)
		return
	}

	var text strings.Builder
	text.WriteString(tgcmd.TextMyChatsTitle)
	for _, c := range chats {
		title := c.Title
		if title == "" {
			title = tgcmd.TextUntitledChat
		}
		fmt.Fprintf(&text, "• %s: %d\n", title, c.ChatID)
	}
	text.WriteString(tgcmd.TextMyChatsFooter)

	h.reply(ctx, msg.Chat.ID, text.String())
}

func (h *TelegramHandler) handleReport(ctx context.Context, msg *tgbotapi.Message, cmd *tgcmd.Command) {
	var (
		chatID  int64
		dateArg string
	)

	if msg.Chat.IsPrivate() {
		id, err := strconv.ParseInt(cmd.Arg(0), 10, 64)
		if err != nil {
			h.reply(ctx, msg.Chat.ID, tgcmd.TextReportUsage)
			return
		}

		isAdmin, err := h.standup.IsRecordedAdmin(ctx, id, msg.From.ID)
		if err != nil {
			h.fail(ctx, msg, "failed to check recorded admin", err)
			return
		}
		if !isAdmin {
			h.reply(ctx, msg.Chat.ID, tgcmd.TextReportNotAdmin)
			return
		}
		chatID, dateArg = id, cmd.Arg(1)
	} else {
		if !h.requireSyncedAdmin(ctx, msg, tgcmd.TextReportNotAdmin) {
			return
		}
		chatID, dateArg = msg.Chat.ID, cmd.Arg(0)
	}

	date := dateArg
	if date == "" {
		date = h.standup.Today()
	} else if _, err := time.Parse(entity.ReportDateLayout, date); err != nil {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextReportBadDate)
		return
	}

	reports, err := h.standup.ReportsOn(ctx, chatID, date)
	if err != nil {
		h.fail(ctx, msg, "failed to load reports", err)
		return
	}
	if len(reports) == 0 {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextReportEmpty)
		return
	}

	var text strings.Builder
	fmt.Fprintf(&text, tgcmd.TextReportTitle, date)
	for _, r := range reports {
		if r.Username != "" {
			fmt.Fprintf(&text, "@%s:\n%s\n\n", r.Username, r.Text)
		} else {
			fmt.Fprintf(&text, "user_id: %d:\n%s\n\n", r.UserID, r.Text)
		}
	}

	if msg.Chat.IsPrivate() {
		h.reply(ctx, msg.Chat.ID, text.String())
	} else {
		h.sendToDM(ctx, msg, text.String())
	}
	h.log.Infow("reports sent", "chat_id", chatID, "date", date, "user_id", msg.From.ID)
}

// handleReply stores a reply to the prompt or a reminder as the author's
// report for today.
func (h *TelegramHandler) handleReply(ctx context.Context, msg *tgbotapi.Message) {
	parent := msg.ReplyToMessage
	if parent == nil || parent.From == nil || parent.From.ID != h.bot.ID {
		return
	}
	if !tgcmd.IsStandupReply(parent.Text) {
		return
	}

	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	author := &entity.Participant{
		ChatID:   msg.Chat.ID,
		UserID:   msg.From.ID,
		Username: telegram.ParticipantName(msg.From),
		Active:   true,
	}
	report := &entity.Report{
		ChatID:           msg.Chat.ID,
		UserID:           msg.From.ID,
		ReplyToMessageID: parent.MessageID,
		MessageID:        msg.MessageID,
		Text:             text,
	}

	if err := h.standup.RecordReport(ctx, author, report); err != nil {
		h.log.Errorw("failed to record report", "chat_id", msg.Chat.ID, "user_id", msg.From.ID, "error", err)
		return
	}
	h.log.Infow("report saved", "chat_id", msg.Chat.ID, "user_id", msg.From.ID, "date", report.Date)
}

// requireAdmin checks the command runs in a group and the sender is one of
// its current administrators. It replies and returns false otherwise.
func (h *TelegramHandler) requireAdmin(ctx context.Context, msg *tgbotapi.Message, denied string) ([]*entity.Participant, bool) {
	if !msg.Chat.IsGroup() && !msg.Chat.IsSuperGroup() {
		h.reply(ctx, msg.Chat.ID, tgcmd.TextGroupOnly)
		return nil, false
	}

	admins, err := h.directory.Admins(ctx, msg.Chat.ID)
	if err != nil {
		h.fail(ctx, msg, "failed to get chat administrators", err)
		return nil, false
	}

	for _, a := range admins {
		if a.UserID == msg.From.ID {
			return admins, true
		}
	}

	h.reply(ctx, msg.Chat.ID, denied)
	return nil, false
}

// requireSyncedAdmin is requireAdmin that also records the current
// administrators, so DM commands can later recognise them.
func (h *TelegramHandler) requireSyncedAdmin(ctx context.Context, msg *tgbotapi.Message, denied string) bool {
	admins, ok := h.requireAdmin(ctx, msg, denied)
	if !ok {
		return false
	}

	if err := h.standup.SyncAdmins(ctx, msg.Chat.ID, admins); err != nil {
		h.log.Warnw("failed to sync admins", "chat_id", msg.Chat.ID, "error", err)
	}
	return true
}

// sendToDM delivers text privately and leaves a short-lived notice in the
// group.
func (h *TelegramHandler) sendToDM(ctx context.Context, msg *tgbotapi.Message, text string) {
	if _, err := h.messenger.Send(ctx, msg.From.ID, text, entity.FormatPlain); err != nil {
		h.log.Warnw("failed to send direct message", "user_id", msg.From.ID, "error", err)
		h.reply(ctx, msg.Chat.ID, tgcmd.TextDMUnavailable)
		return
	}

	noticeID, ok := h.reply(ctx, msg.Chat.ID, tgcmd.TextSentToDM)
	if !ok {
		return
	}
	if err := h.cleanup.ScheduleCleanup(ctx, msg.Chat.ID, noticeID); err != nil {
		h.log.Warnw("failed to schedule notice cleanup", "chat_id", msg.Chat.ID, "message_id", noticeID, "error", err)
	}
}

func (h *TelegramHandler) reply(ctx context.Context, chatID int64, text string) (int, bool) {
	id, err := h.messenger.Send(ctx, chatID, text, entity.FormatPlain)
	if err != nil {
		h.log.Errorw("failed to reply", "chat_id", chatID, "error", err)
		return 0, false
	}
	return id, true
}

func (h *TelegramHandler) fail(ctx context.Context, msg *tgbotapi.Message, what string, err error) {
	h.log.Errorw(what, "chat_id", msg.Chat.ID, "user_id", msg.From.ID, "error", err)
	h.reply(ctx, msg.Chat.ID, tgcmd.TextInternalError)
}

func participantLine(p *entity.Participant) string {
	if p.Username != "" {
		return fmt.Sprintf("@%s (%d)", p.Username, p.UserID)
	}
	return fmt.Sprintf("user_id: %d", p.UserID)
}

func participantLabel(p *entity.Participant) string {
	if p.Username != "" {
		return "@" + p.Username
	}
	return strconv.FormatInt(p.UserID, 10)
}
