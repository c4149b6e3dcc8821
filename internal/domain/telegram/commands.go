package telegram

import (
	"errors"
	"strings"

	"github.com/diegoclair/standup-bot/internal/domain"
)

type CommandType string

const (
	CmdStart      CommandType = "start"
	CmdSetTime    CommandType = "settime"
	CmdTestDaily  CommandType = "testdaily"
	CmdExclude    CommandType = "exclude"
	CmdInclude    CommandType = "include"
	CmdListActive CommandType = "list_active"
	CmdListAll    CommandType = "list_all"
	CmdMyChats    CommandType = "mychats"
	CmdReport     CommandType = "report"
	CmdHelp       CommandType = "help"
)

var (
	ErrNotCommand     = errors.New("not a command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrOtherBot       = errors.New("command addressed to another bot")
)

var knownCommands = map[CommandType]bool{
	CmdStart:      true,
	CmdSetTime:    true,
	CmdTestDaily:  true,
	CmdExclude:    true,
	CmdInclude:    true,
	CmdListActive: true,
	CmdListAll:    true,
	CmdMyChats:    true,
	CmdReport:     true,
	CmdHelp:       true,
}

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Arg returns the i-th argument or "".
func (c *Command) Arg(i int) string {
	if i < len(c.Args) {
		return c.Args[i]
	}
	return ""
}

// ParseCommand parses "/name[@bot] args...". Commands addressed to a
// different bot username return ErrOtherBot; botName is compared without
// case and may be empty to accept any suffix.
func ParseCommand(text, botName string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 || !strings.HasPrefix(parts[0], "/") {
		return nil, ErrNotCommand
	}

	name := strings.TrimPrefix(parts[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		target := name[at+1:]
		name = name[:at]
		if botName != "" && !strings.EqualFold(target, botName) {
			return nil, ErrOtherBot
		}
	}

	cmdType := CommandType(strings.ToLower(name))
	if !knownCommands[cmdType] {
		return nil, ErrUnknownCommand
	}

	cmd := &Command{
		Type: cmdType,
		Raw:  text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	return cmd, nil
}

// IsStandupReply reports whether a bot message text belongs to the standup
// flow, so that a reply to it counts as a report.
func IsStandupReply(parentText string) bool {
	return strings.HasPrefix(parentText, domain.DailyTextPrefix) || strings.Contains(parentText, ReminderMarker)
}

func GetHelpText() string {
	return "Команды бота:\n\n" +
		"В группе (только для админов):\n" +
		"/start - активировать бота в чате\n" +
		"/settime HH:MM - время ежедневной рассылки\n" +
		"/testdaily - отправить дэйлик сейчас\n" +
		"/exclude @username|user_id - исключить из напоминаний\n" +
		"/include @username|user_id - вернуть в напоминания\n" +
		"/list_active - активные участники (в личку)\n" +
		"/list_all - все участники (в личку)\n" +
		"/report [YYYY-MM-DD] - отчёты за дату (в личку)\n\n" +
		"В личке:\n" +
		"/mychats - ваши чаты\n" +
		"/report <chat_id> [YYYY-MM-DD] - отчёты чата за дату\n" +
		"/help - эта справка\n\n" +
		"Чтобы сдать отчёт, ответьте реплаем на сообщение с дэйликом."
}
