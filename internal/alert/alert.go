// Package alert posts operator alerts outside the chats the bot serves.
package alert

import (
	"context"

	"github.com/diegoclair/standup-bot/internal/domain/contract"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackAlerter struct {
	client  contract.SlackClient
	channel string
	log     *zap.SugaredLogger
}

var _ contract.Alerter = (*SlackAlerter)(nil)

func NewSlackAlerter(client contract.SlackClient, channel string, log *zap.SugaredLogger) *SlackAlerter {
	return &SlackAlerter{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// Alert posts text to the alert channel. Delivery failures are only logged.
func (a *SlackAlerter) Alert(ctx context.Context, text string) {
	_, _, err := a.client.PostMessageContext(
		ctx,
		a.channel,
		slack.MsgOptionText(":rotating_light: *standup-bot*\n"+text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		a.log.Warnw("failed to post alert", "channel", a.channel, "error", err)
	}
}

// LogAlerter writes alerts to the log when no Slack channel is configured.
type LogAlerter struct {
	log *zap.SugaredLogger
}

func NewLogAlerter(log *zap.SugaredLogger) *LogAlerter {
	return &LogAlerter{log: log}
}

func (a *LogAlerter) Alert(_ context.Context, text string) {
	a.log.Warnw("alert", "text", text)
}
