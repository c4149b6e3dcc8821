package entity

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidDailyTime = errors.New("invalid daily time")
)

// TextFormat selects how the outbound channel renders a message.
type TextFormat string

const (
	FormatPlain    TextFormat = ""
	FormatHTML     TextFormat = "HTML"
	FormatMarkdown TextFormat = "Markdown"
)
