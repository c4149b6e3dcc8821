package entity

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Chat struct {
	ChatID    int64     `json:"chat_id" db:"chat_id"`
	Title     string    `json:"chat_title" db:"chat_title"`
	DailyTime string    `json:"daily_time" db:"daily_time"` // HH:MM, empty when not scheduled
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ChatSchedule is the scheduler's view of a chat row.
type ChatSchedule struct {
	ChatID    int64  `json:"chat_id"`
	DailyTime string `json:"daily_time"`
}

func (s ChatSchedule) Enabled() bool {
	return strings.TrimSpace(s.DailyTime) != ""
}

// ParseDailyTime parses "HH:MM" into hour and minute.
func ParseDailyTime(value string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidDailyTime, value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid hour %q", ErrInvalidDailyTime, parts[0])
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid minute %q", ErrInvalidDailyTime, parts[1])
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q out of range", ErrInvalidDailyTime, value)
	}

	return hour, minute, nil
}
