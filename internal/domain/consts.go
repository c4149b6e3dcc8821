package domain

import (
	"fmt"
	"strings"
	"time"
)

// DailyText is the prompt sent to a chat at its daily time.
const DailyText = "Текстовый дейлик:\n" +
	"1. Что делали?\n" +
	"2. Какие были проблемы?\n" +
	"3. Что планируете делать?"

// DailyTextPrefix identifies prompt messages when users reply to them.
const DailyTextPrefix = "Текстовый дейлик:"

// ReminderNag is appended to every reminder message.
const ReminderNag = "Жду Текстовый Дейлик!"

// DefaultTimezone is the reference zone for "today".
const DefaultTimezone = "Europe/Moscow"

// DefaultMaxMentions is the mention cap per reminder message.
const DefaultMaxMentions = 50

// DefaultWeekend holds the designated rest days.
var DefaultWeekend = []time.Weekday{time.Saturday, time.Sunday}

// WeekdayNumbers maps ISO 8601 weekday numbers and English names to weekdays
var WeekdayNumbers = map[string]time.Weekday{
	"1":         time.Monday,
	"2":         time.Tuesday,
	"3":         time.Wednesday,
	"4":         time.Thursday,
	"5":         time.Friday,
	"6":         time.Saturday,
	"7":         time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ParseWeekdays converts names or ISO numbers into weekdays.
func ParseWeekdays(values []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		day, ok := WeekdayNumbers[v]
		if !ok {
			return nil, fmt.Errorf("unknown weekday: %s", v)
		}
		days = append(days, day)
	}
	return days, nil
}
