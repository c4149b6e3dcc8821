package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/standup-bot/internal/domain/entity"
	"github.com/rickar/cal/v2"
)

// Calendar decides whether a date is a working day in the reference zone.
type Calendar struct {
	bc      *cal.BusinessCalendar
	loc     *time.Location
	weekend map[time.Weekday]bool
}

func New(loc *time.Location, weekend []time.Weekday, extra []time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}

	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(RussianHolidays...)
	bc.AddHoliday(transferHolidays()...)
	for _, d := range extra {
		bc.AddHoliday(singleDay("Configured day off", d))
	}

	rest := make(map[time.Weekday]bool, len(weekend))
	for _, d := range weekend {
		rest[d] = true
	}

	return &Calendar{bc: bc, loc: loc, weekend: rest}
}

// IsWorkday reports false for weekend days and holidays of date's year.
// date is read in the reference zone.
func (c *Calendar) IsWorkday(date time.Time) bool {
	local := date.In(c.loc)
	if c.weekend[local.Weekday()] {
		return false
	}

	y, m, d := local.Date()
	_, observed, _ := c.bc.IsHoliday(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return !observed
}

// ParseDates parses YYYY-MM-DD values, as given in EXTRA_HOLIDAYS.
func ParseDates(values []string) ([]time.Time, error) {
	var res []time.Time
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		t, err := time.Parse(entity.ReportDateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", v, err)
		}
		res = append(res, t)
	}
	return res, nil
}
