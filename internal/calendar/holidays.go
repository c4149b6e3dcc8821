package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// firstYear is the first year the current Labour Code holiday list applies to.
// Earlier years have no known holidays.
const firstYear = 2005

func fixed(name string, month time.Month, day int) *cal.Holiday {
	return &cal.Holiday{
		Name:      name,
		Type:      cal.ObservancePublic,
		Month:     month,
		Day:       day,
		StartYear: firstYear,
		Func:      cal.CalcDayOfMonth,
	}
}

// singleDay is a holiday that only exists in the year of date.
func singleDay(name string, date time.Time) *cal.Holiday {
	return &cal.Holiday{
		Name:      name,
		Type:      cal.ObservancePublic,
		Month:     date.Month(),
		Day:       date.Day(),
		StartYear: date.Year(),
		EndYear:   date.Year(),
		Func:      cal.CalcDayOfMonth,
	}
}

// RussianHolidays are the non-working public holidays of the Russian Federation.
var RussianHolidays = []*cal.Holiday{
	fixed("New Year Holidays", time.January, 1),
	fixed("New Year Holidays", time.January, 2),
	fixed("New Year Holidays", time.January, 3),
	fixed("New Year Holidays", time.January, 4),
	fixed("New Year Holidays", time.January, 5),
	fixed("New Year Holidays", time.January, 6),
	fixed("Christmas Day", time.January, 7),
	fixed("New Year Holidays", time.January, 8),
	fixed("Defender of the Fatherland Day", time.February, 23),
	fixed("International Women's Day", time.March, 8),
	fixed("Holiday of Spring and Labor", time.May, 1),
	fixed("Victory Day", time.May, 9),
	fixed("Russia Day", time.June, 12),
	fixed("Unity Day", time.November, 4),
}

// transferredDaysOff lists the government-decreed days off per year.
var transferredDaysOff = map[int][]time.Time{
	2024: {
		date(2024, time.April, 29),
		date(2024, time.April, 30),
		date(2024, time.May, 10),
		date(2024, time.December, 30),
		date(2024, time.December, 31),
	},
	2025: {
		date(2025, time.May, 2),
		date(2025, time.May, 8),
		date(2025, time.June, 13),
		date(2025, time.November, 3),
		date(2025, time.December, 31),
	},
	2026: {
		date(2026, time.January, 9),
		date(2026, time.March, 9),
		date(2026, time.May, 11),
		date(2026, time.December, 31),
	},
}

func transferHolidays() []*cal.Holiday {
	var res []*cal.Holiday
	for _, days := range transferredDaysOff {
		for _, d := range days {
			res = append(res, singleDay("Transferred day off", d))
		}
	}
	return res
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
