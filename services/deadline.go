package services

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/relvacode/iso8601"
)

var errInvalidDeadline = errors.New("invalid deadline format")

// Extended calendar date-times are left to iso8601.
var calendarDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)

var weekDate = regexp.MustCompile(`^(\d{4})-?W(\d{2})(?:-?([1-7]))?$`)

// Reduced and basic ISO-8601 forms, tried in order. Inputs without an offset are read as UTC.
var deadlineLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04Z07",
	"2006-01-02T15Z07:00",
	"2006-01-02T15Z0700",
	"2006-01-02T15Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
	"2006-002",
	"2006002",
	"2006",
	"20060102T150405Z0700",
	"20060102T150405Z07",
	"20060102T150405",
	"20060102T1504Z0700",
	"20060102T1504",
	"20060102",
}

// ParseDeadline parses an ISO-8601 date or date-time: calendar, ordinal and
// week dates, with or without a time and offset.
func ParseDeadline(s string) (time.Time, error) {
	if calendarDateTime.MatchString(s) {
		if t, err := iso8601.ParseString(s); err == nil {
			return t, nil
		}
	}
	if m := weekDate.FindStringSubmatch(s); m != nil {
		return parseWeekDate(m[1], m[2], m[3])
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errInvalidDeadline
}

// parseWeekDate resolves YYYY-Www[-D]; week 1 is the week holding January 4th.
func parseWeekDate(yearStr, weekStr, dayStr string) (time.Time, error) {
	year, _ := strconv.Atoi(yearStr)
	week, _ := strconv.Atoi(weekStr)
	day := 1
	if dayStr != "" {
		day, _ = strconv.Atoi(dayStr)
	}
	if week < 1 || week > 53 {
		return time.Time{}, errInvalidDeadline
	}

	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	t := monday.AddDate(0, 0, (week-1)*7+day-1)

	if y, w := t.ISOWeek(); y != year || w != week {
		return time.Time{}, errInvalidDeadline
	}
	return t, nil
}
