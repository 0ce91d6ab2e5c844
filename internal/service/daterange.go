package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	DefaultFrom = "1970-01-01"
	DefaultTo   = "2099-12-31"
)

// DateRange covers whole days: From is the start of its day and To the
// last instant of its day, both in the report time zone.
type DateRange struct {
	From time.Time
	To   time.Time
}

func ParseDateRange(from, to string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	start, err := parseDay(from, DefaultFrom, loc)
	if err != nil {
		return DateRange{}, err
	}
	end, err := parseDay(to, DefaultTo, loc)
	if err != nil {
		return DateRange{}, err
	}

	return DateRange{
		From: start,
		To:   end.AddDate(0, 0, 1).Add(-time.Nanosecond),
	}, nil
}

func parseDay(v, def string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		v = def
	}

	t, err := dateparse.ParseIn(v, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", v, ErrInvalidDate)
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}
