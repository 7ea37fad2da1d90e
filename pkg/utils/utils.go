package utils

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

const dateLayout = "2006-01-02"

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	MonthBounds(t time.Time) (string, string)
	WeekBounds(t time.Time) (string, string)
	MonthLabel(t time.Time) string
	InclusiveDayCount(startDate, endDate string) (int, error)
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// MonthBounds returns the first and last calendar day of t's month as
// canonical date strings.
func (u *utils) MonthBounds(t time.Time) (string, string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)

	return first.Format(dateLayout), last.Format(dateLayout)
}

// WeekBounds returns the Monday and Sunday of t's ISO week as canonical
// date strings.
func (u *utils) WeekBounds(t time.Time) (string, string) {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)

	return monday.Format(dateLayout), sunday.Format(dateLayout)
}

// MonthLabel formats t as a month+year bucket key, e.g. "Jan 2024". Keys
// always carry the year so same-named months in different years never
// collide.
func (u *utils) MonthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// InclusiveDayCount returns the number of days in [startDate, endDate],
// counting both endpoints. An inverted range yields a non-positive count.
func (u *utils) InclusiveDayCount(startDate, endDate string) (int, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0, err
	}

	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0, err
	}

	return int(end.Sub(start).Hours()/24) + 1, nil
}
