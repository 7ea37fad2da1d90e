package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMonthBounds(t *testing.T) {
	u := New()

	start, end := u.MonthBounds(time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-02-01", start)
	assert.Equal(t, "2024-02-29", end)

	start, end = u.MonthBounds(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2023-12-01", start)
	assert.Equal(t, "2023-12-31", end)
}

func TestWeekBoundsStartsOnMonday(t *testing.T) {
	u := New()

	// 2024-06-12 is a Wednesday.
	start, end := u.WeekBounds(time.Date(2024, time.June, 12, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-10", start)
	assert.Equal(t, "2024-06-16", end)

	// Sunday belongs to the week that started the previous Monday.
	start, end = u.WeekBounds(time.Date(2024, time.June, 16, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-10", start)
	assert.Equal(t, "2024-06-16", end)

	// Monday is its own week start.
	start, _ = u.WeekBounds(time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-10", start)
}

func TestMonthLabel(t *testing.T) {
	u := New()

	assert.Equal(t, "Mar 2023", u.MonthLabel(time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Mar 2024", u.MonthLabel(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestInclusiveDayCount(t *testing.T) {
	u := New()

	days, err := u.InclusiveDayCount("2024-01-01", "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, 10, days)

	days, err = u.InclusiveDayCount("2024-01-05", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = u.InclusiveDayCount("2024-01-10", "2024-01-01")
	require.NoError(t, err)
	assert.LessOrEqual(t, days, 0)

	_, err = u.InclusiveDayCount("garbage", "2024-01-01")
	assert.Error(t, err)
}
