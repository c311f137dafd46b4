package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthLabel(t *testing.T) {
	label, err := MonthLabel(1)
	require.NoError(t, err)
	require.Equal(t, "Ene", label)

	label, err = MonthLabel(12)
	require.NoError(t, err)
	require.Equal(t, "Dic", label)

	_, err = MonthLabel(0)
	require.ErrorIs(t, err, ErrInvalidMonthRange)
	_, err = MonthLabel(13)
	require.ErrorIs(t, err, ErrInvalidMonthRange)
}

func TestMonthRange(t *testing.T) {
	labels, err := MonthRange(1, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"Ene", "Feb", "Mar"}, labels)
}

func TestMonthRangeSingleMonth(t *testing.T) {
	labels, err := MonthRange(7, 7)
	require.NoError(t, err)
	require.Equal(t, []string{"Jul"}, labels)
}

func TestMonthRangeInverted(t *testing.T) {
	_, err := MonthRange(5, 2)
	require.ErrorIs(t, err, ErrInvalidMonthRange)
}

func TestMonthRangeOutOfBounds(t *testing.T) {
	_, err := MonthRange(0, 5)
	require.ErrorIs(t, err, ErrInvalidMonthRange)
	_, err = MonthRange(3, 13)
	require.ErrorIs(t, err, ErrInvalidMonthRange)
}

func TestYearMonth(t *testing.T) {
	require.Equal(t, 202401, YearMonth(2024, 1))
	require.Equal(t, 202312, YearMonth(2023, 12))
	require.Less(t, YearMonth(2023, 12), YearMonth(2024, 1))
}

func TestFormatShortDate(t *testing.T) {
	d := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "05-Ene-2024", FormatShortDate(d))

	d = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "31-Dic-2025", FormatShortDate(d))
}
