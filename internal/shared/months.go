package shared

import (
	"errors"
	"fmt"
	"time"
)

// monthLabels holds the Spanish three-letter month abbreviations used as
// column keys in aggregated reports.
var monthLabels = [12]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// ErrInvalidMonthRange indicates an out-of-bounds or inverted month range.
var ErrInvalidMonthRange = errors.New("invalid month range")

// MonthLabel returns the Spanish abbreviation for a month in [1,12].
func MonthLabel(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d outside [1,12]", ErrInvalidMonthRange, month)
	}
	return monthLabels[month-1], nil
}

// MonthRange returns the ordered abbreviations for the inclusive range
// [from, to]. Both bounds must be in [1,12] and from must not exceed to.
func MonthRange(from, to int) ([]string, error) {
	if from < 1 || from > 12 || to < 1 || to > 12 {
		return nil, fmt.Errorf("%w: months must be in [1,12]", ErrInvalidMonthRange)
	}
	if from > to {
		return nil, fmt.Errorf("%w: start month %d after end month %d", ErrInvalidMonthRange, from, to)
	}
	labels := make([]string, 0, to-from+1)
	for m := from; m <= to; m++ {
		labels = append(labels, monthLabels[m-1])
	}
	return labels, nil
}

// YearMonth encodes a (year, month) pair as year*100+month so inclusive
// chronological ranges compare as plain integers.
func YearMonth(year, month int) int {
	return year*100 + month
}

// FormatShortDate renders a date as DD-Mon-YYYY with the Spanish month
// abbreviation, e.g. 05-Ene-2024.
func FormatShortDate(t time.Time) string {
	return fmt.Sprintf("%02d-%s-%04d", t.Day(), monthLabels[int(t.Month())-1], t.Year())
}
