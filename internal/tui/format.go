package tui

import (
	"strings"
	"time"

	"balju/internal/models"
)

// DigitsOnly strips every non-digit byte. Quantity inputs for the
// catalog categories accept digits only; the stripping happens here in
// the presentation layer, so the draft never sees the rejected
// characters.
func DigitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatMonthDay renders a YYYY-MM-DD date key as MM/DD for the date
// rule headers. Anything else passes through unchanged.
func FormatMonthDay(s string) string {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return s
	}
	return parts[1] + "/" + parts[2]
}

// ISODate formats a time as a zero-padded YYYY-MM-DD date key.
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// DefaultRange is the initial history filter: one year back to today.
func DefaultRange(now time.Time) (from, to string) {
	return ISODate(now.AddDate(-1, 0, 0)), ISODate(now)
}

// WeekRange is the Monday-to-Sunday week containing now.
func WeekRange(now time.Time) (from, to string) {
	diff := int(now.Weekday()) - 1
	if now.Weekday() == time.Sunday {
		diff = 6
	}
	start := now.AddDate(0, 0, -diff)
	return ISODate(start), ISODate(start.AddDate(0, 0, 6))
}

// MonthRange is the calendar month containing now.
func MonthRange(now time.Time) (from, to string) {
	year, month, _ := now.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, now.Location())
	return ISODate(first), ISODate(last)
}

// LastMonthRange is the calendar month before the one containing now.
func LastMonthRange(now time.Time) (from, to string) {
	year, month, _ := now.Date()
	first := time.Date(year, month-1, 1, 0, 0, 0, 0, now.Location())
	last := time.Date(year, month, 0, 0, 0, 0, 0, now.Location())
	return ISODate(first), ISODate(last)
}

// ItemLines renders item rows grouped by category in display order, as
// bullet lines under a [label] heading. Shared by the order summary and
// the history cards.
func ItemLines(items []models.ItemRow) []string {
	grouped := models.GroupByCategory(items)
	var lines []string
	for _, category := range models.Categories {
		rows := grouped[category]
		if len(rows) == 0 {
			continue
		}
		lines = append(lines, "["+models.DisplayLabel(category)+"]")
		for _, row := range rows {
			line := "  • " + row.Product + " " + row.Quantity
			if row.Unit != "" {
				line += " " + row.Unit
			}
			lines = append(lines, line)
		}
	}
	return lines
}
