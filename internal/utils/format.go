// Package utils provides pure helpers for turning raw column values into
// the display strings the API exposes. All functions are total: they never
// panic and map absent input to nil.
package utils

import (
	"database/sql"
	"fmt"
)

// FormatTime renders a nullable time column as a 12-hour clock string such
// as "8:00 pm", using the UTC hour and minute. Hour zero displays as 12 and
// minutes are always two digits. A NULL column yields nil.
func FormatTime(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	u := t.Time.UTC()
	hours := u.Hour()
	ampm := "am"
	if hours >= 12 {
		ampm = "pm"
	}
	hours = hours % 12
	if hours == 0 {
		hours = 12
	}
	s := fmt.Sprintf("%d:%02d %s", hours, u.Minute(), ampm)
	return &s
}

// FormatDate renders a nullable date column as a long-form string such as
// "November 26, 2025". A NULL column yields nil.
func FormatDate(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := t.Time.UTC().Format("January 2, 2006")
	return &s
}

// MaskCard replaces every digit of a card string except the last four
// digits with '*'. Non-digit characters (spaces, dashes) stay in place, so
// the output has the same length and shape as the input.
func MaskCard(card string) string {
	digits := 0
	for _, r := range card {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	keepFrom := digits - 4

	out := []rune(card)
	seen := 0
	for i, r := range out {
		if r >= '0' && r <= '9' {
			if seen < keepFrom {
				out[i] = '*'
			}
			seen++
		}
	}
	return string(out)
}
