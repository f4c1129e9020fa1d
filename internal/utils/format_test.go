package utils

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func TestFormatTime(t *testing.T) {
	cases := []struct {
		name string
		in   sql.NullTime
		want string
	}{
		{"evening", nullTime(time.Date(2025, 11, 26, 20, 0, 0, 0, time.UTC)), "8:00 pm"},
		{"midnight", nullTime(time.Date(2025, 11, 26, 0, 0, 0, 0, time.UTC)), "12:00 am"},
		{"noon", nullTime(time.Date(2025, 11, 26, 12, 5, 0, 0, time.UTC)), "12:05 pm"},
		{"morning single digit minute", nullTime(time.Date(2025, 11, 26, 9, 7, 0, 0, time.UTC)), "9:07 am"},
		{"non-utc input uses utc components", nullTime(time.Date(2025, 11, 26, 22, 30, 0, 0, time.FixedZone("plus2", 2*60*60))), "8:30 pm"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatTime(tc.in)
			if assert.NotNil(t, got) {
				assert.Equal(t, tc.want, *got)
			}
		})
	}
}

func TestFormatTimeNull(t *testing.T) {
	assert.Nil(t, FormatTime(sql.NullTime{}))
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(nullTime(time.Date(2025, 11, 26, 0, 0, 0, 0, time.UTC)))
	if assert.NotNil(t, got) {
		assert.Equal(t, "November 26, 2025", *got)
	}

	got = FormatDate(nullTime(time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)))
	if assert.NotNil(t, got) {
		assert.Equal(t, "March 4, 2026", *got)
	}

	assert.Nil(t, FormatDate(sql.NullTime{}))
}

func TestMaskCard(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain 16 digits", "4111111111111111", "************1111"},
		{"dashes preserved", "4111-1111-1111-1111", "****-****-****-1111"},
		{"spaces preserved", "4111 1111 1111 1111", "**** **** **** 1111"},
		{"exactly four digits", "1234", "1234"},
		{"fewer than four digits", "123", "123"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MaskCard(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, len(tc.in))
		})
	}
}
