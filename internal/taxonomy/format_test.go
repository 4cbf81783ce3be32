package taxonomy

import (
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "₩0"},
		{500, "₩500"},
		{1000, "₩1,000"},
		{1234567, "₩1,234,567"},
		{45000000, "₩45,000,000"},
		{-35000, "-₩35,000"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.amount); got != tc.want {
			t.Errorf("FormatCurrency(%d) = %s, want %s", tc.amount, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 1, 31, 9, 30, 0, 0, time.UTC) // a Friday
	if got := FormatDate(d); got != "2025. 01. 31." {
		t.Errorf("FormatDate = %s", got)
	}
	if got := FormatDateLong(d); got != "2025년 1월 31일 (금)" {
		t.Errorf("FormatDateLong = %s", got)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "방금 전"},
		{now.Add(-5 * time.Minute), "5분 전"},
		{now.Add(-3 * time.Hour), "3시간 전"},
		{now.Add(-2 * 24 * time.Hour), "2일 전"},
		{now.Add(-10 * 24 * time.Hour), "2025. 06. 05."},
	}
	for _, tc := range cases {
		if got := FormatRelativeTime(tc.at, now); got != tc.want {
			t.Errorf("FormatRelativeTime(%v) = %s, want %s", tc.at, got, tc.want)
		}
	}
}
