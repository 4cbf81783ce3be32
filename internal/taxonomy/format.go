package taxonomy

import (
	"fmt"
	"strconv"
	"time"
)

// FormatCurrency renders a Korean Won amount: ₩12,345,678, no decimals.
func FormatCurrency(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-₩" + string(out)
	}
	return "₩" + string(out)
}

var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// FormatDate renders the short form: 2025. 01. 31.
func FormatDate(t time.Time) string {
	return t.Format("2006. 01. 02.")
}

// FormatDateLong renders the long form with the Korean weekday:
// 2025년 1월 31일 (금)
func FormatDateLong(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일 (%s)",
		t.Year(), int(t.Month()), t.Day(), koreanWeekdays[t.Weekday()])
}

// FormatRelativeTime renders how long ago t was, relative to now:
// 방금 전, N분 전, N시간 전, N일 전, then the short date.
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	mins := int(diff.Minutes())
	hours := int(diff.Hours())
	days := int(diff.Hours() / 24)

	switch {
	case mins < 1:
		return "방금 전"
	case mins < 60:
		return fmt.Sprintf("%d분 전", mins)
	case hours < 24:
		return fmt.Sprintf("%d시간 전", hours)
	case days < 7:
		return fmt.Sprintf("%d일 전", days)
	default:
		return FormatDate(t)
	}
}
