// Package timezone resolves the assistant's local time.
package timezone

import "time"

// Load returns the named location, falling back to UTC when it is unknown.
func Load(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil || name == "" {
		return time.UTC
	}
	return loc
}

var koreanWeekdays = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// KoreanWeekday returns the Korean name of t's weekday.
func KoreanWeekday(t time.Time) string {
	return koreanWeekdays[t.Weekday()]
}

// KoreanDate formats t as "2006년 01월 02일".
func KoreanDate(t time.Time) string {
	return t.Format("2006년 01월 02일")
}
