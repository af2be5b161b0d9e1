package utils

import (
	"log"
	"time"
)

func GetISTTimeLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

func TimeNowIST() time.Time {
	return time.Now().In(GetISTTimeLocation())
}

// StartOfDay truncates t to 00:00:00.000 in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay moves t to 23:59:59.999 in its own location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func StartOfQuarter(t time.Time) time.Time {
	quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}

func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// StartOfWeek anchors the week to calendar Sunday-start: the date minus its
// day-of-week offset, at midnight.
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t.AddDate(0, 0, -int(t.Weekday())))
}
