package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is how lecture dates are written in the attendance sheets (DD.MM.YYYY)
const DateLayout = "02.01.2006"

// DefaultQuestionTemplate is used when a tenant does not configure its own poll question
const DefaultQuestionTemplate = "{{.GroupAddress}}, відмічаємося на {{.Slot}} парі: {{.Lecture}}"

// DefaultTimezone is the timezone of the weekly timetable when none is configured
const DefaultTimezone = "Europe/Kyiv"

// ErrMonthNotLocalized is returned for a month that has no worksheet title
var ErrMonthNotLocalized = errors.New("month has no localized sheet title")

// MonthSheetTitles maps calendar months to the worksheet titles used in attendance spreadsheets
var MonthSheetTitles = map[time.Month]string{
	time.January:   "Січень",
	time.February:  "Лютий",
	time.March:     "Березень",
	time.April:     "Квітень",
	time.May:       "Травень",
	time.June:      "Червень",
	time.July:      "Липень",
	time.August:    "Серпень",
	time.September: "Вересень",
	time.October:   "Жовтень",
	time.November:  "Листопад",
	time.December:  "Грудень",
}

// MonthSheetTitle returns the worksheet title holding attendance for the month of day
func MonthSheetTitle(day time.Time) (string, error) {
	title, ok := MonthSheetTitles[day.Month()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMonthNotLocalized, day.Month())
	}
	return title, nil
}

// WeekdayNames maps lower-case English weekday names to time.Weekday
var WeekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// WeekdayNumbers maps ISO 8601 weekday numbers as strings to time.Weekday
var WeekdayNumbers = map[string]time.Weekday{
	"1": time.Monday,
	"2": time.Tuesday,
	"3": time.Wednesday,
	"4": time.Thursday,
	"5": time.Friday,
	"6": time.Saturday,
	"7": time.Sunday,
}

// ParseWeekday accepts an English weekday name (any case) or an ISO 8601 weekday number
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if wd, ok := WeekdayNames[key]; ok {
		return wd, nil
	}
	if wd, ok := WeekdayNumbers[key]; ok {
		return wd, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
