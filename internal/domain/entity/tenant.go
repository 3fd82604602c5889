package entity

import (
	"fmt"
	"time"
)

// Student is one roster member of a tenant
type Student struct {
	TelegramID int64
	Name       string
}

// Tenant is one class group tracked by the bot: its chat, spreadsheet and roster
type Tenant struct {
	Title            string
	SpreadsheetTitle string
	ChatID           int64
	Students         []Student
	Head             string
	GroupAddress     string
	QuestionTemplate string
	Schedule         []Trigger
}

// StudentName returns the roster name of the Telegram user, if the user belongs to the tenant
func (t Tenant) StudentName(telegramID int64) (string, bool) {
	for _, s := range t.Students {
		if s.TelegramID == telegramID {
			return s.Name, true
		}
	}
	return "", false
}

// Trigger is one weekly timetable entry: at Weekday Hour:Minute the poll for Slot is posted
type Trigger struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
	Slot    int
}

func (t Trigger) String() string {
	return fmt.Sprintf("%s %02d:%02d slot %d", t.Weekday, t.Hour, t.Minute, t.Slot)
}

// ResponseOption is one poll answer and the marker written to the sheet when it is chosen
type ResponseOption struct {
	Text   string
	Marker string
}
