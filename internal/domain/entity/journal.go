package entity

import "time"

// PollRecord is the journal entry of a posted poll
type PollRecord struct {
	ID          int64
	PollID      string
	TenantTitle string
	ChatID      int64
	LectureDate time.Time
	Slot        int
	Question    string
	CreatedAt   time.Time
}

// MarkRecord is the journal entry of an attendance mark written to a sheet
type MarkRecord struct {
	ID          int64
	PollID      string
	TenantTitle string
	TelegramID  int64
	StudentName string
	LectureDate time.Time
	Slot        int
	OptionIndex int
	Marker      string
	SheetTitle  string
	Row         int
	Col         int
	CreatedAt   time.Time
}
