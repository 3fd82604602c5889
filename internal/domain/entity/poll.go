package entity

import "time"

// PollContext is what the bot remembers about a poll it posted
type PollContext struct {
	PollID      string
	Tenant      Tenant
	LectureDate time.Time
	Slot        int
}

// OutgoingPoll is a poll to be posted to a chat
type OutgoingPoll struct {
	ChatID        int64
	Question      string
	Options       []string
	Quiz          bool
	CorrectOption int
}

// PollAnswer is a participant's (re)answer to a poll
type PollAnswer struct {
	PollID    string
	UserID    int64
	UserName  string
	OptionIDs []int
}

// Cell is a 1-based spreadsheet coordinate with the text found there
type Cell struct {
	Row   int
	Col   int
	Value string
}
