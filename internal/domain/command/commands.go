package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type CommandType string

const (
	CmdCreatePoll CommandType = "create_poll"
)

// ErrInvalidArguments is returned when a command's arguments cannot be parsed
var ErrInvalidArguments = errors.New("invalid command arguments")

// CreatePoll asks for a poll for an explicit tenant, slot and date
type CreatePoll struct {
	TenantTitle string
	Slot        int
	Day         time.Time
}

// ParseCreatePoll parses "<tenant_title> <slot> <year> <month> <day>".
// The returned day is midnight in loc.
func ParseCreatePoll(args string, loc *time.Location) (*CreatePoll, error) {
	parts := strings.Fields(strings.TrimSpace(args))
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: expected <tenant> <slot> <year> <month> <day>, got %d arguments", ErrInvalidArguments, len(parts))
	}

	nums := make([]int, 4)
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidArguments, p)
		}
		nums[i] = n
	}

	slot, year, month, day := nums[0], nums[1], nums[2], nums[3]
	if slot < 1 {
		return nil, fmt.Errorf("%w: slot must be positive, got %d", ErrInvalidArguments, slot)
	}

	if loc == nil {
		loc = time.Local
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes 2023-02-30 into March; reject instead of guessing
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return nil, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidArguments, year, month, day)
	}

	return &CreatePoll{
		TenantTitle: parts[0],
		Slot:        slot,
		Day:         date,
	}, nil
}

func GetHelpText() string {
	return "/" + string(CmdCreatePoll) + " <tenant> <lecture number> <year> <month> <day> - post an attendance poll for that lecture"
}
