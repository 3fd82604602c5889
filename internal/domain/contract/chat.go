package contract

import (
	"context"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

// ChatClient defines the chat platform operations the bot needs
// This allows mocking in tests while keeping the real implementation simple
type ChatClient interface {
	// SendPoll posts the poll and returns the platform's poll identifier
	SendPoll(ctx context.Context, poll entity.OutgoingPoll) (string, error)
}
