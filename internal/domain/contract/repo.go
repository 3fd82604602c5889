package contract

import (
	"context"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Poll() PollRepo
	Mark() MarkRepo
}

// PollRepo defines the contract for the journal of posted polls
type PollRepo interface {
	Create(poll *entity.PollRecord) error
	GetByPollID(pollID string) (*entity.PollRecord, error)
}

// MarkRepo defines the contract for the journal of written attendance marks
type MarkRepo interface {
	Create(mark *entity.MarkRecord) error
	ListByPoll(pollID string) ([]*entity.MarkRecord, error)
}
