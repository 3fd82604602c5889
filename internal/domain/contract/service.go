package contract

import (
	"context"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

type AttendanceService interface {
	CreatePoll(ctx context.Context, tenant entity.Tenant, slot int, day time.Time) (string, error)
	CreatePollByAdmin(ctx context.Context, senderID int64, args string) error
	HandlePollAnswer(ctx context.Context, answer entity.PollAnswer) error
}
