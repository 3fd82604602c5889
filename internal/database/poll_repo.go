package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

type pollRepository struct {
	db dbConn
}

func newPollRepository(db dbConn) contract.PollRepo {
	return &pollRepository{db: db}
}

// Create journals a posted poll. A reused poll id replaces the older entry,
// matching the poll registry.
func (r *pollRepository) Create(poll *entity.PollRecord) error {
	query := `
		INSERT INTO poll_log (poll_id, tenant_title, chat_id, lecture_date, slot, question)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(poll_id) DO UPDATE SET
			tenant_title = excluded.tenant_title,
			chat_id = excluded.chat_id,
			lecture_date = excluded.lecture_date,
			slot = excluded.slot,
			question = excluded.question,
			created_at = CURRENT_TIMESTAMP
		RETURNING id
	`

	err := r.db.QueryRow(query,
		poll.PollID,
		poll.TenantTitle,
		poll.ChatID,
		poll.LectureDate.Format(lectureDateLayout),
		poll.Slot,
		poll.Question,
	).Scan(&poll.ID)
	if err != nil {
		return fmt.Errorf("failed to create poll record: %w", err)
	}

	return nil
}

// GetByPollID returns nil without an error when the poll was never journaled
func (r *pollRepository) GetByPollID(pollID string) (*entity.PollRecord, error) {
	query := `
		SELECT id, poll_id, tenant_title, chat_id, lecture_date, slot, question, created_at
		FROM poll_log
		WHERE poll_id = ?
	`

	poll, err := scanPoll(r.db.QueryRow(query, pollID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get poll record: %w", err)
	}

	return poll, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPoll(row scanner) (*entity.PollRecord, error) {
	poll := &entity.PollRecord{}
	var lectureDate string

	err := row.Scan(
		&poll.ID,
		&poll.PollID,
		&poll.TenantTitle,
		&poll.ChatID,
		&lectureDate,
		&poll.Slot,
		&poll.Question,
		&poll.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	poll.LectureDate, err = time.Parse(lectureDateLayout, lectureDate)
	if err != nil {
		return nil, fmt.Errorf("invalid lecture date %q: %w", lectureDate, err)
	}

	return poll, nil
}
