package database

import (
	"fmt"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

type markRepository struct {
	db dbConn
}

func newMarkRepository(db dbConn) contract.MarkRepo {
	return &markRepository{db: db}
}

func (r *markRepository) Create(mark *entity.MarkRecord) error {
	query := `
		INSERT INTO attendance_marks (poll_id, tenant_title, telegram_id, student_name, lecture_date,
			slot, option_index, marker, sheet_title, sheet_row, sheet_col)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		mark.PollID,
		mark.TenantTitle,
		mark.TelegramID,
		mark.StudentName,
		mark.LectureDate.Format(lectureDateLayout),
		mark.Slot,
		mark.OptionIndex,
		mark.Marker,
		mark.SheetTitle,
		mark.Row,
		mark.Col,
	)
	if err != nil {
		return fmt.Errorf("failed to create mark record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	mark.ID = id
	return nil
}

// ListByPoll returns every mark written for the poll, oldest first
func (r *markRepository) ListByPoll(pollID string) ([]*entity.MarkRecord, error) {
	query := `
		SELECT id, poll_id, tenant_title, telegram_id, student_name, lecture_date,
			slot, option_index, marker, sheet_title, sheet_row, sheet_col, created_at
		FROM attendance_marks
		WHERE poll_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mark records: %w", err)
	}
	defer rows.Close()

	var marks []*entity.MarkRecord
	for rows.Next() {
		mark := &entity.MarkRecord{}
		var lectureDate string
		err := rows.Scan(
			&mark.ID,
			&mark.PollID,
			&mark.TenantTitle,
			&mark.TelegramID,
			&mark.StudentName,
			&lectureDate,
			&mark.Slot,
			&mark.OptionIndex,
			&mark.Marker,
			&mark.SheetTitle,
			&mark.Row,
			&mark.Col,
			&mark.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mark record: %w", err)
		}

		mark.LectureDate, err = time.Parse(lectureDateLayout, lectureDate)
		if err != nil {
			return nil, fmt.Errorf("invalid lecture date %q: %w", lectureDate, err)
		}
		marks = append(marks, mark)
	}

	return marks, rows.Err()
}
