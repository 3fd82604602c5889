package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMark(pollID, marker string) *entity.MarkRecord {
	return &entity.MarkRecord{
		PollID:      pollID,
		TenantTitle: "Astro-22",
		TelegramID:  111,
		StudentName: "Ivanenko",
		LectureDate: time.Date(2023, time.April, 4, 0, 0, 0, 0, time.UTC),
		Slot:        2,
		Marker:      marker,
		SheetTitle:  "Квітень",
		Row:         10,
		Col:         4,
	}
}

func TestMarkRepository_CreateAndList(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newMarkRepository(db.conn)

	first := testMark("poll-1", "✅")
	require.NoError(t, repo.Create(first))
	assert.NotZero(t, first.ID)

	second := testMark("poll-1", "❌")
	second.OptionIndex = 1
	require.NoError(t, repo.Create(second))
	require.NoError(t, repo.Create(testMark("poll-2", "✅")))

	marks, err := repo.ListByPoll("poll-1")
	require.NoError(t, err)
	require.Len(t, marks, 2)

	assert.Equal(t, "✅", marks[0].Marker)
	assert.Equal(t, "❌", marks[1].Marker)
	assert.Equal(t, 1, marks[1].OptionIndex)
	assert.Equal(t, int64(111), marks[1].TelegramID)
	assert.Equal(t, "Квітень", marks[1].SheetTitle)
	assert.Equal(t, 10, marks[1].Row)
	assert.Equal(t, 4, marks[1].Col)
	assert.Equal(t, "2023-04-04", marks[1].LectureDate.Format("2006-01-02"))
}

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Poll().Create(testPoll("poll-1", "Astro-22")); err != nil {
			return err
		}
		return tx.Mark().Create(testMark("poll-1", "✅"))
	})
	require.NoError(t, err)

	marks, err := dm.Mark().ListByPoll("poll-1")
	require.NoError(t, err)
	assert.Len(t, marks, 1)

	rollback := errors.New("rollback")
	err = dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Poll().Create(testPoll("poll-2", "Astro-22")); err != nil {
			return err
		}
		return rollback
	})
	assert.ErrorIs(t, err, rollback)

	poll, err := dm.Poll().GetByPollID("poll-2")
	require.NoError(t, err)
	assert.Nil(t, poll, "Expected the rolled back poll record to be absent")
}
