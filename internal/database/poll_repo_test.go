package database

import (
	"testing"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPoll(pollID, tenant string) *entity.PollRecord {
	return &entity.PollRecord{
		PollID:      pollID,
		TenantTitle: tenant,
		ChatID:      -1001429649964,
		LectureDate: time.Date(2023, time.April, 4, 0, 0, 0, 0, time.UTC),
		Slot:        2,
		Question:    "Астрономи, відмічаємося на 2 парі: астрофізика",
	}
}

func TestPollRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPollRepository(db.conn)

	poll := testPoll("5377643193141559299", "Astro-22")
	err := repo.Create(poll)
	require.NoError(t, err, "Failed to create poll record")
	assert.NotZero(t, poll.ID, "Expected poll record ID to be set after creation")

}

func TestPollRepository_Create_ReusedPollID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPollRepository(db.conn)

	first := testPoll("poll-1", "Astro-22")
	require.NoError(t, repo.Create(first))

	second := testPoll("poll-1", "Physics-21")
	second.Slot = 3
	second.Question = "Фізики, відмічаємося на 3 парі: оптика"
	err := repo.Create(second)
	require.NoError(t, err, "Expected a reused poll id to replace the journal entry")
	assert.Equal(t, first.ID, second.ID)

	found, err := repo.GetByPollID("poll-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Physics-21", found.TenantTitle)
	assert.Equal(t, 3, found.Slot)
	assert.Equal(t, second.Question, found.Question)

	var count int
	require.NoError(t, db.conn.QueryRow("SELECT COUNT(*) FROM poll_log").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPollRepository_GetByPollID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newPollRepository(db.conn)

	original := testPoll("poll-1", "Astro-22")
	require.NoError(t, repo.Create(original))

	found, err := repo.GetByPollID("poll-1")
	require.NoError(t, err, "Failed to get poll record")
	require.NotNil(t, found, "Expected to find poll record")

	assert.Equal(t, original.ID, found.ID)
	assert.Equal(t, "Astro-22", found.TenantTitle)
	assert.Equal(t, int64(-1001429649964), found.ChatID)
	assert.Equal(t, "04.04.2023", found.LectureDate.Format("02.01.2006"))
	assert.Equal(t, 2, found.Slot)
	assert.Equal(t, original.Question, found.Question)
	assert.False(t, found.CreatedAt.IsZero())

	notFound, err := repo.GetByPollID("NONEXISTENT")
	require.NoError(t, err, "Unexpected error when poll record not found")
	assert.Nil(t, notFound, "Expected nil when poll record not found")
}
