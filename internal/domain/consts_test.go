package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthSheetTitle(t *testing.T) {
	title, err := MonthSheetTitle(time.Date(2023, time.April, 4, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Квітень", title)

	title, err = MonthSheetTitle(time.Date(2023, time.December, 31, 23, 59, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Грудень", title)

	for m := time.January; m <= time.December; m++ {
		_, err := MonthSheetTitle(time.Date(2024, m, 1, 0, 0, 0, 0, time.UTC))
		assert.NoError(t, err, "month %s", m)
	}
}

func TestMonthSheetTitle_NotLocalized(t *testing.T) {
	saved := MonthSheetTitles[time.May]
	delete(MonthSheetTitles, time.May)
	defer func() { MonthSheetTitles[time.May] = saved }()

	_, err := MonthSheetTitle(time.Date(2023, time.May, 2, 0, 0, 0, 0, time.UTC))
	assert.True(t, errors.Is(err, ErrMonthNotLocalized))
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{in: "monday", want: time.Monday},
		{in: "Wednesday", want: time.Wednesday},
		{in: " SUNDAY ", want: time.Sunday},
		{in: "2", want: time.Tuesday},
		{in: "7", want: time.Sunday},
		{in: "0", wantErr: true},
		{in: "понеділок", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseWeekday(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateLayout(t *testing.T) {
	day := time.Date(2023, time.April, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "04.04.2023", day.Format(DateLayout))
}
