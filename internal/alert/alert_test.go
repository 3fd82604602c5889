package alert

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/mocks"
	"github.com/rollbar/rollbar-go"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlack_Alert(t *testing.T) {
	received := make(chan slack.WebhookMessage, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var msg slack.WebhookMessage
		require.NoError(t, json.Unmarshal(body, &msg))
		received <- msg

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	s := NewSlack(server.URL, "attendance-bot")
	s.Alert(context.Background(), "Could not mark Ivanenko (Astro-22) for lecture #2 on 04.04.2023", errors.New("student not found"))

	msg := <-received
	assert.Contains(t, msg.Text, "Could not mark Ivanenko")
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "student not found", msg.Attachments[0].Text)
	assert.Equal(t, "danger", msg.Attachments[0].Color)
	assert.Equal(t, "attendance-bot", msg.Attachments[0].Footer)
}

func TestSlack_Alert_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := NewSlack(server.URL, "attendance-bot")
	assert.NotPanics(t, func() {
		s.Alert(context.Background(), "summary", nil)
	})
}

type fakeReporter struct {
	level  string
	err    error
	extras map[string]interface{}
}

func (f *fakeReporter) ErrorWithExtrasAndContext(_ context.Context, level string, err error, extras map[string]interface{}) {
	f.level = level
	f.err = err
	f.extras = extras
}

func TestRollbar_Alert(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{
			name:    "Should report the error with the summary as extra",
			err:     errors.New("date not found"),
			wantErr: "date not found",
		},
		{
			name:    "Should report the summary when there is no error",
			err:     nil,
			wantErr: "Could not create poll",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeReporter{}
			r := newRollbar(f)

			r.Alert(context.Background(), "Could not create poll", tt.err)

			assert.Equal(t, rollbar.ERR, f.level)
			assert.EqualError(t, f.err, tt.wantErr)
			assert.Equal(t, "Could not create poll", f.extras["summary"])
		})
	}
}

func TestMulti_Alert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockAlerter(ctrl)
	second := mocks.NewMockAlerter(ctrl)
	cause := errors.New("worksheet not found")

	first.EXPECT().Alert(gomock.Any(), "summary", cause).Times(1)
	second.EXPECT().Alert(gomock.Any(), "summary", cause).Times(1)

	var alerter contract.Alerter = Multi{first, second, Log{}}
	alerter.Alert(context.Background(), "summary", cause)
}
