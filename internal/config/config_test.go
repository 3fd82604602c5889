package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
admin_id: 42
options:
  - text: Був
    emoji: "✅"
  - text: Не був
    emoji: "❌"
clients:
  - title: Astro-22
    spreadsheet_title: Відвідуваність астрономів
    chat_id: -1001429649964
    head: "@starosta"
    group_address: Астрономи
    students:
      - tg_id: 111
        name: Ivanenko
      - tg_id: 222
        name: Petrenko
    schedule:
      - weekday: monday
        time: "08:30"
        lecture: 1
      - weekday: "3"
        time: "10:25"
        lecture: 2
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func setEnv(t *testing.T, configPath string) {
	t.Helper()

	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("GSHEETS_CREDS_PATH", "creds.json")
	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("PORT", "")
	t.Setenv("SLACK_ALERT_WEBHOOK_URL", "")
}

func TestLoad(t *testing.T) {
	setEnv(t, writeConfig(t, validYAML))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.TelegramBotToken)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, int64(42), cfg.AdminID)
	assert.Equal(t, []entity.ResponseOption{
		{Text: "Був", Marker: "✅"},
		{Text: "Не був", Marker: "❌"},
	}, cfg.Options)

	require.Len(t, cfg.Tenants, 1)
	tenant := cfg.Tenants[0]
	assert.Equal(t, "Astro-22", tenant.Title)
	assert.Equal(t, "Відвідуваність астрономів", tenant.SpreadsheetTitle)
	assert.Equal(t, int64(-1001429649964), tenant.ChatID)
	assert.Equal(t, "@starosta", tenant.Head)
	assert.Equal(t, []entity.Student{
		{TelegramID: 111, Name: "Ivanenko"},
		{TelegramID: 222, Name: "Petrenko"},
	}, tenant.Students)
	assert.Equal(t, []entity.Trigger{
		{Weekday: time.Monday, Hour: 8, Minute: 30, Slot: 1},
		{Weekday: time.Wednesday, Hour: 10, Minute: 25, Slot: 2},
	}, tenant.Schedule)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		errText string
	}{
		{
			name:    "Should require the bot token",
			yaml:    validYAML,
			env:     map[string]string{"TELEGRAM_BOT_TOKEN": ""},
			errText: "TelegramBotToken",
		},
		{
			name:    "Should reject an unknown timezone",
			yaml:    validYAML,
			env:     map[string]string{"TIMEZONE": "Mars/Olympus"},
			errText: "invalid timezone",
		},
		{
			name:    "Should fail on a missing file",
			yaml:    validYAML,
			env:     map[string]string{"CONFIG_PATH": "/nonexistent/config.yaml"},
			errText: "failed to read config",
		},
		{
			name: "Should reject duplicate student ids",
			yaml: `
admin_id: 42
options: [{text: Був, emoji: "✅"}]
clients:
  - title: Astro-22
    spreadsheet_title: Sheet
    chat_id: -1
    group_address: Астрономи
    students:
      - {tg_id: 111, name: Ivanenko}
      - {tg_id: 111, name: Petrenko}
`,
			errText: "unique",
		},
		{
			name: "Should reject duplicate client titles",
			yaml: `
admin_id: 42
options: [{text: Був, emoji: "✅"}]
clients:
  - {title: Astro-22, spreadsheet_title: A, chat_id: -1, group_address: G, students: [{tg_id: 1, name: A}]}
  - {title: Astro-22, spreadsheet_title: B, chat_id: -2, group_address: G, students: [{tg_id: 2, name: B}]}
`,
			errText: "unique",
		},
		{
			name: "Should reject a malformed time",
			yaml: `
admin_id: 42
options: [{text: Був, emoji: "✅"}]
clients:
  - title: Astro-22
    spreadsheet_title: Sheet
    chat_id: -1
    group_address: Астрономи
    students: [{tg_id: 111, name: Ivanenko}]
    schedule: [{weekday: monday, time: "25:00", lecture: 1}]
`,
			errText: "hhmm",
		},
		{
			name: "Should reject an unknown weekday",
			yaml: `
admin_id: 42
options: [{text: Був, emoji: "✅"}]
clients:
  - title: Astro-22
    spreadsheet_title: Sheet
    chat_id: -1
    group_address: Астрономи
    students: [{tg_id: 111, name: Ivanenko}]
    schedule: [{weekday: someday, time: "08:30", lecture: 1}]
`,
			errText: "weekday",
		},
		{
			name: "Should require the admin id and options",
			yaml: `
clients:
  - {title: Astro-22, spreadsheet_title: A, chat_id: -1, group_address: G, students: [{tg_id: 1, name: A}]}
`,
			errText: "AdminID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, writeConfig(t, tt.yaml))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}
