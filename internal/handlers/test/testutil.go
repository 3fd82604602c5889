package test

import (
	"testing"

	"github.com/astro-attendance/attendance-bot/internal/handlers"
	"github.com/astro-attendance/attendance-bot/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/mock/gomock"
)

// BotUserName is the username the handler under test answers to
const BotUserName = "attendance_bot"

type ServiceMocks struct {
	AttendanceServiceMock *mocks.MockAttendanceService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.TelegramHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		AttendanceServiceMock: mocks.NewMockAttendanceService(ctrl),
	}

	handler = handlers.New(m.AttendanceServiceMock, BotUserName)

	return
}

// CreateCommandUpdate builds a message update whose text starts with a bot command entity.
// command may carry an @botname suffix.
func CreateCommandUpdate(updateID int, chatID, senderID int64, command, args string) tgbotapi.Update {
	text := "/" + command
	if args != "" {
		text += " " + args
	}

	return tgbotapi.Update{
		UpdateID: updateID,
		Message: &tgbotapi.Message{
			MessageID: updateID,
			From:      &tgbotapi.User{ID: senderID, UserName: "sender"},
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command) + 1},
			},
		},
	}
}

// CreateTextUpdate builds a plain message update
func CreateTextUpdate(updateID int, chatID, senderID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: updateID,
		Message: &tgbotapi.Message{
			MessageID: updateID,
			From:      &tgbotapi.User{ID: senderID},
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      text,
		},
	}
}

// CreatePollAnswerUpdate builds a poll_answer update
func CreatePollAnswerUpdate(updateID int, pollID string, userID int64, options ...int) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: updateID,
		PollAnswer: &tgbotapi.PollAnswer{
			PollID:    pollID,
			User:      tgbotapi.User{ID: userID, UserName: "student"},
			OptionIDs: options,
		},
	}
}
