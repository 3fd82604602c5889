package telegram

import (
	"context"
	"errors"
	"fmt"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const quizPollType = "quiz"

var errNoPollInReply = errors.New("telegram reply has no poll")

// sender is the part of *tgbotapi.BotAPI the client needs
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type client struct {
	bot sender
}

// New wraps a Bot API connection as the chat client of the attendance service
func New(bot *tgbotapi.BotAPI) contract.ChatClient {
	return newClient(bot)
}

func newClient(bot sender) *client {
	return &client{bot: bot}
}

// SendPoll posts a non-anonymous poll and returns the poll id Telegram assigned
func (c *client) SendPoll(_ context.Context, poll entity.OutgoingPoll) (string, error) {
	cfg := tgbotapi.NewPoll(poll.ChatID, poll.Question, poll.Options...)
	cfg.IsAnonymous = false
	cfg.AllowsMultipleAnswers = false
	if poll.Quiz {
		cfg.Type = quizPollType
		cfg.CorrectOptionID = int64(poll.CorrectOption)
	}

	msg, err := c.bot.Send(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to send poll to chat %d: %w", poll.ChatID, err)
	}
	if msg.Poll == nil {
		return "", fmt.Errorf("failed to send poll to chat %d: %w", poll.ChatID, errNoPollInReply)
	}

	return msg.Poll.ID, nil
}
