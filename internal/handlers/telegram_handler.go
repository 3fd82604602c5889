package handlers

import (
	"context"
	"log"
	"strings"

	"github.com/astro-attendance/attendance-bot/internal/domain/command"
	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// AllowedUpdates are the update kinds the bot subscribes to
var AllowedUpdates = []string{"message", "poll_answer"}

type TelegramHandler struct {
	attendance  contract.AttendanceService
	botUserName string
}

// New builds the dispatcher. botUserName is this bot's username, used to tell
// /create_poll@thisbot apart from commands addressed to other bots in the group.
func New(attendance contract.AttendanceService, botUserName string) *TelegramHandler {
	return &TelegramHandler{
		attendance:  attendance,
		botUserName: botUserName,
	}
}

// Run dispatches updates one at a time until the channel closes or ctx is done
func (h *TelegramHandler) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			h.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate routes a single update. Failures are logged and never stop the loop.
func (h *TelegramHandler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Update %d panicked: %v", update.UpdateID, r)
		}
	}()

	switch {
	case update.PollAnswer != nil:
		h.handlePollAnswer(ctx, update.PollAnswer)
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	}
}

func (h *TelegramHandler) handlePollAnswer(ctx context.Context, answer *tgbotapi.PollAnswer) {
	err := h.attendance.HandlePollAnswer(ctx, entity.PollAnswer{
		PollID:    answer.PollID,
		UserID:    answer.User.ID,
		UserName:  answer.User.UserName,
		OptionIDs: answer.OptionIDs,
	})
	if err != nil {
		log.Printf("Failed to handle response of %d to poll %s: %v", answer.User.ID, answer.PollID, err)
	}
}

func (h *TelegramHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if !msg.IsCommand() || command.CommandType(msg.Command()) != command.CmdCreatePoll {
		log.Printf("Ignoring message %d in chat %d", msg.MessageID, msg.Chat.ID)
		return
	}
	if !h.addressedToMe(msg) {
		log.Printf("Ignoring /%s addressed to another bot in chat %d", msg.CommandWithAt(), msg.Chat.ID)
		return
	}
	if msg.From == nil {
		log.Printf("Ignoring /%s without a sender in chat %d", command.CmdCreatePoll, msg.Chat.ID)
		return
	}

	if err := h.attendance.CreatePollByAdmin(ctx, msg.From.ID, msg.CommandArguments()); err != nil {
		log.Printf("Failed to handle /%s %q: %v (usage: %s)", command.CmdCreatePoll, msg.CommandArguments(), err, command.GetHelpText())
	}
}

// addressedToMe reports whether a command has no @botname suffix or names this bot
func (h *TelegramHandler) addressedToMe(msg *tgbotapi.Message) bool {
	_, addressee, found := strings.Cut(msg.CommandWithAt(), "@")
	if !found {
		return true
	}
	return strings.EqualFold(addressee, h.botUserName)
}
