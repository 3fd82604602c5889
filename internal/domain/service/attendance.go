package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"text/template"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain"
	"github.com/astro-attendance/attendance-bot/internal/domain/command"
	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/astro-attendance/attendance-bot/internal/domain/registry"
)

type attendanceService struct {
	tenants *registry.Tenants
	polls   *registry.Polls
	chat    contract.ChatClient
	locator *locator
	dm      contract.DataManager
	alerter contract.Alerter
	options []entity.ResponseOption
	adminID int64
	loc     *time.Location
}

func newAttendance(deps Dependencies) *attendanceService {
	alerter := deps.Alerter
	if alerter == nil {
		alerter = nopAlerter{}
	}
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}

	return &attendanceService{
		tenants: deps.Tenants,
		polls:   deps.Polls,
		chat:    deps.Chat,
		locator: newLocator(deps.Sheets),
		dm:      deps.DataManager,
		alerter: alerter,
		options: deps.Options,
		adminID: deps.AdminID,
		loc:     loc,
	}
}

// questionData is what tenant question templates can refer to
type questionData struct {
	Title        string
	GroupAddress string
	Head         string
	Slot         int
	Lecture      string
	Date         string
}

// CreatePoll posts the attendance poll for slot on day into the tenant's chat
// and remembers it so that answers can be written back to the sheet.
func (s *attendanceService) CreatePoll(ctx context.Context, tenant entity.Tenant, slot int, day time.Time) (string, error) {
	log.Printf("Creating poll for %s, lecture #%d on %s", tenant.Title, slot, day.Format(domain.DateLayout))

	lecture, err := s.locator.LectureTitle(ctx, tenant, day, slot)
	if err != nil {
		s.alerter.Alert(ctx, fmt.Sprintf("Could not create poll for %s, lecture #%d on %s", tenant.Title, slot, day.Format(domain.DateLayout)), err)
		return "", fmt.Errorf("failed to get lecture title: %w", err)
	}

	question, err := renderQuestion(tenant, questionData{
		Title:        tenant.Title,
		GroupAddress: tenant.GroupAddress,
		Head:         tenant.Head,
		Slot:         slot,
		Lecture:      strings.ToLower(lecture),
		Date:         day.Format(domain.DateLayout),
	})
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(s.options))
	for _, o := range s.options {
		texts = append(texts, o.Text)
	}

	pollID, err := s.chat.SendPoll(ctx, entity.OutgoingPoll{
		ChatID:        tenant.ChatID,
		Question:      question,
		Options:       texts,
		Quiz:          true,
		CorrectOption: 0,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send poll: %w", err)
	}

	s.polls.Register(entity.PollContext{
		PollID:      pollID,
		Tenant:      tenant,
		LectureDate: day,
		Slot:        slot,
	})

	err = s.journalPoll(ctx, &entity.PollRecord{
		PollID:      pollID,
		TenantTitle: tenant.Title,
		ChatID:      tenant.ChatID,
		LectureDate: day,
		Slot:        slot,
		Question:    question,
	})
	if err != nil {
		// the poll is live and registered, only the journal entry is lost
		log.Printf("Failed to journal poll %s: %v", pollID, err)
	}

	log.Printf("Created poll with id %s for %s (%d polls registered)", pollID, tenant.Title, s.polls.Len())
	return pollID, nil
}

// CreatePollByAdmin handles /create_poll. Commands from anyone but the
// administrator are dropped without an error.
func (s *attendanceService) CreatePollByAdmin(ctx context.Context, senderID int64, args string) error {
	if senderID != s.adminID {
		log.Printf("Received a /create_poll from unauthorized user %d: %q", senderID, args)
		return nil
	}
	log.Printf("Received a /create_poll: %q", args)

	cmd, err := command.ParseCreatePoll(args, s.loc)
	if err != nil {
		return err
	}

	tenant, err := s.tenants.FindByTitle(cmd.TenantTitle)
	if err != nil {
		return err
	}

	_, err = s.CreatePoll(ctx, tenant, cmd.Slot, cmd.Day)
	return err
}

// HandlePollAnswer writes the marker of the chosen option into the responder's
// cell. Answers to unknown polls and from people outside the roster are skipped.
func (s *attendanceService) HandlePollAnswer(ctx context.Context, answer entity.PollAnswer) error {
	log.Printf("Received a response from %s (%d) to poll %s: %v", answer.UserName, answer.UserID, answer.PollID, answer.OptionIDs)

	pc, ok := s.polls.Resolve(answer.PollID)
	if !ok {
		log.Printf("Skipping response to poll %s, because this poll is not registered", answer.PollID)
		return nil
	}

	studentName, ok := pc.Tenant.StudentName(answer.UserID)
	if !ok {
		log.Printf("Skipping response for lecture #%d on %s, because respondent %d is not a %s student",
			pc.Slot, pc.LectureDate.Format(domain.DateLayout), answer.UserID, pc.Tenant.Title)
		return nil
	}

	if len(answer.OptionIDs) == 0 {
		log.Printf("Skipping retracted vote of %s for lecture #%d on %s", studentName, pc.Slot, pc.LectureDate.Format(domain.DateLayout))
		return nil
	}

	optionIndex := answer.OptionIDs[0]
	if optionIndex < 0 || optionIndex >= len(s.options) {
		log.Printf("Skipping response of %s with unknown option %d", studentName, optionIndex)
		return nil
	}
	marker := s.options[optionIndex].Marker

	cell, err := s.locator.MarkStudent(ctx, pc.Tenant, pc.LectureDate, pc.Slot, studentName, marker)
	if err != nil {
		s.alerter.Alert(ctx, fmt.Sprintf("Could not mark %s (%s) for lecture #%d on %s",
			studentName, pc.Tenant.Title, pc.Slot, pc.LectureDate.Format(domain.DateLayout)), err)
		return fmt.Errorf("failed to mark student %s: %w", studentName, err)
	}

	title, _ := domain.MonthSheetTitle(pc.LectureDate)
	err = s.journalMark(ctx, &entity.MarkRecord{
		PollID:      pc.PollID,
		TenantTitle: pc.Tenant.Title,
		TelegramID:  answer.UserID,
		StudentName: studentName,
		LectureDate: pc.LectureDate,
		Slot:        pc.Slot,
		OptionIndex: optionIndex,
		Marker:      marker,
		SheetTitle:  title,
		Row:         cell.Row,
		Col:         cell.Col,
	})
	if err != nil {
		log.Printf("Failed to journal mark of %s for poll %s: %v", studentName, pc.PollID, err)
	}

	return nil
}

// journalPoll records a posted poll, noting when Telegram hands out an id the journal already has
func (s *attendanceService) journalPoll(ctx context.Context, record *entity.PollRecord) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		previous, err := tx.Poll().GetByPollID(record.PollID)
		if err != nil {
			return err
		}
		if previous != nil {
			log.Printf("Poll id %s was already journaled for %s, lecture #%d on %s, replacing it",
				record.PollID, previous.TenantTitle, previous.Slot, previous.LectureDate.Format(domain.DateLayout))
		}
		return tx.Poll().Create(record)
	})
}

// journalMark records a written mark and logs the marker it replaced in the sheet
func (s *attendanceService) journalMark(ctx context.Context, record *entity.MarkRecord) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		marks, err := tx.Mark().ListByPoll(record.PollID)
		if err != nil {
			return err
		}
		for i := len(marks) - 1; i >= 0; i-- {
			if marks[i].TelegramID == record.TelegramID {
				log.Printf("Replaced %s of %s with %s", marks[i].Marker, record.StudentName, record.Marker)
				break
			}
		}
		return tx.Mark().Create(record)
	})
}

func renderQuestion(tenant entity.Tenant, data questionData) (string, error) {
	text := tenant.QuestionTemplate
	if text == "" {
		text = domain.DefaultQuestionTemplate
	}

	tmpl, err := template.New(tenant.Title).Parse(text)
	if err != nil {
		return "", fmt.Errorf("invalid question template of %s: %w", tenant.Title, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render question for %s: %w", tenant.Title, err)
	}
	return sb.String(), nil
}

type nopAlerter struct{}

func (nopAlerter) Alert(context.Context, string, error) {}
