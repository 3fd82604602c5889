package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/astro-attendance/attendance-bot/internal/domain"
	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var (
	hhmmTag    = "hhmm"
	hhmmRegex  = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)
	weekdayTag = "weekday"
)

type Config struct {
	TelegramBotToken     string `validate:"required"`
	GSheetsCredsPath     string `validate:"required"`
	ConfigPath           string `validate:"required"`
	DatabasePath         string `validate:"required"`
	Timezone             string `validate:"required"`
	Port                 string `validate:"required,numeric"`
	SlackAlertWebhookURL string `validate:"omitempty,url"`
	RollbarToken         string
	Env                  string

	AdminID  int64
	Options  []entity.ResponseOption
	Tenants  []entity.Tenant
	Location *time.Location
}

// document is the shape of the YAML configuration file
type document struct {
	AdminID int64            `mapstructure:"admin_id" validate:"required"`
	Options []optionDocument `mapstructure:"options" validate:"required,min=1,dive"`
	Clients []clientDocument `mapstructure:"clients" validate:"required,min=1,unique=Title,dive"`
}

type optionDocument struct {
	Text  string `mapstructure:"text" validate:"required"`
	Emoji string `mapstructure:"emoji" validate:"required"`
}

type clientDocument struct {
	Title            string             `mapstructure:"title" validate:"required"`
	SpreadsheetTitle string             `mapstructure:"spreadsheet_title" validate:"required"`
	ChatID           int64              `mapstructure:"chat_id" validate:"required"`
	Students         []studentDocument  `mapstructure:"students" validate:"required,min=1,unique=TelegramID,dive"`
	Head             string             `mapstructure:"head"`
	GroupAddress     string             `mapstructure:"group_address" validate:"required"`
	QuestionTemplate string             `mapstructure:"question_template"`
	Schedule         []scheduleDocument `mapstructure:"schedule" validate:"dive"`
}

type studentDocument struct {
	TelegramID int64  `mapstructure:"tg_id" validate:"required"`
	Name       string `mapstructure:"name" validate:"required"`
}

type scheduleDocument struct {
	Weekday string `mapstructure:"weekday" validate:"required,weekday"`
	Time    string `mapstructure:"time" validate:"required,hhmm"`
	Lecture int    `mapstructure:"lecture" validate:"required,min=1"`
}

// Load reads the environment and the YAML file it points to.
// Any invalid value fails the whole load.
func Load() (*Config, error) {
	cfg := &Config{
		TelegramBotToken:     getEnv("TELEGRAM_BOT_TOKEN", ""),
		GSheetsCredsPath:     getEnv("GSHEETS_CREDS_PATH", ""),
		ConfigPath:           getEnv("CONFIG_PATH", "config.yaml"),
		DatabasePath:         getEnv("DATABASE_PATH", "./attendance.db"),
		Timezone:             getEnv("TIMEZONE", domain.DefaultTimezone),
		Port:                 getEnv("PORT", "3000"),
		SlackAlertWebhookURL: getEnv("SLACK_ALERT_WEBHOOK_URL", ""),
		RollbarToken:         getEnv("ROLLBAR_TOKEN", ""),
		Env:                  getEnv("ENV", "development"),
	}

	validate := newValidator()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	doc, err := readDocument(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfg.ConfigPath, err)
	}

	cfg.AdminID = doc.AdminID
	cfg.Options = doc.responseOptions()
	cfg.Tenants, err = doc.tenants()
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfg.ConfigPath, err)
	}

	return cfg, nil
}

func readDocument(path string) (*document, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	doc := &document{}
	if err := v.Unmarshal(doc); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return doc, nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(hhmmTag, func(fl validator.FieldLevel) bool {
		return hhmmRegex.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation(weekdayTag, func(fl validator.FieldLevel) bool {
		_, err := domain.ParseWeekday(fl.Field().String())
		return err == nil
	})
	return validate
}

func (d *document) responseOptions() []entity.ResponseOption {
	options := make([]entity.ResponseOption, 0, len(d.Options))
	for _, o := range d.Options {
		options = append(options, entity.ResponseOption{Text: o.Text, Marker: o.Emoji})
	}
	return options
}

func (d *document) tenants() ([]entity.Tenant, error) {
	tenants := make([]entity.Tenant, 0, len(d.Clients))
	for _, c := range d.Clients {
		tenant := entity.Tenant{
			Title:            c.Title,
			SpreadsheetTitle: c.SpreadsheetTitle,
			ChatID:           c.ChatID,
			Head:             c.Head,
			GroupAddress:     c.GroupAddress,
			QuestionTemplate: c.QuestionTemplate,
		}
		for _, s := range c.Students {
			tenant.Students = append(tenant.Students, entity.Student{TelegramID: s.TelegramID, Name: s.Name})
		}
		for _, s := range c.Schedule {
			trigger, err := s.trigger()
			if err != nil {
				return nil, fmt.Errorf("client %s: %w", c.Title, err)
			}
			tenant.Schedule = append(tenant.Schedule, trigger)
		}
		tenants = append(tenants, tenant)
	}
	return tenants, nil
}

func (s scheduleDocument) trigger() (entity.Trigger, error) {
	weekday, err := domain.ParseWeekday(s.Weekday)
	if err != nil {
		return entity.Trigger{}, err
	}

	hour, minute, found := strings.Cut(s.Time, ":")
	if !found {
		return entity.Trigger{}, errors.New("time must be HH:MM")
	}
	h, err := strconv.Atoi(hour)
	if err != nil {
		return entity.Trigger{}, fmt.Errorf("invalid hour in %q: %w", s.Time, err)
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		return entity.Trigger{}, fmt.Errorf("invalid minute in %q: %w", s.Time, err)
	}

	return entity.Trigger{Weekday: weekday, Hour: h, Minute: m, Slot: s.Lecture}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
