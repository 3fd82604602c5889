package alert

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/slack-go/slack"
)

const (
	slackAlertColor = "danger"
	slackTimeout    = 10 * time.Second
)

// Slack posts alerts to a Slack incoming webhook
type Slack struct {
	webhookURL string
	source     string
}

// NewSlack returns an alerter posting to webhookURL; source names the sender in the message
func NewSlack(webhookURL, source string) *Slack {
	return &Slack{webhookURL: webhookURL, source: source}
}

func (s *Slack) Alert(ctx context.Context, summary string, err error) {
	ctx, cancel := context.WithTimeout(ctx, slackTimeout)
	defer cancel()

	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf(":warning: %s", summary),
		Attachments: []slack.Attachment{
			{
				Color:    slackAlertColor,
				Fallback: summary,
				Text:     errorText(err),
				Footer:   s.source,
			},
		},
	}

	if postErr := slack.PostWebhookContext(ctx, s.webhookURL, msg); postErr != nil {
		log.Printf("Failed to post alert to Slack: %v", postErr)
	}
}

func errorText(err error) string {
	if err == nil {
		return "no error details"
	}
	return err.Error()
}
