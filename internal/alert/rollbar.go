package alert

import (
	"context"
	"errors"

	"github.com/rollbar/rollbar-go"
)

// reporter is the part of *rollbar.Client the alerter needs
type reporter interface {
	ErrorWithExtrasAndContext(ctx context.Context, level string, err error, extras map[string]interface{})
}

// Rollbar reports alerts as Rollbar error items
type Rollbar struct {
	client reporter
}

// NewRollbar creates a Rollbar client for token. The caller closes it on shutdown.
func NewRollbar(token, env, codeVersion string) (*Rollbar, *rollbar.Client) {
	client := rollbar.New(token, env, codeVersion, "", "")
	return newRollbar(client), client
}

func newRollbar(client reporter) *Rollbar {
	return &Rollbar{client: client}
}

func (r *Rollbar) Alert(ctx context.Context, summary string, err error) {
	if err == nil {
		err = errors.New(summary)
	}
	r.client.ErrorWithExtrasAndContext(ctx, rollbar.ERR, err, map[string]interface{}{
		"summary": summary,
	})
}
