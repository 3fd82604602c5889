// Package alert reports failures an operator has to act on, such as a
// lecture date missing from a sheet, outside of the process log.
package alert

import (
	"context"
	"log"

	"github.com/astro-attendance/attendance-bot/internal/domain/contract"
)

// Multi sends every alert to all of its alerters
type Multi []contract.Alerter

func (m Multi) Alert(ctx context.Context, summary string, err error) {
	for _, a := range m {
		a.Alert(ctx, summary, err)
	}
}

// Log only writes the alert to the process log
type Log struct{}

func (Log) Alert(_ context.Context, summary string, err error) {
	log.Printf("ALERT: %s: %v", summary, err)
}
