package contract

import "context"

// Alerter reports failures that need an operator (missing sheet rows, unknown dates)
type Alerter interface {
	Alert(ctx context.Context, summary string, err error)
}
