package registry

import (
	"sync"
	"sync/atomic"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

// Polls maps poll identifiers to the context needed to interpret answers.
// Entries are never evicted; a few polls a day per tenant keep it small.
type Polls struct {
	entries sync.Map
	size    atomic.Int64
}

func NewPolls() *Polls {
	return &Polls{}
}

// Register stores pc under pc.PollID, replacing any earlier registration of that id
func (r *Polls) Register(pc entity.PollContext) {
	if _, loaded := r.entries.Swap(pc.PollID, pc); !loaded {
		r.size.Add(1)
	}
}

// Resolve returns the context of a poll this process registered
func (r *Polls) Resolve(pollID string) (entity.PollContext, bool) {
	val, ok := r.entries.Load(pollID)
	if !ok {
		return entity.PollContext{}, false
	}
	pc, ok := val.(entity.PollContext)
	return pc, ok
}

func (r *Polls) Len() int {
	return int(r.size.Load())
}
