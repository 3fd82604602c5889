package registry

import (
	"errors"
	"fmt"

	"github.com/astro-attendance/attendance-bot/internal/domain/entity"
)

// ErrTenantNotFound is returned when no configured tenant has the requested title
var ErrTenantNotFound = errors.New("tenant not found")

// Tenants holds the configured tenants. It is read-only after construction.
type Tenants struct {
	ordered []entity.Tenant
	byTitle map[string]int
}

func NewTenants(tenants []entity.Tenant) (*Tenants, error) {
	r := &Tenants{
		ordered: make([]entity.Tenant, 0, len(tenants)),
		byTitle: make(map[string]int, len(tenants)),
	}

	for _, t := range tenants {
		if t.Title == "" {
			return nil, fmt.Errorf("tenant without title")
		}
		if _, exists := r.byTitle[t.Title]; exists {
			return nil, fmt.Errorf("duplicate tenant title %q", t.Title)
		}
		r.byTitle[t.Title] = len(r.ordered)
		r.ordered = append(r.ordered, t)
	}

	return r, nil
}

func (r *Tenants) FindByTitle(title string) (entity.Tenant, error) {
	i, ok := r.byTitle[title]
	if !ok {
		return entity.Tenant{}, fmt.Errorf("%w: %q", ErrTenantNotFound, title)
	}
	return r.ordered[i], nil
}

// All returns the tenants in configuration order
func (r *Tenants) All() []entity.Tenant {
	out := make([]entity.Tenant, len(r.ordered))
	copy(out, r.ordered)
	return out
}
