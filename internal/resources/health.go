package resources

import (
	"fmt"
	"slices"
	"time"
)

// Link health states.
const (
	HealthUnknown   = "unknown"
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
)

// LinkHealth is the outcome of checking a resource's URL.
type LinkHealth struct {
	Status    string    `json:"status"`
	CheckedAt time.Time `json:"checked_at"`
	Error     string    `json:"error,omitempty"`
}

// Linked returns the resources that have a URL to check.
func (c *Catalog) Linked() []Resource {
	var out []Resource
	for _, r := range c.items {
		if r.URL != "" {
			out = append(out, c.withHealth(r))
		}
	}
	return out
}

// SetHealth records a link check result for the resource with id.
func (c *Catalog) SetHealth(id string, h LinkHealth) error {
	if !c.has(id) {
		return fmt.Errorf("resource %q: not found", id)
	}

	c.mu.Lock()
	c.health[id] = h
	c.mu.Unlock()
	return nil
}

func (c *Catalog) withHealth(r Resource) Resource {
	c.mu.RLock()
	h, ok := c.health[r.ID]
	c.mu.RUnlock()

	if ok {
		r.Health = &h
	}
	return r
}

func (c *Catalog) has(id string) bool {
	return slices.ContainsFunc(c.items, func(r Resource) bool { return r.ID == id })
}
