// Package resources serves the wellness resource library.
package resources

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"neurosync/internal/validation"
)

// Resource types.
const (
	TypeVideo     = "video"
	TypeAudio     = "audio"
	TypeGuide     = "guide"
	TypeWorksheet = "worksheet"
)

// Filter sentinels meaning "any".
const (
	AllCategories = "All"
	AllLanguages  = "All Languages"
	AllTypes      = "all"
)

// Resource is one item in the library.
type Resource struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Type        string   `json:"type" yaml:"type"`
	Category    string   `json:"category" yaml:"category"`
	Duration    string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Languages   []string `json:"languages" yaml:"languages"`
	Rating      float64  `json:"rating" yaml:"rating"`
	Downloads   int      `json:"downloads" yaml:"downloads"`
	Tags        []string `json:"tags" yaml:"tags"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`

	// Health is the last link check result, nil until checked.
	Health *LinkHealth `json:"health,omitempty" yaml:"-"`
}

// Validate checks a resource loaded from configuration.
func (r Resource) Validate() error {
	if r.ID == "" || strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("resource %q: id and title are required", r.ID)
	}
	switch r.Type {
	case TypeVideo, TypeAudio, TypeGuide, TypeWorksheet:
	default:
		return fmt.Errorf("resource %q: unknown type %q", r.ID, r.Type)
	}
	if r.URL != "" {
		if ok, msg := validation.ValidateURL(r.URL); !ok {
			return fmt.Errorf("resource %q: %s", r.ID, msg)
		}
	}
	return nil
}

// Filter narrows a search. Zero values and the All* sentinels match everything.
type Filter struct {
	Search   string
	Category string
	Language string
	Type     string
}

// Catalog is a resource library. Items are fixed at construction; only link
// health changes afterwards.
type Catalog struct {
	items []Resource

	mu     sync.RWMutex
	health map[string]LinkHealth
}

// NewCatalog validates items and builds a catalog. Nil items use the
// built-in library.
func NewCatalog(items []Resource) (*Catalog, error) {
	if items == nil {
		items = DefaultResources()
	}
	seen := make(map[string]bool, len(items))
	for _, r := range items {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("resource %q: duplicate id", r.ID)
		}
		seen[r.ID] = true
	}
	return &Catalog{
		items:  slices.Clone(items),
		health: make(map[string]LinkHealth),
	}, nil
}

// Search returns resources matching f in catalog order.
func (c *Catalog) Search(f Filter) []Resource {
	search := validation.NormalizeQuery(f.Search)

	out := make([]Resource, 0, len(c.items))
	for _, r := range c.items {
		if !isAny(f.Category, AllCategories) && !strings.EqualFold(r.Category, f.Category) {
			continue
		}
		if !isAny(f.Type, AllTypes) && !strings.EqualFold(r.Type, f.Type) {
			continue
		}
		if !isAny(f.Language, AllLanguages) && !containsFold(r.Languages, f.Language) {
			continue
		}
		if search != "" && !r.matches(search) {
			continue
		}
		out = append(out, c.withHealth(r))
	}
	return out
}

// Get returns the resource with id.
func (c *Catalog) Get(id string) (Resource, bool) {
	for _, r := range c.items {
		if r.ID == id {
			return c.withHealth(r), true
		}
	}
	return Resource{}, false
}

// Categories returns "All" followed by each category in catalog order.
func (c *Catalog) Categories() []string {
	out := []string{AllCategories}
	for _, r := range c.items {
		if !slices.Contains(out, r.Category) {
			out = append(out, r.Category)
		}
	}
	return out
}

// Languages returns "All Languages" followed by each language in catalog order.
func (c *Catalog) Languages() []string {
	out := []string{AllLanguages}
	for _, r := range c.items {
		for _, l := range r.Languages {
			if !slices.Contains(out, l) {
				out = append(out, l)
			}
		}
	}
	return out
}

func (r Resource) matches(search string) bool {
	if strings.Contains(strings.ToLower(r.Title), search) ||
		strings.Contains(strings.ToLower(r.Description), search) {
		return true
	}
	return slices.ContainsFunc(r.Tags, func(t string) bool {
		return strings.Contains(strings.ToLower(t), search)
	})
}

func isAny(value, sentinel string) bool {
	return value == "" || strings.EqualFold(value, sentinel)
}

func containsFold(list []string, v string) bool {
	return slices.ContainsFunc(list, func(s string) bool {
		return strings.EqualFold(s, v)
	})
}
