package api

import (
	"github.com/gofiber/fiber/v3"

	"neurosync/internal/resources"
)

// ResourceHandler serves the resource library via JSON API.
type ResourceHandler struct {
	catalog *resources.Catalog
}

// NewResourceHandler creates a new API resource handler.
func NewResourceHandler(catalog *resources.Catalog) *ResourceHandler {
	return &ResourceHandler{catalog: catalog}
}

// List returns resources matching the q, category, language and type filters,
// along with the available filter values.
func (h *ResourceHandler) List(c fiber.Ctx) error {
	items := h.catalog.Search(resources.Filter{
		Search:   c.Query("q", ""),
		Category: c.Query("category", ""),
		Language: c.Query("language", ""),
		Type:     c.Query("type", ""),
	})

	return jsonSuccess(c, fiber.Map{
		"resources":  items,
		"categories": h.catalog.Categories(),
		"languages":  h.catalog.Languages(),
	})
}

// Get returns a single resource by id.
func (h *ResourceHandler) Get(c fiber.Ctx) error {
	r, ok := h.catalog.Get(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "resource not found")
	}
	return jsonSuccess(c, r)
}
