package handlers

import (
	"github.com/gofiber/fiber/v3"

	"neurosync/internal/community"
	"neurosync/internal/config"
	"neurosync/internal/resources"
)

// featuredResources is how many library items the home page shows.
const featuredResources = 3

// HomeHandler renders the landing page.
type HomeHandler struct {
	cfg     *config.Config
	catalog *resources.Catalog
	board   *community.Board
}

// NewHomeHandler creates a new home page handler.
func NewHomeHandler(cfg *config.Config, catalog *resources.Catalog, board *community.Board) *HomeHandler {
	return &HomeHandler{cfg: cfg, catalog: catalog, board: board}
}

// Index renders the home page with featured resources and support groups.
func (h *HomeHandler) Index(c fiber.Ctx) error {
	featured := h.catalog.Search(resources.Filter{})
	if len(featured) > featuredResources {
		featured = featured[:featuredResources]
	}

	return c.Render("index", MergeBranding(fiber.Map{
		"Title":     "Home",
		"Resources": featured,
		"Groups":    h.board.Groups(),
	}, h.cfg))
}
