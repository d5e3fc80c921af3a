package server

import (
	"time"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"neurosync/internal/analytics"
	"neurosync/internal/booking"
	"neurosync/internal/chat"
	"neurosync/internal/community"
	"neurosync/internal/email"
	"neurosync/internal/handlers"
	"neurosync/internal/handlers/api"
	"neurosync/internal/resources"
	"neurosync/internal/triage"
)

// Services are the domain components the routes are served from.
type Services struct {
	Classifier *triage.Classifier
	Assistant  *chat.Assistant
	Directory  *booking.Directory
	Board      *community.Board
	Catalog    *resources.Catalog
	Tally      *analytics.Tally
	Notifier   *email.Notifier
	StartedAt  time.Time

	// Observe is told the tier of every message classified through the API.
	Observe func(triage.Tier)
}

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(svc Services) {
	// Page handlers
	homeHandler := handlers.NewHomeHandler(s.Cfg, svc.Catalog, svc.Board)
	chatPageHandler := handlers.NewChatHandler(svc.Assistant, s.Cfg)

	// API handlers
	triageHandler := api.NewTriageHandler(svc.Classifier, svc.Observe)
	chatHandler := api.NewChatHandler(svc.Assistant, s.Cfg)
	bookingHandler := api.NewBookingHandler(svc.Directory, svc.Notifier)
	communityHandler := api.NewCommunityHandler(svc.Board, svc.Notifier)
	resourceHandler := api.NewResourceHandler(svc.Catalog)
	adminHandler := api.NewAdminHandler(svc.Tally)
	moderationHandler := api.NewModerationHandler(svc.Board)
	healthHandler := api.NewHealthHandler(svc.StartedAt)

	// Frontend routes
	s.App.Get("/", homeHandler.Index)
	s.App.Get("/chat", chatPageHandler.Show)
	s.App.Post("/chat", chatPageHandler.Send)
	s.App.Post("/chat/reset", chatPageHandler.Reset)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Post("/classify", triageHandler.Classify)
	v1.Post("/chat", chatHandler.Send)

	v1.Get("/counselors", bookingHandler.Counselors)
	v1.Get("/slots", bookingHandler.Slots)
	v1.Post("/bookings", bookingHandler.Create)

	v1.Get("/community/posts", communityHandler.Posts)
	v1.Post("/community/posts", communityHandler.Create)
	v1.Post("/community/posts/:id/like", communityHandler.Like)
	v1.Get("/community/groups", communityHandler.Groups)

	v1.Get("/resources", resourceHandler.List)
	v1.Get("/resources/:id", resourceHandler.Get)

	v1.Get("/admin/analytics", adminHandler.Analytics)
	v1.Get("/admin/moderation", moderationHandler.ListHeld)
	v1.Post("/admin/moderation/:id/approve", moderationHandler.Approve)
	v1.Post("/admin/moderation/:id/reject", moderationHandler.Reject)

	// Ops
	s.App.Get("/healthz", healthHandler.Check)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
