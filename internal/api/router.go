package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/healthbuddy/health-tracker-core/internal/tracker"
)

type RouterConfig struct {
	Service *tracker.Service
	Clock   *Clock
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)

	// Health endpoints
	health := NewHealthHandler(cfg.Service, cfg.Clock, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Record store operations
	r.Post("/medications", createMedicationHandler(cfg.Service))
	r.Get("/medications", listMedicationsHandler(cfg.Service))
	r.Get("/appointments", listAppointmentsHandler(cfg.Service))
	r.Put("/events/{id}", saveEventHandler(cfg.Service))
	r.Delete("/events/{id}", deleteEventHandler(cfg.Service))
	r.Post("/records/{id}/complete", completeRecordHandler(cfg.Service))
	r.Get("/records/{id}/detail", recordDetailHandler(cfg.Service))
	r.Post("/selection/edit", openEditHandler(cfg.Service))

	// Pure read queries
	r.Get("/calendar/{year}/{month}", monthAgendaHandler(cfg.Service))
	r.Get("/calendar/day/{date}", dayAgendaHandler(cfg.Service))
	r.Get("/reminders", remindersHandler(cfg.Service))
	r.Get("/events/log", eventLogHandler(cfg.Service))

	// Conversations (fixed lookup)
	r.Get("/conversations", conversationsHandler())
	r.Get("/conversations/{id}/messages", conversationMessagesHandler())

	// Navigation
	r.Get("/navigation", navigationHandler(cfg.Service))
	r.Post("/navigation/goto", goToHandler(cfg.Service))
	r.Post("/navigation/back", goBackHandler(cfg.Service))

	return r
}
