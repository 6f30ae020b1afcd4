package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/callbridge/callbridge/internal/handler"
)

func setupRouter(h *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Post("/call", h.IngestCallEvent)
			r.Post("/message", h.IngestMessageEvent)
		})

		r.Route("/conversations/{conversationID}", func(r chi.Router) {
			r.Get("/", h.GetConversation)
			r.Get("/messages", h.GetTranscript)
			r.Post("/takeover", h.Takeover)
			r.Post("/close", h.CloseConversation)
		})

		r.Route("/leads/{leadID}", func(r chi.Router) {
			r.Get("/", h.GetLead)
			r.Patch("/", h.UpdateLead)
		})

		r.Route("/sweeper", func(r chi.Router) {
			r.Post("/start", h.StartSweeper)
			r.Post("/stop", h.StopSweeper)
		})
	})

	return r
}
