package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/http/v1/handler"
	"team-calendar/internal/service"
)

type TimeOffRouter struct {
	handler *handler.TimeOffHandler
}

func NewTimeOffRouter(timeOffService *service.TimeOffService, log *slog.Logger) *TimeOffRouter {
	return &TimeOffRouter{
		handler: handler.NewTimeOffHandler(timeOffService, log),
	}
}

func (tr *TimeOffRouter) SetupRoutes(r chi.Router) {

	r.Route("/api/timeoff", func(r chi.Router) {
		r.Get("/", tr.handler.ListEntries)

		r.Post("/", tr.handler.CreateEntry)

		r.Delete("/{id}", tr.handler.DeleteEntry)
	})

}
