package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/http/v1/handler"
	"team-calendar/internal/service"
)

type OnCallRouter struct {
	handler *handler.OnCallHandler
}

func NewOnCallRouter(rotationService *service.RotationService, log *slog.Logger) *OnCallRouter {
	return &OnCallRouter{
		handler: handler.NewOnCallHandler(rotationService, log),
	}
}

func (or *OnCallRouter) SetupRoutes(r chi.Router) {

	r.Route("/api/oncall", func(r chi.Router) {
		r.Get("/", or.handler.GetRotation)

		r.Post("/", or.handler.SaveRotation)
	})

}
