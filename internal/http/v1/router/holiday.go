package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/http/v1/handler"
	"team-calendar/internal/service"
)

type HolidayRouter struct {
	handler *handler.HolidayHandler
}

func NewHolidayRouter(holidayService *service.HolidayService, log *slog.Logger) *HolidayRouter {
	return &HolidayRouter{
		handler: handler.NewHolidayHandler(holidayService, log),
	}
}

func (hr *HolidayRouter) SetupRoutes(r chi.Router) {

	r.Route("/api/holidays", func(r chi.Router) {
		r.Get("/{year}", hr.handler.GetHolidays)
	})

}
