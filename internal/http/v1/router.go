package v1

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/http/v1/router"
	"team-calendar/internal/service"
)

type Router interface {
	SetupRoutes(r chi.Router)
}

type RouterDependencies struct {
	MemberService   *service.MemberService
	TimeOffService  *service.TimeOffService
	RotationService *service.RotationService
	HolidayService  *service.HolidayService
	StaticDir       string
}

func SetupRoutes(r chi.Router, deps *RouterDependencies, log *slog.Logger) {
	routers := []Router{
		router.NewMemberRouter(deps.MemberService, log),
		router.NewTimeOffRouter(deps.TimeOffService, log),
		router.NewOnCallRouter(deps.RotationService, log),
		router.NewHolidayRouter(deps.HolidayService, log),
		router.NewStaticRouter(deps.StaticDir),
	}

	for _, serviceRouter := range routers {
		serviceRouter.SetupRoutes(r)
	}
}
