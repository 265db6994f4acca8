package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/http/v1/handler"
	"team-calendar/internal/service"
)

type MemberRouter struct {
	handler *handler.MemberHandler
}

func NewMemberRouter(memberService *service.MemberService, log *slog.Logger) *MemberRouter {
	return &MemberRouter{
		handler: handler.NewMemberHandler(memberService, log),
	}
}

func (mr *MemberRouter) SetupRoutes(r chi.Router) {

	r.Route("/api/members", func(r chi.Router) {
		r.Get("/", mr.handler.ListMembers)

		r.Post("/", mr.handler.CreateMember)

		r.Delete("/{id}", mr.handler.DeleteMember)
	})

}
