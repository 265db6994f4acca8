package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/apperrors"
	"team-calendar/internal/lib/logger/sl"
	"team-calendar/internal/service"
)

type (
	CreateMemberRequest struct {
		Name string `json:"name"`
	}

	AckResponse struct {
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Error   string `json:"error"`
		Details string `json:"details,omitempty"`
	}
)

type MemberHandler struct {
	memberService *service.MemberService
	log           *slog.Logger
}

func NewMemberHandler(memberService *service.MemberService, log *slog.Logger) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		log:           log,
	}
}

func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	const op = "handler.member.ListMembers"

	log := h.log.With(
		slog.String("op", op),
	)

	members, err := h.memberService.ListMembers(r.Context())
	if err != nil {
		log.Error("failed to list members", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list members", err)
		return
	}

	h.writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	const op = "handler.member.CreateMember"

	log := h.log.With(
		slog.String("op", op),
	)

	var req CreateMemberRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	member, err := h.memberService.CreateMember(r.Context(), req.Name)
	if err != nil {
		log.Error("failed to create member", sl.Err(err))

		if errors.Is(err, apperrors.ErrNameRequired) {
			h.writeError(w, http.StatusBadRequest, "name is required", nil)
		} else {
			h.writeError(w, http.StatusInternalServerError, "failed to create member", err)
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, member)
	log.Info("member created successfully", slog.Int("id", member.ID))
}

func (h *MemberHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	const op = "handler.member.DeleteMember"

	log := h.log.With(
		slog.String("op", op),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid member id", slog.String("id", chi.URLParam(r, "id")))
		h.writeError(w, http.StatusBadRequest, "id must be numeric", apperrors.ErrInvalidID)
		return
	}

	if err := h.memberService.DeleteMember(r.Context(), id); err != nil {
		log.Error("failed to delete member", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to delete member", err)
		return
	}

	h.writeJSON(w, http.StatusOK, AckResponse{
		Message: fmt.Sprintf("member %d and related time-off entries deleted", id),
	})
	log.Info("member deleted successfully", slog.Int("id", id))
}

func (h *MemberHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", sl.Err(err))
	}
}

func (h *MemberHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := ErrorResponse{
		Error: message,
	}
	if err != nil {
		errorResp.Details = err.Error()
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.log.Error("failed to encode error response", sl.Err(err))
	}
}
