package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/apperrors"
	"team-calendar/internal/domain/models"
	"team-calendar/internal/lib/logger/sl"
	"team-calendar/internal/service"
)

type CreateTimeOffRequest struct {
	MemberID  *int    `json:"memberId"`
	Type      *string `json:"type"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Notes     *string `json:"notes"`
}

type TimeOffHandler struct {
	timeOffService *service.TimeOffService
	log            *slog.Logger
}

func NewTimeOffHandler(timeOffService *service.TimeOffService, log *slog.Logger) *TimeOffHandler {
	return &TimeOffHandler{
		timeOffService: timeOffService,
		log:            log,
	}
}

func (h *TimeOffHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	const op = "handler.timeoff.ListEntries"

	log := h.log.With(
		slog.String("op", op),
	)

	entries, err := h.timeOffService.ListEntries(r.Context())
	if err != nil {
		log.Error("failed to list time-off entries", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to list time-off entries", err)
		return
	}

	h.writeJSON(w, http.StatusOK, entries)
}

// CreateEntry has no presence validation: any subset of the fields is
// accepted and stored as provided.
func (h *TimeOffHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	const op = "handler.timeoff.CreateEntry"

	log := h.log.With(
		slog.String("op", op),
	)

	var req CreateTimeOffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("invalid request body", sl.Err(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	entry := models.TimeOffEntry{
		MemberID:  req.MemberID,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Notes:     req.Notes,
	}

	created, err := h.timeOffService.CreateEntry(r.Context(), entry)
	if err != nil {
		log.Error("failed to create time-off entry", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to create time-off entry", err)
		return
	}

	h.writeJSON(w, http.StatusCreated, created)
	log.Info("time-off entry created successfully", slog.Int("id", created.ID))
}

func (h *TimeOffHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	const op = "handler.timeoff.DeleteEntry"

	log := h.log.With(
		slog.String("op", op),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("invalid time-off id", slog.String("id", chi.URLParam(r, "id")))
		h.writeError(w, http.StatusBadRequest, "id must be numeric", apperrors.ErrInvalidID)
		return
	}

	if err := h.timeOffService.DeleteEntry(r.Context(), id); err != nil {
		log.Error("failed to delete time-off entry", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to delete time-off entry", err)
		return
	}

	h.writeJSON(w, http.StatusOK, AckResponse{
		Message: fmt.Sprintf("time-off entry %d deleted", id),
	})
	log.Info("time-off entry deleted successfully", slog.Int("id", id))
}

func (h *TimeOffHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", sl.Err(err))
	}
}

func (h *TimeOffHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
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
