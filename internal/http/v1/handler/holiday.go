package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"team-calendar/internal/lib/logger/sl"
	"team-calendar/internal/service"
)

type HolidayHandler struct {
	holidayService *service.HolidayService
	log            *slog.Logger
}

func NewHolidayHandler(holidayService *service.HolidayService, log *slog.Logger) *HolidayHandler {
	return &HolidayHandler{
		holidayService: holidayService,
		log:            log,
	}
}

// GetHolidays proxies the upstream holiday source for the year path
// parameter. The year is not validated; a failed upstream fetch for any
// country fails the whole request with a generic message.
func (h *HolidayHandler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	const op = "handler.holiday.GetHolidays"

	log := h.log.With(
		slog.String("op", op),
	)

	year := chi.URLParam(r, "year")

	holidays, err := h.holidayService.GetHolidays(r.Context(), year)
	if err != nil {
		log.Error("failed to get holidays", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to fetch holidays", nil)
		return
	}

	h.writeJSON(w, http.StatusOK, holidays)
	log.Info("holidays retrieved successfully",
		slog.String("year", year),
		slog.Int("count", len(holidays)))
}

func (h *HolidayHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", sl.Err(err))
	}
}

func (h *HolidayHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
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
