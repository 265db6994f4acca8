package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"team-calendar/internal/apperrors"
	"team-calendar/internal/lib/logger/sl"
	"team-calendar/internal/service"
)

type OnCallHandler struct {
	rotationService *service.RotationService
	log             *slog.Logger
}

func NewOnCallHandler(rotationService *service.RotationService, log *slog.Logger) *OnCallHandler {
	return &OnCallHandler{
		rotationService: rotationService,
		log:             log,
	}
}

func (h *OnCallHandler) GetRotation(w http.ResponseWriter, r *http.Request) {
	const op = "handler.oncall.GetRotation"

	log := h.log.With(
		slog.String("op", op),
	)

	data, err := h.rotationService.GetRotation(r.Context())
	if err != nil {
		log.Error("failed to get rotation", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to get rotation", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Error("failed to write response", sl.Err(err))
	}
}

// SaveRotation accepts the whole request body as the new rotation payload
// and replaces the stored one unconditionally.
func (h *OnCallHandler) SaveRotation(w http.ResponseWriter, r *http.Request) {
	const op = "handler.oncall.SaveRotation"

	log := h.log.With(
		slog.String("op", op),
	)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Error("failed to read request body", sl.Err(err))
		h.writeError(w, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Error("invalid rotation payload", sl.Err(err))
		h.writeError(w, http.StatusBadRequest, "rotation payload must be a JSON object", apperrors.ErrInvalidRotation)
		return
	}

	if err := h.rotationService.SaveRotation(r.Context(), json.RawMessage(body)); err != nil {
		log.Error("failed to save rotation", sl.Err(err))
		h.writeError(w, http.StatusInternalServerError, "failed to save rotation", err)
		return
	}

	h.writeJSON(w, http.StatusOK, AckResponse{
		Message: "rotation saved",
	})
	log.Info("rotation saved successfully")
}

func (h *OnCallHandler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode response", sl.Err(err))
	}
}

func (h *OnCallHandler) writeError(w http.ResponseWriter, status int, message string, err error) {
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
