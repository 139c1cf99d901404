package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goodtune/cardiotrack/internal/cardio"
	"github.com/goodtune/cardiotrack/internal/metrics"
	"github.com/goodtune/cardiotrack/internal/storage"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// ListResponse is the payload returned by the session listing endpoint.
// Field names match the historical API contract.
type ListResponse struct {
	Sessions             []storage.Session `json:"sessions"`
	MinutesDoneThisWeek  int64             `json:"minutesDoneThisWeek"`
	MinutesDoneThisMonth int64             `json:"minutesDoneThisMonth"`
	TypesOfCardio        []string          `json:"typesOfCardio"`
}

// CardioHandler handles session API requests.
type CardioHandler struct {
	service *cardio.Service
	logger  zerolog.Logger
}

// NewCardioHandler creates a new session handler.
func NewCardioHandler(service *cardio.Service, logger zerolog.Logger) *CardioHandler {
	return &CardioHandler{
		service: service,
		logger:  logger.With().Str("handler", "cardio").Logger(),
	}
}

// List returns all sessions together with week/month aggregates.
func (h *CardioHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params := storage.SortParams{
		Field: storage.ParseSortField(r.URL.Query().Get("sortField")),
		Order: storage.ParseSortOrder(r.URL.Query().Get("sortOrder")),
	}

	report, err := h.service.List(ctx, params)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to list sessions")
		metrics.StoreErrors.WithLabelValues("list").Inc()
		writeError(w, http.StatusInternalServerError, "Failed to retrieve sessions")
		return
	}

	types := report.ExerciseTypes
	if types == nil {
		types = []string{}
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Sessions:             report.Sessions,
		MinutesDoneThisWeek:  report.MinutesThisWeek,
		MinutesDoneThisMonth: report.MinutesThisMonth,
		TypesOfCardio:        types,
	})
}

// Create stores a new session.
func (h *CardioHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var session storage.Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(ctx, session)
	if err != nil {
		if errors.Is(err, cardio.ErrInvalidSession) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error().Err(err).Msg("Failed to create session")
		metrics.StoreErrors.WithLabelValues("create").Inc()
		writeError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	metrics.SessionsCreated.Inc()
	writeJSON(w, http.StatusCreated, created)
}

// ToggleFavorite flips the favorite flag on a session.
func (h *CardioHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	id := vars["id"]

	session, err := h.service.ToggleFavorite(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Session not found")
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg("Failed to toggle favorite")
		metrics.StoreErrors.WithLabelValues("toggle_favorite").Inc()
		writeError(w, http.StatusInternalServerError, "Failed to toggle favorite")
		return
	}

	metrics.FavoriteToggles.Inc()
	writeJSON(w, http.StatusOK, session)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		http.Error(w, `{"error":"Internal Server Error","message":"Failed to encode response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}
