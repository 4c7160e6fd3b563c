// Package server provides the JSON HTTP handlers for the tutoring service.
package server

import (
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/y-okubo/dotcell/internal/braille"
	"github.com/y-okubo/dotcell/internal/history"
	"github.com/y-okubo/dotcell/internal/lesson"
	"github.com/y-okubo/dotcell/internal/tutor"
)

// Handler serves the tutoring API. history may be nil when persistence is
// not configured; lessons may be empty.
type Handler struct {
	composer *tutor.Composer
	lessons  []lesson.Lesson
	history  history.Repository
	logger   *slog.Logger
}

// NewHandler creates a new Handler.
func NewHandler(composer *tutor.Composer, lessons []lesson.Lesson, historyRepo history.Repository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		composer: composer,
		lessons:  lessons,
		history:  historyRepo,
		logger:   logger,
	}
}

// Register mounts all routes on the mux. frontend serves the companion
// web UI at the root.
func (h *Handler) Register(mux *http.ServeMux, frontend fs.FS) {
	mux.HandleFunc("POST /api/ask", h.Ask)
	mux.HandleFunc("GET /api/lessons", h.Lessons)
	mux.HandleFunc("GET /api/history", h.History)
	mux.HandleFunc("GET /healthz", h.Healthz)
	mux.Handle("/", http.FileServer(http.FS(frontend)))
}

type askRequest struct {
	Input        string `json:"input"`
	TargetLetter string `json:"targetLetter"`
}

// Ask answers one tutoring question. The response is always well-formed:
// composer failures surface only as the advisory error field.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		writeError(w, http.StatusBadRequest, "input is required")
		return
	}

	response := h.composer.Compose(r.Context(), tutor.Query{
		Input:        req.Input,
		TargetLetter: req.TargetLetter,
	})

	h.record(r, req, response)
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) record(r *http.Request, req askRequest, response tutor.Response) {
	if h.history == nil {
		return
	}
	exchange := &history.Exchange{
		Input:    req.Input,
		Target:   req.TargetLetter,
		Response: response.Response,
		Source:   string(response.Source),
		Error:    response.Error,
	}
	// Recording is best effort: a storage failure never affects the answer.
	if err := h.history.Record(r.Context(), exchange); err != nil {
		h.logger.Error("failed to record exchange",
			"target", req.TargetLetter,
			"error", err,
		)
	}
}

type lessonResponse struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Words       []lessonWord `json:"words"`
}

type lessonWord struct {
	Word  string         `json:"word"`
	Cells []braille.Cell `json:"cells"`
}

// Lessons lists the configured practice lessons with per-word dot cells.
func (h *Handler) Lessons(w http.ResponseWriter, r *http.Request) {
	lessons := make([]lessonResponse, 0, len(h.lessons))
	for _, l := range h.lessons {
		words := make([]lessonWord, 0, len(l.Words))
		for _, word := range l.Words {
			words = append(words, lessonWord{
				Word:  word,
				Cells: braille.Cells(word),
			})
		}
		lessons = append(lessons, lessonResponse{
			Name:        l.Name,
			Description: l.Description,
			Words:       words,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"lessons": lessons})
}

// History returns the most recent recorded exchanges.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusNotFound, "history is not configured")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	exchanges, err := h.history.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to load history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if exchanges == nil {
		exchanges = []history.Exchange{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"exchanges": exchanges})
}

// Healthz reports process liveness.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
