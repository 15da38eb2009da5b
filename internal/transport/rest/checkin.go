package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/internal/service/checkin"
)

type checkInService interface {
	Record(ctx context.Context, input checkin.RecordInput) (*domain.HistoryEntry, error)
	List(ctx context.Context, input checkin.ListInput) ([]*domain.HistoryEntry, error)
	Stats(ctx context.Context, input checkin.StatsInput) (*domain.CheckInStats, error)
}

// CheckInHandler serves the per-device history endpoints. Every route
// expects the device ID in the context (set by middleware.Auth).
type CheckInHandler struct {
	svc      checkInService
	log      *slog.Logger
	maxBytes int64
}

// NewCheckInHandler creates a CheckInHandler.
func NewCheckInHandler(svc checkInService, logger *slog.Logger, maxBytes int64) *CheckInHandler {
	return &CheckInHandler{svc: svc, log: logger.With("handler", "checkin"), maxBytes: maxBytes}
}

type historyEntryResponse struct {
	ID             string    `json:"id"`
	CheckInNumber  int       `json:"checkInNumber"`
	EmotionalState int       `json:"emotionalState"`
	CravingLevel   int       `json:"cravingLevel"`
	FeelingsText   *string   `json:"feelingsText,omitempty"`
	Reflection     string    `json:"reflection"`
	Title          string    `json:"title"`
	Source         string    `json:"source"`
	Origin         string    `json:"origin"`
	CreatedAt      time.Time `json:"createdAt"`
}

type historyPageResponse struct {
	Items  []historyEntryResponse `json:"items"`
	Limit  int                    `json:"limit"`
	Offset int                    `json:"offset"`
}

type statsResponse struct {
	TotalCheckIns int        `json:"totalCheckIns"`
	CurrentStreak int        `json:"currentStreak"`
	LastCheckInAt *time.Time `json:"lastCheckInAt"`
}

// Record handles POST /checkins. Any checkInCount in the body is ignored.
func (h *CheckInHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.svc.Record(r.Context(), checkin.RecordInput{
		Name:             req.Name,
		DaysSober:        req.DaysSober,
		Motivation:       req.Motivation,
		EmotionalState:   req.EmotionalState,
		CravingLevel:     req.CravingLevel,
		FeelingsText:     req.FeelingsText,
		RecoveryProgram:  domain.RecoveryProgram(req.RecoveryProgram),
		PrimaryChallenge: req.PrimaryChallenge,
		Timezone:         req.Timezone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toHistoryEntryResponse(entry))
}

// List handles GET /checkins?limit=&offset=.
func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var fields []domain.FieldError
	limit, ok := queryInt(q.Get("limit"))
	if !ok {
		fields = append(fields, domain.FieldError{Field: "limit", Message: "must be an integer"})
	}
	offset, ok := queryInt(q.Get("offset"))
	if !ok {
		fields = append(fields, domain.FieldError{Field: "offset", Message: "must be an integer"})
	}
	if len(fields) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(fields))
		return
	}
	if limit == 0 {
		limit = checkin.DefaultListLimit
	}

	entries, err := h.svc.List(r.Context(), checkin.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]historyEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = toHistoryEntryResponse(e)
	}
	writeJSON(w, http.StatusOK, historyPageResponse{Items: items, Limit: limit, Offset: offset})
}

// Stats handles GET /checkins/stats?tz=.
func (h *CheckInHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), checkin.StatsInput{Timezone: r.URL.Query().Get("tz")})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalCheckIns: stats.TotalCheckIns,
		CurrentStreak: stats.CurrentStreak,
		LastCheckInAt: stats.LastCheckInAt,
	})
}

// queryInt parses an optional integer query value; empty is zero.
func queryInt(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func toHistoryEntryResponse(e *domain.HistoryEntry) historyEntryResponse {
	return historyEntryResponse{
		ID:             e.ID.String(),
		CheckInNumber:  e.CheckInNumber,
		EmotionalState: e.EmotionalState,
		CravingLevel:   e.CravingLevel,
		FeelingsText:   e.FeelingsText,
		Reflection:     e.Reflection,
		Title:          e.Title,
		Source:         e.Source,
		Origin:         e.Origin.String(),
		CreatedAt:      e.CreatedAt,
	}
}
