package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/internal/service/theme"
)

type todayProvider interface {
	Location() *time.Location
	Today(loc *time.Location) theme.Today
}

// ThemeHandler serves the read-only calendar endpoints.
type ThemeHandler struct {
	sched todayProvider
}

// NewThemeHandler creates a ThemeHandler.
func NewThemeHandler(sched todayProvider) *ThemeHandler {
	return &ThemeHandler{sched: sched}
}

// ThemeResponse describes the theme in effect for a local date.
type ThemeResponse struct {
	Date               string   `json:"date"`
	Step               int      `json:"step"`
	Name               string   `json:"name"`
	Text               string   `json:"text"`
	SpiritualPrinciple string   `json:"spiritualPrinciple"`
	Keywords           []string `json:"keywords"`
	Source             string   `json:"source"`
	Quote              string   `json:"quote"`
}

// WisdomResponse is today's daily wisdom.
type WisdomResponse struct {
	Date   string `json:"date"`
	Text   string `json:"text"`
	Source string `json:"source"`
}

// Theme handles GET /theme?tz=.
func (h *ThemeHandler) Theme(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.location(w, r)
	if !ok {
		return
	}
	today := h.sched.Today(loc)
	writeJSON(w, http.StatusOK, ThemeResponse{
		Date:               today.Date,
		Step:               today.Theme.Step,
		Name:               today.Theme.Name,
		Text:               today.Theme.Text,
		SpiritualPrinciple: today.Theme.SpiritualPrinciple,
		Keywords:           today.Theme.Keywords,
		Source:             today.Theme.SourceLabel(),
		Quote:              today.Quote,
	})
}

// Wisdom handles GET /wisdom?tz=.
func (h *ThemeHandler) Wisdom(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.location(w, r)
	if !ok {
		return
	}
	today := h.sched.Today(loc)
	writeJSON(w, http.StatusOK, WisdomResponse{
		Date:   today.Date,
		Text:   today.Wisdom.Text,
		Source: today.Wisdom.Source,
	})
}

func (h *ThemeHandler) location(w http.ResponseWriter, r *http.Request) (*time.Location, bool) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		return h.sched.Location(), true
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation error",
			Fields: []domain.FieldError{{Field: "tz", Message: "unknown time zone"}},
		})
		return nil, false
	}
	return loc, true
}
