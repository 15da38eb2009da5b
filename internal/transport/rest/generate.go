package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

// generateFailedMessage is the only error body /generate emits besides
// validation errors.
const generateFailedMessage = "Failed to generate reflection"

type reflectionService interface {
	Generate(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error)
}

// GenerateHandler serves POST /generate.
type GenerateHandler struct {
	svc      reflectionService
	log      *slog.Logger
	maxBytes int64
}

// NewGenerateHandler creates a GenerateHandler. maxBytes bounds the request
// body; zero means unbounded.
func NewGenerateHandler(svc reflectionService, logger *slog.Logger, maxBytes int64) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate"), maxBytes: maxBytes}
}

// CheckInRequest is the JSON body shared by /generate and /checkins.
type CheckInRequest struct {
	Name             string `json:"name"`
	DaysSober        int    `json:"daysSober"`
	Motivation       string `json:"motivation"`
	EmotionalState   int    `json:"emotionalState"`
	CravingLevel     int    `json:"cravingLevel"`
	FeelingsText     string `json:"feelingsText"`
	CheckInCount     *int   `json:"checkInCount,omitempty"`
	RecoveryProgram  string `json:"recoveryProgram"`
	PrimaryChallenge string `json:"primaryChallenge"`
	Timezone         string `json:"timezone,omitempty"`
}

// ToInput converts the request. A missing checkInCount means a first check-in.
func (req CheckInRequest) ToInput() domain.CheckInInput {
	count := 1
	if req.CheckInCount != nil {
		count = *req.CheckInCount
	}
	return domain.CheckInInput{
		Name:             req.Name,
		DaysSober:        req.DaysSober,
		Motivation:       req.Motivation,
		EmotionalState:   req.EmotionalState,
		CravingLevel:     req.CravingLevel,
		FeelingsText:     req.FeelingsText,
		CheckInCount:     count,
		RecoveryProgram:  domain.RecoveryProgram(req.RecoveryProgram),
		PrimaryChallenge: req.PrimaryChallenge,
		Timezone:         req.Timezone,
	}
}

// ReflectionResponse is the /generate success body.
type ReflectionResponse struct {
	Reflection string `json:"reflection"`
	Title      string `json:"title"`
	Source     string `json:"source"`
}

// Generate handles POST /generate.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req CheckInRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		h.log.WarnContext(r.Context(), "unparseable request body", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, generateFailedMessage)
		return
	}

	res, err := h.svc.Generate(r.Context(), req.ToInput())
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			handleError(h.log, w, r, err)
			return
		}
		h.log.ErrorContext(r.Context(), "generate reflection", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, generateFailedMessage)
		return
	}

	writeJSON(w, http.StatusOK, ReflectionResponse{
		Reflection: res.Reflection,
		Title:      res.Title,
		Source:     res.Source,
	})
}
