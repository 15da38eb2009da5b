// Package lambda adapts the reflection generator to API Gateway proxy events.
package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/internal/transport/rest"
)

const generateFailedMessage = "Failed to generate reflection"

type reflectionService interface {
	Generate(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error)
}

// Handler serves POST /generate behind API Gateway with the same contract
// as the HTTP server.
type Handler struct {
	svc         reflectionService
	log         *slog.Logger
	allowOrigin string
}

// NewHandler creates a Handler. allowOrigin, when set, is echoed as
// Access-Control-Allow-Origin.
func NewHandler(svc reflectionService, logger *slog.Logger, allowOrigin string) *Handler {
	return &Handler{svc: svc, log: logger.With("handler", "lambda-generate"), allowOrigin: allowOrigin}
}

type errorBody struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// Handle processes one proxy request. Failures are reported through the
// response status; the returned error is always nil so API Gateway never
// sees a 502.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if req.HTTPMethod == http.MethodOptions {
		return h.respond(http.StatusNoContent, nil), nil
	}
	if req.HTTPMethod != "" && req.HTTPMethod != http.MethodPost {
		return h.respond(http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"}), nil
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.log.WarnContext(ctx, "undecodable request body", slog.String("error", err.Error()))
			return h.respond(http.StatusInternalServerError, errorBody{Error: generateFailedMessage}), nil
		}
		body = decoded
	}

	var in rest.CheckInRequest
	if err := json.Unmarshal(body, &in); err != nil {
		h.log.WarnContext(ctx, "unparseable request body", slog.String("error", err.Error()))
		return h.respond(http.StatusInternalServerError, errorBody{Error: generateFailedMessage}), nil
	}

	res, err := h.svc.Generate(ctx, in.ToInput())
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return h.respond(http.StatusBadRequest, errorBody{Error: "validation error", Fields: ve.Errors}), nil
		}
		h.log.ErrorContext(ctx, "generate reflection", slog.String("error", err.Error()))
		return h.respond(http.StatusInternalServerError, errorBody{Error: generateFailedMessage}), nil
	}

	return h.respond(http.StatusOK, rest.ReflectionResponse{
		Reflection: res.Reflection,
		Title:      res.Title,
		Source:     res.Source,
	}), nil
}

func (h *Handler) respond(status int, v any) events.APIGatewayProxyResponse {
	resp := events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
	if h.allowOrigin != "" {
		resp.Headers["Access-Control-Allow-Origin"] = h.allowOrigin
		resp.Headers["Access-Control-Allow-Methods"] = "POST,OPTIONS"
		resp.Headers["Access-Control-Allow-Headers"] = "Content-Type"
	}
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			resp.StatusCode = http.StatusInternalServerError
			b = []byte(`{"error":"` + generateFailedMessage + `"}`)
		}
		resp.Body = string(b)
	}
	return resp
}
