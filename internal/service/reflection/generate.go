package reflection

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
	"github.com/heartmarshall/recoverylock-backend/internal/service/theme"
)

// Generate validates in and returns a reflection for the current month's
// step. Only validation failures are returned as errors. Every remote
// failure, including a missing generator and a cancelled ctx, is answered
// from the fallback bank.
func (s *Service) Generate(ctx context.Context, in domain.CheckInInput) (*domain.ReflectionResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now().In(in.Location(s.loc))
	th := theme.CurrentTheme(now)

	if s.gen == nil {
		return s.fallback(in, th, reasonNoCredential, nil), nil
	}

	prompt := BuildPrompt(NewPromptContext(in, th, now.Month()))

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.gen.Complete(callCtx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		reason := reasonRemoteError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			reason = reasonTimeout
		}
		s.metrics.ObserveRemoteCall(reason, elapsed)
		return s.fallback(in, th, reason, err), nil
	}

	text := ParseReflection(raw)
	if text == "" {
		s.metrics.ObserveRemoteCall(reasonEmpty, elapsed)
		return s.fallback(in, th, reasonEmpty, nil), nil
	}
	s.metrics.ObserveRemoteCall("ok", elapsed)
	s.metrics.RecordReflection(domain.OriginRemote, reasonNone)

	s.log.DebugContext(ctx, "reflection generated",
		slog.Int("step", th.Step),
		slog.Duration("latency", elapsed),
	)

	return &domain.ReflectionResult{
		Reflection: text,
		Title:      th.SpiritualPrinciple,
		Source:     th.SourceLabel(),
		Origin:     domain.OriginRemote,
	}, nil
}

// Preview returns the prompt that Generate would send for in, without
// calling the generator.
func (s *Service) Preview(in domain.CheckInInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	now := s.now().In(in.Location(s.loc))
	return BuildPrompt(NewPromptContext(in, theme.CurrentTheme(now), now.Month())), nil
}

func (s *Service) fallback(in domain.CheckInInput, th domain.ThematicEntry, reason string, cause error) *domain.ReflectionResult {
	attrs := []any{slog.String("reason", reason), slog.Int("step", th.Step)}
	if cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	if reason == reasonNoCredential {
		s.log.Debug("using fallback reflection", attrs...)
	} else {
		s.log.Warn("using fallback reflection", attrs...)
	}
	s.metrics.RecordReflection(domain.OriginFallback, reason)

	return &domain.ReflectionResult{
		Reflection: Fallback(s.rnd, in, th),
		Title:      th.SpiritualPrinciple,
		Source:     th.SourceLabel(),
		Origin:     domain.OriginFallback,
	}
}
