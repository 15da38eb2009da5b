package reflection

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/heartmarshall/recoverylock-backend/internal/domain"
)

// generator sends one prompt to a hosted text-generation model and returns
// the raw text of the first content block.
type generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type recorder interface {
	RecordReflection(origin domain.ReflectionOrigin, reason string)
	ObserveRemoteCall(outcome string, d time.Duration)
}

// Random is the source of template choices. *rand.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

// DefaultTimeout bounds a single remote call when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// Fallback reasons reported to logs and metrics.
const (
	reasonNone         = ""
	reasonNoCredential = "no_credential"
	reasonRemoteError  = "remote_error"
	reasonTimeout      = "timeout"
	reasonEmpty        = "empty_response"
)

// Service turns a check-in into a short reflection. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	gen     generator
	rnd     Random
	now     func() time.Time
	loc     *time.Location
	timeout time.Duration
	metrics recorder
	log     *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithRandom sets the template choice source.
func WithRandom(r Random) Option { return func(s *Service) { s.rnd = r } }

// WithClock sets the function used to read the current time.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

// WithLocation sets the zone used when the input carries no timezone.
func WithLocation(loc *time.Location) Option { return func(s *Service) { s.loc = loc } }

// WithTimeout bounds each remote call.
func WithTimeout(d time.Duration) Option { return func(s *Service) { s.timeout = d } }

// WithMetrics attaches a metrics recorder.
func WithMetrics(m recorder) Option { return func(s *Service) { s.metrics = m } }

// NewService creates a reflection Service. gen may be nil, in which case every
// request is answered from the fallback bank.
func NewService(log *slog.Logger, gen generator, opts ...Option) *Service {
	s := &Service{
		gen:     gen,
		rnd:     globalRandom{},
		now:     time.Now,
		loc:     time.Local,
		timeout: DefaultTimeout,
		metrics: nopRecorder{},
		log:     log.With("service", "reflection"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	return s
}

// HasGenerator reports whether a remote generator is configured.
func (s *Service) HasGenerator() bool { return s.gen != nil }

// globalRandom uses the math/rand/v2 top-level functions, which are safe for
// concurrent use.
type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }

// lockedRandom serializes access to a seeded *rand.Rand.
type lockedRandom struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededRandom returns a deterministic Random that is safe for concurrent use.
func NewSeededRandom(seed uint64) Random {
	return &lockedRandom{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (l *lockedRandom) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

type nopRecorder struct{}

func (nopRecorder) RecordReflection(domain.ReflectionOrigin, string) {}
func (nopRecorder) ObserveRemoteCall(string, time.Duration)        {}
