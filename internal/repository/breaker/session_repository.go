package breaker

import (
	"context"
	"errors"
	"time"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"
	"vestiaKiosk/pkg/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

// Backend is the session store being protected.
type Backend interface {
	Append(ctx context.Context, event *domain.ScanEvent) error
	FindBySession(ctx context.Context, sessionID string) ([]domain.ScanEvent, error)
	Snapshot(ctx context.Context) (domain.SessionSnapshot, error)
}

type Settings struct {
	Name        string
	MaxFailures uint32
	OpenTimeout time.Duration
}

// SessionRepository trips after MaxFailures consecutive backend errors and
// rejects calls until OpenTimeout has passed. Context cancellation does not
// count as a backend failure.
type SessionRepository struct {
	next Backend
	name string
	cb   *gobreaker.CircuitBreaker[any]
}

func NewSessionRepository(next Backend, s Settings) *SessionRepository {
	if s.Name == "" {
		s.Name = "session-store"
	}
	if s.MaxFailures == 0 {
		s.MaxFailures = 5
	}
	maxFailures := s.MaxFailures

	metrics.BreakerState.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			metrics.BreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &SessionRepository{
		next: next,
		name: s.Name,
		cb:   cb,
	}
}

// State reports the breaker's current state.
func (r *SessionRepository) State() gobreaker.State {
	return r.cb.State()
}

func (r *SessionRepository) Append(ctx context.Context, event *domain.ScanEvent) error {
	_, err := r.execute(func() (any, error) {
		return nil, r.next.Append(ctx, event)
	})
	return err
}

func (r *SessionRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ScanEvent, error) {
	res, err := r.execute(func() (any, error) {
		return r.next.FindBySession(ctx, sessionID)
	})
	if err != nil {
		return nil, err
	}
	events, _ := res.([]domain.ScanEvent)
	return events, nil
}

func (r *SessionRepository) Snapshot(ctx context.Context) (domain.SessionSnapshot, error) {
	res, err := r.execute(func() (any, error) {
		return r.next.Snapshot(ctx)
	})
	if err != nil {
		return nil, err
	}
	snapshot, _ := res.(domain.SessionSnapshot)
	return snapshot, nil
}

func (r *SessionRepository) execute(fn func() (any, error)) (any, error) {
	res, err := r.cb.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.BreakerRequests.WithLabelValues(r.name, "rejected").Inc()
	case err != nil:
		metrics.BreakerRequests.WithLabelValues(r.name, "failure").Inc()
	default:
		metrics.BreakerRequests.WithLabelValues(r.name, "success").Inc()
	}
	return res, err
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
