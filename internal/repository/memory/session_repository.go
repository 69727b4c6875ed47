package memory

import (
	"context"
	"fmt"
	"sync"
	"vestiaKiosk/domain"
)

// SessionRepository is an append-only in-process session log.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string][]domain.ScanEvent
	nextID   uint64
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string][]domain.ScanEvent)}
}

func (r *SessionRepository) Append(ctx context.Context, event *domain.ScanEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	event.ID = r.nextID
	r.sessions[event.SessionID] = append(r.sessions[event.SessionID], *event)
	return nil
}

func (r *SessionRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ScanEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneEvents(r.sessions[sessionID]), nil
}

// Snapshot copies the whole log so callers can read it without holding the lock.
func (r *SessionRepository) Snapshot(ctx context.Context) (domain.SessionSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(domain.SessionSnapshot, len(r.sessions))
	for id, events := range r.sessions {
		snap[id] = cloneEvents(events)
	}
	return snap, nil
}

func cloneEvents(events []domain.ScanEvent) []domain.ScanEvent {
	if events == nil {
		return nil
	}
	out := make([]domain.ScanEvent, len(events))
	copy(out, events)
	return out
}
