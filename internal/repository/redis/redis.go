package redis

import (
	"context"
	"fmt"
	"vestiaKiosk/business/outfit"
	"vestiaKiosk/domain"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	sessionIndexKey = "sessions"
	scanSequenceKey = "scan:seq"
)

// SessionRepository stores each session's scans as a JSON list under
// "session:{id}:scans" and keeps the set of known session ids under
// "sessions".
type SessionRepository struct {
	client *redis.Client
}

var _ outfit.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{
		client: client,
	}
}

func scansKey(sessionID string) string {
	return fmt.Sprintf("session:%s:scans", sessionID)
}

func (r *SessionRepository) Append(ctx context.Context, event *domain.ScanEvent) error {
	id, err := r.client.Incr(ctx, scanSequenceKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate scan id: %w", err)
	}
	event.ID = uint64(id)

	jsonData, err := json.Marshal(storedScan{ID: event.ID, ScanEvent: *event})
	if err != nil {
		return fmt.Errorf("failed to marshal scan event: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, scansKey(event.SessionID), jsonData)
		pipe.SAdd(ctx, sessionIndexKey, event.SessionID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store scan event in Redis: %w", err)
	}

	return nil
}

func (r *SessionRepository) FindBySession(ctx context.Context, sessionID string) ([]domain.ScanEvent, error) {
	vals, err := r.client.LRange(ctx, scansKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session from Redis: %w", err)
	}
	return decodeScans(vals)
}

// Snapshot reads every indexed session in one pipeline round trip.
func (r *SessionRepository) Snapshot(ctx context.Context) (domain.SessionSnapshot, error) {
	ids, err := r.client.SMembers(ctx, sessionIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions from Redis: %w", err)
	}

	snap := make(domain.SessionSnapshot, len(ids))
	if len(ids) == 0 {
		return snap, nil
	}

	cmds := make([]*redis.StringSliceCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.LRange(ctx, scansKey(id), 0, -1)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions from Redis: %w", err)
	}

	for i, id := range ids {
		events, err := decodeScans(cmds[i].Val())
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", id, err)
		}
		snap[id] = events
	}
	return snap, nil
}

// storedScan keeps the id, which ScanEvent hides from JSON.
type storedScan struct {
	ID uint64 `json:"id"`
	domain.ScanEvent
}

func decodeScans(vals []string) ([]domain.ScanEvent, error) {
	events := make([]domain.ScanEvent, 0, len(vals))
	for _, v := range vals {
		var s storedScan
		if err := json.Unmarshal([]byte(v), &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scan event: %w", err)
		}
		s.ScanEvent.ID = s.ID
		events = append(events, s.ScanEvent)
	}
	return events, nil
}
