package session

import (
	"context"
	"fmt"
	"strings"
	"time"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"
)

type SessionRepository interface {
	Append(ctx context.Context, event *domain.ScanEvent) error
	FindBySession(ctx context.Context, sessionID string) ([]domain.ScanEvent, error)
}

type CatalogLookup interface {
	FindBySKU(ctx context.Context, sku string) (domain.CatalogItem, bool, error)
}

type sessionService struct {
	sessionRepo SessionRepository
	catalog     CatalogLookup
	now         func() time.Time
}

func NewSessionService(sessionRepo SessionRepository, catalog CatalogLookup) *sessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		catalog:     catalog,
		now:         time.Now,
	}
}

// ScanItem appends a scan to the session log. Fields the kiosk left blank
// are taken from the catalog when the SKU is known there.
func (s *sessionService) ScanItem(ctx context.Context, req domain.ScanRequest) (*domain.ScanEvent, error) {
	req.SessionID = strings.TrimSpace(req.SessionID)
	req.SKU = strings.TrimSpace(req.SKU)
	if req.SessionID == "" || req.SKU == "" {
		return nil, domain.Validationf("sessionId and sku are required")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	event := &domain.ScanEvent{
		SessionID: req.SessionID,
		SKU:       req.SKU,
		Name:      req.Name,
		Color:     req.Color,
		Size:      req.Size,
		Category:  strings.ToLower(strings.TrimSpace(req.Category)),
		Price:     req.Price,
		StoreID:   req.StoreID,
		KioskID:   req.KioskID,
		CreatedAt: s.now().UTC(),
	}

	if s.catalog != nil {
		item, ok, err := s.catalog.FindBySKU(ctx, req.SKU)
		if err != nil {
			logger.Warn("catalog lookup failed during scan", "sku", req.SKU, "error", err)
		} else if ok {
			fillFromCatalog(event, item)
		}
	}

	if err := s.sessionRepo.Append(ctx, event); err != nil {
		logger.Error("failed to append scan", "session_id", event.SessionID, "error", err)
		return nil, err
	}

	logger.Info("item scanned", "session_id", event.SessionID, "sku", event.SKU, "kiosk_id", event.KioskID)
	return event, nil
}

func fillFromCatalog(event *domain.ScanEvent, item domain.CatalogItem) {
	if event.Name == "" {
		event.Name = item.Name
	}
	if event.Color == "" {
		event.Color = item.ColorFamily
	}
	if event.Category == "" {
		event.Category = item.Category
	}
	if event.Brand == "" {
		event.Brand = item.Brand
	}
	if len(event.StyleTags) == 0 {
		event.StyleTags = item.StyleTags
	}
	if event.Price == "" && item.Price > 0 {
		event.Price = domain.PriceValue(fmt.Sprintf("%.2f", item.Price))
	}
	if event.StoreID == "" {
		event.StoreID = item.StoreID
	}
}

// GetSession returns a session's scans in scan order. Unknown sessions
// have no items.
func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*domain.SessionRecord, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domain.Validationf("sessionId is required")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.sessionRepo.FindBySession(ctx, sessionID)
	if err != nil {
		logger.Error("failed to find session", "session_id", sessionID, "error", err)
		return nil, err
	}
	if items == nil {
		items = []domain.ScanEvent{}
	}

	return &domain.SessionRecord{SessionID: sessionID, Items: items}, nil
}
