package request

import (
	"context"
	"fmt"
	"strings"
	"time"
	"vestiaKiosk/domain"
	"vestiaKiosk/pkg/logger"
	"vestiaKiosk/pkg/metrics"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ChangeRoomRequest) error
	List(ctx context.Context, storeID string) ([]domain.ChangeRoomRequest, error)
	FindByID(ctx context.Context, id uint64) (domain.ChangeRoomRequest, bool, error)
	FindBySession(ctx context.Context, sessionID string) ([]domain.ChangeRoomRequest, error)
	Update(ctx context.Context, req *domain.ChangeRoomRequest) error
}

// Scanner records a delivered item as a scan in the requesting session.
type Scanner interface {
	ScanItem(ctx context.Context, req domain.ScanRequest) (*domain.ScanEvent, error)
}

type requestService struct {
	requestRepo RequestRepository
	scanner     Scanner
	now         func() time.Time
}

func NewRequestService(requestRepo RequestRepository, scanner Scanner) *requestService {
	return &requestService{
		requestRepo: requestRepo,
		scanner:     scanner,
		now:         time.Now,
	}
}

// CreateRequest queues a change-room request.
func (s *requestService) CreateRequest(ctx context.Context, in domain.CreateChangeRoomRequest) (*domain.ChangeRoomRequest, error) {
	in.SessionID = strings.TrimSpace(in.SessionID)
	in.SKU = strings.TrimSpace(in.SKU)
	if in.SessionID == "" || in.SKU == "" {
		return nil, domain.Validationf("sessionId and sku are required")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	now := s.now().UTC()
	req := &domain.ChangeRoomRequest{
		SessionID:      in.SessionID,
		SKU:            in.SKU,
		StoreID:        strings.TrimSpace(in.StoreID),
		RequestedSize:  strings.TrimSpace(in.RequestedSize),
		RequestedColor: strings.TrimSpace(in.RequestedColor),
		Category:       strings.ToLower(strings.TrimSpace(in.Category)),
		Status:         domain.RequestStatusQueued,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		logger.Error("failed to create change-room request", "session_id", req.SessionID, "error", err)
		return nil, err
	}
	metrics.ChangeRoomRequestsTotal.WithLabelValues(req.Status).Inc()

	logger.Info("change-room request queued", "request_id", req.ID, "session_id", req.SessionID, "sku", req.SKU)
	return req, nil
}

// ListRequests returns every request, optionally for one store, oldest first.
func (s *requestService) ListRequests(ctx context.Context, storeID string) ([]domain.ChangeRoomRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	reqs, err := s.requestRepo.List(ctx, strings.TrimSpace(storeID))
	if err != nil {
		logger.Error("failed to list change-room requests", "error", err)
		return nil, err
	}
	if reqs == nil {
		reqs = []domain.ChangeRoomRequest{}
	}
	return reqs, nil
}

// UpdateStatus moves a request to a new status. The first move into
// Delivered also scans the delivered item into the session.
func (s *requestService) UpdateStatus(ctx context.Context, id uint64, in domain.UpdateRequestStatus) (*domain.ChangeRoomRequest, error) {
	if strings.TrimSpace(in.Status) == "" {
		return nil, domain.Validationf("status is required")
	}
	status, ok := domain.ParseRequestStatus(in.Status)
	if !ok {
		return nil, domain.Validationf("status must be one of %s", strings.Join(domain.RequestStatuses, ", "))
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	req, found, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find change-room request", "request_id", id, "error", err)
		return nil, err
	}
	if !found {
		return nil, domain.NotFoundf("Request not found")
	}

	previous := req.Status
	req.Status = status
	if employee := strings.TrimSpace(in.EmployeeID); employee != "" {
		req.EmployeeID = employee
	}
	req.UpdatedAt = s.now().UTC()

	if err := s.requestRepo.Update(ctx, &req); err != nil {
		logger.Error("failed to update change-room request", "request_id", id, "error", err)
		return nil, err
	}
	if previous != status {
		metrics.ChangeRoomRequestsTotal.WithLabelValues(status).Inc()
	}

	if status == domain.RequestStatusDelivered && previous != domain.RequestStatusDelivered {
		s.recordDelivery(ctx, req)
	}

	logger.Info("change-room request updated", "request_id", req.ID, "from", previous, "to", status)
	return &req, nil
}

// recordDelivery is best effort: the status change already stands.
func (s *requestService) recordDelivery(ctx context.Context, req domain.ChangeRoomRequest) {
	if s.scanner == nil {
		return
	}
	_, err := s.scanner.ScanItem(ctx, domain.ScanRequest{
		SessionID: req.SessionID,
		SKU:       req.SKU,
		Size:      req.RequestedSize,
		Color:     req.RequestedColor,
		Category:  req.Category,
		StoreID:   req.StoreID,
	})
	if err != nil {
		logger.Warn("failed to scan delivered item", "request_id", req.ID, "session_id", req.SessionID, "error", err)
	}
}

// SessionStatuses lists the current status of every request a session made.
func (s *requestService) SessionStatuses(ctx context.Context, sessionID string) ([]domain.RequestStatusUpdate, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, domain.Validationf("sessionId is required")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	reqs, err := s.requestRepo.FindBySession(ctx, sessionID)
	if err != nil {
		logger.Error("failed to find session requests", "session_id", sessionID, "error", err)
		return nil, err
	}

	updates := make([]domain.RequestStatusUpdate, 0, len(reqs))
	for _, r := range reqs {
		updates = append(updates, domain.RequestStatusUpdate{
			RequestID: r.ID,
			Status:    r.Status,
			SKU:       r.SKU,
			UpdatedAt: r.UpdatedAt,
		})
	}
	return updates, nil
}
