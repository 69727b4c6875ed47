//go:build !integration

package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vestiaKiosk/business/session"
	"vestiaKiosk/domain"
	"vestiaKiosk/internal/repository/memory"
	"vestiaKiosk/pkg/metrics"
)

var fixedNow = time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

func newService() (*requestService, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository()
	catalog := memory.NewCatalogRepository([]domain.CatalogItem{{
		SKU: "B1", Name: "Chino", Category: "bottom", ColorFamily: "beige", Price: 60, StoreID: "s1", InStock: true,
	}})
	svc := NewRequestService(memory.NewRequestRepository(), session.NewSessionService(sessions, catalog))
	svc.now = func() time.Time { return fixedNow }
	return svc, sessions
}

func TestCreateRequest_Queues(t *testing.T) {
	svc, _ := newService()
	queued := testutil.ToFloat64(metrics.ChangeRoomRequestsTotal.WithLabelValues(domain.RequestStatusQueued))

	req, err := svc.CreateRequest(context.Background(), domain.CreateChangeRoomRequest{
		SessionID: " sess-1 ", SKU: "B1", RequestedSize: "32", Category: "Bottom",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), req.ID)
	assert.Equal(t, "sess-1", req.SessionID)
	assert.Equal(t, domain.RequestStatusQueued, req.Status)
	assert.Equal(t, "bottom", req.Category)
	assert.Equal(t, fixedNow, req.CreatedAt)
	assert.Equal(t, queued+1, testutil.ToFloat64(metrics.ChangeRoomRequestsTotal.WithLabelValues(domain.RequestStatusQueued)))

	second, err := svc.CreateRequest(context.Background(), domain.CreateChangeRoomRequest{SessionID: "sess-2", SKU: "T1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), second.ID)
}

func TestCreateRequest_RequiresSessionAndSKU(t *testing.T) {
	svc, _ := newService()

	for _, in := range []domain.CreateChangeRoomRequest{{SKU: "B1"}, {SessionID: "sess"}, {SessionID: " ", SKU: " "}} {
		_, err := svc.CreateRequest(context.Background(), in)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, "sessionId and sku are required", err.Error())
	}
}

func TestListRequests_FiltersByStoreAndNeverNil(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	empty, err := svc.ListRequests(ctx, "")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "a", SKU: "B1", StoreID: "s1"})
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "b", SKU: "B1", StoreID: "s2"})
	require.NoError(t, err)

	all, err := svc.ListRequests(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].SessionID)

	s2, err := svc.ListRequests(ctx, "s2")
	require.NoError(t, err)
	require.Len(t, s2, 1)
	assert.Equal(t, "b", s2[0].SessionID)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	_, err := svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "sess", SKU: "B1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		id     uint64
		in     domain.UpdateRequestStatus
		want   string
		errIs  error
		errMsg string
	}{
		{"upper snake case", 1, domain.UpdateRequestStatus{Status: "IN_PROGRESS", EmployeeID: "emp-7"}, domain.RequestStatusInProgress, nil, ""},
		{"missing status", 1, domain.UpdateRequestStatus{}, "", domain.ErrValidation, "status is required"},
		{"unknown status", 1, domain.UpdateRequestStatus{Status: "lost"}, "", domain.ErrValidation, "status must be one of Queued, InProgress, Delivered, Cancelled"},
		{"unknown request", 99, domain.UpdateRequestStatus{Status: "Cancelled"}, "", domain.ErrNotFound, "Request not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.UpdateStatus(ctx, tt.id, tt.in)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.errMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
			assert.Equal(t, "emp-7", got.EmployeeID)
		})
	}
}

func TestUpdateStatus_DeliveredScansIntoSessionOnce(t *testing.T) {
	svc, sessions := newService()
	ctx := context.Background()
	_, err := svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{
		SessionID: "sess", SKU: "B1", RequestedSize: "34", StoreID: "s1",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := svc.UpdateStatus(ctx, 1, domain.UpdateRequestStatus{Status: "delivered"})
		require.NoError(t, err)
		assert.Equal(t, domain.RequestStatusDelivered, got.Status)
	}

	events, err := sessions.FindBySession(ctx, "sess")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "B1", events[0].SKU)
	assert.Equal(t, "34", events[0].Size)
	assert.Equal(t, "Chino", events[0].Name)
}

type failingScanner struct{}

func (failingScanner) ScanItem(ctx context.Context, req domain.ScanRequest) (*domain.ScanEvent, error) {
	return nil, errors.New("session store unavailable")
}

func TestUpdateStatus_DeliveryScanFailureKeepsStatus(t *testing.T) {
	svc := NewRequestService(memory.NewRequestRepository(), failingScanner{})
	ctx := context.Background()
	_, err := svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "sess", SKU: "B1"})
	require.NoError(t, err)

	got, err := svc.UpdateStatus(ctx, 1, domain.UpdateRequestStatus{Status: "Delivered"})
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusDelivered, got.Status)
}

func TestSessionStatuses(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.SessionStatuses(ctx, " ")
	require.ErrorIs(t, err, domain.ErrValidation)

	none, err := svc.SessionStatuses(ctx, "sess")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "sess", SKU: "B1"})
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "other", SKU: "B1"})
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "sess", SKU: "T1"})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, 3, domain.UpdateRequestStatus{Status: "Cancelled"})
	require.NoError(t, err)

	updates, err := svc.SessionStatuses(ctx, "sess")
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, domain.RequestStatusUpdate{RequestID: 1, Status: domain.RequestStatusQueued, SKU: "B1", UpdatedAt: fixedNow}, updates[0])
	assert.Equal(t, uint64(3), updates[1].RequestID)
	assert.Equal(t, domain.RequestStatusCancelled, updates[1].Status)
}

func TestCreateRequest_CancelledContext(t *testing.T) {
	svc, _ := newService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateRequest(ctx, domain.CreateChangeRoomRequest{SessionID: "sess", SKU: "B1"})
	require.ErrorIs(t, err, context.Canceled)
}
