package domain

import (
	"strings"
	"time"
)

// CREATE TABLE public.change_room_requests (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     session_id       TEXT NOT NULL,
//     sku              TEXT NOT NULL,
//     store_id         TEXT,
//     requested_size   TEXT,
//     requested_color  TEXT,
//     category         TEXT,
//     status           TEXT NOT NULL,
//     employee_id      TEXT,
//     created_at       TIMESTAMPTZ DEFAULT NOW(),
//     updated_at       TIMESTAMPTZ DEFAULT NOW()
// );

const (
	RequestStatusQueued     = "Queued"
	RequestStatusInProgress = "InProgress"
	RequestStatusDelivered  = "Delivered"
	RequestStatusCancelled  = "Cancelled"
)

var RequestStatuses = []string{
	RequestStatusQueued,
	RequestStatusInProgress,
	RequestStatusDelivered,
	RequestStatusCancelled,
}

// ParseRequestStatus matches s against the known statuses ignoring case,
// spaces, dashes and underscores, so "IN_PROGRESS" reads as InProgress.
func ParseRequestStatus(s string) (string, bool) {
	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(s))
	for _, status := range RequestStatuses {
		if strings.ToLower(status) == key {
			return status, true
		}
	}
	return "", false
}

// ChangeRoomRequest asks staff to bring an item, usually in another size or
// color, to a changing room.
type ChangeRoomRequest struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID      string    `gorm:"column:session_id;type:text;index;not null" json:"sessionId"`
	SKU            string    `gorm:"column:sku;type:text;not null" json:"sku"`
	StoreID        string    `gorm:"column:store_id;type:text;index" json:"storeId,omitempty"`
	RequestedSize  string    `gorm:"column:requested_size;type:text" json:"requestedSize,omitempty"`
	RequestedColor string    `gorm:"column:requested_color;type:text" json:"requestedColor,omitempty"`
	Category       string    `gorm:"column:category;type:text" json:"category,omitempty"`
	Status         string    `gorm:"column:status;type:text;not null" json:"status"`
	EmployeeID     string    `gorm:"column:employee_id;type:text" json:"employeeId,omitempty"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (ChangeRoomRequest) TableName() string {
	return "change_room_requests"
}

type CreateChangeRoomRequest struct {
	SessionID      string `json:"sessionId" validate:"required"`
	SKU            string `json:"sku" validate:"required"`
	StoreID        string `json:"storeId"`
	RequestedSize  string `json:"requestedSize"`
	RequestedColor string `json:"requestedColor"`
	Category       string `json:"category"`
}

type UpdateRequestStatus struct {
	Status     string `json:"status" validate:"required"`
	EmployeeID string `json:"employeeId"`
}

// RequestStatusUpdate is the kiosk's view of one of its session's requests.
type RequestStatusUpdate struct {
	RequestID uint64    `json:"requestId"`
	Status    string    `json:"status"`
	SKU       string    `json:"sku"`
	UpdatedAt time.Time `json:"updatedAt"`
}
