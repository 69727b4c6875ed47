package domain

import (
	"bytes"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// CREATE TABLE public.scan_events (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     session_id  TEXT NOT NULL,
//     sku         TEXT NOT NULL,
//     name        TEXT,
//     color       TEXT,
//     size        TEXT,
//     category    TEXT,
//     brand       TEXT,
//     style_tags  JSONB,
//     price       TEXT,
//     store_id    TEXT,
//     kiosk_id    TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

// ScanEvent is one item scanned into a changing-room session. Fields are
// recorded as observed at scan time and may diverge from the catalog.
type ScanEvent struct {
	ID        uint64     `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID string     `gorm:"column:session_id;type:text;index;not null" json:"sessionId"`
	SKU       string     `gorm:"column:sku;type:text;not null" json:"sku"`
	Name      string     `gorm:"column:name;type:text" json:"name,omitempty"`
	Color     string     `gorm:"column:color;type:text" json:"color,omitempty"`
	Size      string     `gorm:"column:size;type:text" json:"size,omitempty"`
	Category  string     `gorm:"column:category;type:text" json:"category,omitempty"`
	Brand     string     `gorm:"column:brand;type:text" json:"brand,omitempty"`
	StyleTags []string   `gorm:"column:style_tags;serializer:json" json:"styleTags,omitempty"`
	Price     PriceValue `gorm:"column:price;type:text" json:"price,omitempty"`
	StoreID   string     `gorm:"column:store_id;type:text" json:"storeId,omitempty"`
	KioskID   string     `gorm:"column:kiosk_id;type:text" json:"kioskId,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (ScanEvent) TableName() string {
	return "scan_events"
}

// SessionRecord is a session id plus its scans in scan order.
type SessionRecord struct {
	SessionID string      `json:"sessionId"`
	Items     []ScanEvent `json:"items"`
}

// SessionSnapshot maps session id to the ordered scans of that session.
type SessionSnapshot map[string][]ScanEvent

// PriceValue keeps a scanned price as text. Kiosks send either a JSON number
// or a currency string such as "$49.99"; both decode into the same type.
type PriceValue string

func (p *PriceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceValue(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*p = PriceValue(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// ScanRequest is the kiosk payload for scanning an item into a session.
// Optional fields are filled from the catalog when the SKU is known.
type ScanRequest struct {
	SessionID string     `json:"sessionId" validate:"required"`
	SKU       string     `json:"sku" validate:"required"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	Size      string     `json:"size"`
	Category  string     `json:"category"`
	Price     PriceValue `json:"price"`
	StoreID   string     `json:"storeId"`
	KioskID   string     `json:"kioskId"`
}
