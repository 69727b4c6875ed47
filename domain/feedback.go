package domain

import "time"

// CREATE TABLE public.session_feedback (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     session_id  TEXT NOT NULL,
//     rating      NUMERIC NOT NULL,
//     comment     TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

const MaxRating = 5

type Feedback struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID string    `gorm:"column:session_id;type:text;index;not null" json:"sessionId"`
	Rating    float64   `gorm:"column:rating;type:numeric;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Feedback) TableName() string {
	return "session_feedback"
}

type FeedbackRequest struct {
	SessionID string  `json:"sessionId" validate:"required"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	Comment   string  `json:"comment" validate:"max=1000"`
}

// FeedbackSummary aggregates every rating received.
type FeedbackSummary struct {
	Count     int
	AvgRating float64
}

// Analytics is the store-level kiosk usage summary.
type Analytics struct {
	TotalSessions    int            `json:"totalSessions"`
	TotalRequests    int            `json:"totalRequests"`
	TotalFeedback    int            `json:"totalFeedback"`
	AvgRating        float64        `json:"avgRating"`
	RequestsByStatus map[string]int `json:"requestsByStatus"`
}
