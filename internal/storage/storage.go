package storage

import (
	"time"

	"glas-taro/internal/deck"
)

// ReadingRecord captures one finished reading for observability: which cards
// fell, which model actually answered, and how the attempt ended. Records
// are appended in chronological order.
type ReadingRecord struct {
	Timestamp time.Time        `json:"timestamp"`
	UserID    int64            `json:"user_id"`
	Spread    deck.SpreadType  `json:"spread"`
	Question  string           `json:"question,omitempty"`
	Cards     []deck.DrawnCard `json:"cards"`
	Model     string           `json:"model,omitempty"`
	Outcome   string           `json:"outcome"` // "ok", "degraded", "cancelled"
}

// Recorder abstracts persistence of reading records.
// Implementations must be safe for concurrent use.
type Recorder interface {
	AppendReading(rec ReadingRecord) error
	LoadReadings() ([]ReadingRecord, error)
}
