package models

import "time"

// HistoryRecord is a past generation stored by the backend.
type HistoryRecord struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	Result    string    `json:"result"`
	Format    string    `json:"format"`
	Tool      string    `json:"tool"`
	CreatedAt time.Time `json:"createdAt"`
}
