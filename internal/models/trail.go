package models

import "time"

// Trail represents a row in the trails table. JSON field names follow the
// wire shape consumed by existing clients.
type Trail struct {
	TrailID     int       `json:"TrailID" db:"trail_id"`
	TrailName   string    `json:"TrailName" db:"trail_name"`
	Description *string   `json:"Description" db:"description"`
	DateCreated time.Time `json:"DateCreated" db:"date_created"`
	CreatedBy   int       `json:"CreatedBy" db:"created_by"` // Owner, immutable after creation
}

// TrailEvent is published to the event stream after a trail mutation.
type TrailEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	Operation string `json:"operation"` // created, updated, deleted
	TrailID   int    `json:"trail_id"`
	UserID    int    `json:"user_id"`
}
