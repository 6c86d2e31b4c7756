package entity

import "time"

// AdEventType names a lifecycle transition of an ad.
type AdEventType string

const (
	AdEventCreated AdEventType = "ad.created"
	AdEventUpdated AdEventType = "ad.updated"
	AdEventDeleted AdEventType = "ad.deleted"
)

// AdEvent is emitted after an ad mutation has been committed.
type AdEvent struct {
	Type       AdEventType `json:"type"`
	AdID       int64       `json:"ad_id"`
	AuthorID   int64       `json:"author_id"`
	Title      string      `json:"title,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	RequestID  string      `json:"request_id,omitempty"`
}
