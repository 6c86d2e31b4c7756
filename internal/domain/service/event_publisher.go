package service

import (
	"context"

	"classifieds/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAdEvent announces an ad change to downstream consumers.
	PublishAdEvent(ctx context.Context, event *entity.AdEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
