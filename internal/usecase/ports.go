package usecase

import (
	"io"

	"vidtube/pkg/queue"
)

// FileStore is the media upload gate: it accepts file bytes and returns a
// durable URL. Satisfied by pkg/s3.Client.
type FileStore interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
	DeleteFile(key string) error
}

// EventPublisher fans platform events out to downstream consumers.
// Satisfied by pkg/queue.Client; a nil publisher disables events.
type EventPublisher interface {
	Publish(routingKey string, event queue.Event) error
}
