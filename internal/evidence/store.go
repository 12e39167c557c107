package evidence

import (
	"context"
	"io"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/Talha3818/gaming-site-sub001/internal/evidence Store

// PutInput contains a screenshot payload to store
type PutInput struct {
	// Key is the object key, e.g. "screenshots/<id>.png"
	Key string

	// ContentType is the MIME type of the payload
	ContentType string

	// Body is the raw payload
	Body io.Reader
}

// PutOutput contains the stable reference for a stored payload
type PutOutput struct {
	// URL is the public reference to the stored object
	URL string
}

// Store persists opaque evidence payloads and returns stable references.
// The engine only ever holds the returned reference, never the bytes.
type Store interface {
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)
}
