package interfaces

import "context"

// IObjectStorage uploads a binary and returns a publicly resolvable URL.
// Upload failures must abort any document write that would reference the
// object; the use case sequences upload before write.
type IObjectStorage interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, objectName string) error
}
