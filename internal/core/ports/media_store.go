package ports

import "context"

// MediaStore persists inline image payloads ("data:image/png;base64,....")
// and returns the public URL of the stored file.
type MediaStore interface {
	Store(ctx context.Context, dataURL string) (string, error)
}
