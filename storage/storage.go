package storage

import (
	"context"
	"io"
)

// MediaStore uploads user media (avatars, cover images, video files,
// thumbnails) to an external host and returns publicly addressable
// URLs.
type MediaStore interface {
	// Upload stores the object under folder and returns its URL.
	Upload(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (string, error)
	// Remove deletes a previously uploaded object by its URL. Unknown
	// URLs are ignored.
	Remove(ctx context.Context, url string) error
}
