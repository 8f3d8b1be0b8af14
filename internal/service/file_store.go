package service

import (
	"context"
	"io"
)

// FileStore saves an uploaded stream and returns the stable reference the
// listing keeps, e.g. the filename later served under /uploads. Storage
// details stay out of the handlers and the listing flow.
type FileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}
