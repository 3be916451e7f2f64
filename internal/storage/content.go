package storage

import (
	"context"
	"io"
)

// ContentStore keeps attachment bytes behind an opaque ref. The bug
// subsystem never inspects content; size/type validation belongs to
// whoever sits in front of Put.
type ContentStore interface {
	Put(ctx context.Context, r io.Reader, size int64, filename string) (string, error)
	Get(ctx context.Context, ref string) (io.ReadCloser, error)
	Remove(ctx context.Context, ref string) error
}
