package mock

import (
	"context"

	"github.com/fwojciec/bpyschema"
)

var _ bpyschema.DocumentSource = (*DocumentSource)(nil)

// DocumentSource is a mock implementation of bpyschema.DocumentSource.
type DocumentSource struct {
	DocumentFn func(ctx context.Context, v bpyschema.Version, class string) (string, error)
}

func (s *DocumentSource) Document(ctx context.Context, v bpyschema.Version, class string) (string, error) {
	return s.DocumentFn(ctx, v, class)
}

var _ bpyschema.RequestLimiter = (*RequestLimiter)(nil)

// RequestLimiter is a mock implementation of bpyschema.RequestLimiter.
type RequestLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *RequestLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
