package crawl

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fwojciec/bpyschema"
)

var _ bpyschema.DocumentSource = (*RetrySource)(nil)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultBackOff returns an exponential backoff with no elapsed-time limit.
func DefaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// RetrySource wraps a DocumentSource and retries requests that fail with
// ERATELIMIT. Any other error is returned immediately.
type RetrySource struct {
	next       bpyschema.DocumentSource
	newBackOff func() backoff.BackOff
	logger     LogFunc
}

// RetryOption configures a RetrySource.
type RetryOption func(*RetrySource)

// WithBackOff sets the backoff policy factory, called once per document.
// Defaults to DefaultBackOff.
func WithBackOff(fn func() backoff.BackOff) RetryOption {
	return func(s *RetrySource) {
		s.newBackOff = fn
	}
}

// WithRetryLogger sets a function called for each retry attempt.
func WithRetryLogger(fn LogFunc) RetryOption {
	return func(s *RetrySource) {
		s.logger = fn
	}
}

// NewRetrySource creates a new RetrySource around next.
func NewRetrySource(next bpyschema.DocumentSource, opts ...RetryOption) *RetrySource {
	s := &RetrySource{next: next, newBackOff: DefaultBackOff}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Document implements bpyschema.DocumentSource.
func (s *RetrySource) Document(ctx context.Context, v bpyschema.Version, class string) (string, error) {
	var html string
	operation := func() error {
		var err error
		html, err = s.next.Document(ctx, v, class)
		if err == nil {
			return nil
		}
		if bpyschema.ErrorCode(err) != bpyschema.ERATELIMIT {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		if s.logger != nil {
			s.logger("  retry %s %s in %s: %v", v, class, wait, err)
		}
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(s.newBackOff(), ctx), notify); err != nil {
		return "", err
	}
	return html, nil
}
