// Package slog provides logging decorators for bpyschema services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bpyschema"
)

// Ensure LoggingSource implements bpyschema.DocumentSource.
var _ bpyschema.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with debug logging of each retrieval.
type LoggingSource struct {
	next   bpyschema.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next bpyschema.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Document retrieves the page and logs its size, duration and error.
func (s *LoggingSource) Document(ctx context.Context, v bpyschema.Version, class string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("document",
			"version", v.String(),
			"class", class,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Document(ctx, v, class)
}
