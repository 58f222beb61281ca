package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bpyschema"
)

// Ensure LoggingExtractor implements bpyschema.SectionExtractor.
var _ bpyschema.SectionExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a SectionExtractor with debug logging of each
// classification.
type LoggingExtractor struct {
	next   bpyschema.SectionExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next bpyschema.SectionExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the page kind.
func (e *LoggingExtractor) Extract(html string, v bpyschema.Version, class, parent string) (*bpyschema.Section, error) {
	begin := time.Now()
	section, err := e.next.Extract(html, v, class, parent)
	if err != nil {
		e.logger.Debug("extract",
			"version", v.String(),
			"class", class,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	kind := "leaf"
	count := len(section.Attributes)
	if section.IsBranch() {
		kind = "branch"
		count = len(section.Subclasses)
	}
	e.logger.Debug("extract",
		"version", v.String(),
		"class", class,
		"kind", kind,
		"count", count,
		"duration", time.Since(begin),
	)
	return section, nil
}
