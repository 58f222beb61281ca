package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/bpyschema"
)

// Ensure ExclusionLogger implements bpyschema.ExclusionReporter.
var _ bpyschema.ExclusionReporter = (*ExclusionLogger)(nil)

// ExclusionLogger reports dropped attributes as warnings.
type ExclusionLogger struct {
	logger *slog.Logger
}

// NewExclusionLogger creates a new ExclusionLogger.
func NewExclusionLogger(logger *slog.Logger) *ExclusionLogger {
	return &ExclusionLogger{logger: logger}
}

// ReportExclusion logs e. Read-only and always-excluded attributes are
// expected and logged at debug level.
func (l *ExclusionLogger) ReportExclusion(e bpyschema.Exclusion) {
	level := slog.LevelDebug
	if e.Reason == bpyschema.ReasonUnsupported {
		level = slog.LevelWarn
	}
	l.logger.Log(context.Background(), level, "excluded attribute",
		"version", e.Version.String(),
		"class", e.Class,
		"attribute", e.Attribute,
		"raw", e.RawType,
		"reason", string(e.Reason),
	)
}
