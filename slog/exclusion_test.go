package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/bpyschema"
	bpyslog "github.com/fwojciec/bpyschema/slog"
	"github.com/stretchr/testify/assert"
)

func TestExclusionLogger_ReportExclusion(t *testing.T) {
	t.Parallel()

	t.Run("warns about unsupported types", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		reporter := bpyslog.NewExclusionLogger(slog.New(slog.NewTextHandler(&buf, nil)))

		reporter.ReportExclusion(bpyschema.Exclusion{
			Version:   bpyschema.Version{Major: 4, Minor: 0},
			Class:     "GeometryNodeGroup",
			Attribute: "inputs",
			RawType:   "bpy_prop_collection of NodeSocket",
			Reason:    bpyschema.ReasonUnsupported,
		})

		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "msg=\"excluded attribute\"")
		assert.Contains(t, output, "version=4.0")
		assert.Contains(t, output, "class=GeometryNodeGroup")
		assert.Contains(t, output, "attribute=inputs")
		assert.Contains(t, output, "reason=unsupported")
	})

	t.Run("read-only exclusions are debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		reporter := bpyslog.NewExclusionLogger(slog.New(slog.NewTextHandler(&buf, nil)))

		reporter.ReportExclusion(bpyschema.Exclusion{
			Version:   bpyschema.Version{Major: 4, Minor: 0},
			Class:     "ShaderNodeMix",
			Attribute: "location",
			RawType:   "float array of 2, (readonly)",
			Reason:    bpyschema.ReasonReadOnly,
		})

		assert.Empty(t, buf.String())
	})
}
