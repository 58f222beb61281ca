package slog_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/bpyschema"
	"github.com/fwojciec/bpyschema/mock"
	bpyslog "github.com/fwojciec/bpyschema/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	v := bpyschema.Version{Major: 3, Minor: 6}

	t.Run("logs branch with subclass count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SectionExtractor{
			ExtractFn: func(html string, v bpyschema.Version, class, parent string) (*bpyschema.Section, error) {
				return bpyschema.NewBranch([]string{"ShaderNode", "GeometryNode"}, nil), nil
			},
		}

		ext := bpyslog.NewLoggingExtractor(inner, debugLogger(&buf))
		section, err := ext.Extract("<html></html>", v, "NodeInternal", "Node")

		require.NoError(t, err)
		assert.True(t, section.IsBranch())
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "class=NodeInternal")
		assert.Contains(t, output, "kind=branch")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs leaf with attribute count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SectionExtractor{
			ExtractFn: func(html string, v bpyschema.Version, class, parent string) (*bpyschema.Section, error) {
				return bpyschema.NewLeaf([]bpyschema.RawAttribute{{Name: "operation", Type: "enum"}}), nil
			},
		}

		ext := bpyslog.NewLoggingExtractor(inner, debugLogger(&buf))
		_, err := ext.Extract("<html></html>", v, "ShaderNodeMath", "ShaderNode")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "kind=leaf")
		assert.Contains(t, output, "count=1")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SectionExtractor{
			ExtractFn: func(html string, v bpyschema.Version, class, parent string) (*bpyschema.Section, error) {
				return nil, bpyschema.Errorf(bpyschema.ESTRUCTURE, "no section")
			},
		}

		ext := bpyslog.NewLoggingExtractor(inner, debugLogger(&buf))
		_, err := ext.Extract("<html></html>", v, "ShaderNodeMath", "ShaderNode")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"no section\"")
	})
}
