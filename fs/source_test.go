package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/bpyschema"
	"github.com/fwojciec/bpyschema/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Local Documentation
// Pages are read from an unpacked copy of the API reference per version

func TestDocumentSource_PathFollowsReferenceLayout(t *testing.T) {
	t.Parallel()

	src := fs.NewDocumentSource("/docs")

	path := src.Path(bpyschema.Version{Major: 4, Minor: 1}, "ShaderNodeMath")

	assert.Equal(t, filepath.Join("/docs", "4.1", "blender_python_reference_4_1", "bpy.types.ShaderNodeMath.html"), path)
}

func TestDocumentSource_ReadsPage(t *testing.T) {
	t.Parallel()

	// Given a page in the 3.6 reference
	root := t.TempDir()
	src := fs.NewDocumentSource(root)
	v := bpyschema.Version{Major: 3, Minor: 6}
	path := src.Path(v, "NodeInternal")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("<html>node</html>"), 0644))

	// When I read it
	html, err := src.Document(context.Background(), v, "NodeInternal")

	// Then I get the file contents
	require.NoError(t, err)
	assert.Equal(t, "<html>node</html>", html)
}

func TestDocumentSource_MissingPageIsNotFound(t *testing.T) {
	t.Parallel()

	src := fs.NewDocumentSource(t.TempDir())

	_, err := src.Document(context.Background(), bpyschema.Version{Major: 4, Minor: 0}, "ShaderNodeGone")

	assert.Equal(t, bpyschema.ENOTFOUND, bpyschema.ErrorCode(err))
	assert.Contains(t, err.Error(), "bpy.types.ShaderNodeGone.html")
}

func TestDocumentSource_CanceledContext(t *testing.T) {
	t.Parallel()

	src := fs.NewDocumentSource(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Document(ctx, bpyschema.Version{Major: 4, Minor: 0}, "NodeInternal")

	assert.ErrorIs(t, err, context.Canceled)
}
