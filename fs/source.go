// Package fs provides file-based access to unpacked documentation and
// atomic output files.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/bpyschema"
)

// Ensure DocumentSource implements bpyschema.DocumentSource at compile time.
var _ bpyschema.DocumentSource = (*DocumentSource)(nil)

// DocumentSource reads class pages from a local copy of the Blender Python
// API reference. Each version lives in its own directory:
//
//	{root}/{M}.{m}/blender_python_reference_{M}_{m}/bpy.types.{Class}.html
type DocumentSource struct {
	root      string
	namespace string
}

// NewDocumentSource creates a DocumentSource rooted at root.
func NewDocumentSource(root string) *DocumentSource {
	return &DocumentSource{root: root, namespace: "bpy.types"}
}

// Path returns the file that holds the page of class in version v.
func (s *DocumentSource) Path(v bpyschema.Version, class string) string {
	return filepath.Join(
		s.root,
		v.String(),
		fmt.Sprintf("blender_python_reference_%d_%d", v.Major, v.Minor),
		s.namespace+"."+class+".html",
	)
}

// Document implements bpyschema.DocumentSource.
func (s *DocumentSource) Document(ctx context.Context, v bpyschema.Version, class string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := s.Path(v, class)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", bpyschema.Errorf(bpyschema.ENOTFOUND, "no document at %s", path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
