package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/bpyschema"
)

// FileWriter writes an emitted schema to a file with atomic replace
// semantics. Output is written to path.tmp, then renamed over path.
type FileWriter struct {
	path    string
	emitter bpyschema.Emitter
}

// NewFileWriter creates a FileWriter that renders schemas with emitter.
func NewFileWriter(path string, emitter bpyschema.Emitter) *FileWriter {
	return &FileWriter{path: path, emitter: emitter}
}

func (w *FileWriter) tempPath() string {
	return w.path + ".tmp"
}

// WriteSchema emits schema into the temp file and commits it. On failure
// the temp file is removed and any existing output is left untouched.
func (w *FileWriter) WriteSchema(schema *bpyschema.Schema) error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	f, err := os.Create(w.tempPath())
	if err != nil {
		return err
	}

	if err := w.emitter.Emit(f, schema); err != nil {
		_ = f.Close()
		_ = w.abort()
		return err
	}
	if err := f.Close(); err != nil {
		_ = w.abort()
		return err
	}
	return w.commit()
}

func (w *FileWriter) commit() error {
	return os.Rename(w.tempPath(), w.path)
}

func (w *FileWriter) abort() error {
	return os.RemoveAll(w.tempPath())
}
