package mock

import (
	"io"

	"github.com/fwojciec/bpyschema"
)

var _ bpyschema.Recorder = (*Recorder)(nil)

// Recorder is a mock implementation of bpyschema.Recorder.
type Recorder struct {
	RecordNodeFn func(class string)
	RecordFn     func(class string, key bpyschema.AttributeKey, v bpyschema.Version)
}

func (r *Recorder) RecordNode(class string) {
	r.RecordNodeFn(class)
}

func (r *Recorder) Record(class string, key bpyschema.AttributeKey, v bpyschema.Version) {
	r.RecordFn(class, key, v)
}

var _ bpyschema.Emitter = (*Emitter)(nil)

// Emitter is a mock implementation of bpyschema.Emitter.
type Emitter struct {
	EmitFn func(w io.Writer, schema *bpyschema.Schema) error
}

func (e *Emitter) Emit(w io.Writer, schema *bpyschema.Schema) error {
	return e.EmitFn(w, schema)
}
