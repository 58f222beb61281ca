package mock

import "github.com/fwojciec/bpyschema"

var _ bpyschema.TypeResolver = (*TypeResolver)(nil)

// TypeResolver is a mock implementation of bpyschema.TypeResolver.
type TypeResolver struct {
	ResolveFn func(raw string) bpyschema.Resolution
}

func (r *TypeResolver) Resolve(raw string) bpyschema.Resolution {
	return r.ResolveFn(raw)
}

var _ bpyschema.ExclusionReporter = (*ExclusionReporter)(nil)

// ExclusionReporter is a mock implementation of bpyschema.ExclusionReporter.
type ExclusionReporter struct {
	ReportExclusionFn func(e bpyschema.Exclusion)
}

func (r *ExclusionReporter) ReportExclusion(e bpyschema.Exclusion) {
	r.ReportExclusionFn(e)
}
