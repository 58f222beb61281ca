package crawl

import (
	"sort"
	"sync"

	"github.com/fwojciec/bpyschema"
)

var _ bpyschema.Recorder = (*Aggregator)(nil)

// Aggregator accumulates attribute observations across versions.
// It is safe for concurrent use by multiple goroutines.
type Aggregator struct {
	mu    sync.Mutex
	nodes map[string]map[bpyschema.AttributeKey]map[bpyschema.Version]struct{}
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		nodes: make(map[string]map[bpyschema.AttributeKey]map[bpyschema.Version]struct{}),
	}
}

// RecordNode registers class so it appears in the schema even without
// attributes.
func (a *Aggregator) RecordNode(class string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.node(class)
}

// Record notes that key was observed on class in version v.
func (a *Aggregator) Record(class string, key bpyschema.AttributeKey, v bpyschema.Version) {
	a.mu.Lock()
	defer a.mu.Unlock()

	attrs := a.node(class)
	versions, ok := attrs[key]
	if !ok {
		versions = make(map[bpyschema.Version]struct{})
		attrs[key] = versions
	}
	versions[v] = struct{}{}
}

// node returns the attribute map for class, creating it if needed.
// Callers must hold mu.
func (a *Aggregator) node(class string) map[bpyschema.AttributeKey]map[bpyschema.Version]struct{} {
	attrs, ok := a.nodes[class]
	if !ok {
		attrs = make(map[bpyschema.AttributeKey]map[bpyschema.Version]struct{})
		a.nodes[class] = attrs
	}
	return attrs
}

// Occurrences returns a copy of the accumulated observations with version
// lists sorted ascending.
func (a *Aggregator) Occurrences() bpyschema.Occurrences {
	a.mu.Lock()
	defer a.mu.Unlock()

	occ := make(bpyschema.Occurrences, len(a.nodes))
	for class, attrs := range a.nodes {
		out := make(map[bpyschema.AttributeKey][]bpyschema.Version, len(attrs))
		for key, set := range attrs {
			versions := make([]bpyschema.Version, 0, len(set))
			for v := range set {
				versions = append(versions, v)
			}
			sort.Slice(versions, func(i, j int) bool { return versions[i].Less(versions[j]) })
			out[key] = versions
		}
		occ[class] = out
	}
	return occ
}
