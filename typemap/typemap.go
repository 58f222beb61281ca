// Package typemap resolves the prose type descriptions of the Blender
// Python API reference into canonical type tags.
package typemap

import (
	"sort"
	"strings"

	"github.com/fwojciec/bpyschema"
)

var _ bpyschema.TypeResolver = (*Resolver)(nil)

// ReadOnlyMarker is the substring that flags a read-only property.
const ReadOnlyMarker = "readonly"

// Excluded is the tag value for prefixes whose attributes are never part
// of the schema, regardless of the read-only flag.
const Excluded bpyschema.TypeTag = "-"

// Resolver maps raw type descriptions to canonical tags by longest
// known prefix.
type Resolver struct {
	// prefixes sorted by descending length, so the first match is the longest.
	prefixes      []string
	tags          map[string]bpyschema.TypeTag
	allowReadOnly map[bpyschema.TypeTag]bool
}

// New returns a Resolver for the given prefix dictionary. Prefixes mapped to
// Excluded drop their attributes unconditionally. Read-only attributes are
// dropped unless their tag is listed in allowReadOnly.
func New(tags map[string]bpyschema.TypeTag, allowReadOnly []bpyschema.TypeTag) *Resolver {
	r := &Resolver{
		tags:          make(map[string]bpyschema.TypeTag, len(tags)),
		allowReadOnly: make(map[bpyschema.TypeTag]bool, len(allowReadOnly)),
	}
	for prefix, tag := range tags {
		// The empty prefix matches everything and would hide unsupported types.
		if prefix == "" {
			continue
		}
		r.tags[prefix] = tag
		r.prefixes = append(r.prefixes, prefix)
	}
	sort.Slice(r.prefixes, func(i, j int) bool {
		a, b := r.prefixes[i], r.prefixes[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	for _, tag := range allowReadOnly {
		r.allowReadOnly[tag] = true
	}
	return r
}

// Resolve canonicalizes raw. An empty or unknown description resolves to
// TagNone with ReasonUnsupported.
func (r *Resolver) Resolve(raw string) bpyschema.Resolution {
	res := bpyschema.Resolution{
		ReadOnly: strings.Contains(raw, ReadOnlyMarker),
	}

	prefix, ok := r.match(raw)
	if !ok {
		res.Excluded = true
		res.Reason = bpyschema.ReasonUnsupported
		return res
	}

	tag := r.tags[prefix]
	switch {
	case tag == Excluded:
		res.Excluded = true
		res.Reason = bpyschema.ReasonAlwaysExcluded
	case res.ReadOnly && !r.allowReadOnly[tag]:
		res.Tag = tag
		res.Excluded = true
		res.Reason = bpyschema.ReasonReadOnly
	default:
		res.Tag = tag
	}
	return res
}

// Prefix returns the longest known prefix of raw.
func (r *Resolver) Prefix(raw string) (string, bool) {
	return r.match(raw)
}

func (r *Resolver) match(raw string) (string, bool) {
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(raw, prefix) {
			return prefix, true
		}
	}
	return "", false
}
