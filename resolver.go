package bpyschema

// ExclusionReason explains why an attribute was left out of the schema.
type ExclusionReason string

// Exclusion reasons.
const (
	ReasonNone           ExclusionReason = ""
	ReasonAlwaysExcluded ExclusionReason = "always_excluded"
	ReasonReadOnly       ExclusionReason = "read_only"
	ReasonUnsupported    ExclusionReason = "unsupported"
)

// Resolution is the outcome of resolving one raw type description.
type Resolution struct {
	// Tag is the canonical tag. It is TagNone when no known prefix matched
	// or when the matched prefix is always excluded.
	Tag TypeTag

	// ReadOnly is set when the raw text carries the read-only marker.
	ReadOnly bool

	// Excluded is set when the attribute must be left out of the schema.
	// Reason tells why.
	Excluded bool
	Reason   ExclusionReason
}

// Supported reports whether the raw text matched a known prefix.
func (r Resolution) Supported() bool {
	return r.Reason != ReasonUnsupported
}

// TypeResolver canonicalizes raw type descriptions such as
// "float in [0, 1], default 0.5" or "ColorRamp, (readonly)".
type TypeResolver interface {
	Resolve(raw string) Resolution
}

// Exclusion records an attribute that was resolvable but left out,
// or that could not be resolved at all.
type Exclusion struct {
	Version   Version
	Class     string
	Attribute string
	RawType   string
	Reason    ExclusionReason
}

// ExclusionReporter receives exclusions as they are found during a crawl.
// Implementations must be safe for concurrent use.
type ExclusionReporter interface {
	ReportExclusion(e Exclusion)
}
