package bpyschema

import "context"

// DocumentSource retrieves the raw HTML page documenting one class in one
// documentation version.
type DocumentSource interface {
	// Document returns the page for class in version v.
	// Returns ENOTFOUND if the page does not exist and ERATELIMIT if the
	// source is throttling requests.
	Document(ctx context.Context, v Version, class string) (string, error)
}

// NodeKind selects the elements a Node query returns.
type NodeKind int

// Node kinds understood by Parser implementations.
const (
	// KindParagraph selects paragraph elements.
	KindParagraph NodeKind = iota
	// KindAnchor selects hyperlink elements.
	KindAnchor
	// KindDefinition selects attribute and data definition blocks.
	KindDefinition
	// KindName selects the name node of a definition block.
	KindName
	// KindTypeField selects the type-description node of a definition block.
	KindTypeField
)

// Node is a parser-agnostic view of one element of a parsed document.
type Node interface {
	// FindByID returns the first descendant with the given id.
	FindByID(id string) (Node, bool)

	// FindAll returns all descendants of the given kind in document order.
	FindAll(kind NodeKind) []Node

	// Text returns the text content of the node and its descendants.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)
}

// Parser turns raw HTML into a Node tree.
type Parser interface {
	Parse(html string) (Node, error)
}

// Section is what a documentation page says about one class: either the
// subclasses it branches into, or the attributes of a leaf.
type Section struct {
	// Subclasses lists child classes to visit. Empty for leaves.
	Subclasses []string

	// Skipped lists child classes that are permanently unsupported.
	Skipped []string

	// Attributes lists raw attribute definitions of a leaf.
	Attributes []RawAttribute

	branch bool
}

// NewBranch returns a Section for a class that lists subclasses.
func NewBranch(subclasses, skipped []string) *Section {
	return &Section{Subclasses: subclasses, Skipped: skipped, branch: true}
}

// NewLeaf returns a Section for a class that defines attributes.
func NewLeaf(attrs []RawAttribute) *Section {
	return &Section{Attributes: attrs}
}

// IsBranch reports whether the class lists subclasses instead of attributes.
func (s *Section) IsBranch() bool {
	return s.branch
}

// RawAttribute is an attribute name with its unresolved type description.
type RawAttribute struct {
	Name string
	Type string
}

// SectionExtractor locates the section describing class (documented as a
// subclass of parent) within html and classifies it.
type SectionExtractor interface {
	// Extract returns ESTRUCTURE if the page does not have the expected shape.
	Extract(html string, v Version, class, parent string) (*Section, error)
}

// RequestLimiter paces outgoing requests per host.
type RequestLimiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
