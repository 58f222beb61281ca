package crawl

import (
	"regexp"
	"strings"

	"github.com/fwojciec/bpyschema"
)

var _ bpyschema.SectionExtractor = (*Extractor)(nil)

// Extraction defaults for the Blender Python API reference.
const (
	// SubclassesMarker opens the paragraph listing a class's subclasses.
	SubclassesMarker = "subclasses —"

	// DefaultNamespace qualifies class names in subclass anchor titles.
	DefaultNamespace = "bpy.types"
)

// DefaultUnsupported lists child classes that are never visited.
func DefaultUnsupported() []string {
	return []string{"TextureNode"}
}

// Extractor implements bpyschema.SectionExtractor for Sphinx-generated
// class pages.
type Extractor struct {
	parser      bpyschema.Parser
	namespace   string
	title       *regexp.Regexp
	unsupported map[string]bool
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithNamespace sets the namespace expected in subclass anchor titles.
// Defaults to DefaultNamespace.
func WithNamespace(ns string) ExtractorOption {
	return func(e *Extractor) {
		e.namespace = ns
	}
}

// WithUnsupported replaces the list of child classes that are skipped.
// Defaults to DefaultUnsupported().
func WithUnsupported(classes ...string) ExtractorOption {
	return func(e *Extractor) {
		e.unsupported = make(map[string]bool, len(classes))
		for _, c := range classes {
			e.unsupported[c] = true
		}
	}
}

// NewExtractor creates a new Extractor that parses pages with parser.
func NewExtractor(parser bpyschema.Parser, opts ...ExtractorOption) *Extractor {
	e := &Extractor{parser: parser, namespace: DefaultNamespace}
	WithUnsupported(DefaultUnsupported()...)(e)
	for _, opt := range opts {
		opt(e)
	}
	e.title = regexp.MustCompile(`^` + regexp.QuoteMeta(e.namespace) + `\.(.+)$`)
	return e
}

// SectionID returns the id of the section documenting class as a
// subclass of parent.
func SectionID(class, parent string) string {
	return strings.ToLower(class) + "-" + strings.ToLower(parent)
}

// Extract locates the section for class and classifies it. The second
// paragraph of the section decides: when it starts with SubclassesMarker
// the class is a branch, otherwise it is a leaf and its definition blocks
// are returned as raw attributes.
func (e *Extractor) Extract(html string, v bpyschema.Version, class, parent string) (*bpyschema.Section, error) {
	doc, err := e.parser.Parse(html)
	if err != nil {
		return nil, bpyschema.Structuref(v, class, "", "%s", bpyschema.ErrorMessage(err))
	}

	id := SectionID(class, parent)
	section, ok := doc.FindByID(id)
	if !ok {
		return nil, bpyschema.Structuref(v, class, "", "couldn't find main section %q", id)
	}

	paragraphs := section.FindAll(bpyschema.KindParagraph)
	if len(paragraphs) >= 2 && strings.HasPrefix(strings.TrimSpace(paragraphs[1].Text()), SubclassesMarker) {
		return e.branch(paragraphs[1], v, class)
	}
	return e.leaf(section, v, class)
}

func (e *Extractor) branch(p bpyschema.Node, v bpyschema.Version, class string) (*bpyschema.Section, error) {
	anchors := p.FindAll(bpyschema.KindAnchor)
	if len(anchors) == 0 {
		return nil, bpyschema.Structuref(v, class, "", "no anchors in subclasses paragraph")
	}

	var children, skipped []string
	for _, a := range anchors {
		title, ok := a.Attr("title")
		if !ok || title == "" {
			return nil, bpyschema.Structuref(v, class, "", "subclass anchor %q has no title", strings.TrimSpace(a.Text()))
		}
		m := e.title.FindStringSubmatch(title)
		if m == nil {
			return nil, bpyschema.Structuref(v, class, "", "type %q was not of the form \"%s.x\"", title, e.namespace)
		}

		child := m[1]
		if e.unsupported[child] {
			skipped = append(skipped, child)
			continue
		}
		children = append(children, child)
	}
	return bpyschema.NewBranch(children, skipped), nil
}

func (e *Extractor) leaf(section bpyschema.Node, v bpyschema.Version, class string) (*bpyschema.Section, error) {
	blocks := section.FindAll(bpyschema.KindDefinition)
	attrs := make([]bpyschema.RawAttribute, 0, len(blocks))
	for _, block := range blocks {
		names := block.FindAll(bpyschema.KindName)
		if len(names) == 0 {
			return nil, bpyschema.Structuref(v, class, "", "couldn't find name section")
		}
		name := strings.TrimSpace(names[0].Text())
		if name == "" {
			return nil, bpyschema.Structuref(v, class, "", "empty attribute name")
		}

		types := block.FindAll(bpyschema.KindTypeField)
		if len(types) == 0 {
			return nil, bpyschema.Structuref(v, class, name, "couldn't find type section")
		}

		attrs = append(attrs, bpyschema.RawAttribute{
			Name: name,
			Type: normalizeSpace(types[0].Text()),
		})
	}
	return bpyschema.NewLeaf(attrs), nil
}

// normalizeSpace trims s and collapses internal whitespace runs,
// which Sphinx inserts when wrapping long enum listings.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
