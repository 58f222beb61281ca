// Package goquery implements the bpyschema document model on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bpyschema"
)

var _ bpyschema.Parser = (*Parser)(nil)

// DefaultSelectors are the CSS selectors matching the Sphinx markup of the
// Blender Python API reference.
func DefaultSelectors() map[bpyschema.NodeKind]string {
	return map[bpyschema.NodeKind]string{
		bpyschema.KindParagraph:  "p",
		bpyschema.KindAnchor:     "a",
		bpyschema.KindDefinition: "dl.py.attribute, dl.py.data",
		bpyschema.KindName:       "code.sig-name.descname, span.sig-name.descname",
		bpyschema.KindTypeField:  "dd.field-odd",
	}
}

// Parser parses HTML with goquery and resolves node kinds through CSS
// selectors.
type Parser struct {
	selectors map[bpyschema.NodeKind]string
}

// Option configures a Parser.
type Option func(*Parser)

// WithSelector overrides the CSS selector used for a node kind.
func WithSelector(kind bpyschema.NodeKind, selector string) Option {
	return func(p *Parser) {
		p.selectors[kind] = selector
	}
}

// NewParser creates a new Parser using DefaultSelectors.
func NewParser(opts ...Option) *Parser {
	p := &Parser{selectors: DefaultSelectors()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses html into a document node.
func (p *Parser) Parse(html string) (bpyschema.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bpyschema.Errorf(bpyschema.EINVALID, "failed to parse HTML: %v", err)
	}
	return &node{sel: doc.Selection, selectors: p.selectors}, nil
}

// node adapts a goquery selection to bpyschema.Node.
type node struct {
	sel       *goquery.Selection
	selectors map[bpyschema.NodeKind]string
}

func (n *node) FindByID(id string) (bpyschema.Node, bool) {
	found := n.sel.Find("[id=" + strconv.Quote(id) + "]").First()
	if found.Length() == 0 {
		return nil, false
	}
	return &node{sel: found, selectors: n.selectors}, true
}

func (n *node) FindAll(kind bpyschema.NodeKind) []bpyschema.Node {
	selector, ok := n.selectors[kind]
	if !ok {
		return nil
	}

	var nodes []bpyschema.Node
	n.sel.Find(selector).Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &node{sel: s, selectors: n.selectors})
	})
	return nodes
}

func (n *node) Text() string {
	return n.sel.Text()
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}
