package mock

import "github.com/fwojciec/bpyschema"

var _ bpyschema.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of bpyschema.SectionExtractor.
type SectionExtractor struct {
	ExtractFn func(html string, v bpyschema.Version, class, parent string) (*bpyschema.Section, error)
}

func (e *SectionExtractor) Extract(html string, v bpyschema.Version, class, parent string) (*bpyschema.Section, error) {
	return e.ExtractFn(html, v, class, parent)
}

var _ bpyschema.Parser = (*Parser)(nil)

// Parser is a mock implementation of bpyschema.Parser.
type Parser struct {
	ParseFn func(html string) (bpyschema.Node, error)
}

func (p *Parser) Parse(html string) (bpyschema.Node, error) {
	return p.ParseFn(html)
}
