package crawl_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/bpyschema"
	"github.com/fwojciec/bpyschema/crawl"
	"github.com/fwojciec/bpyschema/goquery"
	"github.com/fwojciec/bpyschema/mock"
	"github.com/fwojciec/bpyschema/typemap"
)

func v(major, minor int) bpyschema.Version {
	return bpyschema.Version{Major: major, Minor: minor}
}

// branchPage renders a class page that lists subclasses.
func branchPage(class, parent string, children ...string) string {
	var anchors []string
	for _, c := range children {
		anchors = append(anchors, fmt.Sprintf(`<a class="reference internal" href="bpy.types.%[1]s.html" title="bpy.types.%[1]s"><code>%[1]s</code></a>`, c))
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html><body>
<section id="%s">
<h1>%s(%s)</h1>
<p>base class — <a href="bpy.types.%s.html" title="bpy.types.%s">%s</a></p>
<p>subclasses — %s</p>
</section>
</body></html>`, crawl.SectionID(class, parent), class, parent, parent, parent, parent, strings.Join(anchors, ", "))
}

// leafPage renders a class page with the given name/type attribute pairs.
func leafPage(class, parent string, attrs ...[2]string) string {
	var blocks []string
	for _, a := range attrs {
		blocks = append(blocks, fmt.Sprintf(`<dl class="py attribute">
<dt class="sig sig-object py"><span class="sig-name descname"><span class="pre">%s</span></span></dt>
<dd><dl class="field-list simple">
<dt class="field-odd">Type<span class="colon">:</span></dt>
<dd class="field-odd"><p>%s</p>
</dd>
</dl></dd>
</dl>`, a[0], a[1]))
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html><body>
<section id="%s">
<h1>%s(%s)</h1>
<p>base class — <a href="bpy.types.%s.html" title="bpy.types.%s">%s</a></p>
<dl class="py class">
<dt class="sig sig-object py">class bpy.types.%s(%s)</dt>
<dd><p>Generated node.</p>
%s
</dd>
</dl>
</section>
</body></html>`, crawl.SectionID(class, parent), class, parent, parent, parent, parent, class, parent, strings.Join(blocks, "\n"))
}

// corpus is an in-memory documentation set keyed by version and class.
type corpus struct {
	mu       sync.Mutex
	pages    map[bpyschema.Version]map[string]string
	requests []string
}

func newCorpus() *corpus {
	return &corpus{pages: make(map[bpyschema.Version]map[string]string)}
}

func (c *corpus) add(ver bpyschema.Version, class, html string) {
	if c.pages[ver] == nil {
		c.pages[ver] = make(map[string]string)
	}
	c.pages[ver][class] = html
}

func (c *corpus) requested() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.requests))
	copy(out, c.requests)
	return out
}

func (c *corpus) source() *mock.DocumentSource {
	return &mock.DocumentSource{
		DocumentFn: func(_ context.Context, ver bpyschema.Version, class string) (string, error) {
			c.mu.Lock()
			c.requests = append(c.requests, ver.String()+" "+class)
			c.mu.Unlock()

			html, ok := c.pages[ver][class]
			if !ok {
				return "", bpyschema.Errorf(bpyschema.ENOTFOUND, "bpy.types.%s.html not found", class)
			}
			return html, nil
		},
	}
}

// newTestGenerator returns a Generator over c using the real extractor
// and the default type vocabulary.
func newTestGenerator(c *corpus, versions ...bpyschema.Version) *crawl.Generator {
	seq, err := bpyschema.NewSequence(versions...)
	if err != nil {
		panic(err)
	}
	return &crawl.Generator{
		Source:    c.source(),
		Extractor: crawl.NewExtractor(goquery.NewParser()),
		Resolver:  typemap.Default(),
		Versions:  seq,
	}
}
