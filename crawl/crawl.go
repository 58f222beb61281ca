// Package crawl walks the class hierarchy of the Blender Python API
// reference across documentation versions and aggregates the attribute
// schema of every leaf class.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/bpyschema"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Default hierarchy root for node classes.
const (
	DefaultRoot   = "NodeInternal"
	DefaultParent = "Node"
)

// Generator crawls every version of the documentation and produces the
// version-annotated schema.
type Generator struct {
	Source    bpyschema.DocumentSource
	Extractor bpyschema.SectionExtractor
	Resolver  bpyschema.TypeResolver
	Reporter  bpyschema.ExclusionReporter
	Logger    *slog.Logger

	// Versions to crawl. Required by Generate.
	Versions *bpyschema.Sequence

	// Root and Parent name the class the walk starts from.
	// Default to DefaultRoot and DefaultParent.
	Root   string
	Parent string

	// AllowUnsupported reports unresolvable types as exclusions instead of
	// failing the crawl.
	AllowUnsupported bool

	// Parallel crawls all versions concurrently instead of one by one.
	Parallel bool

	// Concurrency bounds the pages fetched and extracted at once.
	// Zero means unbounded.
	Concurrency int

	Progress ProgressFunc

	semOnce sync.Once
	sem     *semaphore.Weighted
}

// Result holds the outcome of a full crawl.
type Result struct {
	Schema     *bpyschema.Schema
	Exclusions []bpyschema.Exclusion
	Visited    int
}

// ProgressEvent reports progress of a crawl, one version at a time.
type ProgressEvent struct {
	Type    ProgressType
	Version bpyschema.Version
	Visited int
	Error   error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Generate crawls every configured version into one Aggregator and
// compresses the observations into a schema. The first fatal error aborts
// the run.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	if g.Versions == nil {
		return nil, bpyschema.Errorf(bpyschema.EINVALID, "version sequence required")
	}

	agg := NewAggregator()
	excl := &exclusionLog{next: g.Reporter}
	w := g.newWalk(agg, excl)

	if g.Parallel {
		eg, ectx := errgroup.WithContext(ctx)
		for _, v := range g.Versions.Versions() {
			eg.Go(func() error {
				return w.crawl(ectx, v)
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for _, v := range g.Versions.Versions() {
			if err := w.crawl(ctx, v); err != nil {
				return nil, err
			}
		}
	}

	schema, err := bpyschema.Compress(g.Versions, agg.Occurrences())
	if err != nil {
		return nil, err
	}

	return &Result{
		Schema:     schema,
		Exclusions: excl.sorted(),
		Visited:    int(w.visited.Load()),
	}, nil
}

// CrawlVersion walks the hierarchy of version v from the configured root,
// recording leaf attributes into rec.
func (g *Generator) CrawlVersion(ctx context.Context, rec bpyschema.Recorder, v bpyschema.Version) error {
	return g.newWalk(rec, g.Reporter).crawl(ctx, v)
}

func (g *Generator) newWalk(rec bpyschema.Recorder, reporter bpyschema.ExclusionReporter) *walk {
	root, parent := g.Root, g.Parent
	if root == "" {
		root = DefaultRoot
	}
	if parent == "" {
		parent = DefaultParent
	}
	return &walk{
		g:        g,
		rec:      rec,
		reporter: reporter,
		root:     root,
		parent:   parent,
		logger:   g.logger(),
	}
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// semaphore returns the shared in-flight limit, or nil when unbounded.
func (g *Generator) semaphore() *semaphore.Weighted {
	g.semOnce.Do(func() {
		if g.Concurrency > 0 {
			g.sem = semaphore.NewWeighted(int64(g.Concurrency))
		}
	})
	return g.sem
}

// walk holds the state shared by all nodes of one or more version crawls.
type walk struct {
	g        *Generator
	rec      bpyschema.Recorder
	reporter bpyschema.ExclusionReporter
	root     string
	parent   string
	logger   *slog.Logger
	visited  atomic.Int64
}

func (w *walk) crawl(ctx context.Context, v bpyschema.Version) error {
	w.progress(ProgressEvent{Type: ProgressStarted, Version: v})
	w.logger.Info("crawl version", "version", v.String(), "root", w.root)

	var visited atomic.Int64
	begin := time.Now()
	err := w.visit(ctx, v, w.root, w.parent, &visited)

	w.visited.Add(visited.Load())
	w.logger.Info("crawl version done",
		"version", v.String(),
		"visited", visited.Load(),
		"duration", time.Since(begin),
		"err", err,
	)
	if err != nil {
		w.progress(ProgressEvent{Type: ProgressFailed, Version: v, Visited: int(visited.Load()), Error: err})
		return err
	}
	w.progress(ProgressEvent{Type: ProgressCompleted, Version: v, Visited: int(visited.Load())})
	return nil
}

// visit processes class and, for branches, all of its subclasses
// concurrently. It returns once the whole subtree is done. The first error
// cancels the remaining siblings.
func (w *walk) visit(ctx context.Context, v bpyschema.Version, class, parent string, visited *atomic.Int64) error {
	section, err := w.extract(ctx, v, class, parent)
	if err != nil {
		return err
	}
	visited.Add(1)

	if !section.IsBranch() {
		return w.leaf(v, class, section.Attributes)
	}

	for _, s := range section.Skipped {
		w.logger.Debug("skip unsupported class", "version", v.String(), "class", s, "parent", class)
	}

	eg, ectx := errgroup.WithContext(ctx)
	for _, child := range section.Subclasses {
		eg.Go(func() error {
			return w.visit(ectx, v, child, class, visited)
		})
	}
	return eg.Wait()
}

// extract fetches and classifies one page. The in-flight slot is released
// before any children are spawned.
func (w *walk) extract(ctx context.Context, v bpyschema.Version, class, parent string) (*bpyschema.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if sem := w.g.semaphore(); sem != nil {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer sem.Release(1)
	}

	html, err := w.g.Source.Document(ctx, v, class)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", v, class, err)
	}
	return w.g.Extractor.Extract(html, v, class, parent)
}

func (w *walk) leaf(v bpyschema.Version, class string, attrs []bpyschema.RawAttribute) error {
	w.rec.RecordNode(class)

	for _, attr := range attrs {
		res := w.g.Resolver.Resolve(attr.Type)
		if !res.Supported() {
			w.logger.Warn("unsupported type",
				"version", v.String(),
				"class", class,
				"attribute", attr.Name,
				"raw", attr.Type,
			)
			if !w.g.AllowUnsupported {
				return &bpyschema.Error{
					Code:      bpyschema.EUNSUPPORTED,
					Message:   fmt.Sprintf("unexpected type string %q", attr.Type),
					Version:   v.String(),
					Class:     class,
					Attribute: attr.Name,
				}
			}
		}

		if res.Excluded {
			w.report(bpyschema.Exclusion{
				Version:   v,
				Class:     class,
				Attribute: attr.Name,
				RawType:   attr.Type,
				Reason:    res.Reason,
			})
			continue
		}

		w.rec.Record(class, bpyschema.AttributeKey{Name: attr.Name, Type: res.Tag}, v)
	}
	return nil
}

func (w *walk) report(e bpyschema.Exclusion) {
	if w.reporter != nil {
		w.reporter.ReportExclusion(e)
	}
}

func (w *walk) progress(event ProgressEvent) {
	if w.g.Progress != nil {
		w.g.Progress(event)
	}
}

var _ bpyschema.ExclusionReporter = (*exclusionLog)(nil)

// exclusionLog collects exclusions for the Result and forwards them.
type exclusionLog struct {
	mu      sync.Mutex
	entries []bpyschema.Exclusion
	next    bpyschema.ExclusionReporter
}

func (l *exclusionLog) ReportExclusion(e bpyschema.Exclusion) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()

	if l.next != nil {
		l.next.ReportExclusion(e)
	}
}

// sorted returns the collected exclusions ordered by version, class,
// attribute and raw type.
func (l *exclusionLog) sorted() []bpyschema.Exclusion {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]bpyschema.Exclusion, len(l.entries))
	copy(out, l.entries)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if c := a.Version.Compare(b.Version); c != 0 {
			return c < 0
		}
		if a.Class != b.Class {
			return a.Class < b.Class
		}
		if a.Attribute != b.Attribute {
			return a.Attribute < b.Attribute
		}
		return a.RawType < b.RawType
	})
	return out
}
