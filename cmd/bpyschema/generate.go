package main

import (
	"fmt"

	"github.com/fwojciec/bpyschema"
	"github.com/fwojciec/bpyschema/crawl"
	"github.com/fwojciec/bpyschema/fs"
	"github.com/fwojciec/bpyschema/goquery"
	bpyhttp "github.com/fwojciec/bpyschema/http"
	"github.com/fwojciec/bpyschema/python"
	bpyslog "github.com/fwojciec/bpyschema/slog"
	"github.com/fwojciec/bpyschema/sqlite"
	"github.com/fwojciec/bpyschema/typemap"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	seq, err := bpyschema.ParseSequence(c.Versions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bpyschema.ErrorMessage(err))
		return err
	}

	source := c.source(deps)
	if c.Cache != "" {
		db := sqlite.NewDB(c.Cache)
		if err := db.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set BPYSCHEMA_CACHE to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", c.Cache, err)
		}
		defer db.Close()
		source = sqlite.NewDocumentCache(db, source)
	}
	source = bpyslog.NewLoggingSource(source, deps.Logger)

	extractor := crawl.NewExtractor(goquery.NewParser(),
		crawl.WithNamespace(c.Namespace),
		crawl.WithUnsupported(c.Skip...),
	)

	g := &crawl.Generator{
		Source:           source,
		Extractor:        bpyslog.NewLoggingExtractor(extractor, deps.Logger),
		Resolver:         typemap.Default(),
		Reporter:         bpyslog.NewExclusionLogger(deps.Logger),
		Logger:           deps.Logger,
		Versions:         seq,
		Root:             c.Root,
		Parent:           c.Parent,
		AllowUnsupported: c.AllowUnsupported,
		Parallel:         c.Parallel,
		Concurrency:      c.Concurrency,
		Progress: func(e crawl.ProgressEvent) {
			switch e.Type {
			case crawl.ProgressStarted:
				fmt.Fprintf(deps.Stderr, "Processing version %s\n", e.Version)
			case crawl.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "Failed version %s after %d pages\n", e.Version, e.Visited)
			}
		},
	}

	result, err := g.Generate(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bpyschema.ErrorMessage(err))
		return err
	}

	emitter := python.NewEmitter()
	if c.Out == "-" {
		return emitter.Emit(deps.Stdout, result.Schema)
	}

	if err := fs.NewFileWriter(c.Out, emitter).WriteSchema(result.Schema); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bpyschema.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d nodes to %s (%d pages, %d excluded attributes)\n",
		len(result.Schema.Nodes), c.Out, result.Visited, len(result.Exclusions))
	return nil
}

func (c *GenerateCmd) source(deps *Dependencies) bpyschema.DocumentSource {
	if !c.Remote {
		return fs.NewDocumentSource(c.Docs)
	}

	logger := deps.Logger
	remote := bpyhttp.NewDocumentSource(
		bpyhttp.WithBaseURL(c.BaseURL),
		bpyhttp.WithLimiter(crawl.NewHostLimiter(c.RPS, 1)),
	)
	return crawl.NewRetrySource(remote, crawl.WithRetryLogger(func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	}))
}
