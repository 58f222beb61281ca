package main

import (
	"fmt"

	"github.com/fwojciec/bpyschema"
	"github.com/fwojciec/bpyschema/sqlite"
)

func (f *CacheFlags) open(deps *Dependencies) (*sqlite.DB, bpyschema.Version, error) {
	v, err := bpyschema.ParseVersion(f.Version)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bpyschema.ErrorMessage(err))
		return nil, v, err
	}

	db := sqlite.NewDB(f.Path)
	if err := db.Open(); err != nil {
		return nil, v, fmt.Errorf("failed to open cache at %q: %w", f.Path, err)
	}
	return db, v, nil
}

// Run executes the cache list command.
func (c *CacheListCmd) Run(deps *Dependencies) error {
	db, v, err := c.open(deps)
	if err != nil {
		return err
	}
	defer db.Close()

	classes, err := sqlite.NewDocumentCache(db, nil).Classes(deps.Ctx, v)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bpyschema.ErrorMessage(err))
		return err
	}

	if len(classes) == 0 {
		fmt.Fprintf(deps.Stdout, "No cached pages for %s.\n", v)
		return nil
	}

	for _, class := range classes {
		fmt.Fprintln(deps.Stdout, class)
	}
	return nil
}

// Run executes the cache purge command.
func (c *CachePurgeCmd) Run(deps *Dependencies) error {
	db, v, err := c.open(deps)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := sqlite.NewDocumentCache(db, nil).Purge(deps.Ctx, v)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", bpyschema.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed %d cached pages for %s\n", n, v)
	return nil
}
