package main

import (
	"fmt"

	"github.com/fwojciec/bpyschema"
	"github.com/fwojciec/bpyschema/typemap"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	resolver := typemap.Default()
	for _, raw := range c.Types {
		res := resolver.Resolve(raw)
		tag := string(res.Tag)
		if res.Tag == bpyschema.TagNone {
			tag = "-"
		}
		reason := "ok"
		if res.Excluded {
			reason = string(res.Reason)
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%q\n", tag, reason, raw)
	}
	return nil
}
