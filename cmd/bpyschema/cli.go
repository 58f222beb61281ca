package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"BPYSCHEMA_VERBOSE" help:"Log debug output"`

	Generate GenerateCmd `cmd:"" help:"Crawl the reference and write node_settings.py"`
	Resolve  ResolveCmd  `cmd:"" help:"Show how raw type descriptions resolve"`
	Cache    CacheCmd    `cmd:"" help:"Inspect the document cache"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Docs     string `default:"bpy_docs" env:"BPYSCHEMA_DOCS" help:"Root of the unpacked API reference"`
	Remote   bool   `env:"BPYSCHEMA_REMOTE" help:"Fetch pages over HTTP instead of reading --docs"`
	BaseURL  string `name:"base-url" default:"https://docs.blender.org/api" env:"BPYSCHEMA_BASE_URL" help:"Base URL for --remote"`
	Cache    string `env:"BPYSCHEMA_CACHE" help:"SQLite cache path (disabled when empty)"`
	Versions string `default:"3.0-3.6,4.0-4.1" env:"BPYSCHEMA_VERSIONS" help:"Versions to crawl, e.g. 3.0-3.6,4.0-4.1"`

	Root             string   `default:"NodeInternal" env:"BPYSCHEMA_ROOT" help:"Class the walk starts from"`
	Parent           string   `default:"Node" env:"BPYSCHEMA_PARENT" help:"Parent of the root class"`
	Namespace        string   `default:"bpy.types" env:"BPYSCHEMA_NAMESPACE" help:"Namespace of subclass links"`
	Skip             []string `default:"TextureNode" env:"BPYSCHEMA_SKIP" help:"Subclasses never visited (repeatable)"`
	AllowUnsupported bool     `name:"allow-unsupported" env:"BPYSCHEMA_ALLOW_UNSUPPORTED" help:"Report unknown types instead of failing"`

	Parallel    bool    `env:"BPYSCHEMA_PARALLEL" help:"Crawl all versions concurrently"`
	Concurrency int     `short:"c" default:"10" env:"BPYSCHEMA_CONCURRENCY" help:"Concurrent page limit"`
	RPS         float64 `name:"rps" default:"5" env:"BPYSCHEMA_RPS" help:"Requests per second per host for --remote"`

	Out string `short:"o" default:"output/node_settings.py" env:"BPYSCHEMA_OUT" help:"Output file ('-' for stdout)"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Types []string `arg:"" help:"Raw type descriptions"`
}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	List  CacheListCmd  `cmd:"" help:"List cached classes of a version"`
	Purge CachePurgeCmd `cmd:"" help:"Remove cached pages of a version"`
}

// CacheFlags are shared by the cache subcommands.
type CacheFlags struct {
	Path    string `name:"cache" required:"" env:"BPYSCHEMA_CACHE" help:"SQLite cache path"`
	Version string `arg:"" help:"Documentation version, e.g. 4.1"`
}

// CacheListCmd is the "cache list" subcommand.
type CacheListCmd struct {
	CacheFlags `embed:""`
}

// CachePurgeCmd is the "cache purge" subcommand.
type CachePurgeCmd struct {
	CacheFlags `embed:""`
}
