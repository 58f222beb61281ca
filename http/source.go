// Package http provides a DocumentSource that fetches class pages from the
// hosted Blender Python API reference. The pages are static, so no
// JavaScript rendering is needed.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/bpyschema"
	"golang.org/x/net/html/charset"
)

// DefaultBaseURL is the root of the hosted API reference.
const DefaultBaseURL = "https://docs.blender.org/api"

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure DocumentSource implements bpyschema.DocumentSource at compile time.
var _ bpyschema.DocumentSource = (*DocumentSource)(nil)

// DocumentSource retrieves class pages at {base}/{M}.{m}/bpy.types.{Class}.html.
type DocumentSource struct {
	base    string
	client  *http.Client
	timeout time.Duration
	limiter bpyschema.RequestLimiter
}

// Option configures a DocumentSource.
type Option func(*DocumentSource)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *DocumentSource) {
		s.timeout = d
	}
}

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(base string) Option {
	return func(s *DocumentSource) {
		s.base = strings.TrimSuffix(base, "/")
	}
}

// WithLimiter paces requests per host.
func WithLimiter(l bpyschema.RequestLimiter) Option {
	return func(s *DocumentSource) {
		s.limiter = l
	}
}

// WithClient sets the HTTP client. The timeout option is ignored when a
// client is given.
func WithClient(c *http.Client) Option {
	return func(s *DocumentSource) {
		s.client = c
	}
}

// NewDocumentSource creates a new HTTP-based DocumentSource.
func NewDocumentSource(opts ...Option) *DocumentSource {
	s := &DocumentSource{
		base:    DefaultBaseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// URL returns the address of the page of class in version v.
func (s *DocumentSource) URL(v bpyschema.Version, class string) string {
	return fmt.Sprintf("%s/%s/bpy.types.%s.html", s.base, v, class)
}

// Document implements bpyschema.DocumentSource. HTTP 429 maps to
// ERATELIMIT and HTTP 404 to ENOTFOUND.
func (s *DocumentSource) Document(ctx context.Context, v bpyschema.Version, class string) (string, error) {
	rawURL := s.URL(v, class)

	if s.limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", err
		}
		if err := s.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", bpyschema.Errorf(bpyschema.ERATELIMIT, "HTTP %d for %s", resp.StatusCode, rawURL)
	case http.StatusNotFound:
		return "", bpyschema.Errorf(bpyschema.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, rawURL)
	default:
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
