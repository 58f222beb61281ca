package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/bpyschema"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ bpyschema.DocumentSource = (*DocumentCache)(nil)

// CachedDocument is one stored page.
type CachedDocument struct {
	ID          string
	Version     bpyschema.Version
	Class       string
	Content     string
	ContentHash string
	FetchedAt   time.Time
}

// DocumentCache is a read-through cache in front of another DocumentSource.
// Pages are keyed by version and class. A stored page whose content no
// longer matches its hash is fetched again.
type DocumentCache struct {
	db   *DB
	next bpyschema.DocumentSource

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewDocumentCache creates a DocumentCache that fills misses from next.
func NewDocumentCache(db *DB, next bpyschema.DocumentSource) *DocumentCache {
	return &DocumentCache{db: db, next: next, Now: time.Now}
}

// Document implements bpyschema.DocumentSource.
func (c *DocumentCache) Document(ctx context.Context, v bpyschema.Version, class string) (string, error) {
	doc, err := c.FindDocument(ctx, v, class)
	switch {
	case err == nil && doc.ContentHash == hashContent(doc.Content):
		return doc.Content, nil
	case err != nil && bpyschema.ErrorCode(err) != bpyschema.ENOTFOUND:
		return "", err
	}

	content, err := c.next.Document(ctx, v, class)
	if err != nil {
		return "", err
	}
	if err := c.store(ctx, v, class, content); err != nil {
		return "", err
	}
	return content, nil
}

// FindDocument retrieves the stored page of class in version v.
func (c *DocumentCache) FindDocument(ctx context.Context, v bpyschema.Version, class string) (*CachedDocument, error) {
	var doc CachedDocument
	var version, fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, version, class, content, content_hash, fetched_at
		FROM documents
		WHERE version = ? AND class = ?
	`, v.String(), class).Scan(&doc.ID, &version, &doc.Class, &doc.Content, &doc.ContentHash, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, bpyschema.Errorf(bpyschema.ENOTFOUND, "document %s %s not cached", v, class)
	}
	if err != nil {
		return nil, err
	}

	if doc.Version, err = bpyschema.ParseVersion(version); err != nil {
		return nil, err
	}
	if doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Classes lists the cached classes of version v in name order.
func (c *DocumentCache) Classes(ctx context.Context, v bpyschema.Version) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT class FROM documents WHERE version = ? ORDER BY class ASC
	`, v.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []string
	for rows.Next() {
		var class string
		if err := rows.Scan(&class); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}

// Purge removes every cached page of version v and returns the number of
// pages removed.
func (c *DocumentCache) Purge(ctx context.Context, v bpyschema.Version) (int64, error) {
	result, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE version = ?`, v.String())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (c *DocumentCache) store(ctx context.Context, v bpyschema.Version, class, content string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO documents (id, version, class, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (version, class) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, uuid.New().String(), v.String(), class, content, hashContent(content),
		c.Now().UTC().Format(time.RFC3339))
	return err
}
