package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/meninoebom/breadcrumbs/internal/validation"
	"github.com/meninoebom/breadcrumbs/pkg/types"
)

// tagColumns is the ordered list of columns selected in tag queries.
// Must match the scan order in scanTag.
const tagColumns = `id, name`

// scanTag scans a sql.Row (or sql.Rows via its Scan method) into a
// types.Tag.
func scanTag(scanner interface{ Scan(dest ...any) error }) (*types.Tag, error) {
	var t types.Tag
	if err := scanner.Scan(&t.ID, &t.Name); err != nil {
		return nil, err
	}
	return &t, nil
}

// isUniqueViolation reports whether err is the driver's unique
// constraint failure, raised here only by the uq_tag_name_lower index.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// CreateTag persists a new tag, normalizing the name at construction.
// Returns ErrDuplicateTag when the name collides case-insensitively with
// an existing tag; the unique index performs the check atomically.
func (b *Backend) CreateTag(ctx context.Context, create types.TagCreate) (*types.Tag, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(create); err != nil {
		return nil, err
	}

	tag, err := types.NewTag(create.Name)
	if err != nil {
		return nil, err
	}

	if err := insertTag(ctx, db, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// insertTag writes the tag row and fills in the server-assigned id.
// The tag name must already be normalized.
func insertTag(ctx context.Context, q querier, tag *types.Tag) error {
	res, err := q.ExecContext(ctx,
		"INSERT INTO tag (name) VALUES (?)", tag.Name)
	if isUniqueViolation(err) {
		return fmt.Errorf("tag %q: %w", tag.Name, types.ErrDuplicateTag)
	}
	if err != nil {
		return fmt.Errorf("inserting tag: %w", err)
	}
	tag.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading tag id: %w", err)
	}
	return nil
}

// GetTag retrieves a tag by id with its tagged crumbs populated.
func (b *Backend) GetTag(ctx context.Context, id int64) (*types.Tag, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		"SELECT "+tagColumns+" FROM tag WHERE id = ?", id)
	tag, err := scanTag(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting tag %d: %w", id, err)
	}

	tag.Crumbs, err = b.loadTagCrumbs(ctx, db, id)
	if err != nil {
		return nil, fmt.Errorf("loading crumbs for tag %d: %w", id, err)
	}
	return tag, nil
}

// loadTagCrumbs returns the crumbs carrying this tag in creation order.
func (b *Backend) loadTagCrumbs(ctx context.Context, q querier, tagID int64) ([]*types.Crumb, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT c.id, c.body, c.created_at, c.updated_at, c.visibility, c.unit_id
		 FROM crumb c JOIN crumb_tag ct ON ct.crumb_id = c.id
		 WHERE ct.tag_id = ? ORDER BY datetime(c.created_at), c.id`,
		tagID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	crumbs := []*types.Crumb{}
	for rows.Next() {
		c, err := scanCrumb(rows)
		if err != nil {
			return nil, err
		}
		crumbs = append(crumbs, c)
	}
	return crumbs, rows.Err()
}

// ListTags returns all tags ordered by name.
func (b *Backend) ListTags(ctx context.Context) ([]*types.Tag, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+tagColumns+" FROM tag ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer rows.Close()

	tags := []*types.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// FindOrCreateTagByName resolves a tag by raw name, normalizing first
// and creating the tag on first use.
func (b *Backend) FindOrCreateTagByName(ctx context.Context, raw string) (*types.Tag, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	name, err := types.NormalizeTagName(raw)
	if err != nil {
		return nil, err
	}
	return findOrCreateTag(ctx, db, name)
}

// findOrCreateTag looks a normalized name up case-insensitively and
// inserts on miss. A concurrent insert can still win the race; the
// unique index reports it and the lookup is retried, so the caller
// always gets the surviving row.
func findOrCreateTag(ctx context.Context, q querier, name string) (*types.Tag, error) {
	lookup := func() (*types.Tag, error) {
		row := q.QueryRowContext(ctx,
			"SELECT "+tagColumns+" FROM tag WHERE lower(name) = ?", name)
		return scanTag(row)
	}

	tag, err := lookup()
	if err == nil {
		return tag, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("finding tag %q: %w", name, err)
	}

	tag = &types.Tag{Name: name}
	if err := insertTag(ctx, q, tag); err == nil {
		return tag, nil
	} else if !errors.Is(err, types.ErrDuplicateTag) {
		return nil, err
	}

	tag, err = lookup()
	if err != nil {
		return nil, fmt.Errorf("finding tag %q after race: %w", name, err)
	}
	return tag, nil
}

// DeleteTag removes a tag. The crumb_tag cascade removes its
// association rows; the crumbs themselves are untouched.
func (b *Backend) DeleteTag(ctx context.Context, id int64) error {
	db, err := b.ready()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM tag WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tag %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
