package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/meninoebom/breadcrumbs/internal/validation"
	"github.com/meninoebom/breadcrumbs/pkg/types"
)

// crumbColumns is the ordered list of columns selected in crumb queries.
// Must match the scan order in scanCrumb.
const crumbColumns = `id, body, created_at, updated_at, visibility, unit_id`

// scanCrumb scans a sql.Row (or sql.Rows via its Scan method) into a
// types.Crumb. Relations are left unloaded.
func scanCrumb(scanner interface{ Scan(dest ...any) error }) (*types.Crumb, error) {
	var c types.Crumb
	var (
		createdAt string
		updatedAt sql.NullString
		unitID    sql.NullInt64
	)

	err := scanner.Scan(
		&c.ID,
		&c.Body,
		&createdAt,
		&updatedAt,
		&c.Visibility,
		&unitID,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		t, err := parseTime(updatedAt.String)
		if err != nil {
			return nil, err
		}
		c.UpdatedAt = &t
	}
	if unitID.Valid {
		id := unitID.Int64
		c.UnitID = &id
	}
	return &c, nil
}

// CreateCrumb persists a new crumb. A unit_name in the create shape is
// resolved find-or-create before the insert, and every nested tag create
// is resolved find-or-create by normalized name, all in one transaction.
func (b *Backend) CreateCrumb(ctx context.Context, create types.CrumbCreate) (*types.Crumb, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(create); err != nil {
		return nil, err
	}

	crumb, err := types.NewCrumb(create.Body)
	if err != nil {
		return nil, err
	}
	if create.Visibility != "" {
		if err := crumb.SetVisibility(create.Visibility); err != nil {
			return nil, err
		}
	}

	// Normalize and dedupe tag names before touching the database, so a
	// request carrying "Go" and "go" attaches a single tag.
	tagNames := make([]string, 0, len(create.Tags))
	seen := make(map[string]bool, len(create.Tags))
	for _, tc := range create.Tags {
		name, err := types.NormalizeTagName(tc.Name)
		if err != nil {
			return nil, err
		}
		if !seen[name] {
			seen[name] = true
			tagNames = append(tagNames, name)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if create.UnitName != nil {
		unit, err := findOrCreateUnit(ctx, tx, *create.UnitName)
		if err != nil {
			return nil, err
		}
		crumb.UnitID = &unit.ID
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO crumb (body, created_at, updated_at, visibility, unit_id) VALUES (?, ?, NULL, ?, ?)",
		crumb.Body, formatTime(crumb.CreatedAt), string(crumb.Visibility), crumb.UnitID,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting crumb: %w", err)
	}
	crumb.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading crumb id: %w", err)
	}

	for _, name := range tagNames {
		tag, err := findOrCreateTag(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO crumb_tag (crumb_id, tag_id) VALUES (?, ?)",
			crumb.ID, tag.ID,
		); err != nil {
			return nil, fmt.Errorf("attaching tag %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing crumb: %w", err)
	}

	return b.GetCrumb(ctx, crumb.ID)
}

// GetCrumb retrieves a crumb by id with its unit and tags populated.
func (b *Backend) GetCrumb(ctx context.Context, id int64) (*types.Crumb, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		"SELECT "+crumbColumns+" FROM crumb WHERE id = ?", id)
	crumb, err := scanCrumb(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting crumb %d: %w", id, err)
	}

	crumbs := []*types.Crumb{crumb}
	if err := loadTagsForCrumbs(ctx, db, crumbs); err != nil {
		return nil, fmt.Errorf("loading tags for crumb %d: %w", id, err)
	}
	if err := loadUnitsForCrumbs(ctx, db, crumbs); err != nil {
		return nil, fmt.Errorf("loading unit for crumb %d: %w", id, err)
	}
	return crumb, nil
}

// ListCrumbs returns crumbs matching the filter in creation order, each
// with unit and tags populated via batched follow-up queries.
func (b *Backend) ListCrumbs(ctx context.Context, filter types.CrumbFilter) ([]*types.Crumb, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + crumbColumns + " FROM crumb"
	var (
		conds []string
		args  []any
	)
	if filter.Visibility != "" {
		if !filter.Visibility.Valid() {
			return nil, types.ErrInvalidVisibility
		}
		conds = append(conds, "visibility = ?")
		args = append(args, string(filter.Visibility))
	}
	if filter.UnitID != nil {
		conds = append(conds, "unit_id = ?")
		args = append(args, *filter.UnitID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY datetime(created_at), id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing crumbs: %w", err)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadTagsForCrumbs(ctx, db, crumbs); err != nil {
		return nil, err
	}
	if err := loadUnitsForCrumbs(ctx, db, crumbs); err != nil {
		return nil, err
	}
	return crumbs, nil
}

// UpdateCrumb modifies a crumb in place. Nil update fields are left
// unchanged. Every update refreshes updated_at to the current UTC time.
func (b *Backend) UpdateCrumb(ctx context.Context, id int64, update types.CrumbUpdate) (*types.Crumb, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(update); err != nil {
		return nil, err
	}
	if update.Body != nil && *update.Body == "" {
		return nil, types.ErrBodyEmpty
	}
	if update.Visibility != nil && !update.Visibility.Valid() {
		return nil, types.ErrInvalidVisibility
	}

	crumb, err := b.GetCrumb(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Body != nil {
		crumb.Body = *update.Body
	}
	if update.Visibility != nil {
		crumb.Visibility = *update.Visibility
	}
	crumb.Touch(time.Now())

	_, err = db.ExecContext(ctx,
		"UPDATE crumb SET body = ?, visibility = ?, updated_at = ? WHERE id = ?",
		crumb.Body, string(crumb.Visibility), formatTime(*crumb.UpdatedAt), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating crumb %d: %w", id, err)
	}
	return b.GetCrumb(ctx, id)
}

// DeleteCrumb removes a crumb. The crumb_tag cascade removes its
// association rows; tags themselves are untouched.
func (b *Backend) DeleteCrumb(ctx context.Context, id int64) error {
	db, err := b.ready()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, "DELETE FROM crumb WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting crumb %d: %w", id, err)
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

// TagCrumb attaches a tag to a crumb, resolving the tag find-or-create
// by normalized name. Attaching an already-attached tag is a no-op.
func (b *Backend) TagCrumb(ctx context.Context, crumbID int64, rawName string) (*types.Tag, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	var exists int
	err = db.QueryRowContext(ctx,
		"SELECT 1 FROM crumb WHERE id = ?", crumbID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("checking crumb %d: %w", crumbID, err)
	}

	name, err := types.NormalizeTagName(rawName)
	if err != nil {
		return nil, err
	}
	tag, err := findOrCreateTag(ctx, db, name)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx,
		"INSERT OR IGNORE INTO crumb_tag (crumb_id, tag_id) VALUES (?, ?)",
		crumbID, tag.ID,
	); err != nil {
		return nil, fmt.Errorf("attaching tag %q: %w", name, err)
	}
	return tag, nil
}

// UntagCrumb detaches a tag from a crumb.
// Returns ErrNotFound when no such association exists.
func (b *Backend) UntagCrumb(ctx context.Context, crumbID, tagID int64) error {
	db, err := b.ready()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx,
		"DELETE FROM crumb_tag WHERE crumb_id = ? AND tag_id = ?", crumbID, tagID)
	if err != nil {
		return fmt.Errorf("detaching tag %d from crumb %d: %w", tagID, crumbID, err)
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

// loadTagsForCrumbs populates Tags for every crumb in one IN query.
// Every crumb ends up with a non-nil, possibly empty, tag slice ordered
// by tag name.
func loadTagsForCrumbs(ctx context.Context, q querier, crumbs []*types.Crumb) error {
	byID := make(map[int64]*types.Crumb, len(crumbs))
	for _, c := range crumbs {
		c.Tags = []*types.Tag{}
		byID[c.ID] = c
	}
	if len(crumbs) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(crumbs)), ",")
	args := make([]any, 0, len(crumbs))
	for _, c := range crumbs {
		args = append(args, c.ID)
	}

	rows, err := q.QueryContext(ctx,
		`SELECT ct.crumb_id, t.id, t.name
		 FROM crumb_tag ct JOIN tag t ON t.id = ct.tag_id
		 WHERE ct.crumb_id IN (`+placeholders+`) ORDER BY t.name`,
		args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var crumbID int64
		var tag types.Tag
		if err := rows.Scan(&crumbID, &tag.ID, &tag.Name); err != nil {
			return err
		}
		if c, ok := byID[crumbID]; ok {
			c.Tags = append(c.Tags, &tag)
		}
	}
	return rows.Err()
}

// loadUnitsForCrumbs populates Unit for every crumb with an owning unit,
// batching distinct unit ids into one IN query.
func loadUnitsForCrumbs(ctx context.Context, q querier, crumbs []*types.Crumb) error {
	ids := make([]any, 0, len(crumbs))
	seen := make(map[int64]bool, len(crumbs))
	for _, c := range crumbs {
		if c.UnitID != nil && !seen[*c.UnitID] {
			seen[*c.UnitID] = true
			ids = append(ids, *c.UnitID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	rows, err := q.QueryContext(ctx,
		"SELECT "+unitColumns+" FROM unit WHERE id IN ("+placeholders+")",
		ids...)
	if err != nil {
		return err
	}
	defer rows.Close()

	units := make(map[int64]*types.Unit, len(ids))
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return err
		}
		units[u.ID] = u
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, c := range crumbs {
		if c.UnitID != nil {
			c.Unit = units[*c.UnitID]
		}
	}
	return nil
}
