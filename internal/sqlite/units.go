package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/meninoebom/breadcrumbs/internal/validation"
	"github.com/meninoebom/breadcrumbs/pkg/types"
)

// querier is the subset of database/sql shared by *sql.DB and *sql.Tx,
// so find-or-create helpers can run inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// unitColumns is the ordered list of columns selected in unit queries.
// Must match the scan order in scanUnit.
const unitColumns = `id, name, created_at`

// scanUnit scans a sql.Row (or sql.Rows via its Scan method) into a
// types.Unit.
func scanUnit(scanner interface{ Scan(dest ...any) error }) (*types.Unit, error) {
	var u types.Unit
	var createdAt string

	if err := scanner.Scan(&u.ID, &u.Name, &createdAt); err != nil {
		return nil, err
	}

	var err error
	u.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUnit persists a new unit. CreatedAt defaults to the current UTC
// time when the create shape omits it.
func (b *Backend) CreateUnit(ctx context.Context, create types.UnitCreate) (*types.Unit, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}
	if err := validation.Struct(create); err != nil {
		return nil, err
	}

	unit, err := types.NewUnit(create.Name)
	if err != nil {
		return nil, err
	}
	if create.CreatedAt != nil {
		unit.CreatedAt = create.CreatedAt.UTC()
	}

	if err := insertUnit(ctx, db, unit); err != nil {
		return nil, err
	}
	unit.Crumbs = []*types.Crumb{}
	return unit, nil
}

// insertUnit writes the unit row and fills in the server-assigned id.
func insertUnit(ctx context.Context, q querier, unit *types.Unit) error {
	res, err := q.ExecContext(ctx,
		"INSERT INTO unit (name, created_at) VALUES (?, ?)",
		unit.Name, formatTime(unit.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting unit: %w", err)
	}
	unit.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading unit id: %w", err)
	}
	return nil
}

// GetUnit retrieves a unit by id with its crumb collection populated.
func (b *Backend) GetUnit(ctx context.Context, id int64) (*types.Unit, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx,
		"SELECT "+unitColumns+" FROM unit WHERE id = ?", id)
	unit, err := scanUnit(row)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting unit %d: %w", id, err)
	}

	unit.Crumbs, err = b.loadUnitCrumbs(ctx, db, id)
	if err != nil {
		return nil, fmt.Errorf("loading crumbs for unit %d: %w", id, err)
	}
	return unit, nil
}

// loadUnitCrumbs returns the unit's crumbs in creation order, each with
// its tags populated.
func (b *Backend) loadUnitCrumbs(ctx context.Context, q querier, unitID int64) ([]*types.Crumb, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+crumbColumns+" FROM crumb WHERE unit_id = ? ORDER BY datetime(created_at), id",
		unitID)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadTagsForCrumbs(ctx, q, crumbs); err != nil {
		return nil, err
	}
	return crumbs, nil
}

// ListUnits returns all units ordered by creation time. Crumb
// collections are not loaded; use GetUnit for the full projection.
func (b *Backend) ListUnits(ctx context.Context) ([]*types.Unit, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		"SELECT "+unitColumns+" FROM unit ORDER BY datetime(created_at), id")
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	units := []*types.Unit{}
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return units, nil
}

// RenameUnit changes a unit's name, its only mutable field.
func (b *Backend) RenameUnit(ctx context.Context, id int64, name string) (*types.Unit, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}
	if err := types.ValidateUnitName(name); err != nil {
		return nil, err
	}

	res, err := db.ExecContext(ctx,
		"UPDATE unit SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return nil, fmt.Errorf("renaming unit %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, types.ErrNotFound
	}
	return b.GetUnit(ctx, id)
}

// FindOrCreateUnitByName resolves a unit by name, creating one when none
// exists. Names are not unique; the earliest match wins.
func (b *Backend) FindOrCreateUnitByName(ctx context.Context, name string) (*types.Unit, error) {
	db, err := b.ready()
	if err != nil {
		return nil, err
	}
	return findOrCreateUnit(ctx, db, name)
}

func findOrCreateUnit(ctx context.Context, q querier, name string) (*types.Unit, error) {
	if err := types.ValidateUnitName(name); err != nil {
		return nil, err
	}

	row := q.QueryRowContext(ctx,
		"SELECT "+unitColumns+" FROM unit WHERE name = ? ORDER BY datetime(created_at), id LIMIT 1",
		name)
	unit, err := scanUnit(row)
	if err == nil {
		return unit, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("finding unit %q: %w", name, err)
	}

	unit, err = types.NewUnit(name)
	if err != nil {
		return nil, err
	}
	if err := insertUnit(ctx, q, unit); err != nil {
		return nil, err
	}
	return unit, nil
}
