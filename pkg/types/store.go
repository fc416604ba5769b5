package types

import "context"

// CrumbFilter narrows ListCrumbs results. The zero value matches every
// crumb. Results are always ordered by creation time.
type CrumbFilter struct {
	Visibility Visibility // match this visibility when non-empty
	UnitID     *int64     // match crumbs owned by this unit when set
}

// Store is the typed persistence interface for the breadcrumbs schema.
// Callers attach to a backend, operate on entities, and detach when done.
// After Detach, all entity operations return ErrStoreClosed.
//
// Reads project relationships transparently: a crumb comes back with its
// unit and tags resolved, a unit or tag with its crumbs, without the
// caller constructing joins.
type Store interface {
	// Attach connects the store to the backend described by config,
	// creating the data directory and schema as needed.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// CreateUnit persists a new unit from its create shape.
	CreateUnit(ctx context.Context, create UnitCreate) (*Unit, error)

	// GetUnit retrieves a unit by id with its crumbs populated.
	// Returns ErrNotFound if no unit exists with that id.
	GetUnit(ctx context.Context, id int64) (*Unit, error)

	// ListUnits returns all units ordered by creation time.
	ListUnits(ctx context.Context) ([]*Unit, error)

	// RenameUnit changes a unit's name, its only mutable field.
	RenameUnit(ctx context.Context, id int64, name string) (*Unit, error)

	// FindOrCreateUnitByName returns the oldest unit with the given name,
	// creating one if none exists. Unit names are not unique; resolution
	// by name prefers the earliest match.
	FindOrCreateUnitByName(ctx context.Context, name string) (*Unit, error)

	// CreateCrumb persists a new crumb, resolving UnitName and nested
	// tag creates in the same transaction.
	CreateCrumb(ctx context.Context, create CrumbCreate) (*Crumb, error)

	// GetCrumb retrieves a crumb by id with its unit and tags populated.
	// Returns ErrNotFound if no crumb exists with that id.
	GetCrumb(ctx context.Context, id int64) (*Crumb, error)

	// ListCrumbs returns crumbs matching the filter, ordered by creation
	// time, each with unit and tags populated.
	ListCrumbs(ctx context.Context, filter CrumbFilter) ([]*Crumb, error)

	// UpdateCrumb modifies a crumb in place and refreshes its update
	// timestamp.
	UpdateCrumb(ctx context.Context, id int64, update CrumbUpdate) (*Crumb, error)

	// DeleteCrumb removes a crumb. Its tag associations are removed by
	// the storage cascade; the tags themselves are untouched.
	DeleteCrumb(ctx context.Context, id int64) error

	// TagCrumb attaches a tag to a crumb, resolving the tag
	// find-or-create by normalized name. Attaching an already-attached
	// tag is a no-op.
	TagCrumb(ctx context.Context, crumbID int64, rawName string) (*Tag, error)

	// UntagCrumb detaches a tag from a crumb.
	UntagCrumb(ctx context.Context, crumbID, tagID int64) error

	// CreateTag persists a new tag from its create shape. Returns
	// ErrDuplicateTag when the normalized name collides
	// case-insensitively with an existing tag.
	CreateTag(ctx context.Context, create TagCreate) (*Tag, error)

	// GetTag retrieves a tag by id with its crumbs populated.
	// Returns ErrNotFound if no tag exists with that id.
	GetTag(ctx context.Context, id int64) (*Tag, error)

	// ListTags returns all tags ordered by name.
	ListTags(ctx context.Context) ([]*Tag, error)

	// FindOrCreateTagByName returns the tag with the given normalized
	// name, creating it on first use.
	FindOrCreateTagByName(ctx context.Context, raw string) (*Tag, error)

	// DeleteTag removes a tag. Its crumb associations are removed by the
	// storage cascade; the crumbs themselves are untouched.
	DeleteTag(ctx context.Context, id int64) error
}
