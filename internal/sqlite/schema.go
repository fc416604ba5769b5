// Package sqlite implements the SQLite storage backend for the
// breadcrumbs schema. Referential actions (the crumb_tag cascades) and
// the case-insensitive tag name uniqueness are enforced by the database.
package sqlite

// Schema DDL. Entity identifiers are server-assigned integers. The
// crumb.unit_id foreign key is nullable and carries no referential
// action; units are never deleted through this backend.
const (
	createUnit = `CREATE TABLE IF NOT EXISTS unit (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createCrumb = `CREATE TABLE IF NOT EXISTS crumb (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    body TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT,
    visibility TEXT NOT NULL DEFAULT 'draft',
    unit_id INTEGER REFERENCES unit(id)
);`

	createTag = `CREATE TABLE IF NOT EXISTS tag (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);`

	createCrumbTag = `CREATE TABLE IF NOT EXISTS crumb_tag (
    crumb_id INTEGER NOT NULL REFERENCES crumb(id) ON DELETE CASCADE,
    tag_id INTEGER NOT NULL REFERENCES tag(id) ON DELETE CASCADE,
    PRIMARY KEY (crumb_id, tag_id)
);`

	createStoreMeta = `CREATE TABLE IF NOT EXISTS store_meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL. The expression index on lower(name) is what makes tag
// uniqueness case-insensitive; inserts rely on it rather than an
// application-level check-then-insert.
const (
	idxUnitName       = `CREATE INDEX IF NOT EXISTS idx_unit_name ON unit(name);`
	idxCrumbCreatedAt = `CREATE INDEX IF NOT EXISTS idx_crumb_created_at ON crumb(created_at);`
	idxCrumbUnit      = `CREATE INDEX IF NOT EXISTS idx_crumb_unit ON crumb(unit_id);`
	uqTagNameLower    = `CREATE UNIQUE INDEX IF NOT EXISTS uq_tag_name_lower ON tag(lower(name));`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUnit,
	createCrumb,
	createTag,
	createCrumbTag,
	createStoreMeta,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxUnitName,
	idxCrumbCreatedAt,
	idxCrumbUnit,
	uqTagNameLower,
}

// schemaVersion is recorded in store_meta on first attach.
const schemaVersion = "1"
