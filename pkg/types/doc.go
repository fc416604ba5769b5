// Package types defines the Breadcrumbs entities (units, crumbs, tags),
// their create/public projections, the Store interface, and the standard
// error values shared by storage backends and the CLI.
package types
