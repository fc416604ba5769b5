package types

// CrumbTag is the crumb-tag join pair. Both sides are required and the
// pair itself is the identity. Rows are removed by the storage cascade
// when either parent is deleted; no application logic is involved.
type CrumbTag struct {
	CrumbID int64 `json:"crumb_id"`
	TagID   int64 `json:"tag_id"`
}
