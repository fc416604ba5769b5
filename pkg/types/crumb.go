package types

import "time"

// Crumb represents a single markdown note, optionally grouped under a
// unit and attached to any number of tags.
type Crumb struct {
	ID         int64      `json:"id"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
	Visibility Visibility `json:"visibility"`
	UnitID     *int64     `json:"unit_id,omitempty"`

	// Unit and Tags hold related entities when the crumb was loaded with
	// relations. A crumb loaded from a backend always carries non-nil
	// Tags, possibly empty.
	Unit *Unit  `json:"unit,omitempty"`
	Tags []*Tag `json:"tags,omitempty"`
}

// NewCrumb constructs a draft Crumb with CreatedAt set to the current UTC
// time. UpdatedAt starts unset; the storage layer refreshes it on every
// modification. The body is required but has no length cap.
func NewCrumb(body string) (*Crumb, error) {
	if body == "" {
		return nil, ErrBodyEmpty
	}
	return &Crumb{
		Body:       body,
		CreatedAt:  time.Now().UTC(),
		Visibility: VisibilityDraft,
	}, nil
}

// SetVisibility sets the crumb visibility.
// Returns ErrInvalidVisibility for values outside the closed set.
func (c *Crumb) SetVisibility(v Visibility) error {
	if !v.Valid() {
		return ErrInvalidVisibility
	}
	c.Visibility = v
	return nil
}

// Touch records a modification time. Storage backends call this on every
// update so UpdatedAt tracks the last change.
func (c *Crumb) Touch(now time.Time) {
	t := now.UTC()
	c.UpdatedAt = &t
}
