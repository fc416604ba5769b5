package types

import "time"

// Create shapes are the fields a caller may supply at creation time;
// server-assigned fields (ids, implicit timestamps) are omitted. Public
// shapes are the projections safe for external exposure. The validate
// tags are checked by internal/validation before any persistence attempt.

// UnitCreate is the caller-supplied shape for creating a unit.
// CreatedAt is optional; the current UTC time is used when omitted.
type UnitCreate struct {
	Name      string     `json:"name" validate:"required,max=100"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// UnitPublic is the externally exposed projection of a unit.
type UnitPublic struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the unit's external projection.
func (u *Unit) Public() UnitPublic {
	return UnitPublic{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}

// TagCreate is the caller-supplied shape for creating a tag. The name is
// raw input; normalization happens at construction.
type TagCreate struct {
	Name string `json:"name" validate:"required,max=50"`
}

// TagPublic is the externally exposed projection of a tag.
type TagPublic struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Public returns the tag's external projection.
func (t *Tag) Public() TagPublic {
	return TagPublic{ID: t.ID, Name: t.Name, DisplayName: t.DisplayName()}
}

// CrumbCreate is the caller-supplied shape for creating a crumb.
// UnitName, when set, stands in for a direct unit reference: the store
// resolves-or-creates a unit by that name before persisting the crumb.
// Tags are resolved find-or-create by normalized name. Visibility
// defaults to draft when empty.
type CrumbCreate struct {
	Body       string      `json:"body" validate:"required"`
	Visibility Visibility  `json:"visibility,omitempty" validate:"omitempty,oneof=draft published"`
	UnitName   *string     `json:"unit_name,omitempty" validate:"omitempty,max=100"`
	Tags       []TagCreate `json:"tags,omitempty" validate:"dive"`
}

// CrumbUpdate carries the mutable crumb fields for in-place updates.
// Nil fields are left unchanged.
type CrumbUpdate struct {
	Body       *string     `json:"body,omitempty" validate:"omitempty,min=1"`
	Visibility *Visibility `json:"visibility,omitempty" validate:"omitempty,oneof=draft published"`
}

// CrumbPublic is the externally exposed projection of a crumb. The
// resolved unit and tags are nested public shapes, not references.
type CrumbPublic struct {
	ID         int64       `json:"id"`
	Body       string      `json:"body"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  *time.Time  `json:"updated_at,omitempty"`
	Visibility Visibility  `json:"visibility"`
	Unit       *UnitPublic `json:"unit,omitempty"`
	Tags       []TagPublic `json:"tags"`
}

// Public returns the crumb's external projection. Tags is always
// non-nil so the empty set serializes as [].
func (c *Crumb) Public() CrumbPublic {
	p := CrumbPublic{
		ID:         c.ID,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		Visibility: c.Visibility,
		Tags:       make([]TagPublic, 0, len(c.Tags)),
	}
	if c.Unit != nil {
		up := c.Unit.Public()
		p.Unit = &up
	}
	for _, t := range c.Tags {
		p.Tags = append(p.Tags, t.Public())
	}
	return p
}
