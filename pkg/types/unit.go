package types

import "time"

// MaxUnitNameLen is the maximum length of a unit name in bytes.
const MaxUnitNameLen = 100

// Unit represents one writing session grouping zero or more crumbs.
// Units are created explicitly, never auto-deleted, and immutable once
// created except for their name.
type Unit struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Crumbs holds the unit's crumbs when the unit was loaded with
	// relations. Nil means the relation was not loaded.
	Crumbs []*Crumb `json:"crumbs,omitempty"`
}

// NewUnit constructs a Unit with CreatedAt defaulted to the current UTC
// time. The name is accepted as given within the length bound; units get
// no normalization.
func NewUnit(name string) (*Unit, error) {
	if err := ValidateUnitName(name); err != nil {
		return nil, err
	}
	return &Unit{Name: name, CreatedAt: time.Now().UTC()}, nil
}

// ValidateUnitName checks the unit name constraints.
// Returns ErrNameEmpty or ErrNameTooLong on violation.
func ValidateUnitName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if len(name) > MaxUnitNameLen {
		return ErrNameTooLong
	}
	return nil
}

// Rename sets the unit name. Name is the only mutable unit field.
func (u *Unit) Rename(name string) error {
	if err := ValidateUnitName(name); err != nil {
		return err
	}
	u.Name = name
	return nil
}
