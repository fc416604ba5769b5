package types

// Visibility is the publication state of a crumb.
type Visibility string

// Crumb visibility values. The set is closed; anything else is rejected
// at construction.
const (
	VisibilityDraft     Visibility = "draft"
	VisibilityPublished Visibility = "published"
)

// validVisibilities is the set of recognized visibility values.
var validVisibilities = map[Visibility]bool{
	VisibilityDraft:     true,
	VisibilityPublished: true,
}

// Valid reports whether v is a recognized visibility value.
func (v Visibility) Valid() bool {
	return validVisibilities[v]
}

// ParseVisibility converts raw user input to a Visibility.
// Returns ErrInvalidVisibility for values outside the closed set.
func ParseVisibility(raw string) (Visibility, error) {
	v := Visibility(raw)
	if !v.Valid() {
		return "", ErrInvalidVisibility
	}
	return v, nil
}
