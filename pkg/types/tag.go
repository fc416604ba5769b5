package types

import "strings"

// Tag name length bounds. Both apply to the normalized form.
const (
	MinTagNameLen = 1
	MaxTagNameLen = 50
)

// Tag is a normalized label attachable to many crumbs. Tag names are
// globally unique under case-insensitive comparison. A Tag in memory
// always holds a name that has passed NormalizeTagName; construction
// goes through NewTag so readers never observe an unnormalized name.
type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Crumbs holds the tagged crumbs when the tag was loaded with
	// relations. Nil means the relation was not loaded.
	Crumbs []*Crumb `json:"crumbs,omitempty"`
}

// NewTag constructs a Tag from raw user input, normalizing the name.
// Returns ErrInvalidTagName when the input does not normalize.
func NewTag(raw string) (*Tag, error) {
	name, err := NormalizeTagName(raw)
	if err != nil {
		return nil, err
	}
	return &Tag{Name: name}, nil
}

// DisplayName returns the human-readable form of the tag name: dashes
// become spaces and each word is title-cased, so "machine-learning"
// renders as "Machine Learning". Computed, never stored.
func (t *Tag) DisplayName() string {
	words := strings.Split(t.Name, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		// Normalized names are ASCII, so byte slicing is safe.
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
