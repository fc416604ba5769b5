package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCrumb(t *testing.T) {
	before := time.Now().UTC()
	c, err := NewCrumb("# Draft text")
	require.NoError(t, err)

	assert.Equal(t, "# Draft text", c.Body)
	assert.Equal(t, VisibilityDraft, c.Visibility, "visibility defaults to draft")
	assert.False(t, c.CreatedAt.Before(before))
	assert.Nil(t, c.UpdatedAt, "UpdatedAt starts unset")
	assert.Nil(t, c.UnitID)
	assert.Nil(t, c.Tags)
}

func TestNewCrumbEmptyBody(t *testing.T) {
	_, err := NewCrumb("")
	assert.ErrorIs(t, err, ErrBodyEmpty)
}

func TestCrumbSetVisibility(t *testing.T) {
	tests := []struct {
		name    string
		target  Visibility
		wantErr error
	}{
		{"publish", VisibilityPublished, nil},
		{"back to draft", VisibilityDraft, nil},
		{"unknown rejected", Visibility("hidden"), ErrInvalidVisibility},
		{"empty rejected", Visibility(""), ErrInvalidVisibility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCrumb("body")
			require.NoError(t, err)

			err = c.SetVisibility(tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, VisibilityDraft, c.Visibility, "visibility unchanged on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, c.Visibility)
		})
	}
}

func TestCrumbTouch(t *testing.T) {
	c, err := NewCrumb("body")
	require.NoError(t, err)
	require.Nil(t, c.UpdatedAt)

	now := time.Date(2026, 5, 4, 12, 30, 0, 0, time.FixedZone("CEST", 2*3600))
	c.Touch(now)
	require.NotNil(t, c.UpdatedAt)
	assert.Equal(t, time.UTC, c.UpdatedAt.Location(), "Touch stores UTC")
	assert.True(t, c.UpdatedAt.Equal(now))
	assert.Equal(t, c.CreatedAt, c.CreatedAt, "CreatedAt untouched")
}

func TestCrumbPublicNesting(t *testing.T) {
	unitID := int64(1)
	c := &Crumb{
		ID:         10,
		Body:       "note",
		CreatedAt:  time.Now().UTC(),
		Visibility: VisibilityDraft,
		UnitID:     &unitID,
		Unit:       &Unit{ID: 1, Name: "morning-thoughts", CreatedAt: time.Now().UTC()},
		Tags: []*Tag{
			{ID: 2, Name: "machine-learning"},
		},
	}

	pub := c.Public()
	require.NotNil(t, pub.Unit)
	assert.Equal(t, "morning-thoughts", pub.Unit.Name)
	require.Len(t, pub.Tags, 1)
	assert.Equal(t, "Machine Learning", pub.Tags[0].DisplayName)
}

func TestCrumbPublicEmptyTags(t *testing.T) {
	c := &Crumb{ID: 1, Body: "note", Visibility: VisibilityDraft}
	pub := c.Public()
	assert.NotNil(t, pub.Tags, "empty tag set serializes as [], not null")
	assert.Empty(t, pub.Tags)
	assert.Nil(t, pub.Unit)
}
