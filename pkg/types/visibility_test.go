package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Visibility
		wantErr error
	}{
		{"draft", "draft", VisibilityDraft, nil},
		{"published", "published", VisibilityPublished, nil},
		{"empty rejected", "", "", ErrInvalidVisibility},
		{"unknown rejected", "archived", "", ErrInvalidVisibility},
		{"case sensitive", "Draft", "", ErrInvalidVisibility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVisibility(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisibilityValid(t *testing.T) {
	assert.True(t, VisibilityDraft.Valid())
	assert.True(t, VisibilityPublished.Valid())
	assert.False(t, Visibility("hidden").Valid())
	assert.False(t, Visibility("").Valid())
}
