package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTag(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantName string
		wantErr  error
	}{
		{
			name:     "raw input is normalized",
			raw:      "Machine   Learning",
			wantName: "machine-learning",
		},
		{
			name:     "normalized input passes through",
			raw:      "golang",
			wantName: "golang",
		},
		{
			name:    "empty input rejected",
			raw:     "",
			wantErr: ErrInvalidTagName,
		},
		{
			name:    "invalid characters rejected",
			raw:     "not/ok",
			wantErr: ErrInvalidTagName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := NewTag(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, tag.Name)
		})
	}
}

func TestTagDisplayName(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"two words", "machine-learning", "Machine Learning"},
		{"single word", "notes", "Notes"},
		{"digits untouched", "go-1-25", "Go 1 25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := &Tag{Name: tt.tag}
			assert.Equal(t, tt.want, tag.DisplayName())
		})
	}
}

func TestTagDisplayNameInvertsNormalize(t *testing.T) {
	name, err := NormalizeTagName("Machine   Learning")
	require.NoError(t, err)
	tag := &Tag{Name: name}
	assert.Equal(t, "Machine Learning", tag.DisplayName())
}

func TestTagPublic(t *testing.T) {
	tag := &Tag{ID: 7, Name: "slow-burn"}
	pub := tag.Public()
	assert.Equal(t, int64(7), pub.ID)
	assert.Equal(t, "slow-burn", pub.Name)
	assert.Equal(t, "Slow Burn", pub.DisplayName)
}
