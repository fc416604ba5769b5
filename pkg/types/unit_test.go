package types

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnit(t *testing.T) {
	tests := []struct {
		name     string
		unitName string
		wantErr  error
	}{
		{"simple name", "morning-thoughts", nil},
		{"name with spaces kept as given", "Morning Thoughts", nil},
		{"exactly max length", strings.Repeat("n", MaxUnitNameLen), nil},
		{"empty rejected", "", ErrNameEmpty},
		{"over max length rejected", strings.Repeat("n", MaxUnitNameLen+1), ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now().UTC()
			u, err := NewUnit(tt.unitName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			// No normalization on unit names.
			assert.Equal(t, tt.unitName, u.Name)
			assert.False(t, u.CreatedAt.Before(before), "CreatedAt defaults to now")
			assert.Equal(t, time.UTC, u.CreatedAt.Location())
		})
	}
}

func TestUnitRename(t *testing.T) {
	u, err := NewUnit("first")
	require.NoError(t, err)

	require.NoError(t, u.Rename("second"))
	assert.Equal(t, "second", u.Name)

	assert.ErrorIs(t, u.Rename(""), ErrNameEmpty)
	assert.Equal(t, "second", u.Name, "name unchanged on error")

	assert.ErrorIs(t, u.Rename(strings.Repeat("x", MaxUnitNameLen+1)), ErrNameTooLong)
	assert.Equal(t, "second", u.Name)
}

func TestUnitPublic(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	u := &Unit{ID: 3, Name: "morning-thoughts", CreatedAt: created}
	pub := u.Public()
	assert.Equal(t, int64(3), pub.ID)
	assert.Equal(t, "morning-thoughts", pub.Name)
	assert.Equal(t, created, pub.CreatedAt)
}
