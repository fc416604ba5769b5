package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{
			name: "already normalized",
			raw:  "machine-learning",
			want: "machine-learning",
		},
		{
			name: "lowercases",
			raw:  "Golang",
			want: "golang",
		},
		{
			name: "whitespace run folds to one dash",
			raw:  "Machine   Learning",
			want: "machine-learning",
		},
		{
			name: "tabs and newlines fold too",
			raw:  "deep\t\nlearning",
			want: "deep-learning",
		},
		{
			name: "dash runs collapse",
			raw:  "machine--learning",
			want: "machine-learning",
		},
		{
			name: "mixed whitespace and dashes collapse",
			raw:  "machine - learning",
			want: "machine-learning",
		},
		{
			name: "leading and trailing dashes stripped",
			raw:  "-machine-learning-",
			want: "machine-learning",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  notes  ",
			want: "notes",
		},
		{
			name: "digits preserved",
			raw:  "Go 1 25",
			want: "go-1-25",
		},
		{
			name:    "empty input rejected",
			raw:     "",
			wantErr: ErrInvalidTagName,
		},
		{
			name:    "whitespace-only input rejected",
			raw:     "   \t\n ",
			wantErr: ErrInvalidTagName,
		},
		{
			name:    "dash-only input rejected",
			raw:     "---",
			wantErr: ErrInvalidTagName,
		},
		{
			name:    "punctuation rejected",
			raw:     "  Machine   Learning--Notes!! ",
			wantErr: ErrInvalidTagName,
		},
		{
			name:    "underscore rejected",
			raw:     "snake_case",
			wantErr: ErrInvalidTagName,
		},
		{
			name:    "non-ascii rejected",
			raw:     "café",
			wantErr: ErrInvalidTagName,
		},
		{
			name:    "over max length rejected",
			raw:     strings.Repeat("a", MaxTagNameLen+1),
			wantErr: ErrInvalidTagName,
		},
		{
			name: "exactly max length accepted",
			raw:  strings.Repeat("a", MaxTagNameLen),
			want: strings.Repeat("a", MaxTagNameLen),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTagName(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTagNameShape(t *testing.T) {
	// Any valid result matches ^[a-z0-9-]+$ with no edge or double dash.
	inputs := []string{
		"Machine Learning",
		"  go   modules  ",
		"A--B--C",
		"one",
		"2 fast 2 furious",
		"- padded -",
	}
	for _, in := range inputs {
		got, err := NormalizeTagName(in)
		require.NoError(t, err, "input %q", in)
		assert.Regexp(t, `^[a-z0-9-]+$`, got)
		assert.False(t, strings.HasPrefix(got, "-"), "no leading dash: %q", got)
		assert.False(t, strings.HasSuffix(got, "-"), "no trailing dash: %q", got)
		assert.NotContains(t, got, "--", "no double dash: %q", got)
	}
}

func TestNormalizeTagNameIdempotent(t *testing.T) {
	inputs := []string{
		"Machine   Learning",
		"tag",
		"  Mixed CASE  tag ",
		"a-b-c",
	}
	for _, in := range inputs {
		once, err := NormalizeTagName(in)
		require.NoError(t, err)
		twice, err := NormalizeTagName(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "normalize must be idempotent for %q", in)
	}
}
