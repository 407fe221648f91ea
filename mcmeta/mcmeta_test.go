package mcmeta

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("plain descriptor", func(t *testing.T) {
		meta, err := Decode(strings.NewReader(`{
			"pack": {"description": "My pack", "pack_format": 9}
		}`))
		require.NoError(t, err)
		assert.Equal(t, "My pack", meta.Pack.Description)
		assert.Equal(t, 9, meta.Pack.Format)
	})

	t.Run("comments and trailing commas tolerated", func(t *testing.T) {
		meta, err := Decode(strings.NewReader(`{
			// hand-edited
			"pack": {
				"description": "commented",
				"pack_format": 12,
			},
		}`))
		require.NoError(t, err)
		assert.Equal(t, "commented", meta.Pack.Description)
		assert.Equal(t, 12, meta.Pack.Format)
	})

	t.Run("missing pack section", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"other": {}}`))
		assert.ErrorIs(t, err, ErrMissingSection)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`not json`))
		assert.Error(t, err)
	})
}

func TestSection(t *testing.T) {
	meta, err := Decode(strings.NewReader(`{
		"pack": {"description": "d", "pack_format": 1},
		"filter": {"block": ["ns:path"]}
	}`))
	require.NoError(t, err)

	t.Run("typed section", func(t *testing.T) {
		type filter struct {
			Block []string `json:"block"`
		}
		got, err := Section[filter](meta, "filter")
		require.NoError(t, err)
		assert.Equal(t, []string{"ns:path"}, got.Block)
	})

	t.Run("absent section", func(t *testing.T) {
		_, err := Section[map[string]any](meta, "language")
		assert.ErrorIs(t, err, ErrMissingSection)
	})
}
