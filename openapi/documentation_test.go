package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := NewDocumentation("https://docs.example.com", "Guides")
		require.NoError(t, err)
		assert.Equal(t, "https://docs.example.com/", d.URL())
		assert.Equal(t, "Guides", d.Description())
		assert.Equal(t, ExternalDocsObject{URL: "https://docs.example.com/", Description: "Guides"}, d.Serialize())
	})

	t.Run("empty description is emitted", func(t *testing.T) {
		d, err := NewDocumentation("https://docs.example.com/api", "")
		require.NoError(t, err)

		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `{"url":"https://docs.example.com/api","description":""}`, string(data))
	})

	t.Run("dot segments are resolved", func(t *testing.T) {
		d, err := NewDocumentation("https://docs.example.com/guides/../api/./v1", "")
		require.NoError(t, err)
		assert.Equal(t, "https://docs.example.com/api/v1", d.URL())
	})

	t.Run("invalid url", func(t *testing.T) {
		for _, url := range []string{"", "docs", "/docs", "https://"} {
			_, err := NewDocumentation(url, "")
			assert.ErrorIs(t, err, ErrInvalidFormat, url)
		}
	})
}
