package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAbsoluteURL(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			input    string
			expected string
		}{
			{"http://example.com", "http://example.com/"},
			{"https://example.com/v1", "https://example.com/v1"},
			{"HTTPS://API.Example.COM/Path", "https://api.example.com/Path"},
			{"http://example.com:80/", "http://example.com/"},
			{"https://example.com:443", "https://example.com/"},
			{"https://example.com:8443", "https://example.com:8443/"},
			{"http://127.0.0.1:8080", "http://127.0.0.1:8080/"},
			{"http://[::1]:8080/api", "http://[::1]:8080/api"},
			{"http://[::1]", "http://[::1]/"},
			{"http://bücher.example", "http://xn--bcher-kva.example/"},
			{"mailto:support@example.com", "mailto:support@example.com"},
			{"file:///etc/hosts", "file:///etc/hosts"},
			{"  https://example.com  ", "https://example.com/"},
			{"https://example.com?q=1#top", "https://example.com/?q=1#top"},
			{"http://api_gateway:8080", "http://api_gateway:8080/"},
			{"http://API_Gateway/health", "http://api_gateway/health"},
			{"https://example.com/docs/../api", "https://example.com/api"},
			{"https://example.com/a/./b/", "https://example.com/a/b/"},
			{"https://example.com/a/b/..", "https://example.com/a/"},
			{"http://example.com/../..", "http://example.com/"},
			{"https://example.com/docs/../api?q=1#x", "https://example.com/api?q=1#x"},
			{"file:///etc/../etc/hosts", "file:///etc/hosts"},
		}

		for _, tt := range tests {
			t.Run(tt.input, func(t *testing.T) {
				u, err := ParseAbsoluteURL(tt.input)
				require.NoError(t, err)
				assert.Equal(t, tt.expected, u.String())
			})
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, input := range []string{
			"",
			"/",
			"example.com",
			"not a url",
			"http://",
			"https:///path",
			"http://exa mple.com",
			"http://%zz",
		} {
			t.Run(input, func(t *testing.T) {
				_, err := ParseAbsoluteURL(input)
				assert.ErrorIs(t, err, ErrInvalidFormat)
			})
		}
	})
}
