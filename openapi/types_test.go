package openapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerList(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		tests := []struct {
			name     string
			input    ServerList
			expected string
		}{
			{"single marshals as object", ServerList{Items: []ServerObject{{URL: "/"}}, Single: true}, `{"url":"/"}`},
			{"list marshals as array", ServerList{Items: []ServerObject{{URL: "/"}}}, `[{"url":"/"}]`},
			{"empty list marshals as empty array", ServerList{}, `[]`},
			{"single flag with two items marshals as array", ServerList{
				Items:  []ServerObject{{URL: "https://a.example.com/"}, {URL: "https://b.example.com/"}},
				Single: true,
			}, `[{"url":"https://a.example.com/"},{"url":"https://b.example.com/"}]`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				data, err := json.Marshal(tt.input)
				require.NoError(t, err)
				assert.JSONEq(t, tt.expected, string(data))
			})
		}
	})

	t.Run("unmarshal", func(t *testing.T) {
		tests := []struct {
			name     string
			input    string
			expected ServerList
			wantErr  bool
		}{
			{"object", `{"url":"/"}`, ServerList{Items: []ServerObject{{URL: "/"}}, Single: true}, false},
			{"array", ` [{"url":"/","description":"root"}]`, ServerList{Items: []ServerObject{{URL: "/", Description: "root"}}}, false},
			{"string", `"/"`, ServerList{}, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var l ServerList
				err := json.Unmarshal([]byte(tt.input), &l)
				if tt.wantErr {
					assert.Error(t, err)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.expected, l)
			})
		}
	})
}

func TestRootObjectJSON(t *testing.T) {
	t.Run("minimal root omits optional fields", func(t *testing.T) {
		root := RootObject{
			OpenAPI: "3.0.2",
			Info:    InfoObject{Title: "Test API", Version: "1.0.0"},
			Servers: ServerList{Items: []ServerObject{{URL: "/"}}, Single: true},
			Paths:   "/",
		}
		data, err := json.Marshal(root)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"openapi": "3.0.2",
			"info": {"title": "Test API", "version": "1.0.0"},
			"servers": {"url": "/"},
			"paths": "/"
		}`, string(data))
	})

	t.Run("roundtrip", func(t *testing.T) {
		root := RootObject{
			OpenAPI: "3.0.2",
			Info: InfoObject{
				Title:          "Pet Store",
				Version:        "2.0.0",
				Description:    "A sample pet store API",
				TermsOfService: "https://example.com/terms",
				License:        &LicenseObject{Name: "MIT", URL: "https://opensource.org/licenses/MIT"},
				Contact:        &ContactObject{Name: "API Support", URL: "https://example.com/", Email: "support@example.com"},
			},
			Servers: ServerList{Items: []ServerObject{
				{URL: "https://api.example.com/", Description: "Production"},
				{URL: "https://{env}.example.com/", Variables: map[string]any{"env": map[string]any{"default": "dev"}}},
			}},
			Paths:        "/",
			ExternalDocs: &ExternalDocsObject{URL: "https://docs.example.com/"},
		}

		data, err := json.Marshal(root)
		require.NoError(t, err)

		var roundtrip RootObject
		require.NoError(t, json.Unmarshal(data, &roundtrip))
		assert.Equal(t, root, roundtrip)
	})

	t.Run("external docs always emits description", func(t *testing.T) {
		data, err := json.Marshal(ExternalDocsObject{URL: "https://docs.example.com/"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"url":"https://docs.example.com/","description":""}`, string(data))
	})

	t.Run("server variable object", func(t *testing.T) {
		data, err := json.Marshal(ServerVariable{Enum: []string{"v1", "v2"}, Default: "v1"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"enum":["v1","v2"],"default":"v1"}`, string(data))
	})
}
