package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RootObject is the serialized form of a Document: the root of an OpenAPI
// 3.0 document restricted to the fields this package builds.
//
// See: https://spec.openapis.org/oas/v3.0.2#openapi-object
type RootObject struct {
	OpenAPI      string              `json:"openapi"`
	Info         InfoObject          `json:"info"`
	Servers      ServerList          `json:"servers"`
	Paths        string              `json:"paths"`
	ExternalDocs *ExternalDocsObject `json:"externalDocs,omitempty"`
}

// InfoObject provides metadata about the API.
//
// See: https://spec.openapis.org/oas/v3.0.2#info-object
type InfoObject struct {
	Title          string         `json:"title"`
	Version        string         `json:"version"`
	Description    string         `json:"description,omitempty"`
	TermsOfService string         `json:"termsOfService,omitempty"`
	License        *LicenseObject `json:"license,omitempty"`
	Contact        *ContactObject `json:"contact,omitempty"`
}

// ContactObject is the serialized form of a Contact.
//
// See: https://spec.openapis.org/oas/v3.0.2#contact-object
type ContactObject struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Email string `json:"email"`
}

// LicenseObject is the serialized form of a License.
//
// See: https://spec.openapis.org/oas/v3.0.2#license-object
type LicenseObject struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// ServerObject is the serialized form of a Server.
//
// See: https://spec.openapis.org/oas/v3.0.2#server-object
type ServerObject struct {
	URL         string         `json:"url"`
	Description string         `json:"description,omitempty"`
	Variables   map[string]any `json:"variables,omitempty"`
}

// ServerVariable represents a server variable for URL template substitution.
// It can be used as a value in ServerOptions.Variables.
//
// See: https://spec.openapis.org/oas/v3.0.2#server-variable-object
type ServerVariable struct {
	Enum        []string `json:"enum,omitempty"`
	Default     string   `json:"default"`
	Description string   `json:"description,omitempty"`
}

// ExternalDocsObject is the serialized form of a Documentation.
//
// See: https://spec.openapis.org/oas/v3.0.2#external-documentation-object
type ExternalDocsObject struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ServerList holds the serialized servers of a document. When Single is
// set and exactly one item is present it encodes as a bare server object,
// otherwise as an array.
type ServerList struct {
	Items  []ServerObject
	Single bool
}

// MarshalJSON encodes the list as an object (single) or array.
func (l ServerList) MarshalJSON() ([]byte, error) {
	if l.Single && len(l.Items) == 1 {
		return json.Marshal(l.Items[0])
	}
	if l.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Items)
}

// UnmarshalJSON decodes the list from either a server object or an array.
func (l *ServerList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("openapi: empty servers value")
	}

	switch data[0] {
	case '{':
		var item ServerObject
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		l.Items = []ServerObject{item}
		l.Single = true
		return nil
	case '[':
		var items []ServerObject
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		l.Items = items
		l.Single = false
		return nil
	default:
		return fmt.Errorf("openapi: servers must be an object or an array")
	}
}
