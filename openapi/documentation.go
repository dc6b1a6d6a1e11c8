package openapi

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Documentation references external documentation for the API.
//
// See: https://spec.openapis.org/oas/v3.0.2#external-documentation-object
type Documentation struct {
	url         *url.URL
	description string
}

// NewDocumentation creates a Documentation pointing at an absolute URL.
// The description may be empty.
func NewDocumentation(rawURL, description string) (*Documentation, error) {
	u, err := ParseAbsoluteURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("documentation url: %w", err)
	}
	return &Documentation{url: u, description: description}, nil
}

// URL returns the normalized documentation URL.
func (d *Documentation) URL() string { return d.url.String() }

// Description returns the documentation description.
func (d *Documentation) Description() string { return d.description }

// Serialize returns the documentation as a wire object.
func (d *Documentation) Serialize() ExternalDocsObject {
	return ExternalDocsObject{URL: d.url.String(), Description: d.description}
}

// MarshalJSON implements json.Marshaler.
func (d *Documentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Serialize())
}

func (d *Documentation) valid() bool {
	return d != nil && d.url != nil
}
