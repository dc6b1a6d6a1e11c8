package openapi

import (
	"encoding/json"
	"fmt"
	"net/url"
	"unicode/utf8"
)

// Contact holds the contact information for the exposed API.
//
// See: https://spec.openapis.org/oas/v3.0.2#contact-object
type Contact struct {
	name  string
	url   *url.URL
	email string
}

// NewContact validates and creates a Contact. The email must be a valid
// address and url an absolute URL.
func NewContact(name, rawURL, email string) (*Contact, error) {
	if !utf8.ValidString(name) {
		return nil, fmt.Errorf("%w: contact name must be text", ErrInvalidArgument)
	}
	if !IsValidEmail(email) {
		return nil, fmt.Errorf("%w: contact email %q is not a valid email address", ErrInvalidFormat, email)
	}

	u, err := ParseAbsoluteURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("contact url: %w", err)
	}

	return &Contact{name: name, url: u, email: email}, nil
}

// Name returns the contact name.
func (c *Contact) Name() string { return c.name }

// URL returns the normalized contact URL.
func (c *Contact) URL() string { return c.url.String() }

// Email returns the contact email address.
func (c *Contact) Email() string { return c.email }

// Serialize returns the contact as a wire object.
func (c *Contact) Serialize() ContactObject {
	return ContactObject{
		Name:  c.name,
		URL:   c.url.String(),
		Email: c.email,
	}
}

// MarshalJSON implements json.Marshaler.
func (c *Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Serialize())
}

func (c *Contact) valid() bool {
	return c != nil && c.url != nil
}
