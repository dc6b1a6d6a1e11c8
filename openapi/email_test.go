package openapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"support@example.com", true},
		{"first.last+tag@sub.example.co.uk", true},
		{"o'brien@example.ie", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"user@", false},
		{"user@localhost", false},
		{"user@example.c", false},
		{".user@example.com", false},
		{"user.@example.com", false},
		{"us..er@example.com", false},
		{"user@-example.com", false},
		{"Support <support@example.com>", false},
		{strings.Repeat("a", 65) + "@example.com", false},
		{"user@" + strings.Repeat("a", 64) + ".com", false},
		{strings.Repeat("a", 64) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}
