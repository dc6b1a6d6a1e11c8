package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSemver(t *testing.T) {
	tests := []struct {
		version string
		valid   bool
	}{
		{"3.0.2", true},
		{"3.0.0", true},
		{"v3.0.3", true},
		{"1.0.0-rc.1", true},
		{"1.0.0+build.5", true},
		{"", false},
		{"3.0", false},
		{"3", false},
		{"not-a-version", false},
		{"03.0.0", false},
		{"vv3.0.0", false},
		{"=3.0.2", true},
		{" 3.0.2", true},
		{"3.0.2\n", true},
		{"=v3.0.2", true},
		{"v=3.0.2", false},
		{"==3.0.2", false},
		{"=", false},
		{"v", false},
		{"   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidSemver(tt.version))
		})
	}
}

func TestCleanSemver(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"3.0.2", "3.0.2"},
		{"v3.0.3", "3.0.3"},
		{" =v3.0.2 ", "3.0.2"},
		{"1.0.0-rc.1+build.5", "1.0.0-rc.1+build.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := cleanSemver(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
