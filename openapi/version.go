package openapi

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// DefaultSpecVersion is the OpenAPI Specification version used when a
// Document is created without an explicit one.
//
// See: https://spec.openapis.org/oas/v3.0.2
const DefaultSpecVersion = "3.0.2"

// IsValidSemver reports whether v is a semantic version such as "3.0.2".
// Surrounding whitespace and a leading "=" and "v" are tolerated.
func IsValidSemver(v string) bool {
	_, ok := cleanSemver(v)
	return ok
}

// cleanSemver returns v in plain "major.minor.patch" form, so " =v3.0.2"
// becomes "3.0.2".
func cleanSemver(v string) (string, bool) {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "=")
	v = strings.TrimPrefix(v, "v")
	if v == "" {
		return "", false
	}

	sv, err := semver.StrictNewVersion(v)
	if err != nil {
		return "", false
	}
	return sv.String(), true
}
