package openapi

import (
	"regexp"
	"strings"
)

// emailRegexp is the address grammar accepted by IsValidEmail: a dotted
// atom local part and a domain ending in an alphabetic top-level label.
var emailRegexp = regexp.MustCompile(
	"^[-!#$%&'*+/0-9=?A-Z^_a-z`{|}~](\\.?[-!#$%&'*+/0-9=?A-Z^_a-z`{|}~])*" +
		"@[a-zA-Z0-9](-*\\.?[a-zA-Z0-9])*\\.[a-zA-Z](-?[a-zA-Z0-9])+$",
)

const (
	maxEmailLength = 254
	maxLocalLength = 64
	maxLabelLength = 63
)

// IsValidEmail reports whether email is a syntactically valid address.
func IsValidEmail(email string) bool {
	if email == "" || len(email) > maxEmailLength {
		return false
	}
	if !emailRegexp.MatchString(email) {
		return false
	}

	local, domain, _ := strings.Cut(email, "@")
	if len(local) > maxLocalLength {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if len(label) > maxLabelLength {
			return false
		}
	}

	return true
}
