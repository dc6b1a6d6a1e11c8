package openapi

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// LicenseID identifies a well-known license with a canonical name and URL.
type LicenseID uint8

// Well-known licenses.
const (
	LicenseApache2 LicenseID = iota + 1
	LicenseMIT
	LicenseBSD2Clause
	LicenseBSD3Clause
	LicenseGPL3
	LicenseLGPL3
	LicenseMPL2
	LicenseISC
	LicenseUnlicense
)

type licenseEntry struct {
	name string
	url  string
}

var knownLicenses = map[LicenseID]licenseEntry{
	LicenseApache2:    {"Apache-2.0", "https://www.apache.org/licenses/LICENSE-2.0.html"},
	LicenseMIT:        {"MIT", "https://opensource.org/licenses/MIT"},
	LicenseBSD2Clause: {"BSD-2-Clause", "https://opensource.org/licenses/BSD-2-Clause"},
	LicenseBSD3Clause: {"BSD-3-Clause", "https://opensource.org/licenses/BSD-3-Clause"},
	LicenseGPL3:       {"GPL-3.0", "https://www.gnu.org/licenses/gpl-3.0.html"},
	LicenseLGPL3:      {"LGPL-3.0", "https://www.gnu.org/licenses/lgpl-3.0.html"},
	LicenseMPL2:       {"MPL-2.0", "https://www.mozilla.org/en-US/MPL/2.0/"},
	LicenseISC:        {"ISC", "https://opensource.org/licenses/ISC"},
	LicenseUnlicense:  {"Unlicense", "https://unlicense.org/"},
}

// ParseLicenseID resolves a license identifier such as "Apache-2.0" or
// "mit". Matching ignores case.
func ParseLicenseID(s string) (LicenseID, bool) {
	s = strings.TrimSpace(s)
	for id, entry := range knownLicenses {
		if strings.EqualFold(entry.name, s) {
			return id, true
		}
	}
	return 0, false
}

// String returns the canonical identifier, or an empty string for an
// unknown ID.
func (id LicenseID) String() string {
	return knownLicenses[id].name
}

// URL returns the canonical license URL.
func (id LicenseID) URL() string {
	return knownLicenses[id].url
}

// License returns the canonical License for id, or nil if id is unknown.
func (id LicenseID) License() *License {
	entry, ok := knownLicenses[id]
	if !ok {
		return nil
	}
	return &License{name: entry.name, url: entry.url}
}

// License names the license the API is published under.
//
// See: https://spec.openapis.org/oas/v3.0.2#license-object
type License struct {
	name string
	url  string
}

// NewLicense creates a License. When name is a well-known identifier the
// canonical name and URL are used and url is ignored. Otherwise name must
// be non-empty text and url is kept as given.
func NewLicense(name, url string) (*License, error) {
	if id, ok := ParseLicenseID(name); ok {
		return id.License(), nil
	}
	if !utf8.ValidString(name) || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: license name must be non-empty text", ErrInvalidArgument)
	}
	return &License{name: name, url: url}, nil
}

// Name returns the license name.
func (l *License) Name() string { return l.name }

// URL returns the license URL, which may be empty.
func (l *License) URL() string { return l.url }

// Serialize returns the license as a wire object.
func (l *License) Serialize() LicenseObject {
	return LicenseObject{Name: l.name, URL: l.url}
}

// MarshalJSON implements json.Marshaler.
func (l *License) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Serialize())
}

// valid reports whether l was built by NewLicense or LicenseID.License.
func (l *License) valid() bool {
	return l != nil && l.name != ""
}
