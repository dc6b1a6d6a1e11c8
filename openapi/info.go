package openapi

import (
	"fmt"
	"unicode/utf8"
)

// InfoFields are the caller-supplied info values for Document.UpdateInfo.
// Empty strings and nil pointers are treated as absent.
//
// See: https://spec.openapis.org/oas/v3.0.2#info-object
type InfoFields struct {
	Title          string
	Description    string
	Version        string
	TermsOfService string

	// License sets the license. Mutually exclusive with LicenseName.
	License *License

	// LicenseName is a well-known identifier (e.g. "Apache-2.0") or a
	// free-form license name, promoted with NewLicense.
	LicenseName string

	Contact *Contact
}

// infoKey is a bit set of info fields.
type infoKey uint8

const (
	keyTitle infoKey = 1 << iota
	keyDescription
	keyVersion
	keyTermsOfService
	keyLicense
	keyContact
)

type info struct {
	title          string
	description    string
	version        string
	termsOfService string
	license        *License
	contact        *Contact

	// explicit marks keys set by a caller; defaults never overwrite them.
	explicit infoKey
}

func (i *info) serialize() InfoObject {
	obj := InfoObject{
		Title:          i.title,
		Version:        i.version,
		Description:    i.description,
		TermsOfService: i.termsOfService,
	}
	if i.license != nil {
		license := i.license.Serialize()
		obj.License = &license
	}
	if i.contact != nil {
		contact := i.contact.Serialize()
		obj.Contact = &contact
	}
	return obj
}

// UpdateInfo validates fields and merges them into the info object.
//
// Explicit fields win over project defaults from the configured provider.
// Defaults only fill title, description, version, and license keys that no
// call has set explicitly. Repeated calls merge additively; the newest
// explicit value for a key replaces the previous one. A provider failure
// is logged and otherwise ignored.
//
// No state is modified when validation fails.
func (d *Document) UpdateInfo(fields InfoFields) error {
	license, err := fields.validate()
	if err != nil {
		return err
	}

	defaults := d.defaults()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.info.setText(keyTitle, &d.info.title, fields.Title, defaults.title)
	d.info.setText(keyDescription, &d.info.description, fields.Description, defaults.description)
	d.info.setText(keyVersion, &d.info.version, fields.Version, defaults.version)
	d.info.setText(keyTermsOfService, &d.info.termsOfService, fields.TermsOfService, "")

	switch {
	case license != nil:
		d.info.license = license
		d.info.explicit |= keyLicense
	case defaults.license != nil && d.info.explicit&keyLicense == 0:
		d.info.license = defaults.license
	}

	if fields.Contact != nil {
		d.info.contact = fields.Contact
		d.info.explicit |= keyContact
	}

	return nil
}

func (i *info) setText(key infoKey, dst *string, explicit, def string) {
	if explicit != "" {
		*dst = explicit
		i.explicit |= key
		return
	}
	if def != "" && i.explicit&key == 0 {
		*dst = def
	}
}

// validate checks every field and resolves the license.
func (f InfoFields) validate() (*License, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"title", f.Title},
		{"description", f.Description},
		{"version", f.Version},
		{"termsOfService", f.TermsOfService},
	} {
		if !utf8.ValidString(field.value) {
			return nil, fmt.Errorf("%w: %s must be text", ErrInvalidArgument, field.name)
		}
	}

	if f.Contact != nil && !f.Contact.valid() {
		return nil, fmt.Errorf("%w: contact must be created by NewContact", ErrInvalidArgument)
	}

	switch {
	case f.License != nil && f.LicenseName != "":
		return nil, fmt.Errorf("%w: license and licenseName are mutually exclusive", ErrInvalidArgument)
	case f.License != nil:
		if !f.License.valid() {
			return nil, fmt.Errorf("%w: license must be created by NewLicense", ErrInvalidArgument)
		}
		return f.License, nil
	case f.LicenseName != "":
		license, err := NewLicense(f.LicenseName, "")
		if err != nil {
			return nil, err
		}
		return license, nil
	}

	return nil, nil
}

type infoDefaults struct {
	title       string
	description string
	version     string
	license     *License
}

// defaults queries the provider. Failures degrade to empty defaults.
func (d *Document) defaults() infoDefaults {
	if d.provider == nil {
		return infoDefaults{}
	}

	meta, err := d.provider.Metadata()
	if err != nil {
		d.logger.Warn("project metadata unavailable", "error", err)
		return infoDefaults{}
	}
	if meta == nil || meta.IsZero() {
		return infoDefaults{}
	}

	defs := infoDefaults{
		title:       meta.Title,
		description: meta.Description,
		version:     meta.Version,
	}

	if meta.License != "" {
		license, err := NewLicense(meta.License, "")
		if err != nil {
			d.logger.Warn("ignoring project license", "license", meta.License, "error", err)
		} else {
			defs.license = license
		}
	}

	return defs
}
