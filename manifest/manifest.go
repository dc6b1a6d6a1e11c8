package manifest

import "errors"

// Reader errors.
var (
	// ErrUnsupportedFormat is returned when a manifest file extension is
	// neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("manifest: unsupported file format")

	// ErrTooLarge is returned when a manifest exceeds the read limit.
	ErrTooLarge = errors.New("manifest: file too large")

	// ErrNoBuildInfo is returned when the binary carries no build information.
	ErrNoBuildInfo = errors.New("manifest: build info not available")
)

// Metadata holds project defaults. Empty fields are absent.
type Metadata struct {
	Title       string
	Description string
	Version     string

	// License is a license identifier (e.g. "MIT") or free-form name.
	License string
}

// IsZero reports whether no field is set.
func (m Metadata) IsZero() bool {
	return m == Metadata{}
}

// merge fills empty fields of m from other.
func (m *Metadata) merge(other Metadata) {
	if m.Title == "" {
		m.Title = other.Title
	}
	if m.Description == "" {
		m.Description = other.Description
	}
	if m.Version == "" {
		m.Version = other.Version
	}
	if m.License == "" {
		m.License = other.License
	}
}

// Provider returns project metadata. A nil Metadata with a nil error means
// no metadata is available.
type Provider interface {
	Metadata() (*Metadata, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() (*Metadata, error)

// Metadata calls f.
func (f ProviderFunc) Metadata() (*Metadata, error) {
	return f()
}

type staticProvider struct {
	meta Metadata
}

// Static returns a Provider that always yields meta.
func Static(meta Metadata) Provider {
	return staticProvider{meta: meta}
}

func (p staticProvider) Metadata() (*Metadata, error) {
	meta := p.meta
	return &meta, nil
}

type chainProvider struct {
	providers []Provider
}

// Chain returns a Provider that merges the results of providers field by
// field; earlier providers win. Failing providers are skipped. An error is
// returned only when every provider failed.
func Chain(providers ...Provider) Provider {
	return chainProvider{providers: providers}
}

func (c chainProvider) Metadata() (*Metadata, error) {
	var (
		merged Metadata
		errs   []error
		found  bool
	)

	for _, p := range c.providers {
		if p == nil {
			continue
		}
		meta, err := p.Metadata()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if meta == nil {
			continue
		}
		found = true
		merged.merge(*meta)
	}

	if !found && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if !found {
		return nil, nil
	}
	return &merged, nil
}
