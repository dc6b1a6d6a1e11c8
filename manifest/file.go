package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxFileSize is the default read limit for manifest files.
const MaxFileSize = 1 << 20

// FileProvider reads metadata from a JSON or YAML manifest in a file system.
type FileProvider struct {
	fsys    fs.FS
	name    string
	maxSize int64
}

// File returns a provider reading name from fsys. The format is chosen by
// extension: ".json" for the package.json layout, ".yaml" or ".yml" for YAML.
func File(fsys fs.FS, name string) *FileProvider {
	return &FileProvider{fsys: fsys, name: name, maxSize: MaxFileSize}
}

// WithMaxSize overrides the read limit. Non-positive values restore the
// default.
func (p *FileProvider) WithMaxSize(n int64) *FileProvider {
	if n <= 0 {
		n = MaxFileSize
	}
	p.maxSize = n
	return p
}

// Metadata reads and decodes the manifest.
func (p *FileProvider) Metadata() (*Metadata, error) {
	var decode func([]byte) (*Metadata, error)
	switch strings.ToLower(path.Ext(p.name)) {
	case ".json":
		decode = decodePackageJSON
	case ".yaml", ".yml":
		decode = decodeYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, p.name)
	}

	data, err := p.read()
	if err != nil {
		return nil, err
	}

	meta, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", p.name, err)
	}
	return meta, nil
}

func (p *FileProvider) read() ([]byte, error) {
	f, err := p.fsys.Open(p.name)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, p.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", p.name, err)
	}
	if int64(len(data)) > p.maxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, p.name, p.maxSize)
	}
	return data, nil
}

// packageJSON is the subset of package.json read as defaults.
type packageJSON struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Version     string          `json:"version"`
	License     json.RawMessage `json:"license"`
}

// legacyLicense is the deprecated {"type": ..., "url": ...} license form.
type legacyLicense struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func decodePackageJSON(data []byte) (*Metadata, error) {
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, err
	}

	meta := &Metadata{
		Title:       pkg.Name,
		Description: pkg.Description,
		Version:     pkg.Version,
	}

	raw := bytes.TrimSpace(pkg.License)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
	case raw[0] == '"':
		if err := json.Unmarshal(raw, &meta.License); err != nil {
			return nil, err
		}
	case raw[0] == '{':
		var legacy legacyLicense
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, err
		}
		meta.License = legacy.Type
	default:
		return nil, fmt.Errorf("license must be a string or an object")
	}

	return meta, nil
}

type yamlManifest struct {
	Title       string `yaml:"title"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Version     string `yaml:"version"`
	License     string `yaml:"license"`
}

func decodeYAML(data []byte) (*Metadata, error) {
	var m yamlManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	title := m.Title
	if title == "" {
		title = m.Name
	}

	return &Metadata{
		Title:       title,
		Description: m.Description,
		Version:     m.Version,
		License:     m.License,
	}, nil
}
