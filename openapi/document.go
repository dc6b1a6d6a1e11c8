package openapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"unicode/utf8"

	"github.com/vitalvas/oasroot/manifest"
)

// MetadataProvider supplies project defaults for the info object.
// The manifest package provides file, build info, and chained
// implementations.
type MetadataProvider interface {
	Metadata() (*manifest.Metadata, error)
}

// Config configures a new Document. All fields are optional.
type Config struct {
	// SpecVersion is the OpenAPI Specification version (default:
	// DefaultSpecVersion). It must be a semantic version and is stored in
	// plain form, without a leading "=" or "v".
	SpecVersion string

	// Server sets a single server, serialized as a bare server object.
	// Mutually exclusive with Servers.
	Server *Server

	// Servers sets an ordered list of servers. Nil entries and servers not
	// created by NewServer are dropped.
	Servers []*Server

	// ExternalDocs sets the document-level external documentation.
	ExternalDocs *Documentation

	// Paths is the paths placeholder (default: "/").
	Paths string

	// Provider supplies info defaults on every UpdateInfo call. Nil means
	// no defaults.
	Provider MetadataProvider

	// Logger receives provider failures (default: slog.Default()).
	Logger *slog.Logger
}

// Document is an OpenAPI root document under construction.
//
// A Document is safe for concurrent use. UpdateInfo may run while the
// document is being served; readers observe each update as a whole.
//
// See: https://spec.openapis.org/oas/v3.0.2#openapi-object
type Document struct {
	specVersion  string
	paths        string
	servers      []*Server
	singleServer bool
	externalDocs *Documentation

	mu   sync.RWMutex
	info info

	provider MetadataProvider
	logger   *slog.Logger
}

// NewDocument validates cfg and creates a Document. The cfg parameter is
// optional; pass nil for defaults.
func NewDocument(cfg *Config) (*Document, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	specVersion := DefaultSpecVersion
	if cfg.SpecVersion != "" {
		clean, ok := cleanSemver(cfg.SpecVersion)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, cfg.SpecVersion)
		}
		specVersion = clean
	}

	paths := "/"
	if cfg.Paths != "" {
		if !utf8.ValidString(cfg.Paths) {
			return nil, fmt.Errorf("%w: paths must be text", ErrInvalidArgument)
		}
		paths = cfg.Paths
	}

	if cfg.Server != nil && cfg.Servers != nil {
		return nil, fmt.Errorf("%w: server and servers are mutually exclusive", ErrInvalidArgument)
	}

	if cfg.ExternalDocs != nil && !cfg.ExternalDocs.valid() {
		return nil, fmt.Errorf("%w: externalDocs must be created by NewDocumentation", ErrInvalidArgument)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	d := &Document{
		specVersion:  specVersion,
		paths:        paths,
		externalDocs: cfg.ExternalDocs,
		provider:     cfg.Provider,
		logger:       logger,
	}

	switch {
	case cfg.Server.valid():
		d.servers = []*Server{cfg.Server}
		d.singleServer = true
	case cfg.Servers != nil:
		d.servers = filterServers(cfg.Servers, logger)
	default:
		d.servers = []*Server{rootServer()}
		d.singleServer = true
	}

	return d, nil
}

// filterServers keeps only servers created by NewServer, in order.
func filterServers(list []*Server, logger *slog.Logger) []*Server {
	servers := make([]*Server, 0, len(list))
	for i, s := range list {
		if !s.valid() {
			logger.Debug("dropping invalid server entry", "index", i)
			continue
		}
		servers = append(servers, s)
	}
	return servers
}

// SpecVersion returns the OpenAPI Specification version.
func (d *Document) SpecVersion() string { return d.specVersion }

// Paths returns the paths placeholder.
func (d *Document) Paths() string { return d.paths }

// Servers returns the configured servers in order.
func (d *Document) Servers() []*Server {
	return append([]*Server(nil), d.servers...)
}

// ExternalDocs returns the external documentation, or nil.
func (d *Document) ExternalDocs() *Documentation { return d.externalDocs }

// Title returns the current info title.
func (d *Document) Title() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.info.title
}

// Serialize returns the document as a wire object. It does not modify the
// document and can be called any number of times.
func (d *Document) Serialize() RootObject {
	d.mu.RLock()
	info := d.info.serialize()
	d.mu.RUnlock()

	root := RootObject{
		OpenAPI: d.specVersion,
		Info:    info,
		Servers: ServerList{
			Items:  make([]ServerObject, 0, len(d.servers)),
			Single: d.singleServer,
		},
		Paths: d.paths,
	}

	for _, s := range d.servers {
		root.Servers.Items = append(root.Servers.Items, s.Serialize())
	}

	if d.externalDocs != nil {
		docs := d.externalDocs.Serialize()
		root.ExternalDocs = &docs
	}

	return root
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Serialize())
}
