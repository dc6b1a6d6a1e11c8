package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vitalvas/oasroot/manifest"
	"github.com/vitalvas/oasroot/openapi"
)

type options struct {
	manifest  string
	buildInfo bool

	specVersion string
	paths       string
	servers     []string

	title       string
	description string
	version     string
	terms       string
	license     string

	contactName  string
	contactURL   string
	contactEmail string

	docsURL         string
	docsDescription string

	validate bool
	compact  bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "oasroot",
		Short:        "Print an OpenAPI 3.0 root document",
		Long:         "Builds an OpenAPI 3.0 root document from flags, filling info defaults from a project manifest, and prints it as JSON.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.manifest, "manifest", "", "project manifest (.json in package.json layout, .yaml or .yml)")
	f.BoolVar(&opts.buildInfo, "build-info", false, "fall back to Go build info for title and version")
	f.StringVar(&opts.specVersion, "openapi", "", "OpenAPI Specification version (default "+openapi.DefaultSpecVersion+")")
	f.StringVar(&opts.paths, "paths", "", `paths placeholder (default "/")`)
	f.StringArrayVar(&opts.servers, "server", nil, "server URL; repeat for a list")
	f.StringVar(&opts.title, "title", "", "API title")
	f.StringVar(&opts.description, "description", "", "API description")
	f.StringVar(&opts.version, "version", "", "API version")
	f.StringVar(&opts.terms, "terms", "", "terms of service URL")
	f.StringVar(&opts.license, "license", "", `license identifier (e.g. "Apache-2.0") or name`)
	f.StringVar(&opts.contactName, "contact-name", "", "contact name")
	f.StringVar(&opts.contactURL, "contact-url", "", "contact URL")
	f.StringVar(&opts.contactEmail, "contact-email", "", "contact email")
	f.StringVar(&opts.docsURL, "docs-url", "", "external documentation URL")
	f.StringVar(&opts.docsDescription, "docs-description", "", "external documentation description")
	f.BoolVar(&opts.validate, "validate", false, "check the output against the root document schema")
	f.BoolVar(&opts.compact, "compact", false, "print compact JSON")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg := &openapi.Config{
		SpecVersion: opts.specVersion,
		Paths:       opts.paths,
		Provider:    opts.provider(),
		Logger:      logger,
	}

	switch len(opts.servers) {
	case 0:
	case 1:
		server, err := openapi.NewServer(opts.servers[0], nil)
		if err != nil {
			return err
		}
		cfg.Server = server
	default:
		for _, raw := range opts.servers {
			server, err := openapi.NewServer(raw, nil)
			if err != nil {
				return err
			}
			cfg.Servers = append(cfg.Servers, server)
		}
	}

	if opts.docsURL != "" {
		docs, err := openapi.NewDocumentation(opts.docsURL, opts.docsDescription)
		if err != nil {
			return err
		}
		cfg.ExternalDocs = docs
	}

	doc, err := openapi.NewDocument(cfg)
	if err != nil {
		return err
	}

	fields := openapi.InfoFields{
		Title:          opts.title,
		Description:    opts.description,
		Version:        opts.version,
		TermsOfService: opts.terms,
		LicenseName:    opts.license,
	}
	if opts.contactName != "" || opts.contactURL != "" || opts.contactEmail != "" {
		contact, err := openapi.NewContact(opts.contactName, opts.contactURL, opts.contactEmail)
		if err != nil {
			return err
		}
		fields.Contact = contact
	}

	if err := doc.UpdateInfo(fields); err != nil {
		return err
	}

	if opts.validate {
		if err := doc.Validate(); err != nil {
			return err
		}
	}

	var data []byte
	if opts.compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "    ")
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// provider builds the metadata provider selected by the flags, or nil.
func (o *options) provider() openapi.MetadataProvider {
	var providers []manifest.Provider
	if o.manifest != "" {
		dir, name := filepath.Split(o.manifest)
		if dir == "" {
			dir = "."
		}
		providers = append(providers, manifest.File(os.DirFS(dir), name))
	}
	if o.buildInfo {
		providers = append(providers, manifest.BuildInfo())
	}

	switch len(providers) {
	case 0:
		return nil
	case 1:
		return providers[0]
	default:
		return manifest.Chain(providers...)
	}
}
