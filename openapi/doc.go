// Package openapi builds OpenAPI 3.0 root documents programmatically and
// serializes them to the OpenAPI JSON shape.
//
// The package models the root object and the small value objects it
// aggregates: License, Contact, Server, and Documentation (external docs).
// It is a builder and serializer only; it does not parse documents, route
// requests, or validate paths and components.
//
// See: https://spec.openapis.org/oas/v3.0.2
//
// # Value Objects
//
// Value objects are validated on construction and immutable afterwards:
//
//	contact, err := openapi.NewContact("Support", "http://example.com", "support@example.com")
//	server, err := openapi.NewServer("https://api.example.com/v1", &openapi.ServerOptions{
//	    Description: "Production",
//	})
//	docs, err := openapi.NewDocumentation("https://docs.example.com", "Guides")
//
// URL arguments must be absolute and are normalized ("http://example.com"
// serializes as "http://example.com/"). Malformed URLs and email addresses
// fail with ErrInvalidFormat.
//
// # Licenses
//
// Well-known licenses resolve to a canonical name and URL:
//
//	openapi.LicenseApache2.License()
//	openapi.NewLicense("MIT", "")              // canonical MIT URL
//	openapi.NewLicense("Proprietary", "https://example.com/license")
//
// # Document
//
// A Document aggregates the value objects. Info fields are merged with
// project defaults from an optional MetadataProvider:
//
//	doc, err := openapi.NewDocument(&openapi.Config{
//	    Servers:  []*openapi.Server{server},
//	    Provider: manifest.File(os.DirFS("."), "package.json"),
//	})
//
//	err = doc.UpdateInfo(openapi.InfoFields{
//	    Version:     "3.0.0",
//	    Contact:     contact,
//	    LicenseName: "Apache-2.0",
//	})
//
//	data, err := json.MarshalIndent(doc, "", "  ")
//
// Explicit fields always win over provider defaults, and repeated
// UpdateInfo calls merge additively. Provider failures are logged and
// never returned.
//
// A Document configured with a single Server (or with none, in which case
// a server at "/" is used) serializes "servers" as one object; a list of
// servers serializes as an array. Entries of the list that are nil or were
// not created by NewServer are dropped silently.
//
// # Serving
//
// Handle registers a JSON endpoint and an interactive docs UI on an
// http.ServeMux:
//
//	mux := http.NewServeMux()
//	doc.Handle(mux, "/swagger", nil)
package openapi
