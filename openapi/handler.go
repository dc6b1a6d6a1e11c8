package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"maps"
	"net/http"
	"path"
	"slices"
	"strings"

	"github.com/rs/cors"
)

// DocsUI selects the interactive documentation page served next to the
// JSON document.
type DocsUI int

const (
	DocsSwaggerUI DocsUI = iota
	DocsRapiDoc
	DocsRedoc
)

func (ui DocsUI) page() string {
	switch ui {
	case DocsRapiDoc:
		return "rapidoc"
	case DocsRedoc:
		return "redoc"
	default:
		return "swagger-ui"
	}
}

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// UI selects the docs page (default: DocsSwaggerUI).
	UI DocsUI

	// Title fixes the page title. When empty the current info title is
	// used on every request.
	Title string

	// JSONFilename is where the document is served (default:
	// "schema.json"). A relative name is placed under the base path, an
	// absolute one is used as is. "-" disables the JSON endpoint and with
	// it the docs page.
	JSONFilename string

	// DisableDocs serves only the JSON document.
	DisableDocs bool

	// SwaggerUIConfig adds SwaggerUIBundle options after url and dom_id.
	// Keys are emitted in sorted order; values that cannot be encoded as
	// JSON are skipped. Ignored by the other UIs.
	//
	// See: https://swagger.io/docs/open-source-tools/swagger-ui/usage/configuration/
	SwaggerUIConfig map[string]any

	// CORS wraps every endpoint with rs/cors when set.
	CORS *cors.Options
}

// routes returns the JSON document path and the docs page patterns for
// basePath. An empty jsonPath means nothing is served.
func (cfg *HandleConfig) routes(basePath string) (jsonPath string, docs []string) {
	name := cfg.JSONFilename
	switch name {
	case "-":
		return "", nil
	case "":
		name = "schema.json"
	}

	jsonPath = resolvePath(basePath, name)
	if cfg.DisableDocs {
		return jsonPath, nil
	}
	if basePath == "" {
		return jsonPath, []string{"/{$}"}
	}
	return jsonPath, []string{basePath, basePath + "/{$}"}
}

// resolvePath places filename under basePath unless it is absolute.
func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	return path.Join("/", basePath, filename)
}

// Handle registers endpoints for the document on mux:
//
//	<basePath>/          docs page (unless DisableDocs)
//	<JSONFilename path>  document as indented JSON
//
// Both endpoints render the document on every request, so updates made
// with UpdateInfo after Handle show up immediately. The cfg parameter is
// optional; pass nil for defaults:
//
//	doc.Handle(mux, "/swagger", nil)
func (d *Document) Handle(mux *http.ServeMux, basePath string, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	wrap := func(h http.Handler) http.Handler { return h }
	if cfg.CORS != nil {
		wrap = cors.New(*cfg.CORS).Handler
	}

	jsonPath, docsPatterns := cfg.routes(basePath)
	if jsonPath == "" {
		return
	}
	mux.Handle(jsonPath, wrap(documentHandler{doc: d}))

	if len(docsPatterns) == 0 {
		return
	}
	page := &docsPage{
		doc:     d,
		name:    cfg.UI.page(),
		title:   cfg.Title,
		specURL: jsonPath,
		extra:   swaggerOptions(cfg.SwaggerUIConfig),
	}
	for _, pattern := range docsPatterns {
		mux.Handle(pattern, wrap(page))
	}
}

// documentHandler writes the current document as JSON.
type documentHandler struct {
	doc *Document
}

func (h documentHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	data, err := json.MarshalIndent(h.doc, "", "  ")
	if err != nil {
		h.doc.logger.Error("failed to encode document", "error", err)
		http.Error(w, "failed to encode OpenAPI document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// docsPage renders one of the pageTemplates entries.
type docsPage struct {
	doc     *Document
	name    string
	title   string
	specURL string
	extra   template.JS
}

type pageData struct {
	Title   string
	SpecURL string
	Extra   template.JS
}

func (p *docsPage) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	data := pageData{
		Title:   p.title,
		SpecURL: p.specURL,
		Extra:   p.extra,
	}
	if data.Title == "" {
		data.Title = p.doc.Title()
	}

	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, p.name, data); err != nil {
		p.doc.logger.Error("failed to render docs page", "page", p.name, "error", err)
		http.Error(w, "failed to render docs page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// swaggerOptions renders extra SwaggerUIBundle properties, each prefixed
// with ", ".
func swaggerOptions(config map[string]any) template.JS {
	var b strings.Builder
	for _, key := range slices.Sorted(maps.Keys(config)) {
		value, err := json.Marshal(config[key])
		if err != nil {
			continue
		}
		name, _ := json.Marshal(key)
		fmt.Fprintf(&b, ", %s: %s", name, value)
	}
	return template.JS(b.String())
}

var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>{{end}}

{{define "swagger-ui"}}{{template "head" .}}
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui" data-spec-url="{{.SpecURL}}"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
const root = document.getElementById("swagger-ui");
SwaggerUIBundle({url: root.dataset.specUrl, dom_id: "#swagger-ui"{{.Extra}}});
</script>
</body>
</html>{{end}}

{{define "rapidoc"}}{{template "head" .}}
<script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
<rapi-doc spec-url="{{.SpecURL}}"></rapi-doc>
</body>
</html>{{end}}

{{define "redoc"}}{{template "head" .}}
</head>
<body>
<redoc spec-url="{{.SpecURL}}"></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>{{end}}
`))
