// Package manifest reads project metadata (title, description, version and
// license) used as defaults for an OpenAPI info object.
//
// Providers are small and composable:
//
//	p := manifest.Chain(
//	    manifest.File(os.DirFS("."), "package.json"),
//	    manifest.BuildInfo(),
//	)
//
//	meta, err := p.Metadata()
//
// The JSON reader understands the package.json layout (name, description,
// version, license). The YAML reader accepts the same keys, with title
// taking precedence over name:
//
//	title: Pet Store
//	description: A sample pet store
//	version: 1.2.0
//	license: MIT
//
// Reads are bounded; File refuses manifests larger than MaxFileSize.
package manifest
