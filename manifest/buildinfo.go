package manifest

import (
	"path"
	"runtime/debug"
	"strings"
)

// BuildInfoProvider derives metadata from the Go build information embedded
// in the running binary: the main module's base name becomes the title and
// its version the version.
type BuildInfoProvider struct {
	read func() (*debug.BuildInfo, bool)
}

// BuildInfo returns a provider backed by runtime/debug.ReadBuildInfo.
func BuildInfo() *BuildInfoProvider {
	return &BuildInfoProvider{read: debug.ReadBuildInfo}
}

// Metadata returns the title and version of the main module.
func (p *BuildInfoProvider) Metadata() (*Metadata, error) {
	info, ok := p.read()
	if !ok || info == nil {
		return nil, ErrNoBuildInfo
	}

	meta := &Metadata{}
	if info.Main.Path != "" {
		meta.Title = path.Base(info.Main.Path)
	}

	// "(devel)" marks a build from a local checkout.
	if v := info.Main.Version; v != "" && v != "(devel)" {
		meta.Version = strings.TrimPrefix(v, "v")
	}

	return meta, nil
}
