package manifest

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInfo(t *testing.T) {
	provider := func(info *debug.BuildInfo, ok bool) *BuildInfoProvider {
		return &BuildInfoProvider{read: func() (*debug.BuildInfo, bool) { return info, ok }}
	}

	t.Run("tagged module", func(t *testing.T) {
		p := provider(&debug.BuildInfo{Main: debug.Module{Path: "github.com/acme/pet-store", Version: "v1.4.0"}}, true)

		meta, err := p.Metadata()
		require.NoError(t, err)
		assert.Equal(t, &Metadata{Title: "pet-store", Version: "1.4.0"}, meta)
	})

	t.Run("devel build has no version", func(t *testing.T) {
		p := provider(&debug.BuildInfo{Main: debug.Module{Path: "github.com/acme/svc", Version: "(devel)"}}, true)

		meta, err := p.Metadata()
		require.NoError(t, err)
		assert.Equal(t, &Metadata{Title: "svc"}, meta)
	})

	t.Run("unavailable", func(t *testing.T) {
		_, err := provider(nil, false).Metadata()
		assert.ErrorIs(t, err, ErrNoBuildInfo)
	})

	t.Run("default reader", func(t *testing.T) {
		_, err := BuildInfo().Metadata()
		assert.NoError(t, err)
	})
}
