package bootstrap_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/andrewshostak/esports-notifier/config"
	"github.com/andrewshostak/esports-notifier/internal/infra/bootstrap"
	loggerinternal "github.com/andrewshostak/esports-notifier/internal/infra/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		cfg         func(t *testing.T) config.Core
		expectedErr string
	}{
		{
			name: "success - file storage with html upstream and local lock",
			cfg: func(t *testing.T) config.Core {
				return config.Core{
					Upstream: config.Upstream{Kind: config.UpstreamHTML, BaseURL: "https://www.hltv.org", Path: "/matches"},
					Storage:  config.Storage{Kind: config.StorageFile, FilePath: filepath.Join(t.TempDir(), "state.json")},
				}
			},
		},
		{
			name: "success - memory storage with api upstream and redis lock",
			cfg: func(t *testing.T) config.Core {
				mr := miniredis.RunT(t)
				return config.Core{
					Upstream: config.Upstream{Kind: config.UpstreamAPI, APIToken: "token"},
					Storage:  config.Storage{Kind: config.StorageMemory},
					Redis:    config.Redis{Addr: mr.Addr()},
				}
			},
		},
		{
			name: "it rejects api upstream without token",
			cfg: func(t *testing.T) config.Core {
				return config.Core{
					Upstream: config.Upstream{Kind: config.UpstreamAPI},
					Storage:  config.Storage{Kind: config.StorageMemory},
				}
			},
			expectedErr: "UPSTREAM_API_TOKEN is required for api upstream",
		},
		{
			name: "it rejects unknown storage kind",
			cfg: func(t *testing.T) config.Core {
				return config.Core{
					Upstream: config.Upstream{Kind: config.UpstreamHTML},
					Storage:  config.Storage{Kind: "s3"},
				}
			},
			expectedErr: `unknown storage kind "s3"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, closer, err := bootstrap.NewCore(ctx, tt.cfg(t), loggerinternal.SetupLogger())

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, core)
				return
			}

			require.NoError(t, err)
			defer closer()
			assert.NotNil(t, core.Store)
			assert.NotNil(t, core.Orchestrator)
			assert.Empty(t, core.Store.WatchedTeams())
		})
	}
}
