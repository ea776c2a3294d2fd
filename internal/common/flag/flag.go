package flag

import (
	"net/http"

	"github.com/clearpath-au/go-remit/internal/config"

	"github.com/Unleash/unleash-client-go/v3"
)

// Client is the read surface the services use for runtime toggles.
type Client interface {
	IsEnabled(feature string) bool
}

type unleashClient struct {
	c *unleash.Client
}

func (u *unleashClient) IsEnabled(feature string) bool {
	return u.c.IsEnabled(feature)
}

func New(cfg *config.Config) (Client, error) {
	c, err := unleash.NewClient(
		unleash.WithAppName(cfg.App.Name),
		unleash.WithUrl(cfg.FeatureFlagSDK.URL),
		unleash.WithEnvironment(cfg.FeatureFlagSDK.Env),
		unleash.WithCustomHeaders(http.Header{"Authorization": {cfg.FeatureFlagSDK.Token}}),
		unleash.WithRefreshInterval(cfg.FeatureFlagSDK.RefreshInterval),
		unleash.WithListener(&unleash.DebugListener{}),
	)
	if err != nil {
		return nil, err
	}
	c.WaitForReady()

	return &unleashClient{c: c}, nil
}

// StaticClient serves fixed flag values. Used in local mode and tests.
type StaticClient map[string]bool

func (s StaticClient) IsEnabled(feature string) bool {
	return s[feature]
}
