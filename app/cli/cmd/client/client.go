package client

import (
	"context"

	"cidash/pkg/client"
	"cidash/pkg/util/config"
)

// New returns a new client for the configured CI backend, along with the configuration used.
func New(ctx context.Context) (client.Client, config.Dashboard, error) {
	cfg, err := config.LoadDashboard()
	if err != nil {
		return nil, config.Dashboard{}, err
	}
	cli, err := client.FromConfig(ctx, cfg)
	if err != nil {
		return nil, config.Dashboard{}, err
	}
	return cli, cfg, nil
}
