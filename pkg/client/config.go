package client

import (
	"context"

	"cidash/pkg/util/config"

	"github.com/pkg/errors"
)

// FromConfig creates a client from the dashboard configuration.
// Configured tokens are used as is; otherwise, when credentials are set, the client signs in.
func FromConfig(ctx context.Context, cfg config.Dashboard, opts ...Option) (Client, error) {
	opts = append([]Option{WithTokens(Tokens{Access: cfg.AccessToken, Refresh: cfg.RefreshToken})}, opts...)
	cli, err := NewClient(cfg.URI, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.AccessToken != "" || cfg.RefreshToken != "" || cfg.Username == "" {
		return cli, nil
	}
	if _, err := cli.SignIn(ctx, cfg.Username, cfg.Password); err != nil {
		return nil, errors.Wrapf(err, "cannot sign in as %s", cfg.Username)
	}
	return cli, nil
}
