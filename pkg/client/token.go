package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

const (
	// SignInMethod is http method used for endpoint SignIn
	SignInMethod = http.MethodPost
	// SignInPath is the path of the endpoint SignIn. The trailing slash is required by the backend.
	SignInPath = "/api/token/"

	// RefreshMethod is http method used for the token refresh endpoint
	RefreshMethod = http.MethodPost
	// RefreshPath is the path of the token refresh endpoint
	RefreshPath = "/api/token/refresh/"
)

// Tokens is a pair of access and refresh tokens.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// SignInRequest is the request structure for the SignIn endpoint
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the request structure for the token refresh endpoint
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

func (cli *client) SignIn(ctx context.Context, username, password string) (Tokens, error) {
	resp, err := cli.send(ctx, SignInMethod, SignInPath, SignInRequest{Username: username, Password: password}, false)
	if err != nil {
		return Tokens{}, err
	}
	defer drain(resp)
	if err := checkStatus(resp, "user "+username); err != nil {
		return Tokens{}, errors.Wrap(err, "cannot sign in")
	}

	var t Tokens
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return Tokens{}, errors.Wrap(err, "cannot decode response")
	}
	cli.mu.Lock()
	cli.tokens = t
	cli.mu.Unlock()
	return t, nil
}

// refresh replaces the access token using the refresh token.
func (cli *client) refresh(ctx context.Context) error {
	current := cli.Tokens()
	if current.Refresh == "" {
		return ErrUnauthorized
	}
	resp, err := cli.send(ctx, RefreshMethod, RefreshPath, RefreshRequest{Refresh: current.Refresh}, false)
	if err != nil {
		return errors.Wrap(err, "cannot refresh access token")
	}
	defer drain(resp)
	if err := checkStatus(resp, "refresh token"); err != nil {
		return errors.Wrap(err, "cannot refresh access token")
	}

	var t Tokens
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return errors.Wrap(err, "cannot decode response")
	}
	cli.mu.Lock()
	cli.tokens.Access = t.Access
	if t.Refresh != "" {
		cli.tokens.Refresh = t.Refresh
	}
	cli.mu.Unlock()
	return nil
}
