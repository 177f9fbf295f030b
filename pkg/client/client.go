package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"cidash/pkg/api"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
)

// Client is the API client that performs all operations to the CI backend.
// All calls are authenticated with a bearer token which is refreshed once when rejected.
type Client interface {
	// SignIn obtains a new pair of tokens for the given credentials.
	SignIn(ctx context.Context, username, password string) (Tokens, error)

	// Tokens returns the tokens currently in use.
	Tokens() Tokens

	// Pipeline returns a snapshot of the pipeline with its jobs.
	Pipeline(ctx context.Context, id api.PipelineID) (PipelineResponse, error)

	// ListPipelines returns snapshots of every pipeline.
	ListPipelines(ctx context.Context) (ListPipelinesResponse, error)

	// Job returns a snapshot of a single job, output included.
	Job(ctx context.Context, id api.JobID) (JobResponse, error)

	// CancelPipeline asks the backend to cancel every unfinished job of the pipeline.
	CancelPipeline(ctx context.Context, id api.PipelineID) error

	// UpdatePipeline asks the backend to refresh the state of the pipeline's jobs.
	UpdatePipeline(ctx context.Context, id api.PipelineID) error

	// CancelJob asks the backend to cancel the job.
	CancelJob(ctx context.Context, id api.JobID) error

	// UpdateJob asks the backend to refresh the state of the job.
	UpdateJob(ctx context.Context, id api.JobID) error

	// ListJobs returns snapshots of every job, without output.
	ListJobs(ctx context.Context) (ListJobsResponse, error)

	// CreatePipeline validates the pipeline definition and submits it to the backend.
	CreatePipeline(ctx context.Context, req CreatePipelineRequest) (CreatePipelineResponse, error)
}

// Option configures a client.
type Option func(*client)

// WithRetryMax sets the number of retries on connection errors and server errors.
func WithRetryMax(n int) Option {
	return func(cli *client) {
		cli.httpcli.RetryMax = n
	}
}

// WithTokens sets the tokens used to authenticate requests.
func WithTokens(t Tokens) Option {
	return func(cli *client) {
		cli.tokens = t
	}
}

// NewClient creates a client for the CI backend at the given uri.
func NewClient(uri string, opts ...Option) (Client, error) {
	if uri == "" {
		return nil, errors.New("uri is required")
	}
	httpcli := retryablehttp.NewClient()
	httpcli.Logger = nil
	cli := &client{
		httpcli: httpcli,
		uri:     strings.TrimRight(uri, "/"),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

type client struct {
	httpcli *retryablehttp.Client
	uri     string

	mu     sync.RWMutex
	tokens Tokens
}

func (cli *client) Tokens() Tokens {
	cli.mu.RLock()
	defer cli.mu.RUnlock()
	return cli.tokens
}

// send performs a single request, authenticated when auth is true.
func (cli *client) send(ctx context.Context, method, path string, body interface{}, auth bool) (*http.Response, error) {
	var raw []byte
	if body != nil {
		var err error
		if raw, err = json.Marshal(body); err != nil {
			return nil, errors.Wrap(err, "cannot marshal request")
		}
	}
	var reqBody interface{}
	if raw != nil {
		reqBody = raw
	}
	req, err := retryablehttp.NewRequest(method, cli.uri+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create request")
	}
	if raw != nil {
		req.Header.Set("content-type", "application/json")
	}
	if auth {
		req.Header.Set("authorization", "Bearer "+cli.Tokens().Access)
	}
	resp, err := cli.httpcli.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "cannot do request")
	}
	return resp, nil
}

// do performs an authenticated request, refreshing the access token once if it is rejected,
// and decodes the response into out when out is not nil.
func (cli *client) do(ctx context.Context, method, path string, body, out interface{}, what string) error {
	resp, err := cli.send(ctx, method, path, body, true)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		drain(resp)
		if err := cli.refresh(ctx); err != nil {
			return err
		}
		if resp, err = cli.send(ctx, method, path, body, true); err != nil {
			return err
		}
	}
	defer drain(resp)

	if err := checkStatus(resp, what); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	// Action endpoints may answer with an empty body.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return errors.Wrap(err, "cannot decode response")
	}
	return nil
}

// checkStatus converts a non 2xx response into an error.
func checkStatus(resp *http.Response, what string) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound{what}
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	}
	httpErr := HTTPError{StatusCode: resp.StatusCode}
	b, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(b, &httpErr); err != nil || httpErr.Detail == nil {
		httpErr.Detail = string(bytes.TrimSpace(b))
	}
	if resp.StatusCode == http.StatusBadRequest {
		return ErrBadRequest{httpErr}
	}
	return httpErr
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
