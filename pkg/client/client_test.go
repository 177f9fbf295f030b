package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"cidash/pkg/api"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend is a fake CI backend accepting a single valid access token.
type backend struct {
	access    string
	refreshes int32
	created   []CreatePipelineRequest
	mux       *http.ServeMux
}

func newBackend(t *testing.T) (*backend, *httptest.Server) {
	b := &backend{access: "fresh", mux: http.NewServeMux()}
	b.mux.HandleFunc(SignInPath, func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(Tokens{Access: b.access, Refresh: "refresh"})
	})
	b.mux.HandleFunc(RefreshPath, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.refreshes, 1)
		var req RefreshRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Refresh != "refresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Token is invalid or expired"}`))
			return
		}
		json.NewEncoder(w).Encode(Tokens{Access: b.access})
	})
	b.mux.HandleFunc("/fastci/api/pipeline/1", b.auth(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"build","status":1,"jobs":[
			{"id":10,"name":"compile","pipeline":1,"parents":[],"status":5,"exit_code":0},
			{"id":11,"name":"test","pipeline":1,"parents":[10],"status":1,"exit_code":null}]}`))
	}))
	b.mux.HandleFunc(ListPipelinesPath, b.auth(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"build","status":3,"jobs":[]},{"id":2,"name":"deploy","status":0,"jobs":[]}]`))
	}))
	b.mux.HandleFunc("/fastci/api/job/10", b.auth(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":10,"name":"compile","pipeline":{"id":1,"name":"build"},"parents":[],"status":5,"exit_code":0,"output":"ok\n","container_id":"abc"}`))
	}))
	b.mux.HandleFunc(ListJobsPath, b.auth(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":10,"name":"compile","pipeline":{"id":1,"name":"build"},"parents":[],"status":5,"exit_code":0,"container_id":"0123456789abcdef"},
			{"id":11,"name":"test","pipeline":{"id":1,"name":"build"},"parents":[10],"status":1,"exit_code":null,"container_id":""}]`))
	}))
	b.mux.HandleFunc(CreatePipelinePath, b.auth(func(w http.ResponseWriter, r *http.Request) {
		var req CreatePipelineRequest
		json.NewDecoder(r.Body).Decode(&req)
		b.created = append(b.created, req)
		if req.Name == "rejected" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"detail":"Names of jobs in a single pipeline must be unique!"}`))
			return
		}
		w.Write([]byte(`{"id":3}`))
	}))
	b.mux.HandleFunc("/fastci/api/cancel_pipeline/1", b.auth(func(w http.ResponseWriter, r *http.Request) {}))
	b.mux.HandleFunc("/fastci/api/update_job/10", b.auth(func(w http.ResponseWriter, r *http.Request) {}))
	b.mux.HandleFunc("/fastci/api/pipeline/500", b.auth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail":"backend down"}`))
	}))
	b.mux.HandleFunc("/fastci/api/pipeline/9", b.auth(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	srv := httptest.NewServer(b.mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *backend) auth(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("authorization") != "Bearer "+b.access {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Given token not valid for any token type"}`))
			return
		}
		h(w, r)
	}
}

func TestSignIn(t *testing.T) {
	_, srv := newBackend(t)
	cli, err := NewClient(srv.URL+"/", WithRetryMax(0))
	require.NoError(t, err)

	_, err = cli.SignIn(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	tokens, err := cli.SignIn(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, Tokens{Access: "fresh", Refresh: "refresh"}, tokens)
	assert.Equal(t, tokens, cli.Tokens())
}

func TestPipeline(t *testing.T) {
	_, srv := newBackend(t)
	cli, err := NewClient(srv.URL, WithTokens(Tokens{Access: "fresh"}), WithRetryMax(0))
	require.NoError(t, err)

	p, err := cli.Pipeline(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, api.PipelineID(1), p.ID)
	assert.Equal(t, api.PipelineRunning, p.Status)
	require.Len(t, p.Jobs, 2)
	require.NotNil(t, p.Jobs[0].ExitCode)
	assert.Equal(t, 0, *p.Jobs[0].ExitCode)
	assert.Nil(t, p.Jobs[1].ExitCode)
	assert.Equal(t, []api.JobID{10}, p.Jobs[1].Parents)

	t.Run("not found", func(t *testing.T) {
		_, err := cli.Pipeline(context.Background(), 9)
		require.Error(t, err)
		assert.True(t, errors.As(err, &ErrNotFound{}))
		assert.Equal(t, "pipeline 9 not found", err.Error())
	})

	t.Run("server error", func(t *testing.T) {
		_, err := cli.Pipeline(context.Background(), 500)
		require.Error(t, err)
	})
}

func TestTokenRefresh(t *testing.T) {
	b, srv := newBackend(t)

	t.Run("expired access token", func(t *testing.T) {
		cli, err := NewClient(srv.URL, WithTokens(Tokens{Access: "expired", Refresh: "refresh"}), WithRetryMax(0))
		require.NoError(t, err)
		pipelines, err := cli.ListPipelines(context.Background())
		require.NoError(t, err)
		assert.Len(t, pipelines, 2)
		assert.Equal(t, "fresh", cli.Tokens().Access)
		assert.Equal(t, "refresh", cli.Tokens().Refresh)
		assert.EqualValues(t, 1, atomic.LoadInt32(&b.refreshes))
	})

	t.Run("expired refresh token", func(t *testing.T) {
		cli, err := NewClient(srv.URL, WithTokens(Tokens{Access: "expired", Refresh: "expired"}), WithRetryMax(0))
		require.NoError(t, err)
		_, err = cli.ListPipelines(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})

	t.Run("no refresh token", func(t *testing.T) {
		cli, err := NewClient(srv.URL, WithRetryMax(0))
		require.NoError(t, err)
		_, err = cli.Job(context.Background(), 10)
		assert.True(t, errors.Is(err, ErrUnauthorized))
	})
}

func TestJobAndActions(t *testing.T) {
	_, srv := newBackend(t)
	cli, err := NewClient(srv.URL, WithTokens(Tokens{Access: "fresh"}), WithRetryMax(0))
	require.NoError(t, err)
	ctx := context.Background()

	j, err := cli.Job(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", j.Output)
	assert.Equal(t, "abc", j.ContainerID)
	assert.Equal(t, api.PipelineRef{ID: 1, Name: "build"}, j.Pipeline)

	assert.NoError(t, cli.CancelPipeline(ctx, 1))
	assert.NoError(t, cli.UpdateJob(ctx, 10))
	assert.True(t, errors.As(cli.UpdatePipeline(ctx, 1), &ErrNotFound{}))
	assert.True(t, errors.As(cli.CancelJob(ctx, 10), &ErrNotFound{}))
}

func TestNewClient(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestHTTPError(t *testing.T) {
	err := checkStatus(&http.Response{StatusCode: http.StatusBadRequest, Body: http.NoBody}, "x")
	var httpErr HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "bad request: http 400: ", err.Error())
	assert.True(t, errors.As(err, &ErrBadRequest{}))

	err = checkStatus(&http.Response{StatusCode: http.StatusConflict, Body: http.NoBody}, "x")
	assert.Equal(t, "http 409: ", err.Error())
	assert.False(t, errors.As(err, &ErrBadRequest{}))
}

func TestListJobs(t *testing.T) {
	_, srv := newBackend(t)
	cli, err := NewClient(srv.URL, WithTokens(Tokens{Access: "fresh"}), WithRetryMax(0))
	require.NoError(t, err)

	jobs, err := cli.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, api.JobID(10), jobs[0].ID)
	assert.Equal(t, api.PipelineRef{ID: 1, Name: "build"}, jobs[0].Pipeline)
	assert.Equal(t, []api.JobID{10}, jobs[1].Parents)
	assert.Equal(t, api.JobRunning, jobs[1].Status)
}
