package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

type staticToken string

func (t staticToken) GetToken(_ context.Context) (string, error) {
	return string(t), nil
}

func (t staticToken) SetToken(_ string, _ time.Time) {}

func TestClientGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/employees", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[],"has_more":false}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, staticToken("test-token"))

	query := url.Values{"limit": {"5"}}

	resp, err := client.Get(context.Background(), "/v1/employees", query)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"results":[],"has_more":false}`, string(resp.Body))
}

func TestClientPostSendsJSONBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Engineering"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"dept-1","name":"Engineering"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Post(context.Background(), "/v1/departments", map[string]string{"name": "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestClientMapsAPIErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"not_found","message":"no such employee","request_id":"req-9"}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil)

	resp, err := client.Get(context.Background(), "/v1/employees/missing", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.True(t, gridapi.IsNotFound(err))

	apiErr := &gridapi.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "no such employee", apiErr.Message)
	assert.Equal(t, "req-9", apiErr.RequestID)
}

func TestClientRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte(`{"id":"emp-1"}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	resp, err := client.Get(context.Background(), "/v1/employees/emp-1", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_request","message":"bad limit"}}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithRetryConfig(3, time.Millisecond, 5*time.Millisecond))

	_, err := client.Get(context.Background(), "/v1/employees", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load())
}

func TestClientCachesGETResponses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"id":"team-1","name":"Platform"}`))
	}))
	defer server.Close()

	cache := gridapi.NewMemoryCache(8)
	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithCache(cache, time.Minute))

	ctx := context.Background()

	first, err := client.Get(ctx, "/v1/teams/team-1", nil)
	require.NoError(t, err)

	second, err := client.Get(ctx, "/v1/teams/team-1", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, int32(1), hits.Load())
}

func TestClientDoesNotCacheOtherMethods(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"id":"emp-1"}`))
	}))
	defer server.Close()

	cache := gridapi.NewMemoryCache(8)
	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithCache(cache, time.Minute))

	ctx := context.Background()

	_, err := client.Post(ctx, "/v1/employees", map[string]string{"first_name": "Ada"})
	require.NoError(t, err)

	_, err = client.Post(ctx, "/v1/employees", map[string]string{"first_name": "Ada"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
}

func TestClientRunsRequestInterceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "grid-cli", r.Header.Get("X-Client-Name"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	chain := gridapi.NewInterceptorChain()
	chain.AddRequestInterceptor(gridapi.HeaderInterceptor(map[string]string{
		"X-Client-Name": "grid-cli",
	}))

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/v1/teams", nil)
	require.NoError(t, err)
}

func TestClientUserAgent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "grid-test/1.0", r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := internalhttp.NewClient(server.URL, nil,
		internalhttp.WithUserAgent("grid-test/1.0"))

	_, err := client.Get(context.Background(), "/v1/teams", nil)
	require.NoError(t, err)
}
