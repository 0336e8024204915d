// Package http provides the JSON transport for the Grid API: bearer-token
// authentication, query encoding, retryable requests, and error mapping.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/peoplegrid/gridapi/internal/auth"
	"github.com/peoplegrid/gridapi/internal/constants"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// Logger interface for HTTP layer logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the HTTP client for the Grid API. Retries for transient
// failures (connection errors, 429, 5xx) happen here and nowhere above.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	logger       Logger
	debug        bool
	userAgent    string
	cache        gridapi.Cache
	cacheTTL     time.Duration
	interceptors *gridapi.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes transport retries.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithCache enables caching of successful GET responses.
func WithCache(cache gridapi.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithInterceptors attaches a request/response interceptor chain.
func WithInterceptors(chain *gridapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a new Grid API HTTP client.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    "gridapi-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do performs an API request. Non-2xx responses are returned alongside a
// *gridapi.APIError carrying the status code and response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		requestURL += "?" + req.Query.Encode()
	}

	cacheKey := req.Method + " " + requestURL
	if cached := c.cacheLookup(ctx, req.Method, cacheKey); cached != nil {
		return cached, nil
	}

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	httpReq, err := c.buildRequest(ctx, req, requestURL, bodyBytes)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    requestURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         requestURL,
			"status_code": resp.StatusCode,
		})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := gridapi.ParseAPIError(resp.StatusCode, respBody)

		c.runResponseInterceptors(ctx, req, resp, apiErr)

		return resp, apiErr
	}

	c.runResponseInterceptors(ctx, req, resp, nil)
	c.cacheStore(ctx, req.Method, cacheKey, resp)

	return resp, nil
}

// buildRequest assembles the retryable request with auth and standard
// headers, running request interceptors last so they can override headers.
func (c *Client) buildRequest(ctx context.Context, req *Request, requestURL string, bodyBytes []byte) (*retryablehttp.Request, error) {
	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, requestURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if bodyBytes != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting auth token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.interceptors != nil {
		interceptorReq := &gridapi.Request{
			Method:  req.Method,
			Path:    req.Path,
			Headers: httpReq.Header,
			Body:    bodyBytes,
		}

		if err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptorReq); err != nil {
			return nil, err
		}
	}

	return httpReq, nil
}

// runResponseInterceptors feeds the outcome of a request through the
// response interceptor chain. Interceptor errors are logged, not returned;
// the API outcome wins.
func (c *Client) runResponseInterceptors(ctx context.Context, req *Request, resp *Response, apiErr error) {
	if c.interceptors == nil {
		return
	}

	interceptorResp := &gridapi.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      apiErr,
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, &gridapi.Request{Method: req.Method, Path: req.Path}, interceptorResp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor error", map[string]interface{}{"error": err.Error()})
	}
}

// cacheLookup returns a cached GET response if one is present.
func (c *Client) cacheLookup(ctx context.Context, method, key string) *Response {
	if c.cache == nil || method != http.MethodGet {
		return nil
	}

	entry, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	return &Response{
		StatusCode: http.StatusOK,
		Body:       entry.Data,
	}
}

// cacheStore caches a successful GET response.
func (c *Client) cacheStore(ctx context.Context, method, key string, resp *Response) {
	if c.cache == nil || method != http.MethodGet || resp.StatusCode != http.StatusOK {
		return
	}

	ttl := c.cacheTTL
	if ttl <= 0 {
		ttl = gridapi.DefaultCacheOptions().DefaultTTL
	}

	entry := &gridapi.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      resp.Headers.Get("ETag"),
	}

	if err := c.cache.Set(ctx, key, entry); err != nil && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{"error": err.Error()})
	}
}
