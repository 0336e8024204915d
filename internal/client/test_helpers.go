package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// NewTestClient creates a client against the given base URL without a token
// manager.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}

// TestGetOperation represents a generic get operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     *TResponse
	WantErr      bool
	ErrMessage   string
}

// RunGetTests runs a series of get operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)
				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.WantErr {
					errorResponse := map[string]interface{}{
						"error": map[string]interface{}{
							"code":    "not_found",
							"message": "resource not found",
						},
					}
					_ = json.NewEncoder(writer).Encode(errorResponse)
				} else if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			getFn := getFunc(client)
			result, err := getFn(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// TestCreateOperation represents a generic create operation test case.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)

				var requestBody TRequest

				err := json.NewDecoder(request.Body).Decode(&requestBody)
				assert.NoError(t, err)

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)

			createFn := createFunc(client)
			result, err := createFn(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// newListServerWithQuery serves a single list page and asserts the expected
// query parameters were sent.
func newListServerWithQuery[T any](t *testing.T, expectedPath string, expectedQuery map[string]string, page gridapi.ListResponse[T]) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)

		for name, value := range expectedQuery {
			assert.Equal(t, value, request.URL.Query().Get(name))
		}

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(page)
	}))
}

// newRecordingListServer serves pages in request order and records the cursor
// parameter of every request.
func newRecordingListServer[T any](t *testing.T, expectedPath string, cursors *[]string, pages []gridapi.ListResponse[T]) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)

		index := len(*cursors)
		*cursors = append(*cursors, request.URL.Query().Get("cursor"))

		require.Less(t, index, len(pages), "unexpected extra page request")

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(pages[index])
	}))
}

// newMethodServer asserts one expected method and path and serves a single
// JSON response.
func newMethodServer(t *testing.T, method, expectedPath string, statusCode int, response interface{}) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, method, request.Method)
		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(statusCode)

		if response != nil {
			_ = json.NewEncoder(writer).Encode(response)
		}
	}))
}

// newListServer serves a fixed sequence of list pages in request order and
// counts the requests it has seen.
func newListServer[T any](t *testing.T, expectedPath string, pages []gridapi.ListResponse[T], requestCount *int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, expectedPath, request.URL.Path)
		assert.Equal(t, http.MethodGet, request.Method)

		index := *requestCount
		*requestCount++

		require.Less(t, index, len(pages), "unexpected extra page request")

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(pages[index])
	}))
}
