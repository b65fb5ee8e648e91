package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second, zap.NewNop())
}

func TestClientRequestHeaders(t *testing.T) {
	var gotContentType, gotRequestID, gotAuth string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	_, err := client.Get(context.Background(), "secret-token", "/users", nil)
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID, "every request carries a correlation id")
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	var hadAuth bool

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	})

	_, err := client.Get(context.Background(), "", "/users", nil)
	require.NoError(t, err)

	assert.False(t, hadAuth)
	assert.Empty(t, gotAuth)
}

func TestClientGetQueryParams(t *testing.T) {
	var gotQuery url.Values

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	params := url.Values{}
	params.Set("role", "Teacher")

	_, err := client.Get(context.Background(), "t", "/users", params)
	require.NoError(t, err)

	assert.Equal(t, "Teacher", gotQuery.Get("role"))
}

func TestClientSuccessStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "200 OK", status: http.StatusOK},
		{name: "201 Created", status: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"id":"u1"}`))
			})

			raw, err := client.Send(context.Background(), "t", http.MethodPost, "/users", map[string]string{"name": "Alice"})
			require.NoError(t, err)
			assert.JSONEq(t, `{"id":"u1"}`, string(raw))
		})
	}
}

func TestClientAPIErrorWithDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Email already registered"}`))
	})

	_, err := client.Send(context.Background(), "t", http.MethodPost, "/users", nil)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindAPI, apiErr.Kind)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Message)
}

func TestClientAPIErrorWithoutDetail(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json at all`))
	})

	_, err := client.Get(context.Background(), "t", "/users", nil)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindAPI, apiErr.Kind)
	assert.Equal(t, "An error occurred.", apiErr.Message)
}

func TestClientNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"User not found"}`))
	})

	_, err := client.Get(context.Background(), "t", "/users/id/missing", nil)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsNotFound())
}

func TestClientTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже мёртв

	client := New(server.URL, time.Second, zap.NewNop())

	_, err := client.Get(context.Background(), "t", "/users", nil)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindTransport, apiErr.Kind)
}

func TestClientInvalidJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"broken":`))
	})

	_, err := client.Get(context.Background(), "t", "/users", nil)
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, KindDecode, apiErr.Kind)
}

func TestClientEmptyBodyIsNull(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	raw, err := client.Get(context.Background(), "t", "/users", nil)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("null"), raw)
}

func TestClientSendRejectsUnknownMethod(t *testing.T) {
	client := New("http://example.invalid", time.Second, zap.NewNop())

	_, err := client.Send(context.Background(), "t", http.MethodGet, "/users", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported HTTP method")
}

func TestClientSendJSONDecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Alice", body["name"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"user_id":"u1"}`))
	})

	var out struct {
		UserID string `json:"user_id"`
	}
	err := client.SendJSON(context.Background(), "t", http.MethodPost, "/users", map[string]string{"name": "Alice"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "u1", out.UserID)
}
