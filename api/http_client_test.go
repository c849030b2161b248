package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/filter", r.URL.Path)
		assert.Equal(t, "All", r.URL.Query().Get("isSuite"))
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"result": "success"})
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	err := client.Request(context.Background(), "GET", "/filter?isSuite=All", map[string]string{"X-Test": "yes"}, nil, &response)

	require.NoError(t, err)
	assert.Equal(t, "success", response["result"])
}

func TestHTTPClient_Request_SendsJSONBody(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "value", got["key"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer mockServer.Close()

	err := NewHTTPClient(mockServer.URL).Request(context.Background(), "POST", "/", nil, map[string]string{"key": "value"}, nil)
	assert.NoError(t, err)
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL)
	var response map[string]string

	err := client.Request(context.Background(), "POST", "/test-endpoint", nil, map[string]string{"key": "value"}, &response)

	require.Error(t, err)
	assert.Equal(t, "unexpected status code: 400 Bad Request", err.Error())
}

func TestHTTPClient_Request_BadJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer mockServer.Close()

	var response map[string]string
	err := NewHTTPClient(mockServer.URL).Request(context.Background(), "GET", "/x", nil, nil, &response)
	assert.ErrorContains(t, err, "failed to decode response from /x")
}

func TestHTTPClient_Request_ContextCancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := NewHTTPClient(mockServer.URL).Request(ctx, "GET", "/slow", nil, nil, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
