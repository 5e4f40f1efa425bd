package sync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"files":["a.log","b.log"]}`))
	}))
	defer server.Close()

	files, err := NewClient().ListFiles(context.Background(), server.URL, "secret")

	require.NoError(t, err)
	assert.Equal(t, []string{"a.log", "b.log"}, files)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestListFilesNoAuthHeaderWithoutKey(t *testing.T) {
	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{"files":[]}`))
	}))
	defer server.Close()

	_, err := NewClient().ListFiles(context.Background(), server.URL, "")

	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestListFilesEmptyIsSuccessNotFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"files":[]}`))
	}))
	defer server.Close()

	files, err := NewClient().ListFiles(context.Background(), server.URL, "")

	// Empty but successful listing is distinguishable from a failure
	require.NoError(t, err)
	assert.NotNil(t, files)
	assert.Empty(t, files)
}

func TestListFilesHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewClient().ListFiles(context.Background(), server.URL, "")

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestListFilesUndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := NewClient().ListFiles(context.Background(), server.URL, "")
	assert.Error(t, err)
}

func TestDownloadFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download_log_file/app.log", r.URL.Path)
		w.Write([]byte("raw log bytes"))
	}))
	defer server.Close()

	data, err := NewClient().DownloadFile(context.Background(), server.URL+"/download_log_file", "app.log", "")

	require.NoError(t, err)
	assert.Equal(t, []byte("raw log bytes"), data)
}

func TestDownloadFileNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewClient().DownloadFile(context.Background(), server.URL, "missing.log", "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
