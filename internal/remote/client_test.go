package remote

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syncerrors "github.com/donskikhas/tipatask-sub001/internal/errors"
)

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "https://kv.example.com/app1/.json", Endpoint("https://kv.example.com/app1"))
	assert.Equal(t, "https://kv.example.com/app1/.json", Endpoint("https://kv.example.com/app1/"))
}

func TestFetchReturnsBodyVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/.json", r.URL.Path)
		_, _ = w.Write([]byte("null"))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	body, err := c.Fetch(context.Background())
	require.NoError(t, err)
	// Absence is the remote's null, passed through untouched.
	assert.Equal(t, "null", string(body))
}

func TestFetchClassifiesStatusCodes(t *testing.T) {
	cases := []struct {
		status        int
		irrecoverable bool
	}{
		{http.StatusNotFound, true},
		{http.StatusUnauthorized, true},
		{http.StatusRequestTimeout, false},
		{http.StatusTooManyRequests, false},
		{http.StatusInternalServerError, false},
		{http.StatusServiceUnavailable, false},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", tc.status)
		}))

		c := New(srv.URL, srv.Client())
		_, err := c.Fetch(context.Background())
		require.Error(t, err, "status %d", tc.status)
		assert.Equal(t, tc.irrecoverable, syncerrors.IsIrrecoverable(err), "status %d", tc.status)

		var classified *syncerrors.ClassifiedError
		require.ErrorAs(t, err, &classified)
		assert.Equal(t, tc.status, classified.StatusCode)
		assert.Equal(t, syncerrors.OpFetch, classified.Op)

		srv.Close()
	}
}

func TestFetchNetworkErrorIsRecoverable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, http.DefaultClient)
	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, syncerrors.IsIrrecoverable(err))
}

func TestReplaceSendsWholeDocument(t *testing.T) {
	var gotMethod, gotPath, gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	require.NoError(t, c.Replace(context.Background(), []byte(`{"tasks":[]}`)))

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/.json", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"tasks":[]}`, gotBody)
}

func TestReplaceClassifiesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	err := c.Replace(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.True(t, syncerrors.IsIrrecoverable(err))
}
