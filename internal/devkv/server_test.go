package devkv

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func put(t *testing.T, url, body string) int {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode
}

func TestGetUnwrittenDocumentIsNull(t *testing.T) {
	srv := newTestServer(t)
	status, body := get(t, srv.URL+"/app1/.json")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", body)
}

func TestPutThenGetRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	require.Equal(t, http.StatusOK, put(t, srv.URL+"/app1/.json", `{"tasks":[{"id":"t1"}]}`))

	status, body := get(t, srv.URL+"/app1/.json")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"tasks":[{"id":"t1"}]}`, body)
}

func TestPutOverwritesWholesale(t *testing.T) {
	srv := newTestServer(t)

	require.Equal(t, http.StatusOK, put(t, srv.URL+"/app1/.json", `{"tasks":[{"id":"t1"}],"users":[]}`))
	require.Equal(t, http.StatusOK, put(t, srv.URL+"/app1/.json", `{"tasks":[]}`))

	_, body := get(t, srv.URL+"/app1/.json")
	// The second PUT replaced the document entirely; users is gone.
	assert.JSONEq(t, `{"tasks":[]}`, body)
}

func TestDocumentsAreIsolatedByPath(t *testing.T) {
	srv := newTestServer(t)

	require.Equal(t, http.StatusOK, put(t, srv.URL+"/app1/.json", `{"a":1}`))

	_, body := get(t, srv.URL+"/app2/.json")
	assert.Equal(t, "null", body)
}

func TestPutRejectsInvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	assert.Equal(t, http.StatusBadRequest, put(t, srv.URL+"/app1/.json", `{broken`))
}

func TestNonJSONPathIs404(t *testing.T) {
	srv := newTestServer(t)
	status, _ := get(t, srv.URL+"/app1/state")
	assert.Equal(t, http.StatusNotFound, status)
}
