// Package remote speaks the snapshot protocol of the cloud key-value
// endpoint: the whole application state is one JSON document read with a
// single GET and replaced with a single unconditional PUT.
package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	syncerrors "github.com/donskikhas/tipatask-sub001/internal/errors"
)

// maxBodyExcerpt bounds how much of an error response body is kept for logs.
const maxBodyExcerpt = 512

// Client talks to a single configured base URL. A nil *Client is the
// "no endpoint configured" state; both operations then degrade to no-ops at
// the engine level, never here.
type Client struct {
	endpoint string
	http     *http.Client
}

// New builds a client for the given base URL. The document lives at
// {base}/.json, or {base}.json when the base already ends in a slash.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: Endpoint(baseURL), http: httpClient}
}

// Endpoint resolves the snapshot document URL for a base URL.
func Endpoint(baseURL string) string {
	if strings.HasSuffix(baseURL, "/") {
		return baseURL + ".json"
	}
	return baseURL + "/.json"
}

// Fetch retrieves the entire snapshot document. The remote represents an
// absent document as JSON null; that is returned verbatim for the caller's
// document parser to handle.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, syncerrors.NewNetworkError(syncerrors.OpFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, syncerrors.NewNetworkError(syncerrors.OpFetch, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, syncerrors.NewHTTPError(syncerrors.OpFetch, resp.StatusCode, excerpt(body))
	}
	return body, nil
}

// Replace overwrites the remote document wholesale. There is no
// optimistic-concurrency token: the last PUT accepted by the server wins in
// full, including fields this client read stale.
func (c *Client) Replace(ctx context.Context, doc []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint, bytes.NewReader(doc))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return syncerrors.NewNetworkError(syncerrors.OpReplace, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return syncerrors.NewHTTPError(syncerrors.OpReplace, resp.StatusCode, excerpt(body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		return string(body[:maxBodyExcerpt])
	}
	return string(body)
}
