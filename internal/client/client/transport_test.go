package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRT struct {
	last *http.Request
}

func (r *recordingRT) RoundTrip(req *http.Request) (*http.Response, error) {
	r.last = req
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: req}, nil
}

func TestAuthTransport_SetsHeaders(t *testing.T) {
	rec := &recordingRT{}
	tr := &authTransport{next: rec, tokens: TokenFunc(func() string { return "abc" })}

	req, err := http.NewRequest(http.MethodGet, "http://example/api/history", nil)
	require.NoError(t, err)

	_, err = tr.RoundTrip(req)
	require.NoError(t, err)

	assert.Equal(t, "Bearer abc", rec.last.Header.Get("Authorization"))
	assert.NotEmpty(t, rec.last.Header.Get("X-Request-ID"))
	assert.Empty(t, req.Header.Get("Authorization"), "original request must stay untouched")
}

func TestAuthTransport_SkipsEmptyTokenAndAnonymous(t *testing.T) {
	rec := &recordingRT{}

	tr := &authTransport{next: rec, tokens: TokenFunc(func() string { return "" })}
	req, _ := http.NewRequest(http.MethodGet, "http://example/", nil)
	_, _ = tr.RoundTrip(req)
	assert.Empty(t, rec.last.Header.Get("Authorization"))

	tr = &authTransport{next: rec, tokens: TokenFunc(func() string { return "abc" })}
	req, _ = http.NewRequestWithContext(anonymous(context.Background()), http.MethodPost, "http://example/api/login", nil)
	_, _ = tr.RoundTrip(req)
	assert.Empty(t, rec.last.Header.Get("Authorization"))
}

func TestAuthTransport_KeepsCallerRequestID(t *testing.T) {
	rec := &recordingRT{}
	tr := &authTransport{next: rec}

	req, _ := http.NewRequest(http.MethodGet, "http://example/", nil)
	req.Header.Set("X-Request-ID", "fixed")
	_, _ = tr.RoundTrip(req)
	assert.Equal(t, "fixed", rec.last.Header.Get("X-Request-ID"))
}
