package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/creatorpilot/internal/common"
	"github.com/google/uuid"
)

type anonymousKey struct{}

// anonymous marks ctx so the transport does not attach the bearer token.
// Login and register are sent this way.
func anonymous(ctx context.Context) context.Context {
	return context.WithValue(ctx, anonymousKey{}, true)
}

func isAnonymous(ctx context.Context) bool {
	v, _ := ctx.Value(anonymousKey{}).(bool)
	return v
}

// authTransport sets the Authorization and request id headers on each
// outbound request before handing it to next.
type authTransport struct {
	next   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrip must not mutate the caller's request.
	req = req.Clone(req.Context())

	if req.Header.Get(common.RequestIDHeaderName) == "" {
		req.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}

	if !isAnonymous(req.Context()) && t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	return t.next.RoundTrip(req)
}
