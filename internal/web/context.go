package web

import (
	"context"
	"net/http"

	"github.com/JonMunkholm/pricelist/internal/core"
)

// WithRequestMetadata adds the client address and User-Agent to ctx so that
// ingest runs log who submitted them.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ip := r.RemoteAddr // Already processed by the RealIP middleware
	ua := r.Header.Get("User-Agent")
	ctx = core.ContextWithIPAddress(ctx, ip)
	ctx = core.ContextWithUserAgent(ctx, ua)
	return ctx
}
