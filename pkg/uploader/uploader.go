package uploader

import (
	"context"
)

// Provider relays a provider-hosted artifact into durable storage and
// returns the URL callers may use to fetch it.
type Provider interface {
	Upload(ctx context.Context, url string) (string, error)
}
