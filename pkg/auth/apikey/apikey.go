package apikey

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/avatar/pkg/auth"
)

// Provider compares a caller-supplied key against the configured secret.
// The key is read from the X-API-Key header, with a bearer token fallback.
type Provider struct {
	key string

	header string
}

type Option func(*Provider)

func WithHeader(header string) Option {
	return func(p *Provider) {
		p.header = header
	}
}

func New(key string, options ...Option) (*Provider, error) {
	if key == "" {
		return nil, errors.New("missing api key")
	}

	p := &Provider{
		key: key,

		header: "X-API-Key",
	}

	for _, option := range options {
		option(p)
	}

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	key := strings.TrimSpace(r.Header.Get(p.header))

	if key == "" {
		if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
			key = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if key == "" {
		return ctx, errors.New("missing api key")
	}

	if subtle.ConstantTimeCompare([]byte(key), []byte(p.key)) == 0 {
		return ctx, errors.New("invalid api key")
	}

	ctx = context.WithValue(ctx, auth.UserContextKey, "api-key")

	return ctx, nil
}
