package realtime

import (
	"context"
)

// Provider is the process-wide access point to the bridge. It is built once
// at startup and handed to request contexts by middleware.
type Provider struct {
	*Bridge
}

func NewProvider(b *Bridge) *Provider {
	return &Provider{Bridge: b}
}

type providerKey struct{}

func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

func ProviderFromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrProviderMissing
	}
	return p, nil
}

// MustProvider panics when ctx carries no provider. Reaching that is a wiring
// bug, not a request error.
func MustProvider(ctx context.Context) *Provider {
	p, err := ProviderFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
